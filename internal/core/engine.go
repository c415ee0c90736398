package core

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/EmundoT/repro-verify/internal/types"
)

// Manager provides the main API for repro-verify operations.
// It wires the default implementations and delegates to VerifyService.
type Manager struct {
	cfg      Config
	comparer *ComparisonService
	verifier *VerifyService
	ui       UICallback
	logger   *slog.Logger
}

// NewComparators picks the comparison backends for cfg. The zip comparator
// decides on its own and diffoscope, when installed, adds a detailed report
// to differences. With the diffoscope comparator there is no enricher.
func NewComparators(cfg Config, runner CommandRunner) (primary, enricher Comparator) {
	diffoscope := NewDiffoscopeComparator(cfg.DiffoscopePath, runner)
	if cfg.Comparator == ComparatorDiffoscope {
		return diffoscope, nil
	}
	if diffoscope.Available() {
		return NewZipComparator(), diffoscope
	}
	return NewZipComparator(), nil
}

// NewManager creates a new Manager with default dependencies
func NewManager(cfg Config, ui UICallback, logger *slog.Logger) *Manager {
	if ui == nil {
		ui = &SilentUICallback{} // Default to silent
	}
	if logger == nil {
		logger = slog.Default()
	}

	fs := NewOSFileSystem()
	downloader := NewHTTPDownloader(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.HTTPTimeout, cfg.UserAgent)
	fetcher := NewFetcher(downloader, fs, cfg.Fallback, logger)

	primary, enricher := NewComparators(cfg, ExecRunner{})
	comparer := NewComparisonService(primary, enricher, logger)

	builder := NewAuditRecordBuilder(SHA256Hasher{}, NewAPKIdentityExtractor(), comparer)
	store := NewFileAuditStore(cfg.RegistryPath(), ui, logger)

	return &Manager{
		cfg:      cfg,
		comparer: comparer,
		verifier: NewVerifyService(cfg, fs, fetcher, comparer, builder, store, ui, logger),
		ui:       ui,
		logger:   logger,
	}
}

// Config returns the resolved configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// Verify runs a batch verification over the unsigned directory.
func (m *Manager) Verify(ctx context.Context, opts VerifyOptions) (*types.VerifySummary, error) {
	return m.verifier.Verify(ctx, opts)
}

// Watch verifies new artifacts as they land in the unsigned directory until
// ctx is cancelled.
func (m *Manager) Watch(ctx context.Context, opts VerifyOptions, onResult func(types.ArtifactResult)) error {
	return NewWatchService(m.verifier, m.cfg.UnsignedDir, m.ui, m.logger).Watch(ctx, opts, onResult)
}

// Capabilities reports the comparator environment recorded in audit records.
func (m *Manager) Capabilities(ctx context.Context) types.EnvironmentCapabilities {
	return m.comparer.Capabilities(ctx)
}
