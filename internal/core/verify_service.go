package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EmundoT/repro-verify/internal/types"
)

// VerifyOptions are the per-run options taken from the command line.
type VerifyOptions struct {
	// Filter restricts the run to the requested packages; nil selects all.
	Filter *PackageFilter
	// ReuseRemote verifies against a cached download when one exists.
	ReuseRemote bool
	// OutputJSON writes the audit record of each artifact to its history
	// file and, when verified, to the registry.
	OutputJSON bool
}

// VerifyServiceInterface defines the contract for batch verification.
// VerifyServiceInterface enables mocking in tests and alternative drivers.
type VerifyServiceInterface interface {
	Verify(ctx context.Context, opts VerifyOptions) (*types.VerifySummary, error)
	VerifyFile(ctx context.Context, path string, opts VerifyOptions) (types.ArtifactResult, bool)
}

// Compile-time interface satisfaction check.
var _ VerifyServiceInterface = (*VerifyService)(nil)

// VerifyService drives fetch, compare and record for every local artifact.
// It processes one artifact at a time; a failure is counted and the batch
// moves on.
type VerifyService struct {
	cfg      Config
	fs       FileSystem
	fetcher  ArtifactFetcher
	comparer ComparisonNormalizer
	builder  RecordBuilder
	store    AuditStore
	ui       UICallback
	logger   *slog.Logger
	newRunID func() string
	now      func() time.Time
}

// NewVerifyService creates a new VerifyService
func NewVerifyService(
	cfg Config,
	fs FileSystem,
	fetcher ArtifactFetcher,
	comparer ComparisonNormalizer,
	builder RecordBuilder,
	store AuditStore,
	ui UICallback,
	logger *slog.Logger,
) *VerifyService {
	if ui == nil {
		ui = &SilentUICallback{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &VerifyService{
		cfg:      cfg,
		fs:       fs,
		fetcher:  fetcher,
		comparer: comparer,
		builder:  builder,
		store:    store,
		ui:       ui,
		logger:   logger,
		newRunID: func() string { return uuid.New().String() },
		now:      time.Now,
	}
}

// prepareDirs creates the download cache and checks for unsigned/.
func (s *VerifyService) prepareDirs() error {
	if _, err := s.fs.Stat(s.cfg.TmpDir); err != nil {
		s.logger.Info("creating temporary directory", "path", s.cfg.TmpDir)
		if err := s.fs.MkdirAll(s.cfg.TmpDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", s.cfg.TmpDir, err)
		}
	}

	info, err := s.fs.Stat(s.cfg.UnsignedDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNoUnsignedDir
		}
		return fmt.Errorf("stat %s: %w", s.cfg.UnsignedDir, err)
	}
	if !info.IsDir() {
		return ErrNoUnsignedDir
	}
	return nil
}

// candidates lists the artifact file names in unsigned/, sorted.
func (s *VerifyService) candidates() ([]string, error) {
	entries, err := s.fs.ReadDir(s.cfg.UnsignedDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.cfg.UnsignedDir, err)
	}
	var names []string
	for _, name := range entries {
		if strings.HasSuffix(name, "/") || !strings.HasSuffix(name, ArtifactExt) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Verify runs the batch. The returned summary's NotVerified count includes
// every requested package that had no local artifact. ErrNoUnsignedDir is
// returned when there is nothing to verify.
func (s *VerifyService) Verify(ctx context.Context, opts VerifyOptions) (*types.VerifySummary, error) {
	runID := s.newRunID()
	logger := s.logger.With("run_id", runID)

	if err := s.prepareDirs(); err != nil {
		return nil, err
	}

	names, err := s.candidates()
	if err != nil {
		return nil, err
	}

	summary := &types.VerifySummary{
		SchemaVersion: SummarySchemaVersion,
		RunID:         runID,
		Timestamp:     s.now().UTC().Format(time.RFC3339),
		Artifacts:     make([]types.ArtifactResult, 0, len(names)),
	}

	processed := make(map[string]bool)
	progress := s.ui.StartProgress(len(names), "Verifying unsigned APKs")

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			logger.Warn("verification interrupted", "error", err)
			break
		}

		published, err := ParsePublishedName(name)
		if err != nil {
			if !opts.Filter.Empty() {
				logger.Debug("skipping unparseable file name", "file", name)
				progress.Increment(name + " (skipped)")
				continue
			}
			logger.Error("cannot derive package from file name", "file", name, "error", err)
			summary.Artifacts = append(summary.Artifacts, types.ArtifactResult{
				File:   filepath.Join(s.cfg.UnsignedDir, name),
				Status: types.ArtifactStatusNotVerified,
				Stage:  types.FailureStageName,
				Error:  err.Error(),
			})
			summary.NotVerified++
			progress.Increment(name)
			continue
		}

		if !opts.Filter.Selects(published) {
			summary.Artifacts = append(summary.Artifacts, types.ArtifactResult{
				File:        filepath.Join(s.cfg.UnsignedDir, name),
				PackageName: published.PackageName,
				VersionCode: published.VersionCode,
				Status:      types.ArtifactStatusSkipped,
			})
			progress.Increment(name + " (skipped)")
			continue
		}
		processed[published.PackageName] = true

		res := s.verifyOne(ctx, logger, name, published, opts)
		summary.Artifacts = append(summary.Artifacts, res)
		if res.Status == types.ArtifactStatusVerified {
			summary.Verified++
		} else {
			summary.NotVerified++
		}
		progress.Increment(name)
	}

	// One failure per argument, so gone.app:1 gone.app:2 counts twice.
	missing := make(map[string]bool)
	for _, pkg := range opts.Filter.Arguments() {
		if processed[pkg] {
			continue
		}
		logger.Error("no APK for package", "package", pkg)
		if !missing[pkg] {
			missing[pkg] = true
			summary.MissingPackages = append(summary.MissingPackages, pkg)
		}
		summary.NotVerified++
	}

	if summary.NotVerified > 0 {
		progress.Fail(fmt.Errorf("%s not verified", Pluralize(summary.NotVerified, "package", "packages")))
	} else {
		progress.Complete()
	}

	if summary.Verified > 0 {
		logger.Info(fmt.Sprintf("%d successfully verified", summary.Verified))
	}
	if summary.NotVerified > 0 {
		logger.Info(fmt.Sprintf("%d NOT verified", summary.NotVerified))
	}

	return summary, nil
}

// VerifyFile verifies a single artifact path, applying the same name and
// filter rules as Verify. The bool is false when the file was not selected.
func (s *VerifyService) VerifyFile(ctx context.Context, path string, opts VerifyOptions) (types.ArtifactResult, bool) {
	name := filepath.Base(path)
	published, err := ParsePublishedName(name)
	if err != nil {
		if !opts.Filter.Empty() {
			return types.ArtifactResult{}, false
		}
		s.logger.Error("cannot derive package from file name", "file", name, "error", err)
		return types.ArtifactResult{File: path, Status: types.ArtifactStatusNotVerified, Stage: types.FailureStageName, Error: err.Error()}, true
	}
	if !opts.Filter.Selects(published) {
		return types.ArtifactResult{}, false
	}
	return s.verifyOne(ctx, s.logger, name, published, opts), true
}

func (s *VerifyService) verifyOne(ctx context.Context, logger *slog.Logger, name string, published types.PublishedName, opts VerifyOptions) types.ArtifactResult {
	apkPath := filepath.Join(s.cfg.UnsignedDir, name)
	url := s.cfg.ArtifactURL(name)
	res := types.ArtifactResult{
		File:        apkPath,
		PackageName: published.PackageName,
		VersionCode: published.VersionCode,
		URL:         url,
	}

	logger.Info("processing", "file", name)
	if err := s.verifyArtifact(ctx, url, apkPath, opts); err != nil {
		stage, level := classifyFailure(err)
		logger.Log(ctx, level, "NOT verified", "file", name, "stage", stage, "error", err)
		res.Status = types.ArtifactStatusNotVerified
		res.Stage = stage
		res.Error = err.Error()
		return res
	}

	logger.Info("successfully verified", "file", name)
	res.Status = types.ArtifactStatusVerified
	return res
}

// classifyFailure maps a verification error to its stage. Differences and
// unpublished artifacts are expected outcomes and log as warnings; anything
// else points at a broken local setup.
func classifyFailure(err error) (string, slog.Level) {
	switch {
	case IsDownloadFailed(err):
		return types.FailureStageDownload, slog.LevelWarn
	case IsComparisonFailed(err):
		return types.FailureStageCompare, slog.LevelWarn
	case IsIdentityExtraction(err):
		return types.FailureStageIdentity, slog.LevelError
	case IsStoreCorrupt(err):
		return types.FailureStageStore, slog.LevelError
	default:
		return types.FailureStageOther, slog.LevelError
	}
}

// verifyArtifact runs fetch, compare and (optionally) persist for one APK.
// The record is written before a difference is reported so failed runs
// are part of the history too.
func (s *VerifyService) verifyArtifact(ctx context.Context, url, apkPath string, opts VerifyOptions) error {
	remote, err := s.fetcher.Fetch(ctx, url, s.cfg.TmpDir, opts.ReuseRemote)
	if err != nil {
		return err
	}

	outcome, err := s.comparer.Compare(ctx, remote, apkPath, s.cfg.TmpDir)
	if err != nil {
		return err
	}

	if opts.OutputJSON {
		rec, err := s.builder.Build(ctx, url, remote, apkPath, outcome)
		if err != nil {
			return err
		}
		if err := s.store.Persist(rec); err != nil {
			return err
		}
	}

	if !outcome.IsIdentical() {
		return &ComparisonFailedError{Remote: remote, Local: apkPath, Summary: outcome.Summary}
	}
	return nil
}
