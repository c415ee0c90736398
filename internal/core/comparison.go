package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/EmundoT/repro-verify/internal/types"
)

// ComparisonNormalizer compares a published artifact with a local build and
// reduces the backend's answer to a types.ComparisonOutcome.
type ComparisonNormalizer interface {
	Compare(ctx context.Context, remoteFile, localFile, workDir string) (types.ComparisonOutcome, error)
	Capabilities(ctx context.Context) types.EnvironmentCapabilities
}

// Compile-time interface satisfaction check.
var _ ComparisonNormalizer = (*ComparisonService)(nil)

// ComparisonService implements ComparisonNormalizer on top of a primary
// Comparator and an optional enricher that adds detail to differences.
type ComparisonService struct {
	primary  Comparator
	enricher Comparator
	logger   *slog.Logger
}

// NewComparisonService creates a ComparisonService. enricher may be nil.
func NewComparisonService(primary, enricher Comparator, logger *slog.Logger) *ComparisonService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComparisonService{primary: primary, enricher: enricher, logger: logger}
}

// enrichedDetails wraps the primary report together with the enricher's.
type enrichedDetails struct {
	Report     json.RawMessage `json:"report"`
	Diffoscope json.RawMessage `json:"diffoscope"`
}

// Compare implements ComparisonNormalizer.
//
// A primary backend that reports ErrComparatorUnavailable yields
// OutcomeComparatorUnavailable rather than an error, so one missing tool
// does not abort the batch. Enricher failures are logged and ignored.
func (s *ComparisonService) Compare(ctx context.Context, remoteFile, localFile, workDir string) (types.ComparisonOutcome, error) {
	identical, details, err := s.primary.Compare(ctx, remoteFile, localFile, workDir)
	if err != nil {
		if errors.Is(err, ErrComparatorUnavailable) {
			s.logger.Warn("comparator unavailable", "error", err)
			return types.ComparatorUnavailable(err.Error()), nil
		}
		return types.ComparisonOutcome{}, fmt.Errorf("compare %s with %s: %w", remoteFile, localFile, err)
	}
	if identical {
		return types.Identical(), nil
	}

	summary := fmt.Sprintf("%s does not match %s", filepath.Base(localFile), remoteFile)

	if s.enricher != nil {
		same, extra, enrichErr := s.enricher.Compare(ctx, remoteFile, localFile, workDir)
		switch {
		case enrichErr != nil:
			s.logger.Debug("diffoscope report skipped", "error", enrichErr)
		case !same && len(extra) > 0:
			wrapped, err := json.Marshal(enrichedDetails{Report: details, Diffoscope: extra})
			if err == nil {
				details = wrapped
			}
		}
	}

	return types.Differs(summary, details), nil
}

// Capabilities implements ComparisonNormalizer. The enricher's view wins
// because it is the component that depends on external tools.
func (s *ComparisonService) Capabilities(ctx context.Context) types.EnvironmentCapabilities {
	if s.enricher != nil {
		return s.enricher.Capabilities(ctx)
	}
	return s.primary.Capabilities(ctx)
}
