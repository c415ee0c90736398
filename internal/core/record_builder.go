package core

import (
	"context"
	"fmt"

	"github.com/EmundoT/repro-verify/internal/types"
)

// RecordBuilder assembles VerificationRecords.
type RecordBuilder interface {
	Build(ctx context.Context, url, remoteFile, localFile string, outcome types.ComparisonOutcome) (types.VerificationRecord, error)
}

// Compile-time interface satisfaction check.
var _ RecordBuilder = (*AuditRecordBuilder)(nil)

// AuditRecordBuilder implements RecordBuilder. The creation-time lookup is
// a field so tests can pin timestamps.
type AuditRecordBuilder struct {
	hasher       ContentHasher
	identity     IdentityExtractor
	capabilities ComparisonNormalizer
	creationTime func(path string) (float64, error)
}

// NewAuditRecordBuilder creates a new AuditRecordBuilder
func NewAuditRecordBuilder(hasher ContentHasher, identity IdentityExtractor, capabilities ComparisonNormalizer) *AuditRecordBuilder {
	return &AuditRecordBuilder{
		hasher:       hasher,
		identity:     identity,
		capabilities: capabilities,
		creationTime: CreationTime,
	}
}

func (b *AuditRecordBuilder) describe(path string) (types.FileInfo, error) {
	sum, err := b.hasher.ComputeFileChecksum(path)
	if err != nil {
		return types.FileInfo{}, fmt.Errorf("hash %s: %w", path, err)
	}
	ts, err := b.creationTime(path)
	if err != nil {
		return types.FileInfo{}, err
	}
	id, err := b.identity.Identity(path)
	if err != nil {
		return types.FileInfo{}, err
	}
	return types.FileInfo{
		File:             path,
		SHA256:           sum,
		Timestamp:        ts,
		ArtifactIdentity: id,
	}, nil
}

// Build implements RecordBuilder. verified is true exactly when outcome is
// identical; the result field is only set otherwise.
func (b *AuditRecordBuilder) Build(ctx context.Context, url, remoteFile, localFile string, outcome types.ComparisonOutcome) (types.VerificationRecord, error) {
	local, err := b.describe(localFile)
	if err != nil {
		return types.VerificationRecord{}, err
	}
	remote, err := b.describe(remoteFile)
	if err != nil {
		return types.VerificationRecord{}, err
	}

	return types.VerificationRecord{
		URL:         url,
		Local:       local,
		Remote:      remote,
		Verified:    outcome.IsIdentical(),
		Result:      outcome.Result(),
		Environment: b.capabilities.Capabilities(ctx),
	}, nil
}
