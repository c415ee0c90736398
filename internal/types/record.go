package types

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gowebpki/jcs"
)

// FileInfo describes one side (local or remote) of a verification.
// The identity fields are flattened into the JSON object.
type FileInfo struct {
	File      string  `json:"file"`
	SHA256    string  `json:"sha256"`
	Timestamp float64 `json:"timestamp"` // ctime, seconds since the epoch
	ArtifactIdentity
}

// EnvironmentCapabilities describes what the comparator could do when the
// record was produced. Every field is best effort and may be empty.
type EnvironmentCapabilities struct {
	ComparatorVersion      string              `json:"comparator_version,omitempty"`
	MissingExternalTools   []string            `json:"missing_external_tools,omitempty"`
	MissingOptionalModules []string            `json:"missing_optional_modules,omitempty"`
	ToolAvailability       map[string][]string `json:"tool_availability,omitempty"` // platform -> packages providing missing tools
}

// ComparisonResult is the persisted form of a non-identical outcome.
type ComparisonResult struct {
	Status  string          `json:"status"`
	Summary string          `json:"summary,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// VerificationRecord is one audit log entry: the outcome of comparing a
// local build against its published counterpart.
//
// Records are compared as whole values. Two records are equal when their
// canonical JSON forms (RFC 8785) are byte-identical, which makes object key
// order irrelevant while keeping array order significant.
type VerificationRecord struct {
	URL         string                  `json:"url"`
	Local       FileInfo                `json:"local"`
	Remote      FileInfo                `json:"remote"`
	Verified    bool                    `json:"verified"`
	Result      *ComparisonResult       `json:"result,omitempty"`
	Environment EnvironmentCapabilities `json:"environment"`
}

// CanonicalJSON returns the RFC 8785 canonical encoding of the record.
func (r VerificationRecord) CanonicalJSON() ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	canon, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize record: %w", err)
	}
	return canon, nil
}

// Digest returns the hex SHA-256 of the canonical encoding. Equal records
// have equal digests.
func (r VerificationRecord) Digest() (string, error) {
	canon, err := r.CanonicalJSON()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether r and other are field-for-field identical.
func (r VerificationRecord) Equal(other VerificationRecord) bool {
	a, err := r.CanonicalJSON()
	if err != nil {
		return false
	}
	b, err := other.CanonicalJSON()
	if err != nil {
		return false
	}
	return string(a) == string(b)
}

// TimestampKey formats a creation timestamp as a history key. The shortest
// round-trip decimal form is used so the same instant always maps to the
// same key.
func TimestampKey(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}

// History is the per-artifact audit log, keyed by TimestampKey of the local
// file's creation time. encoding/json writes map keys sorted.
type History map[string]VerificationRecord

// Upsert stores rec under its local timestamp key, replacing any record
// from an earlier run against the same build. It returns the key used.
func (h History) Upsert(rec VerificationRecord) string {
	key := TimestampKey(rec.Local.Timestamp)
	h[key] = rec
	return key
}
