package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

type setEntry struct {
	canonical []byte
	record    VerificationRecord
}

// RecordSet is an unordered collection of VerificationRecords that absorbs
// duplicates by whole-record equality. It is encoded as a JSON array sorted
// by canonical form and decoded from an array back into a set.
//
// The zero value is an empty set ready to use.
type RecordSet struct {
	entries map[string]setEntry // digest -> entry
}

// NewRecordSet returns a set holding the given records, duplicates dropped.
func NewRecordSet(records ...VerificationRecord) (*RecordSet, error) {
	s := &RecordSet{}
	for _, r := range records {
		if _, err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts rec and reports whether it was new.
func (s *RecordSet) Add(rec VerificationRecord) (bool, error) {
	canon, err := rec.CanonicalJSON()
	if err != nil {
		return false, err
	}
	digest, err := rec.Digest()
	if err != nil {
		return false, err
	}
	if s.entries == nil {
		s.entries = make(map[string]setEntry)
	}
	if _, exists := s.entries[digest]; exists {
		return false, nil
	}
	s.entries[digest] = setEntry{canonical: canon, record: rec}
	return true, nil
}

// Contains reports whether a record equal to rec is present.
func (s *RecordSet) Contains(rec VerificationRecord) bool {
	if s == nil || s.entries == nil {
		return false
	}
	digest, err := rec.Digest()
	if err != nil {
		return false
	}
	_, ok := s.entries[digest]
	return ok
}

// Len returns the number of distinct records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Records returns the members ordered by canonical encoding, so the same set
// always yields the same slice.
func (s *RecordSet) Records() []VerificationRecord {
	if s == nil {
		return nil
	}
	entries := make([]setEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].canonical, entries[j].canonical) < 0
	})
	out := make([]VerificationRecord, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s *RecordSet) MarshalJSON() ([]byte, error) {
	records := s.Records()
	if records == nil {
		records = []VerificationRecord{}
	}
	return json.Marshal(records)
}

// UnmarshalJSON decodes a JSON array into the set, dropping duplicates.
func (s *RecordSet) UnmarshalJSON(data []byte) error {
	var records []VerificationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode record set: %w", err)
	}
	s.entries = nil
	for _, r := range records {
		if _, err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// VerifiedRegistry is the global store of successful verifications.
// Only the arrays directly under packages.<name> are sets; everything else
// in the document decodes literally.
type VerifiedRegistry struct {
	Packages map[string]*RecordSet `json:"packages"`
}

// NewVerifiedRegistry returns an empty registry.
func NewVerifiedRegistry() *VerifiedRegistry {
	return &VerifiedRegistry{Packages: make(map[string]*RecordSet)}
}

// Add inserts rec under its local package name and reports whether the
// registry changed.
func (r *VerifiedRegistry) Add(rec VerificationRecord) (bool, error) {
	if r.Packages == nil {
		r.Packages = make(map[string]*RecordSet)
	}
	name := rec.Local.PackageName
	set, ok := r.Packages[name]
	if !ok || set == nil {
		set = &RecordSet{}
		r.Packages[name] = set
	}
	return set.Add(rec)
}

// Records returns the verified records for packageName in canonical order.
func (r *VerifiedRegistry) Records(packageName string) []VerificationRecord {
	if r == nil || r.Packages == nil {
		return nil
	}
	return r.Packages[packageName].Records()
}
