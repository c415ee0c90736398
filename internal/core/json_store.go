package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// maxJSONFileSize is the maximum size of a history or registry file (64 MB).
// The registry grows with every verified release of every package, so the
// limit is far above the YAML config limit but still bounds memory use.
var maxJSONFileSize int64 = 64 << 20

// JSONStore provides whole-document JSON file I/O for type T.
// Load reads the full document; Save replaces the full document through a
// temporary file and rename, so a reader sees either the old or the new
// document, never a partial one. There is no locking.
type JSONStore[T any] struct {
	path    string
	newZero func() T // value returned for a missing file
}

// NewJSONStore creates a store for the file at path. newZero builds the
// value Load returns when the file does not exist yet.
func NewJSONStore[T any](path string, newZero func() T) *JSONStore[T] {
	return &JSONStore[T]{path: path, newZero: newZero}
}

// Path returns the full file path
func (s *JSONStore[T]) Path() string {
	return s.path
}

// Load reads and unmarshals the document. A missing file yields the zero
// document; an unparseable or oversized file yields a *StoreCorruptError.
func (s *JSONStore[T]) Load() (T, error) {
	result := s.newZero()

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxJSONFileSize {
		return result, &StoreCorruptError{
			Path: s.path,
			Err:  fmt.Errorf("size %d bytes exceeds the %d byte limit", info.Size(), maxJSONFileSize),
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return s.newZero(), &StoreCorruptError{Path: s.path, Err: err}
	}

	return result, nil
}

// Save marshals data and atomically replaces the file. encoding/json writes
// map keys in sorted order, which keeps the files diff-friendly.
func (s *JSONStore[T]) Save(data T) error {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", s.path, err)
	}
	bytes = append(bytes, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

// MoveAside renames the current file to <path>.corrupt-<unix seconds> and
// returns the new name.
func (s *JSONStore[T]) MoveAside(now time.Time) (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%d", s.path, now.Unix())
	if err := os.Rename(s.path, dest); err != nil {
		return "", fmt.Errorf("move %s aside: %w", s.path, err)
	}
	return dest, nil
}
