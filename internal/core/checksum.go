package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// ContentHasher computes the content hash recorded for an artifact.
type ContentHasher interface {
	ComputeFileChecksum(path string) (string, error)
}

// SHA256Hasher implements ContentHasher with SHA-256.
type SHA256Hasher struct{}

// ComputeFileChecksum computes the hex SHA-256 hash of a file
func (SHA256Hasher) ComputeFileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to compute checksum for %s: %w", path, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
