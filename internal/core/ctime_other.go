//go:build !linux

package core

import (
	"fmt"
	"os"
)

// CreationTime returns the modification time of path in fractional seconds.
// Only Linux exposes the change time portably; elsewhere mtime is used.
func CreationTime(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return float64(info.ModTime().UnixNano()) / 1e9, nil
}
