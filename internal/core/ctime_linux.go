//go:build linux

package core

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CreationTime returns the inode change time of path in fractional seconds.
// It is the timestamp a history entry is keyed by: a rebuild replaces the
// file and changes it, a rerun against the same build does not.
func CreationTime(path string) (float64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	sec, nsec := st.Ctim.Unix()
	return float64(sec) + float64(nsec)/1e9, nil
}
