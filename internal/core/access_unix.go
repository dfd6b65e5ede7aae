//go:build !windows

package core

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// checkWritable verifies the caller may unlink path, which on unix needs
// write and search permission on the parent directory.
func checkWritable(path string) error {
	parent := filepath.Dir(path)
	if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("permission denied on %s: %w", parent, err)
	}
	return nil
}
