//go:build windows

package core

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// checkWritable rejects files carrying the read-only attribute, which
// DeleteFile refuses on windows.
func checkWritable(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("read attributes: %w", err)
	}
	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return fmt.Errorf("access denied: %s is read-only", path)
	}
	return nil
}
