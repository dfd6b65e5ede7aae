package analyze

import (
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows"
)

// isReparsePoint reports whether path is a junction or symlink. Directory
// entries do not always flag junctions as links, so the attribute is read.
func isReparsePoint(path string) bool {
	p, err := windows.UTF16PtrFromString(longPath(path))
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0
}

// longPath adds the \\?\ prefix for paths exceeding MAX_PATH.
func longPath(path string) string {
	if len(path) >= 260 && !strings.HasPrefix(path, `\\?\`) {
		return `\\?\` + filepath.Clean(path)
	}
	return path
}
