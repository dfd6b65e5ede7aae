//go:build !windows

package analyze

func isReparsePoint(string) bool { return false }

func longPath(path string) string { return path }
