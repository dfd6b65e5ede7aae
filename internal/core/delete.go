// Package core holds the dry-run-aware deletion primitives shared by every
// cleanup task, together with small helpers for sizes and error lists.
package core

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Darnix-a/cleanmypc/internal/log"
)

// Outcome is the result of a single deletion attempt. Size is what was
// freed, or what would be freed in a dry run.
type Outcome struct {
	Deleted bool
	Size    int64
}

// Deleter removes files and directories, or only measures them when dry
// run is on. It never returns errors: failures are appended to the error
// list it was built with and reported as Outcome{Deleted: false}.
type Deleter struct {
	dryRun bool
	errs   *Errors
	log    *slog.Logger
}

// NewDeleter returns a Deleter that records failures in errs.
func NewDeleter(dryRun bool, errs *Errors) *Deleter {
	if errs == nil {
		errs = &Errors{}
	}
	return &Deleter{dryRun: dryRun, errs: errs, log: log.WithComponent("delete")}
}

// DryRun reports whether the deleter only measures.
func (d *Deleter) DryRun() bool {
	return d.dryRun
}

// Errors returns the list failures are recorded in.
func (d *Deleter) Errors() *Errors {
	return d.errs
}

// DeleteFile removes a single file. The size is read before anything else
// because a removed file can no longer be measured.
func (d *Deleter) DeleteFile(path string) Outcome {
	info, err := os.Lstat(path)
	if err != nil {
		d.errs.Addf("failed to delete %s: %v", path, err)
		return Outcome{}
	}
	if info.IsDir() {
		d.errs.Addf("failed to delete %s: is a directory", path)
		return Outcome{}
	}
	size := info.Size()

	if d.dryRun {
		d.log.Debug("would delete file", "path", path, "size", size)
		return Outcome{Deleted: true, Size: size}
	}

	if err := checkWritable(path); err != nil {
		d.errs.Addf("failed to delete %s: %v", path, err)
		return Outcome{}
	}
	if err := os.Remove(path); err != nil {
		d.errs.Addf("failed to delete %s: %v", path, err)
		return Outcome{}
	}

	d.log.Debug("deleted file", "path", path, "size", size)
	return Outcome{Deleted: true, Size: size}
}

// DeleteDirectory removes a directory and everything below it. The removal
// is all-or-nothing, so the subtree is measured first.
func (d *Deleter) DeleteDirectory(path string) Outcome {
	info, err := os.Lstat(path)
	if err != nil {
		d.errs.Addf("failed to delete directory %s: %v", path, err)
		return Outcome{}
	}
	if !info.IsDir() {
		d.errs.Addf("failed to delete directory %s: not a directory", path)
		return Outcome{}
	}
	size := TreeSize(path)

	if d.dryRun {
		d.log.Debug("would delete directory", "path", path, "size", size)
		return Outcome{Deleted: true, Size: size}
	}

	if err := checkWritable(path); err != nil {
		d.errs.Addf("failed to delete directory %s: %v", path, err)
		return Outcome{}
	}
	if err := os.RemoveAll(path); err != nil {
		d.errs.Addf("failed to delete directory %s: %v", path, err)
		return Outcome{}
	}

	d.log.Debug("deleted directory", "path", path, "size", size)
	return Outcome{Deleted: true, Size: size}
}

// RemoveEmptyDir deletes path only when it has no entries left. It is the
// single directory-removal contract used by every task's bottom-up prune.
// Dry runs never prune: nothing was removed, so nothing became empty.
func (d *Deleter) RemoveEmptyDir(path string) bool {
	if d.dryRun {
		return false
	}
	entries, err := os.ReadDir(path)
	if err != nil || len(entries) > 0 {
		return false
	}
	return d.DeleteDirectory(path).Deleted
}

// PruneEmptyDirs removes every directory in dirs that is empty, deepest
// first, so a parent is only considered after its children. It returns how
// many were removed.
func (d *Deleter) PruneEmptyDirs(dirs []string) int {
	ordered := append([]string(nil), dirs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := depth(ordered[i]), depth(ordered[j])
		if di != dj {
			return di > dj
		}
		return ordered[i] > ordered[j]
	})

	removed := 0
	for _, dir := range ordered {
		if d.RemoveEmptyDir(dir) {
			removed++
		}
	}
	return removed
}

func depth(path string) int {
	return strings.Count(filepath.Clean(path), string(filepath.Separator))
}

// TreeSize sums the sizes of all regular files below root. Entries that
// cannot be read are skipped.
func TreeSize(root string) int64 {
	var total int64
	_ = filepath.WalkDir(root, func(_ string, de fs.DirEntry, err error) error {
		if err != nil {
			if de != nil && de.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !de.Type().IsRegular() {
			return nil
		}
		if info, err := de.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
