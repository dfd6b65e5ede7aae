// Package downloads sorts the loose files at the top of a downloads folder
// into per-category subfolders by extension.
package downloads

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
	"github.com/Darnix-a/cleanmypc/internal/log"
)

// Filter decides whether a path is protected by an exclusion.
type Filter interface {
	Excluded(path string, extra []string) bool
}

// Move is one file placed (or, in a dry run, to be placed) in a category.
type Move struct {
	From     string
	To       string
	Category string
}

// Result lists the moves made in the order they happened.
type Result struct {
	Moves []Move
}

// Organized is the number of files moved.
func (r Result) Organized() int {
	return len(r.Moves)
}

// Categorizer moves files into category folders. The first category in
// declaration order that lists a file's extension wins.
type Categorizer struct {
	categories config.Categories
	dryRun     bool
	filter     Filter
	errs       *core.Errors
	log        *slog.Logger
}

// New returns a Categorizer. filter may be nil; failures go to errs.
func New(categories config.Categories, dryRun bool, filter Filter, errs *core.Errors) *Categorizer {
	if errs == nil {
		errs = &core.Errors{}
	}
	return &Categorizer{
		categories: categories,
		dryRun:     dryRun,
		filter:     filter,
		errs:       errs,
		log:        log.WithComponent("downloads"),
	}
}

// Organize sorts the top-level files of dir. Existing subfolders are never
// entered. A missing or unreadable dir is nothing to organize.
func (c *Categorizer) Organize(ctx context.Context, dir string) Result {
	var res Result

	entries, err := os.ReadDir(dir)
	if err != nil {
		c.log.Debug("downloads folder unreadable", "dir", dir, "error", err)
		return res
	}

	// Destinations claimed in this run. In a dry run nothing lands on disk,
	// so later collisions must be checked against these too.
	reserved := make(map[string]bool)

	for _, de := range entries {
		if ctx.Err() != nil {
			break
		}
		if !de.Type().IsRegular() {
			continue
		}

		name := de.Name()
		ext := extension(name)
		if ext == "" {
			continue
		}
		category, ok := c.categories.Lookup(ext)
		if !ok {
			continue
		}

		src := filepath.Join(dir, name)
		if c.filter != nil && c.filter.Excluded(src, nil) {
			c.log.Debug("excluded", "path", src)
			continue
		}

		if m, ok := c.move(src, filepath.Join(dir, category), category, reserved); ok {
			res.Moves = append(res.Moves, m)
		}
	}
	return res
}

func (c *Categorizer) move(src, destDir, category string, reserved map[string]bool) (Move, bool) {
	if !c.dryRun {
		if err := os.MkdirAll(destDir, 0o755); err != nil {
			c.errs.Addf("failed to create %s: %v", destDir, err)
			return Move{}, false
		}
	}

	dst := UniqueName(destDir, filepath.Base(src), func(p string) bool {
		if reserved[discovery.CanonicalPath(p)] {
			return true
		}
		_, err := os.Lstat(p)
		return err == nil
	})

	if c.dryRun {
		c.log.Debug("would move", "from", src, "to", dst)
	} else {
		if err := os.Rename(src, dst); err != nil {
			c.errs.Addf("failed to move %s: %v", src, err)
			return Move{}, false
		}
		c.log.Debug("moved", "from", src, "to", dst)
	}

	reserved[discovery.CanonicalPath(dst)] = true
	return Move{From: src, To: dst, Category: category}, true
}

// UniqueName returns dir/name, or the first of "stem (1).ext",
// "stem (2).ext", ... for which taken reports false.
func UniqueName(dir, name string, taken func(string) bool) string {
	candidate := filepath.Join(dir, name)
	if !taken(candidate) {
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if !taken(candidate) {
			return candidate
		}
	}
}

// extension returns the lowercase extension of name, or "" for hidden
// files, names without a dot and names ending in one.
func extension(name string) string {
	if strings.HasPrefix(name, ".") {
		return ""
	}
	ext := filepath.Ext(name)
	if ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}
