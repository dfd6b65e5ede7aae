// Package trash empties the platform trash: the windows per-drive recycle
// bin, the flat macos trash and the split XDG trash used on linux.
package trash

import (
	"context"

	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
	"github.com/Darnix-a/cleanmypc/internal/platform"
)

// Result is what emptying the trash freed (or would free in a dry run).
type Result struct {
	FilesDeleted int
	SpaceSaved   int64
}

func (r *Result) add(o core.Outcome) {
	if o.Deleted {
		r.FilesDeleted++
		r.SpaceSaved += o.Size
	}
}

// Tools is the subset of the cleanup capabilities a strategy needs.
// Failures are recorded by the implementation, never returned.
type Tools interface {
	FindFiles(patterns []string, excludes []string) []string
	FindDirectories(patterns []string, excludes []string) []string
	Discover(root string, excludes []string) []discovery.Entry
	DeleteFile(path string) core.Outcome
	PruneEmptyDirs(dirs []string) int
}

// Adapter empties the trash rooted at the given paths. Roots may contain
// wildcards. A failing root never stops the others.
type Adapter interface {
	EmptyTrash(ctx context.Context, roots []string) Result
}

// For returns the strategy for p. Unknown platforms get the linux layout.
func For(p platform.Platform, tools Tools) Adapter {
	switch p {
	case platform.Windows:
		return &recycleBin{tools: tools}
	case platform.MacOS:
		return &flatTrash{tools: tools}
	default:
		return &xdgTrash{tools: tools}
	}
}

// expandRoots resolves wildcard roots one at a time, so a bad pattern only
// loses its own matches, and drops duplicates.
func expandRoots(tools Tools, roots []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range roots {
		for _, dir := range tools.FindDirectories([]string{r}, nil) {
			key := discovery.CanonicalPath(dir)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, dir)
		}
	}
	return out
}

// purgeTree deletes every file below root, then removes the directories
// below root deepest first, each only if it ended up empty. root is kept.
func purgeTree(ctx context.Context, tools Tools, root string, res *Result) {
	var dirs []string
	for _, e := range tools.Discover(root, nil) {
		if ctx.Err() != nil {
			return
		}
		if e.IsDir {
			dirs = append(dirs, e.Path)
			continue
		}
		res.add(tools.DeleteFile(e.Path))
	}
	tools.PruneEmptyDirs(dirs)
}
