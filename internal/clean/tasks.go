package clean

import (
	"context"
	"path/filepath"
	"time"

	"github.com/Darnix-a/cleanmypc/internal/analyze"
	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
	"github.com/Darnix-a/cleanmypc/internal/downloads"
	"github.com/Darnix-a/cleanmypc/internal/trash"
)

// ─── Sweep ───────────────────────────────────────────────────────────────────

// sweep deletes the files below every root that pass the age filter. Roots
// may be globs and may overlap; each root and each file is handled once,
// keyed by canonical path, so nothing is counted twice. In live runs the
// directories a deletion emptied are then pruned deepest first. Roots
// themselves are kept.
func (r *Runner) sweep(ctx context.Context, tk Toolkit, roots []string) Result {
	var res Result

	seenRoots := make(map[string]bool)
	seenFiles := make(map[string]bool)

	for _, pattern := range roots {
		// One pattern at a time: a bad custom path must not hide the
		// built-in ones.
		for _, root := range tk.FindDirectories([]string{pattern}, nil) {
			if ctx.Err() != nil {
				return res
			}
			key := discovery.CanonicalPath(root)
			if seenRoots[key] {
				continue
			}
			seenRoots[key] = true

			r.sweepRoot(ctx, tk, root, seenFiles, &res)
		}
	}
	return res
}

func (r *Runner) sweepRoot(ctx context.Context, tk Toolkit, root string, seen map[string]bool, res *Result) {
	var (
		emptied []string
		touched = make(map[string]bool)
	)

	// Discover reports paths below the resolved root.
	top := filepath.Clean(root)
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		top = resolved
	}

	for _, e := range tk.Discover(root, nil) {
		if ctx.Err() != nil {
			break
		}
		if e.IsDir {
			continue
		}
		key := discovery.PathKey(e.Path)
		if seen[key] {
			continue
		}
		seen[key] = true

		if !r.oldEnough(e.ModTime) {
			continue
		}

		out := tk.DeleteFile(e.Path)
		if !out.Deleted {
			continue
		}
		res.FilesDeleted++
		res.SpaceSaved += out.Size

		for dir := filepath.Dir(e.Path); len(dir) > len(top) && !touched[dir]; dir = filepath.Dir(dir) {
			touched[dir] = true
			emptied = append(emptied, dir)
		}
	}

	if !tk.DryRun() && len(emptied) > 0 {
		tk.PruneEmptyDirs(emptied)
	}
}

// oldEnough applies the age filter: a file qualifies only when it is
// strictly older than MaxFileAge days. 0 disables the filter.
func (r *Runner) oldEnough(mtime time.Time) bool {
	if r.cfg.MaxFileAge <= 0 {
		return true
	}
	maxAge := time.Duration(r.cfg.MaxFileAge) * 24 * time.Hour
	return r.now().Sub(mtime) > maxAge
}

// ─── Tasks ───────────────────────────────────────────────────────────────────

func (r *Runner) tempTask(ctx context.Context, tk Toolkit) (Result, error) {
	return r.sweep(ctx, tk, r.paths.Paths(config.TargetTemp)), nil
}

func (r *Runner) cacheTask(ctx context.Context, tk Toolkit) (Result, error) {
	return r.sweep(ctx, tk, r.paths.Paths(config.TargetCache)), nil
}

func (r *Runner) browsersTask(ctx context.Context, tk Toolkit) (Result, error) {
	var roots []string
	for _, b := range config.AllBrowsers {
		if !r.cfg.Browsers.Enabled(b) {
			continue
		}
		roots = append(roots, r.paths.BrowserPaths(b)...)
	}
	return r.sweep(ctx, tk, roots), nil
}

func (r *Runner) trashTask(ctx context.Context, tk Toolkit) (Result, error) {
	out := trash.For(r.paths.Platform(), tk).EmptyTrash(ctx, r.paths.Paths(config.TargetTrash))
	return Result{FilesDeleted: out.FilesDeleted, SpaceSaved: out.SpaceSaved}, nil
}

func (r *Runner) downloadsTask(ctx context.Context, tk Toolkit) (Result, error) {
	od := r.cfg.OrganizeDownloads
	if !od.Enabled || r.cfg.DownloadsPath == "" {
		r.log.Debug("downloads organization disabled")
		return Result{}, nil
	}
	out := downloads.New(od.Categories, tk.DryRun(), tk, tk.Errors()).Organize(ctx, r.cfg.DownloadsPath)
	return Result{FilesOrganized: out.Organized()}, nil
}

func (r *Runner) largeFilesTask(ctx context.Context, tk Toolkit) (Result, error) {
	scanner := analyze.NewScanner(analyze.Options{
		Threshold:   r.cfg.LargeFileThreshold,
		SystemRoots: r.paths.SystemRoots(),
		Filter:      tk,
	})
	files, err := scanner.Scan(ctx, r.paths.Paths(config.TargetLarge))
	if err != nil {
		return Result{}, err
	}
	return Result{LargeFiles: files}, nil
}
