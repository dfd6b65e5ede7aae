// Package analyze finds large files below a bounded set of seed
// directories. It is not a full filesystem sweep: only the seeds handed to
// Scan are walked, and never deeper than the depth cap.
package analyze

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Darnix-a/cleanmypc/internal/log"
)

// DefaultMaxDepth is how many directory levels below a seed are read.
const DefaultMaxDepth = 10

// skipNames are directory and file names never descended into or reported,
// compared case-insensitively.
var skipNames = map[string]bool{
	".git":                      true,
	".svn":                      true,
	".hg":                       true,
	"node_modules":              true,
	"__pycache__":               true,
	".npm":                      true,
	".cache":                    true,
	".trash":                    true,
	".trashes":                  true,
	"$recycle.bin":              true,
	"system volume information": true,
}

// LargeFile is one finding.
type LargeFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Filter decides whether a path is protected by an exclusion.
type Filter interface {
	Excluded(path string, extra []string) bool
}

// Options configures a Scanner.
type Options struct {
	// Threshold is the minimum size reported, inclusive.
	Threshold int64

	// SystemRoots are path prefixes never entered.
	SystemRoots []string

	// Filter applies the configured exclusions; nil excludes nothing.
	Filter Filter

	// MaxDepth defaults to DefaultMaxDepth.
	MaxDepth int

	// Concurrency bounds how many seeds are walked at once.
	Concurrency int
}

// Scanner performs parallel, depth-bounded scans of seed directories.
type Scanner struct {
	opts         Options
	fold         bool
	mu           sync.Mutex
	found        map[string]LargeFile
	scannedCount atomic.Int64
	log          *slog.Logger
}

// NewScanner creates a scanner. Each seed is walked by its own goroutine,
// at most opts.Concurrency at a time.
func NewScanner(opts Options) *Scanner {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Scanner{
		opts:  opts,
		fold:  runtime.GOOS == "windows",
		found: make(map[string]LargeFile),
		log:   log.WithComponent("analyze"),
	}
}

// ScannedCount returns the number of entries examined so far. Safe to call
// while a scan is running.
func (s *Scanner) ScannedCount() int64 {
	return s.scannedCount.Load()
}

// Scan walks every seed and returns the files at or above the threshold,
// largest first (ties by path). Missing or unreadable seeds are skipped.
// A file reachable from several seeds is reported once. The only error is
// ctx's, when the scan was cancelled.
func (s *Scanner) Scan(ctx context.Context, seeds []string) ([]LargeFile, error) {
	s.mu.Lock()
	s.found = make(map[string]LargeFile)
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	seen := make(map[string]bool)
	for _, seed := range seeds {
		seed = filepath.Clean(seed)
		if seen[s.key(seed)] {
			continue
		}
		seen[s.key(seed)] = true

		if s.underSystemRoot(seed) || s.excluded(seed) {
			s.log.Debug("seed skipped", "seed", seed)
			continue
		}
		if info, err := os.Stat(seed); err != nil || !info.IsDir() {
			continue
		}

		seed := seed
		g.Go(func() error {
			return s.walk(ctx, seed)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	out := make([]LargeFile, 0, len(s.found))
	for _, f := range s.found {
		out = append(out, f)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Path < out[j].Path
	})
	return out, nil
}

// frame is a directory waiting to be read and its distance from the seed.
type frame struct {
	path  string
	depth int
}

// walk is an iterative depth-first traversal. The seed is depth 0 and a
// directory is read only while its depth is within the cap, so the depth
// check is the one guard against runaway trees and directory cycles.
func (s *Scanner) walk(ctx context.Context, seed string) error {
	stack := []frame{{path: seed}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(longPath(top.path))
		if err != nil {
			s.log.Debug("cannot read directory", "path", top.path, "error", err)
			continue
		}

		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			child := filepath.Join(top.path, e.Name())
			s.scannedCount.Add(1)

			if s.skip(e.Name(), child) {
				continue
			}

			switch {
			case e.Type()&fs.ModeSymlink != 0:
				// Links are never followed.
			case e.IsDir():
				if top.depth+1 > s.opts.MaxDepth || isReparsePoint(child) {
					continue
				}
				stack = append(stack, frame{path: child, depth: top.depth + 1})
			case e.Type().IsRegular():
				info, err := e.Info()
				if err != nil {
					continue
				}
				if info.Size() >= s.opts.Threshold {
					s.record(child, info.Size())
				}
			}
		}
	}
	return nil
}

func (s *Scanner) record(path string, size int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.found[s.key(path)] = LargeFile{Path: path, Size: size}
}

// ─── Skip Rules ──────────────────────────────────────────────────────────────

func (s *Scanner) skip(name, path string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if skipNames[strings.ToLower(name)] {
		return true
	}
	return s.underSystemRoot(path) || s.excluded(path)
}

func (s *Scanner) excluded(path string) bool {
	return s.opts.Filter != nil && s.opts.Filter.Excluded(path, nil)
}

// underSystemRoot reports whether path is a system root or lies below one.
// Matching is by whole path segments.
func (s *Scanner) underSystemRoot(path string) bool {
	p := s.key(path)
	for _, root := range s.opts.SystemRoots {
		r := s.key(root)
		if p == r || strings.HasPrefix(p, strings.TrimSuffix(r, string(filepath.Separator))+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *Scanner) key(path string) string {
	p := filepath.Clean(path)
	if s.fold {
		p = strings.ToLower(p)
	}
	return p
}
