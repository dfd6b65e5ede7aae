// Package discovery expands glob patterns into concrete files and
// directories and applies exclusion filters.
package discovery

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard"

	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/log"
)

// Entry is one filesystem object found by Walk.
type Entry struct {
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Finder resolves glob patterns against the real filesystem. Patterns may
// use `*` and `?` inside any segment and `**` as a whole segment for zero
// or more directories. Symlinks found while expanding wildcards are never
// followed.
type Finder struct {
	exclusions []string
	errs       *core.Errors
	log        *slog.Logger
}

// NewFinder returns a Finder that drops any path containing one of the
// global exclusions and records glob failures in errs.
func NewFinder(exclusions []string, errs *core.Errors) *Finder {
	if errs == nil {
		errs = &core.Errors{}
	}
	return &Finder{
		exclusions: exclusions,
		errs:       errs,
		log:        log.WithComponent("discovery"),
	}
}

// kind selects what a search keeps.
type kind int

const (
	kindFile kind = iota
	kindDir
)

// candidate is a path produced by expansion. literal marks paths whose last
// segment was written out in the pattern; those may be symlinks the user
// meant, so they are classified with Stat instead of Lstat.
type candidate struct {
	path    string
	literal bool
}

// FindFiles returns the regular files matching any of patterns, minus
// excluded paths. On a pattern failure it returns nil and records one error.
func (f *Finder) FindFiles(patterns []string, excludes []string) []string {
	return f.find(patterns, excludes, kindFile)
}

// FindDirectories returns the directories matching any of patterns, minus
// excluded paths. On a pattern failure it returns nil and records one error.
func (f *Finder) FindDirectories(patterns []string, excludes []string) []string {
	return f.find(patterns, excludes, kindDir)
}

// Excluded reports whether path contains any global or extra exclusion.
func (f *Finder) Excluded(path string, extra []string) bool {
	return matchesAny(path, f.exclusions) || matchesAny(path, extra)
}

func (f *Finder) find(patterns []string, excludes []string, want kind) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			f.errs.Addf("glob search failed: %v", r)
			out = nil
		}
	}()

	seen := make(map[string]bool)
	for _, raw := range patterns {
		p, err := parsePattern(raw)
		if err != nil {
			f.errs.Addf("glob search failed for %s: %v", raw, err)
			f.log.Warn("glob failed", "pattern", raw, "error", err)
			return nil
		}

		for _, c := range expand(p) {
			if !isKind(c, want) {
				continue
			}
			key := PathKey(c.path)
			if seen[key] {
				continue
			}
			seen[key] = true
			if f.Excluded(c.path, excludes) {
				f.log.Debug("excluded", "path", c.path)
				continue
			}
			out = append(out, c.path)
		}
	}
	return out
}

// Walk lists every regular file and directory below root (root itself not
// included), skipping excluded subtrees and unreadable directories without
// reporting them. A symlinked root is resolved first; links inside the
// tree are neither followed nor returned.
func (f *Finder) Walk(root string, excludes []string) []Entry {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	var entries []Entry
	_ = filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			if de != nil && de.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if f.Excluded(path, excludes) {
			if de.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		switch {
		case de.IsDir():
			entries = append(entries, Entry{Path: path, IsDir: true})
		case de.Type().IsRegular():
			info, err := de.Info()
			if err != nil {
				return nil
			}
			entries = append(entries, Entry{Path: path, Size: info.Size(), ModTime: info.ModTime()})
		}
		return nil
	})
	return entries
}

// ─── Expansion ───────────────────────────────────────────────────────────────

func expand(p pattern) []candidate {
	current := []candidate{{path: p.base, literal: true}}

	for i, seg := range p.segments {
		last := i == len(p.segments)-1
		var next []candidate

		for _, c := range current {
			switch {
			case seg == "**":
				next = append(next, c)
				next = append(next, descendants(c.path)...)
			case hasMeta(seg):
				next = append(next, matchChildren(c.path, seg)...)
			default:
				next = append(next, candidate{path: filepath.Join(c.path, seg), literal: true})
			}
		}

		if !last {
			next = onlyDirs(next)
		}
		current = next
	}
	return current
}

// matchChildren returns the entries of dir whose name matches seg, sorted.
func matchChildren(dir, seg string) []candidate {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []candidate
	for _, de := range des {
		if wildcard.Match(seg, de.Name()) {
			out = append(out, candidate{path: filepath.Join(dir, de.Name())})
		}
	}
	return out
}

// descendants lists every directory strictly below dir without following
// symlinks.
func descendants(dir string) []candidate {
	var out []candidate
	_ = filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			if de != nil && de.IsDir() && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if path != dir && de.IsDir() {
			out = append(out, candidate{path: path})
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

func onlyDirs(cs []candidate) []candidate {
	out := cs[:0:0]
	for _, c := range cs {
		if isKind(c, kindDir) {
			out = append(out, c)
		}
	}
	return out
}

func isKind(c candidate, want kind) bool {
	stat := os.Lstat
	if c.literal {
		stat = os.Stat
	}
	info, err := stat(c.path)
	if err != nil {
		return false
	}
	if want == kindDir {
		return info.IsDir()
	}
	return info.Mode().IsRegular()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func matchesAny(path string, substrings []string) bool {
	if len(substrings) == 0 {
		return false
	}
	slashed := filepath.ToSlash(path)
	for _, s := range substrings {
		if s == "" {
			continue
		}
		if strings.Contains(path, s) || strings.Contains(slashed, filepath.ToSlash(s)) {
			return true
		}
	}
	return false
}

// PathKey is the identity used to deduplicate paths that are already
// resolved: cleaned, and case-folded on windows.
func PathKey(path string) string {
	key := filepath.Clean(path)
	if runtime.GOOS == "windows" {
		key = strings.ToLower(key)
	}
	return key
}

// CanonicalPath returns a stable identity for path: cleaned, absolute,
// symlinks resolved where possible, and case-folded on windows.
func CanonicalPath(path string) string {
	p := filepath.Clean(path)
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return PathKey(p)
}
