// Package clean runs the cleanup tasks. Each task is composed from one
// Toolkit with its own error list and runs behind a boundary that keeps
// one failing task from affecting the others.
package clean

import (
	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
	"github.com/Darnix-a/cleanmypc/internal/platform"
)

// Toolkit is the capability set shared by every task: discovery, deletion
// and the error list both report into. None of the methods return errors;
// failures are recorded and the call reports "nothing done".
type Toolkit interface {
	// Discover lists the files and directories below root.
	Discover(root string, excludes []string) []discovery.Entry
	FindFiles(patterns []string, excludes []string) []string
	FindDirectories(patterns []string, excludes []string) []string
	DeleteFile(path string) core.Outcome
	DeleteDirectory(path string) core.Outcome
	PruneEmptyDirs(dirs []string) int
	Excluded(path string, extra []string) bool
	Errors() *core.Errors
	DryRun() bool
}

// PathSource yields candidate paths per target. *config.Resolver is the
// production implementation.
type PathSource interface {
	Platform() platform.Platform
	Paths(target config.Target) []string
	BrowserPaths(b config.Browser) []string
	SystemRoots() []string
}

// toolkit composes a Finder and a Deleter sharing one error list.
type toolkit struct {
	*core.Deleter
	*discovery.Finder
}

func newToolkit(dryRun bool, exclusions []string) *toolkit {
	errs := &core.Errors{}
	return &toolkit{
		Deleter: core.NewDeleter(dryRun, errs),
		Finder:  discovery.NewFinder(exclusions, errs),
	}
}

func (t *toolkit) Discover(root string, excludes []string) []discovery.Entry {
	return t.Walk(root, excludes)
}
