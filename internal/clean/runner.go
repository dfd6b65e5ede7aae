package clean

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/log"
)

// Options configures a Runner.
type Options struct {
	// DryRun measures without touching the filesystem.
	DryRun bool

	// Now is the clock used by the age filter; nil means time.Now.
	Now func() time.Time

	// OnTask, when set, is called as each task starts.
	OnTask func(id TaskID)
}

// Runner sequences the cleanup tasks and keeps the run's results in
// invocation order. It is not safe for concurrent use.
type Runner struct {
	cfg     *config.Config
	paths   PathSource
	dryRun  bool
	now     func() time.Time
	onTask  func(TaskID)
	results []Result
	log     *slog.Logger
}

// NewRunner returns a Runner for cfg. cfg must not be modified afterwards.
func NewRunner(cfg *config.Config, paths PathSource, opts Options) *Runner {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{
		cfg:    cfg,
		paths:  paths,
		dryRun: opts.DryRun,
		now:    now,
		onTask: opts.OnTask,
		log:    log.WithComponent("clean"),
	}
}

// DryRun reports whether the runner only measures.
func (r *Runner) DryRun() bool {
	return r.dryRun
}

// Temp deletes temporary files.
func (r *Runner) Temp(ctx context.Context) Result {
	return r.run(ctx, TaskTemp, r.tempTask)
}

// Cache deletes application cache files.
func (r *Runner) Cache(ctx context.Context) Result {
	return r.run(ctx, TaskCache, r.cacheTask)
}

// Browsers deletes the caches of the enabled browsers.
func (r *Runner) Browsers(ctx context.Context) Result {
	return r.run(ctx, TaskBrowsers, r.browsersTask)
}

// Trash empties the platform trash.
func (r *Runner) Trash(ctx context.Context) Result {
	return r.run(ctx, TaskTrash, r.trashTask)
}

// Downloads sorts the downloads folder into category folders.
func (r *Runner) Downloads(ctx context.Context) Result {
	return r.run(ctx, TaskDownloads, r.downloadsTask)
}

// LargeFiles reports large files below the seed directories. It deletes
// nothing.
func (r *Runner) LargeFiles(ctx context.Context) Result {
	return r.run(ctx, TaskLargeFiles, r.largeFilesTask)
}

// RunAll runs every task in the fixed order.
func (r *Runner) RunAll(ctx context.Context) []Result {
	return r.Run(ctx, AllTasks...)
}

// Run runs the selected tasks in the fixed order, whatever order they were
// given in. Unknown ids are ignored. Once ctx is done no further task
// starts. It returns the results of this call only.
func (r *Runner) Run(ctx context.Context, ids ...TaskID) []Result {
	want := make(map[TaskID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var out []Result
	for _, id := range AllTasks {
		if !want[id] {
			continue
		}
		if ctx.Err() != nil {
			r.log.Warn("run interrupted", "skipped", id)
			break
		}
		out = append(out, r.byID(ctx, id))
	}
	return out
}

func (r *Runner) byID(ctx context.Context, id TaskID) Result {
	switch id {
	case TaskTemp:
		return r.Temp(ctx)
	case TaskCache:
		return r.Cache(ctx)
	case TaskBrowsers:
		return r.Browsers(ctx)
	case TaskTrash:
		return r.Trash(ctx)
	case TaskDownloads:
		return r.Downloads(ctx)
	default:
		return r.LargeFiles(ctx)
	}
}

// Results returns every result of the run so far, in invocation order.
func (r *Runner) Results() []Result {
	return append([]Result(nil), r.results...)
}

// Summary totals the run so far.
func (r *Runner) Summary() Summary {
	return Summarize(r.results)
}

type taskFunc func(ctx context.Context, tk Toolkit) (Result, error)

// run is the task boundary. A task error or panic becomes a zero-count
// result carrying a single message; either way the result is recorded and
// the caller carries on.
func (r *Runner) run(ctx context.Context, id TaskID, fn taskFunc) (res Result) {
	start := time.Now()
	logger := r.log.With(slog.String("task", string(id)))
	if r.onTask != nil {
		r.onTask(id)
	}
	logger.Debug("task started", "dry_run", r.dryRun)

	tk := newToolkit(r.dryRun, r.cfg.Exclusions)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("task panicked", "panic", p)
			res = failed(id, fmt.Errorf("%v", p))
		}
		res.Duration = time.Since(start)
		r.results = append(r.results, res)

		logger.Info("task finished",
			"files", res.FilesDeleted,
			"bytes", res.SpaceSaved,
			"organized", res.FilesOrganized,
			"errors", len(res.Errors),
			"duration", res.Duration)
	}()

	res, err := fn(ctx, tk)
	if err != nil {
		logger.Error("task failed", "error", err)
		return failed(id, err)
	}

	if ctx.Err() != nil {
		tk.Errors().Addf("%s interrupted: %v", id.Title(), ctx.Err())
	}
	res.Task = id
	res.Errors = tk.Errors().List()
	if res.Errors == nil {
		res.Errors = []string{}
	}
	return res
}

func failed(id TaskID, err error) Result {
	return Result{
		Task:   id,
		Errors: []string{fmt.Sprintf("%s failed: %v", id.Title(), err)},
	}
}
