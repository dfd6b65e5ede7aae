package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Darnix-a/cleanmypc/internal/clean"
	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/platform"
	"github.com/Darnix-a/cleanmypc/internal/report"
	"github.com/Darnix-a/cleanmypc/internal/status"
	"github.com/Darnix-a/cleanmypc/internal/ui"
)

var (
	dryRun     bool
	reportPath string

	taskFlags = map[clean.TaskID]*bool{}
)

// errInterrupted makes an interrupted run exit non-zero.
var errInterrupted = errors.New("interrupted")

func registerCleanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup without deleting or moving anything")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a report to this file (.json for JSON, anything else for text)")

	usage := map[clean.TaskID]string{
		clean.TaskTemp:       "Clean temporary files",
		clean.TaskCache:      "Clean application caches",
		clean.TaskBrowsers:   "Clean browser caches",
		clean.TaskTrash:      "Empty the trash",
		clean.TaskDownloads:  "Organize the downloads folder",
		clean.TaskLargeFiles: "Report large files",
	}
	for _, id := range clean.AllTasks {
		taskFlags[id] = new(bool)
		cmd.Flags().BoolVar(taskFlags[id], string(id), false, usage[id])
	}
}

// selectedTasks returns the tasks named by flags, or all of them.
func selectedTasks() []clean.TaskID {
	var ids []clean.TaskID
	for _, id := range clean.AllTasks {
		if *taskFlags[id] {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return clean.AllTasks
	}
	return ids
}

func runClean(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	env := platform.Detect()
	cfg := loadConfig(env)
	tasks := selectedTasks()
	interactive := !silent && ui.IsTerminal(os.Stdout) && ui.IsTerminal(os.Stdin)

	if !dryRun && cfg.ConfirmDeletions && interactive && changesFiles(tasks) {
		ok, err := ui.Confirm(os.Stdin, out, "Clean "+describeTasks(tasks)+" now?", false)
		if err != nil && !errors.Is(err, ui.ErrAborted) {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Nothing was changed.")
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	disks := &status.Collector{Paths: []string{env.Home}}
	before := disks.Collect(ctx)

	opts := clean.Options{DryRun: dryRun}
	var progress *ui.Progress
	if interactive {
		progress = ui.StartProgress(os.Stderr, "Starting")
		opts.OnTask = func(id clean.TaskID) {
			progress.SetLabel(id.Title() + "…")
		}
	}

	runner := clean.NewRunner(cfg, config.NewResolver(env, cfg), opts)
	results := runner.Run(ctx, tasks...)
	if progress != nil {
		progress.Stop()
	}

	if !silent {
		after := disks.Collect(context.Background())
		printResults(out, results, runner.Summary(), env.Home, before, after)
	}

	if reportPath != "" {
		rep := report.New(results, dryRun, platform.Describe(env.Platform), time.Now())
		if err := report.WriteFile(reportPath, rep); err != nil {
			return err
		}
		if !silent {
			fmt.Fprintln(out, ui.Success("Report written to "+reportPath))
		}
	}

	if ctx.Err() != nil {
		return errInterrupted
	}
	return nil
}

// changesFiles reports whether any task would delete or move something.
func changesFiles(ids []clean.TaskID) bool {
	for _, id := range ids {
		if id != clean.TaskLargeFiles {
			return true
		}
	}
	return false
}

func describeTasks(ids []clean.TaskID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, strings.ToLower(id.Title()))
	}
	return strings.Join(names, ", ")
}

// ─── Output ──────────────────────────────────────────────────────────────────

const maxErrorsShown = 5

func printResults(w io.Writer, results []clean.Result, sum clean.Summary, home string, before, after *status.Snapshot) {
	title := "Cleanup complete"
	if dryRun {
		title = "Dry run complete (nothing was changed)"
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.TitleStyle.Render(title))

	for _, r := range results {
		line := fmt.Sprintf("%-20s %6d files  %10s", r.Task.Title(), r.FilesDeleted, core.FormatSize(r.SpaceSaved))
		switch {
		case r.Task == clean.TaskDownloads:
			line = fmt.Sprintf("%-20s %6d files organized", r.Task.Title(), r.FilesOrganized)
		case r.Task == clean.TaskLargeFiles:
			line = fmt.Sprintf("%-20s %6d found", r.Task.Title(), len(r.LargeFiles))
		}
		if len(r.Errors) > 0 {
			fmt.Fprintln(w, ui.Warning(line))
		} else {
			fmt.Fprintln(w, ui.Success(line))
		}

		for i, e := range r.Errors {
			if i == maxErrorsShown {
				fmt.Fprintf(w, "    %s\n", ui.HintBarStyle.Render(fmt.Sprintf("... and %d more errors", len(r.Errors)-maxErrorsShown)))
				break
			}
			fmt.Fprintf(w, "    %s\n", ui.Failure(e))
		}
		for i, f := range r.LargeFiles {
			if i == 10 {
				fmt.Fprintf(w, "    %s\n", ui.HintBarStyle.Render(fmt.Sprintf("... and %d more (see analyze)", len(r.LargeFiles)-10)))
				break
			}
			fmt.Fprintf(w, "    %10s  %s\n", core.FormatSize(f.Size), f.Path)
		}
	}

	fmt.Fprintln(w)
	verb := "Freed"
	if dryRun {
		verb = "Would free"
	}
	fmt.Fprintln(w, ui.KeyValue(verb, fmt.Sprintf("%s in %d files", core.FormatSize(sum.TotalSpace), sum.TotalFiles)))
	if sum.TotalOrganized > 0 {
		fmt.Fprintln(w, ui.KeyValue("Organized", fmt.Sprintf("%d files", sum.TotalOrganized)))
	}
	if sum.TotalErrors > 0 {
		fmt.Fprintln(w, ui.KeyValue("Errors", fmt.Sprintf("%d", sum.TotalErrors)))
	}

	b, okBefore := before.Free(home)
	a, okAfter := after.Free(home)
	if okBefore && okAfter && !dryRun {
		fmt.Fprintln(w, ui.KeyValue("Disk free", core.FormatSize(int64(b))+" → "+core.FormatSize(int64(a))))
	}
}
