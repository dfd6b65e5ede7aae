package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Darnix-a/cleanmypc/internal/analyze"
	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/discovery"
	"github.com/Darnix-a/cleanmypc/internal/platform"
	"github.com/Darnix-a/cleanmypc/internal/ui"
)

var (
	analyzeMinSize string
	analyzeLimit   int
	analyzeJSON    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Find large files",
	Long: `Scan the usual large-file locations (home, documents, downloads,
desktop, videos, pictures) or the given paths for files at or above the
size threshold. The scan stops 10 directory levels below each starting
point and never deletes anything.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeMinSize, "min-size", "", "Minimum size to report (e.g., 500MB); overrides largeFileThreshold")
	analyzeCmd.Flags().IntVar(&analyzeLimit, "limit", 50, "Maximum files to list (0 = all)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output findings as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	env := platform.Detect()
	cfg := loadConfig(env)

	threshold := cfg.LargeFileThreshold
	if analyzeMinSize != "" {
		n, err := core.ParseSize(analyzeMinSize)
		if err != nil {
			return fmt.Errorf("--min-size: %w", err)
		}
		threshold = n
	}

	resolver := config.NewResolver(env, cfg)
	seeds, err := absSeeds(args)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		seeds = resolver.Paths(config.TargetLarge)
	}

	scanner := analyze.NewScanner(analyze.Options{
		Threshold:   threshold,
		SystemRoots: resolver.SystemRoots(),
		Filter:      discovery.NewFinder(cfg.Exclusions, nil),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var (
		progress *ui.Progress
		wg       sync.WaitGroup
		done     = make(chan struct{})
	)
	if !silent && !analyzeJSON && ui.IsTerminal(os.Stdout) {
		progress = ui.StartProgress(os.Stderr, "Scanning…")
		wg.Add(1)
		go func() {
			defer wg.Done()
			tick := time.NewTicker(200 * time.Millisecond)
			defer tick.Stop()
			for {
				select {
				case <-done:
					return
				case <-tick.C:
					progress.SetLabel(fmt.Sprintf("Scanning… %s entries", humanize.Comma(scanner.ScannedCount())))
				}
			}
		}()
	}

	files, err := scanner.Scan(ctx, seeds)
	close(done)
	wg.Wait()
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}
	if !silent {
		fmt.Fprintf(out, "  Threshold: %s\n", core.FormatSize(threshold))
		analyze.PrintStatic(out, files, analyzeLimit)
	}
	return nil
}

// absSeeds makes path arguments absolute so findings are absolute and the
// system-root checks apply.
func absSeeds(args []string) ([]string, error) {
	seeds := make([]string, 0, len(args))
	for _, a := range args {
		p, err := filepath.Abs(a)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", a, err)
		}
		seeds = append(seeds, p)
	}
	return seeds, nil
}
