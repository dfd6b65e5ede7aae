package cmd

import (
	"encoding/json"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/platform"
	"github.com/Darnix-a/cleanmypc/internal/status"
	"github.com/Darnix-a/cleanmypc/internal/ui"
)

var (
	statusJSON    bool
	statusRefresh int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show disk usage and trash size",
	Long:  "Show free space on each volume and how much the trash currently holds.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusRefresh, "refresh", 0, "Keep refreshing every N seconds (terminal only)")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output metrics as JSON")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	env := platform.Detect()
	cfg := loadConfig(env)

	paths := env.Volumes
	if len(paths) == 0 {
		paths = []string{env.Home}
	}
	collector := &status.Collector{
		Host:       platform.Describe(env.Platform),
		Paths:      paths,
		TrashRoots: config.NewResolver(env, cfg).Paths(config.TargetTrash),
	}

	out := cmd.OutOrStdout()
	terminal := ui.IsTerminal(os.Stdout)

	switch {
	case statusJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(collector.Collect(cmd.Context()))

	case statusRefresh > 0 && terminal:
		model := status.NewModel(collector, time.Duration(statusRefresh)*time.Second)
		_, err := tea.NewProgram(model, tea.WithOutput(out)).Run()
		return err

	case terminal:
		_, err := out.Write([]byte(status.Render(collector.Collect(cmd.Context()), 80)))
		return err

	default:
		_, err := out.Write([]byte(status.RenderPlain(collector.Collect(cmd.Context()))))
		return err
	}
}
