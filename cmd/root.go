package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Darnix-a/cleanmypc/internal/config"
	"github.com/Darnix-a/cleanmypc/internal/log"
	"github.com/Darnix-a/cleanmypc/internal/platform"
)

var (
	// Global flags
	debug      bool
	silent     bool
	configPath string

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"

	logCloser io.Closer
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "cleanmypc",
	Short: "Clean temporary files, caches and trash, and tidy your downloads",
	Long: `cleanmypc - reclaim disk space on windows, macos and linux.

Without flags every task runs in order: temporary files, application
caches, browser caches, trash, downloads organization and a large-file
report. Pass one or more task flags to run only those tasks, and
--dry-run to see what would happen without changing anything.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: runClean,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "No prompts and no output except errors")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default $XDG_CONFIG_HOME/cleanmypc/config.yaml)")

	registerCleanFlags(rootCmd)

	// Register all subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// logLevelEnv overrides the console level when neither --debug nor --silent
// is given.
const logLevelEnv = "CLEANMYPC_LOG_LEVEL"

// consoleLevel picks the stderr log level: --debug, then --silent, then
// $CLEANMYPC_LOG_LEVEL, then warnings only.
func consoleLevel(getenv func(string) string) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case silent:
		return slog.LevelError
	}
	if v := getenv(logLevelEnv); v != "" {
		return log.ParseLevel(v)
	}
	return slog.LevelWarn
}

// setupLogging sends console records to stderr and a full JSON log to the
// XDG state dir.
func setupLogging() {
	opts := log.Options{Level: consoleLevel(os.Getenv), Console: os.Stderr}
	env := platform.Detect()
	if env.StateHome != "" {
		dir := filepath.Join(env.StateHome, config.AppName)
		if err := os.MkdirAll(dir, 0o755); err == nil {
			opts.File = filepath.Join(dir, config.AppName+".log")
		}
	}
	logCloser = log.Setup(opts)
}

// loadConfig reads the configuration for env. Failures fall back to the
// built-in defaults with a warning; a missing default file is expected and
// only logged at debug level.
func loadConfig(env platform.Environment) *config.Config {
	path := configPath
	if path == "" {
		path = config.DefaultPath(env)
	}

	cfg, err := config.Load(path, env)
	switch {
	case err == nil:
		log.Get().Debug("configuration loaded", "path", path)
	case errors.Is(err, config.ErrConfigNotFound) && configPath == "":
		log.Get().Debug("no configuration file, using defaults", "path", path)
	default:
		log.Get().Warn("using built-in defaults", "error", err)
	}

	if cfg.BackupBeforeDelete {
		log.Get().Warn("backupBeforeDelete is not supported; files are deleted without a backup")
	}
	return cfg
}
