package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darnix-a/cleanmypc/internal/clean"
)

func resetTaskFlags(t *testing.T) {
	t.Helper()
	for _, id := range clean.AllTasks {
		*taskFlags[id] = false
	}
	t.Cleanup(func() {
		for _, id := range clean.AllTasks {
			*taskFlags[id] = false
		}
	})
}

func TestSelectedTasksDefaultsToAll(t *testing.T) {
	resetTaskFlags(t)
	assert.Equal(t, clean.AllTasks, selectedTasks())
}

func TestSelectedTasksKeepsFixedOrder(t *testing.T) {
	resetTaskFlags(t)
	require.NoError(t, rootCmd.Flags().Set("large-files", "true"))
	require.NoError(t, rootCmd.Flags().Set("temp", "true"))
	require.NoError(t, rootCmd.Flags().Set("trash", "true"))

	assert.Equal(t, []clean.TaskID{clean.TaskTemp, clean.TaskTrash, clean.TaskLargeFiles}, selectedTasks())
}

func TestTaskFlagsRegistered(t *testing.T) {
	for _, name := range []string{"dry-run", "report", "temp", "cache", "browsers", "trash", "downloads", "large-files"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"debug", "silent", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestChangesFiles(t *testing.T) {
	assert.False(t, changesFiles([]clean.TaskID{clean.TaskLargeFiles}))
	assert.True(t, changesFiles([]clean.TaskID{clean.TaskLargeFiles, clean.TaskDownloads}))
	assert.False(t, changesFiles(nil))
}

func TestDescribeTasks(t *testing.T) {
	assert.Equal(t, "temporary files, trash", describeTasks([]clean.TaskID{clean.TaskTemp, clean.TaskTrash}))
}

func TestCompletionScripts(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		completionCmd.SetOut(&buf)
		require.NoError(t, completionCmd.RunE(completionCmd, []string{shell}), shell)
		assert.Contains(t, buf.String(), "cleanmypc", shell)
	}
}

func TestVersionOutput(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-02")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "cleanmypc 1.2.3 (abc123) built 2026-01-02\n", buf.String())
}

func TestAbsSeedsResolvesRelativePaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	seeds, err := absSeeds([]string{".", "docs/../media"})
	require.NoError(t, err)

	assert.Equal(t, []string{wd, filepath.Join(wd, "media")}, seeds)
	for _, s := range seeds {
		assert.True(t, filepath.IsAbs(s), s)
	}
}

func TestAbsSeedsEmpty(t *testing.T) {
	seeds, err := absSeeds(nil)
	require.NoError(t, err)
	assert.Empty(t, seeds)
}

func TestConsoleLevel(t *testing.T) {
	env := func(v string) func(string) string {
		return func(key string) string {
			if key == logLevelEnv {
				return v
			}
			return ""
		}
	}
	t.Cleanup(func() { debug, silent = false, false })

	debug, silent = false, false
	assert.Equal(t, slog.LevelWarn, consoleLevel(env("")))
	assert.Equal(t, slog.LevelInfo, consoleLevel(env("info")))
	assert.Equal(t, slog.LevelDebug, consoleLevel(env("DEBUG")))

	silent = true
	assert.Equal(t, slog.LevelError, consoleLevel(env("debug")), "--silent beats the environment")

	debug = true
	assert.Equal(t, slog.LevelDebug, consoleLevel(env("error")), "--debug beats everything")
}
