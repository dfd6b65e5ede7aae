package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darnix-a/cleanmypc/internal/platform"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default(platform.Environment{Home: "/home/ada"})

	assert.Equal(t, int64(1<<30), cfg.LargeFileThreshold)
	assert.Equal(t, filepath.Join("/home/ada", "Downloads"), cfg.DownloadsPath)
	assert.True(t, cfg.Browsers.Chrome && cfg.Browsers.Firefox && cfg.Browsers.Edge && cfg.Browsers.Safari)
	assert.True(t, cfg.OrganizeDownloads.Enabled)
	assert.Equal(t, "Images", cfg.OrganizeDownloads.Categories[0].Name)
	assert.Zero(t, cfg.MaxFileAge)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), platform.Environment{Home: "/h"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultLargeFileThreshold, cfg.LargeFileThreshold)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
largeFileThreshold: 5000
maxFileAge: 7
exclusions: ["keep-me", ""]
browsers:
  safari: false
unknownField: whatever
`)
	cfg, err := Load(path, platform.Environment{Home: "/h"})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), cfg.LargeFileThreshold)
	assert.Equal(t, 7, cfg.MaxFileAge)
	assert.Equal(t, []string{"keep-me"}, cfg.Exclusions)
	assert.False(t, cfg.Browsers.Safari)
	assert.True(t, cfg.Browsers.Chrome, "fields absent from the file keep defaults")
	assert.Equal(t, DefaultCategories(), cfg.OrganizeDownloads.Categories)
}

func TestLoadKeepsCategoryOrder(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
organizeDownloads:
  enabled: true
  categories:
    Zeta: [zz]
    Alpha: [".PDF", ".jpg"]
    Mid: [".jpg"]
`)
	cfg, err := Load(path, platform.Environment{})
	require.NoError(t, err)

	cats := cfg.OrganizeDownloads.Categories
	require.Len(t, cats, 3)
	assert.Equal(t, "Zeta", cats[0].Name)
	assert.Equal(t, []string{".zz"}, cats[0].Extensions)
	assert.Equal(t, []string{".pdf", ".jpg"}, cats[1].Extensions)

	name, ok := cats.Lookup(".JPG")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", name, "first declared category wins")
}

func TestLoadAcceptsJSON(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `{"largeFileThreshold": 42, "downloadsPath": "/data/dl", "organizeDownloads": {"enabled": false}}`)
	cfg, err := Load(path, platform.Environment{})
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.LargeFileThreshold)
	assert.Equal(t, "/data/dl", cfg.DownloadsPath)
	assert.False(t, cfg.OrganizeDownloads.Enabled)
}

func TestLoadInvalidValuesAreNormalized(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "largeFileThreshold: -1\nmaxFileAge: -3\n")
	cfg, err := Load(path, platform.Environment{})
	require.NoError(t, err)

	assert.Equal(t, DefaultLargeFileThreshold, cfg.LargeFileThreshold)
	assert.Zero(t, cfg.MaxFileAge)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "organizeDownloads:\n  categories: [a, b]\n")
	cfg, err := Load(path, platform.Environment{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a mapping")
	assert.Equal(t, DefaultCategories(), cfg.OrganizeDownloads.Categories)
}

func TestBrowsersEnabled(t *testing.T) {
	t.Parallel()

	b := Browsers{Chrome: true, Edge: true}
	assert.True(t, b.Enabled(BrowserChrome))
	assert.False(t, b.Enabled(BrowserFirefox))
	assert.True(t, b.Enabled(BrowserEdge))
	assert.False(t, b.Enabled(BrowserSafari))
	assert.False(t, b.Enabled(Browser("opera")))
}
