// Package config holds the cleaner's configuration model, the YAML loader
// and the per-platform path tables.
package config

import (
	"path/filepath"
	"strings"

	"github.com/Darnix-a/cleanmypc/internal/platform"
)

const (
	// AppName names the application's XDG directories.
	AppName = "cleanmypc"

	// DefaultLargeFileThreshold is 1 GiB.
	DefaultLargeFileThreshold int64 = 1 << 30
)

// Browsers toggles per-browser cache cleaning.
type Browsers struct {
	Chrome  bool `yaml:"chrome" json:"chrome"`
	Firefox bool `yaml:"firefox" json:"firefox"`
	Edge    bool `yaml:"edge" json:"edge"`
	Safari  bool `yaml:"safari" json:"safari"`
}

// Enabled reports whether cleaning is switched on for b.
func (b Browsers) Enabled(browser Browser) bool {
	switch browser {
	case BrowserChrome:
		return b.Chrome
	case BrowserFirefox:
		return b.Firefox
	case BrowserEdge:
		return b.Edge
	case BrowserSafari:
		return b.Safari
	default:
		return false
	}
}

// OrganizeDownloads configures the downloads categorizer.
type OrganizeDownloads struct {
	Enabled    bool       `yaml:"enabled" json:"enabled"`
	Categories Categories `yaml:"categories" json:"categories"`
}

// Config is the full run configuration. It is loaded once and never
// mutated after it is handed to the cleanup tasks.
type Config struct {
	LargeFileThreshold int64             `yaml:"largeFileThreshold" json:"largeFileThreshold"`
	CustomTempPaths    []string          `yaml:"customTempPaths" json:"customTempPaths"`
	CustomCachePaths   []string          `yaml:"customCachePaths" json:"customCachePaths"`
	DownloadsPath      string            `yaml:"downloadsPath" json:"downloadsPath"`
	Exclusions         []string          `yaml:"exclusions" json:"exclusions"`
	Browsers           Browsers          `yaml:"browsers" json:"browsers"`
	OrganizeDownloads  OrganizeDownloads `yaml:"organizeDownloads" json:"organizeDownloads"`

	// ConfirmDeletions and BackupBeforeDelete are advisory.
	ConfirmDeletions   bool `yaml:"confirmDeletions" json:"confirmDeletions"`
	BackupBeforeDelete bool `yaml:"backupBeforeDelete" json:"backupBeforeDelete"`

	// MaxFileAge is in days; 0 disables age filtering.
	MaxFileAge int `yaml:"maxFileAge" json:"maxFileAge"`
}

// Default returns the built-in configuration for env.
func Default(env platform.Environment) *Config {
	downloads := env.Downloads
	if downloads == "" && env.Home != "" {
		downloads = filepath.Join(env.Home, "Downloads")
	}

	return &Config{
		LargeFileThreshold: DefaultLargeFileThreshold,
		DownloadsPath:      downloads,
		Browsers: Browsers{
			Chrome:  true,
			Firefox: true,
			Edge:    true,
			Safari:  true,
		},
		OrganizeDownloads: OrganizeDownloads{
			Enabled:    true,
			Categories: DefaultCategories(),
		},
		ConfirmDeletions: true,
	}
}

// normalize fixes values a hand-edited file can get wrong.
func (c *Config) normalize() {
	if c.LargeFileThreshold <= 0 {
		c.LargeFileThreshold = DefaultLargeFileThreshold
	}
	if c.MaxFileAge < 0 {
		c.MaxFileAge = 0
	}

	var excl []string
	for _, e := range c.Exclusions {
		if strings.TrimSpace(e) != "" {
			excl = append(excl, e)
		}
	}
	c.Exclusions = excl

	for i := range c.OrganizeDownloads.Categories {
		c.OrganizeDownloads.Categories[i].normalize()
	}
}
