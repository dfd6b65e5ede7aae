// Package platform identifies the operating-system convention the cleaner
// runs under and snapshots the environment values every path table needs.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// Platform is one of the three filesystem conventions the cleaner knows.
type Platform string

const (
	Windows Platform = "windows"
	MacOS   Platform = "macos"
	Linux   Platform = "linux"
)

// FromGOOS maps a GOOS value to a Platform. Anything that is neither
// windows nor darwin falls back to Linux.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Linux
	}
}

// Current returns the platform of the running process.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// Environment is an immutable snapshot of the values path resolution depends
// on. Tests build one by hand; production code calls Detect.
type Environment struct {
	Platform Platform

	Home      string
	TempDir   string
	Downloads string

	// Windows app data roots and system locations.
	LocalAppData string
	AppData      string
	WinDir       string
	SystemDrive  string

	// XDG base directories (linux).
	CacheHome  string
	DataHome   string
	ConfigHome string
	StateHome  string

	// Volumes holds mounted volume roots (drive roots on windows).
	Volumes []string
}

// Detect builds the Environment for the current process.
func Detect() Environment {
	env := Environment{
		Platform:   Current(),
		Home:       xdg.Home,
		TempDir:    os.TempDir(),
		Downloads:  xdg.UserDirs.Download,
		CacheHome:  xdg.CacheHome,
		DataHome:   xdg.DataHome,
		ConfigHome: xdg.ConfigHome,
		StateHome:  xdg.StateHome,
	}

	if env.Home == "" {
		env.Home, _ = os.UserHomeDir()
	}
	if env.Downloads == "" {
		env.Downloads = filepath.Join(env.Home, "Downloads")
	}

	if env.Platform == Windows {
		env.LocalAppData = getenvOr("LOCALAPPDATA", filepath.Join(env.Home, "AppData", "Local"))
		env.AppData = getenvOr("APPDATA", filepath.Join(env.Home, "AppData", "Roaming"))
		env.WinDir = getenvOr("WINDIR", `C:\Windows`)
		env.SystemDrive = strings.ToUpper(getenvOr("SYSTEMDRIVE", "C:"))
	}

	env.Volumes = Volumes()
	return env
}

func getenvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
