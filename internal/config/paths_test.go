package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darnix-a/cleanmypc/internal/platform"
)

func linuxEnv() platform.Environment {
	return platform.Environment{
		Platform:  platform.Linux,
		Home:      "/home/ada",
		TempDir:   "/tmp",
		CacheHome: "/home/ada/.cache",
		DataHome:  "/home/ada/.local/share",
	}
}

func windowsEnv() platform.Environment {
	return platform.Environment{
		Platform:     platform.Windows,
		Home:         `C:\Users\ada`,
		TempDir:      `C:\Users\ada\AppData\Local\Temp`,
		LocalAppData: `C:\Users\ada\AppData\Local`,
		AppData:      `C:\Users\ada\AppData\Roaming`,
		WinDir:       `C:\Windows`,
		SystemDrive:  "C:",
		Volumes:      []string{`C:\`, `D:\`},
	}
}

func TestResolverCustomPathsAppendedAfterBuiltins(t *testing.T) {
	t.Parallel()

	cfg := Default(linuxEnv())
	cfg.CustomTempPaths = []string{"/srv/scratch", "/tmp"}

	got := NewResolver(linuxEnv(), cfg).Paths(TargetTemp)

	assert.Equal(t, []string{"/tmp", "/var/tmp", "/srv/scratch", "/tmp"}, got,
		"custom paths follow built-ins unmodified, duplicates included")
}

func TestResolverCustomCachePathsOnlyAffectCache(t *testing.T) {
	t.Parallel()

	cfg := Default(linuxEnv())
	cfg.CustomCachePaths = []string{"/opt/app/cache"}
	r := NewResolver(linuxEnv(), cfg)

	assert.Equal(t, "/opt/app/cache", r.Paths(TargetCache)[len(r.Paths(TargetCache))-1])
	assert.NotContains(t, r.Paths(TargetTemp), "/opt/app/cache")
}

func TestResolverLinuxCacheRow(t *testing.T) {
	t.Parallel()

	got := NewResolver(linuxEnv(), nil).Paths(TargetCache)

	assert.Equal(t, []string{
		"/home/ada/.cache/thumbnails",
		"/home/ada/.cache/pip",
		"/home/ada/.cache/npm",
		"/home/ada/.npm/_cacache",
	}, got)
}

func TestResolverWindowsRow(t *testing.T) {
	t.Parallel()

	r := NewResolver(windowsEnv(), Default(windowsEnv()))

	assert.Equal(t, []string{
		`C:\Users\ada\AppData\Local\Temp`,
		`C:\Users\ada\AppData\Local\Temp`,
		`C:\Windows\Temp`,
	}, r.Paths(TargetTemp))

	assert.Equal(t, []string{`C:\$Recycle.Bin`, `D:\$Recycle.Bin`}, r.Paths(TargetTrash))
	assert.Contains(t, r.BrowserPaths(BrowserFirefox),
		`C:\Users\ada\AppData\Local\Mozilla\Firefox\Profiles\*\cache2`)
	assert.Nil(t, r.BrowserPaths(BrowserSafari))
	assert.Contains(t, r.SystemRoots(), `C:\Program Files`)
}

func TestResolverWindowsTrashFallsBackToSystemDrive(t *testing.T) {
	t.Parallel()

	env := windowsEnv()
	env.Volumes = nil

	got := NewResolver(env, nil).Paths(TargetTrash)
	assert.Equal(t, []string{`C:\$Recycle.Bin`}, got)
}

func TestResolverMacOSRow(t *testing.T) {
	t.Parallel()

	env := platform.Environment{Platform: platform.MacOS, Home: "/Users/ada", TempDir: "/var/folders/x/T"}
	r := NewResolver(env, nil)

	assert.Equal(t, []string{"/Users/ada/.Trash", "/Volumes/*/.Trashes"}, r.Paths(TargetTrash))
	assert.Equal(t, "/Users/ada", r.Paths(TargetLarge)[0], "home is the first seed")
	assert.Contains(t, r.Paths(TargetLarge), "/Users/ada/Movies")
	assert.NotEmpty(t, r.BrowserPaths(BrowserSafari))
	assert.Contains(t, r.SystemRoots(), "/System")
}

func TestResolverUnknownPlatformUsesLinuxRow(t *testing.T) {
	t.Parallel()

	env := linuxEnv()
	env.Platform = platform.Platform("plan9")

	got := NewResolver(env, nil).Paths(TargetTrash)
	require.Len(t, got, 1)
	assert.Equal(t, "/home/ada/.local/share/Trash", got[0])
}

func TestResolverSkipsPathsWithUnknownBase(t *testing.T) {
	t.Parallel()

	env := windowsEnv()
	env.LocalAppData = ""

	for _, p := range NewResolver(env, nil).Paths(TargetCache) {
		assert.NotEmpty(t, p)
		assert.NotContains(t, p, `\Microsoft\Windows\INetCache`, "entries under an unknown base are dropped")
	}
}

func TestWinJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		elem []string
		want string
	}{
		{name: "drive root", base: `C:\`, elem: []string{"$Recycle.Bin"}, want: `C:\$Recycle.Bin`},
		{name: "bare drive", base: "C:", want: `C:\`},
		{name: "trailing separators", base: `C:\Users\ada\`, elem: []string{`Documents\`}, want: `C:\Users\ada\Documents`},
		{name: "empty base", base: "", elem: []string{"Temp"}, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, winJoin(tt.base, tt.elem...))
		})
	}
}
