package config

import (
	"path"
	"strings"

	"github.com/Darnix-a/cleanmypc/internal/platform"
)

// Target is a category of candidate paths.
type Target string

const (
	TargetTemp  Target = "temp"
	TargetCache Target = "cache"
	TargetTrash Target = "trash"
	TargetLarge Target = "large"
)

// Browser identifies a browser whose caches can be cleaned.
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserEdge    Browser = "edge"
	BrowserSafari  Browser = "safari"
)

// AllBrowsers lists browsers in processing order.
var AllBrowsers = []Browser{BrowserChrome, BrowserFirefox, BrowserEdge, BrowserSafari}

// pathFunc builds a path list from the environment snapshot.
type pathFunc func(env platform.Environment) []string

// pathRow is one platform's entry in the path table.
type pathRow struct {
	targets     map[Target]pathFunc
	browsers    map[Browser]pathFunc
	systemRoots pathFunc
}

// ─── Path Table ──────────────────────────────────────────────────────────────

// table holds every platform's built-in paths. Adding a platform means
// adding a row here; nothing else switches on the platform.
var table = map[platform.Platform]pathRow{
	platform.Windows: {
		targets: map[Target]pathFunc{
			TargetTemp: func(env platform.Environment) []string {
				return collect(
					winJoin(env.TempDir),
					winJoin(env.LocalAppData, "Temp"),
					winJoin(env.WinDir, "Temp"),
				)
			},
			TargetCache: func(env platform.Environment) []string {
				return collect(
					winJoin(env.LocalAppData, "Microsoft", "Windows", "INetCache"),
					winJoin(env.LocalAppData, "Microsoft", "Windows", "Explorer"),
					winJoin(env.LocalAppData, "Microsoft", "Windows", "WER", "ReportArchive"),
					winJoin(env.LocalAppData, "CrashDumps"),
					winJoin(env.AppData, "npm-cache"),
					winJoin(env.LocalAppData, "pip", "Cache"),
				)
			},
			TargetTrash: func(env platform.Environment) []string {
				var roots []string
				for _, v := range env.Volumes {
					roots = append(roots, winJoin(v, "$Recycle.Bin"))
				}
				if len(roots) == 0 && env.SystemDrive != "" {
					roots = append(roots, winJoin(env.SystemDrive, "$Recycle.Bin"))
				}
				return collect(roots...)
			},
			TargetLarge: func(env platform.Environment) []string {
				return collect(
					winJoin(env.Home),
					winJoin(env.Home, "Documents"),
					winJoin(env.Home, "Downloads"),
					winJoin(env.Home, "Desktop"),
					winJoin(env.Home, "Videos"),
					winJoin(env.Home, "Pictures"),
				)
			},
		},
		browsers: map[Browser]pathFunc{
			BrowserChrome: func(env platform.Environment) []string {
				return chromiumCaches(winJoin, env.LocalAppData, "Google", "Chrome", "User Data")
			},
			BrowserEdge: func(env platform.Environment) []string {
				return chromiumCaches(winJoin, env.LocalAppData, "Microsoft", "Edge", "User Data")
			},
			BrowserFirefox: func(env platform.Environment) []string {
				return collect(
					winJoin(env.LocalAppData, "Mozilla", "Firefox", "Profiles", "*", "cache2"),
					winJoin(env.LocalAppData, "Mozilla", "Firefox", "Profiles", "*", "startupCache"),
				)
			},
		},
		systemRoots: func(env platform.Environment) []string {
			drive := env.SystemDrive
			if drive == "" {
				drive = "C:"
			}
			return collect(
				winJoin(env.WinDir),
				winJoin(drive, "Program Files"),
				winJoin(drive, "Program Files (x86)"),
				winJoin(drive, "ProgramData"),
				winJoin(drive, "Recovery"),
				winJoin(drive, "System Volume Information"),
				winJoin(env.LocalAppData, "Microsoft", "WindowsApps"),
			)
		},
	},

	platform.MacOS: {
		targets: map[Target]pathFunc{
			TargetTemp: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.TempDir),
					unixJoin(env.Home, "Library", "Caches", "TemporaryItems"),
				)
			},
			TargetCache: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, "Library", "Caches"),
					unixJoin(env.Home, "Library", "Logs"),
				)
			},
			TargetTrash: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, ".Trash"),
					"/Volumes/*/.Trashes",
				)
			},
			TargetLarge: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home),
					unixJoin(env.Home, "Documents"),
					unixJoin(env.Home, "Downloads"),
					unixJoin(env.Home, "Desktop"),
					unixJoin(env.Home, "Movies"),
					unixJoin(env.Home, "Pictures"),
					unixJoin(env.Home, "Music"),
				)
			},
		},
		browsers: map[Browser]pathFunc{
			BrowserChrome: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, "Library", "Caches", "Google", "Chrome", "*", "Cache"),
					unixJoin(env.Home, "Library", "Application Support", "Google", "Chrome", "*", "Code Cache"),
					unixJoin(env.Home, "Library", "Application Support", "Google", "Chrome", "*", "GPUCache"),
				)
			},
			BrowserEdge: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, "Library", "Caches", "Microsoft Edge", "*", "Cache"),
					unixJoin(env.Home, "Library", "Application Support", "Microsoft Edge", "*", "Code Cache"),
				)
			},
			BrowserFirefox: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, "Library", "Caches", "Firefox", "Profiles", "*", "cache2"),
				)
			},
			BrowserSafari: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home, "Library", "Caches", "com.apple.Safari"),
					unixJoin(env.Home, "Library", "Containers", "com.apple.Safari", "Data", "Library", "Caches"),
				)
			},
		},
		systemRoots: func(platform.Environment) []string {
			return []string{
				"/System",
				"/Library",
				"/Applications",
				"/usr/bin",
				"/usr/sbin",
				"/usr/lib",
				"/bin",
				"/sbin",
				"/private",
			}
		},
	},

	platform.Linux: {
		targets: map[Target]pathFunc{
			TargetTemp: func(env platform.Environment) []string {
				tmp := env.TempDir
				if tmp == "" {
					tmp = "/tmp"
				}
				return collect(unixJoin(tmp), "/var/tmp")
			},
			TargetCache: func(env platform.Environment) []string {
				cache := env.CacheHome
				if cache == "" && env.Home != "" {
					cache = unixJoin(env.Home, ".cache")
				}
				return collect(
					unixJoin(cache, "thumbnails"),
					unixJoin(cache, "pip"),
					unixJoin(cache, "npm"),
					unixJoin(env.Home, ".npm", "_cacache"),
				)
			},
			TargetTrash: func(env platform.Environment) []string {
				data := env.DataHome
				if data == "" && env.Home != "" {
					data = unixJoin(env.Home, ".local", "share")
				}
				return collect(unixJoin(data, "Trash"))
			},
			TargetLarge: func(env platform.Environment) []string {
				return collect(
					unixJoin(env.Home),
					unixJoin(env.Home, "Documents"),
					unixJoin(env.Home, "Downloads"),
					unixJoin(env.Home, "Desktop"),
					unixJoin(env.Home, "Videos"),
					unixJoin(env.Home, "Pictures"),
					unixJoin(env.Home, "Music"),
				)
			},
		},
		browsers: map[Browser]pathFunc{
			BrowserChrome: func(env platform.Environment) []string {
				cache := linuxCacheHome(env)
				return collect(
					unixJoin(cache, "google-chrome", "*", "Cache"),
					unixJoin(cache, "google-chrome", "*", "Code Cache"),
					unixJoin(cache, "chromium", "*", "Cache"),
				)
			},
			BrowserEdge: func(env platform.Environment) []string {
				return collect(unixJoin(linuxCacheHome(env), "microsoft-edge", "*", "Cache"))
			},
			BrowserFirefox: func(env platform.Environment) []string {
				return collect(
					unixJoin(linuxCacheHome(env), "mozilla", "firefox", "*", "cache2"),
					unixJoin(env.Home, "snap", "firefox", "common", ".cache", "mozilla", "firefox", "*", "cache2"),
				)
			},
		},
		systemRoots: func(platform.Environment) []string {
			return []string{
				"/proc",
				"/sys",
				"/dev",
				"/run",
				"/boot",
				"/usr",
				"/bin",
				"/sbin",
				"/lib",
				"/lib64",
				"/etc",
				"/var/lib",
				"/snap",
			}
		},
	},
}

// ─── Resolver ────────────────────────────────────────────────────────────────

// Resolver maps a cleanup target to its ordered candidate paths. It performs
// no I/O: built-in entries come first in table order, followed by the
// configuration's custom paths exactly as written. Duplicates are kept;
// callers that act on the paths deduplicate by canonical path.
type Resolver struct {
	env      platform.Environment
	row      pathRow
	custom   map[Target][]string
	platform platform.Platform
}

// NewResolver builds a resolver for env. Platforms without a table row use
// the linux row.
func NewResolver(env platform.Environment, cfg *Config) *Resolver {
	row, ok := table[env.Platform]
	if !ok {
		row = table[platform.Linux]
	}

	custom := map[Target][]string{}
	if cfg != nil {
		custom[TargetTemp] = cfg.CustomTempPaths
		custom[TargetCache] = cfg.CustomCachePaths
	}

	return &Resolver{env: env, row: row, custom: custom, platform: env.Platform}
}

// Platform returns the platform the resolver was built for.
func (r *Resolver) Platform() platform.Platform {
	return r.platform
}

// Paths returns the candidate paths for target.
func (r *Resolver) Paths(target Target) []string {
	var out []string
	if fn, ok := r.row.targets[target]; ok {
		out = append(out, fn(r.env)...)
	}
	return append(out, r.custom[target]...)
}

// BrowserPaths returns the cache path patterns for b on this platform.
// Browsers that do not exist on the platform yield nil.
func (r *Resolver) BrowserPaths(b Browser) []string {
	fn, ok := r.row.browsers[b]
	if !ok {
		return nil
	}
	return fn(r.env)
}

// SystemRoots returns the absolute prefixes the large-file scan never enters.
func (r *Resolver) SystemRoots() []string {
	if r.row.systemRoots == nil {
		return nil
	}
	return r.row.systemRoots(r.env)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// collect drops entries whose base directory was unknown.
func collect(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// unixJoin joins with forward slashes; an empty base yields "".
func unixJoin(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	return path.Join(append([]string{base}, elem...)...)
}

// winJoin joins with backslashes regardless of the host OS, so the windows
// row can be resolved (and tested) anywhere. An empty base yields "".
func winJoin(base string, elem ...string) string {
	if base == "" {
		return ""
	}
	parts := []string{strings.TrimRight(base, `\/`)}
	for _, e := range elem {
		e = strings.Trim(e, `\/`)
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 1 && strings.HasSuffix(parts[0], ":") {
		return parts[0] + `\`
	}
	return strings.Join(parts, `\`)
}

// chromiumCaches lists the cache directories shared by chromium-based
// browsers for every profile under userData.
func chromiumCaches(join func(string, ...string) string, base string, userData ...string) []string {
	if base == "" {
		return nil
	}
	root := join(base, userData...)
	return collect(
		join(root, "*", "Cache"),
		join(root, "*", "Code Cache"),
		join(root, "*", "GPUCache"),
		join(root, "*", "Service Worker", "CacheStorage"),
	)
}

func linuxCacheHome(env platform.Environment) string {
	if env.CacheHome != "" {
		return env.CacheHome
	}
	return unixJoin(env.Home, ".cache")
}
