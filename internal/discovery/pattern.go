package discovery

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrRelativePattern is returned for patterns that are not absolute paths.
var ErrRelativePattern = errors.New("pattern is not an absolute path")

// pattern is a glob split into a literal base and the segments after it.
// Segments use forward slashes; base is in native form.
type pattern struct {
	raw      string
	base     string
	segments []string
}

// hasMeta reports whether s contains a wildcard.
func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// parsePattern normalizes separators and splits p into its literal prefix
// and the remaining segments, starting with the first wildcard segment.
func parsePattern(p string) (pattern, error) {
	native := filepath.Clean(filepath.FromSlash(p))
	if !filepath.IsAbs(native) {
		return pattern{}, fmt.Errorf("%w: %q", ErrRelativePattern, p)
	}

	vol := filepath.VolumeName(native)
	rest := filepath.ToSlash(native[len(vol):])

	var segs []string
	for _, s := range strings.Split(rest, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}

	base := vol + string(filepath.Separator)
	i := 0
	for ; i < len(segs) && !hasMeta(segs[i]); i++ {
		base = filepath.Join(base, segs[i])
	}

	return pattern{raw: p, base: base, segments: segs[i:]}, nil
}
