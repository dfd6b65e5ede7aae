package analyze

import (
	"fmt"
	"io"
	"strings"

	"github.com/Darnix-a/cleanmypc/internal/core"
)

// PrintStatic writes a plain-text table of findings, largest first. At most
// limit rows are printed (0 = all); the rest are summarized on one line.
// Used when output is not a terminal or styling is unwanted.
func PrintStatic(w io.Writer, files []LargeFile, limit int) {
	if len(files) == 0 {
		fmt.Fprintln(w, "  No large files found.")
		return
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}

	fmt.Fprintf(w, "  Large files: %d (%s)\n", len(files), core.FormatSize(total))
	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))

	shown := files
	if limit > 0 && len(files) > limit {
		shown = files[:limit]
	}
	for _, f := range shown {
		fmt.Fprintf(w, "  %10s  %s\n", core.FormatSize(f.Size), f.Path)
	}
	if rest := len(files) - len(shown); rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}

	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))
}
