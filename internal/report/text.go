package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Darnix-a/cleanmypc/internal/core"
)

const lineWidth = 60

// TextWriter outputs a fixed-width, plain-text report.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{output: w}
}

// Write outputs the header, the SUMMARY block and the DETAILED RESULTS block.
func (w *TextWriter) Write(r *Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, r)
	w.writeSummary(&sb, r)
	w.writeDetails(&sb, r)

	return io.WriteString(w.output, sb.String())
}

func (w *TextWriter) writeHeader(sb *strings.Builder, r *Report) {
	rule := strings.Repeat("=", lineWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(center("CLEANMYPC CLEANUP REPORT", lineWidth) + "\n")
	sb.WriteString(rule + "\n")

	mode := "LIVE"
	if r.DryRun {
		mode = "DRY RUN (no changes made)"
	}
	fmt.Fprintf(sb, "Generated: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(sb, "Run ID:    %s\n", r.RunID)
	if r.Platform != "" {
		fmt.Fprintf(sb, "Platform:  %s\n", r.Platform)
	}
	fmt.Fprintf(sb, "Mode:      %s\n\n", mode)
}

func (w *TextWriter) writeSummary(sb *strings.Builder, r *Report) {
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", lineWidth) + "\n")
	fmt.Fprintf(sb, "Files deleted:    %d\n", r.Summary.TotalFiles)
	fmt.Fprintf(sb, "Space freed:      %s\n", core.FormatSize(r.Summary.TotalSpace))
	fmt.Fprintf(sb, "Files organized:  %d\n", r.Summary.TotalOrganized)
	fmt.Fprintf(sb, "Errors:           %d\n\n", r.Summary.TotalErrors)
}

func (w *TextWriter) writeDetails(sb *strings.Builder, r *Report) {
	sb.WriteString("DETAILED RESULTS\n")
	sb.WriteString(strings.Repeat("-", lineWidth) + "\n")

	if len(r.Results) == 0 {
		sb.WriteString("No tasks were run.\n")
		return
	}

	for _, res := range r.Results {
		fmt.Fprintf(sb, "[%s]\n", res.Task.Title())
		fmt.Fprintf(sb, "  Files deleted:   %d\n", res.FilesDeleted)
		fmt.Fprintf(sb, "  Space freed:     %s\n", core.FormatSize(res.SpaceSaved))
		if res.FilesOrganized > 0 {
			fmt.Fprintf(sb, "  Files organized: %d\n", res.FilesOrganized)
		}
		if res.Duration > 0 {
			fmt.Fprintf(sb, "  Duration:        %s\n", res.Duration.Round(time.Millisecond))
		}

		if len(res.LargeFiles) > 0 {
			sb.WriteString("  Large files:\n")
			for _, f := range res.LargeFiles {
				fmt.Fprintf(sb, "    %10s  %s\n", core.FormatSize(f.Size), f.Path)
			}
		}
		if len(res.Errors) > 0 {
			sb.WriteString("  Errors:\n")
			for _, e := range res.Errors {
				fmt.Fprintf(sb, "    - %s\n", e)
			}
		}
		sb.WriteString("\n")
	}
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}
