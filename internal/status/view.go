package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Darnix-a/cleanmypc/internal/core"
	"github.com/Darnix-a/cleanmypc/internal/ui"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	clrGreen  = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	clrYellow = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	clrOrange = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	clrRed    = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// Render draws the snapshot for a terminal of the given width.
func Render(s *Snapshot, width int) string {
	if width < 50 {
		width = 50
	}
	barW := 24
	if width > 100 {
		barW = 36
	}

	var lines []string
	lines = append(lines, ui.TitleStyle.Render("Disk status")+"  "+
		lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(s.Host))
	lines = append(lines, lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("─", width)))

	if len(s.Disks) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  No volumes could be measured."))
	}
	for _, d := range s.Disks {
		lines = append(lines, fmt.Sprintf("  %s  %5.1f%%  %s free of %s  %s",
			colorBar(d.UsedPercent, barW), d.UsedPercent,
			core.FormatSize(int64(d.Free)), core.FormatSize(int64(d.Total)), d.Path))
	}

	lines = append(lines, "")
	lines = append(lines, "  "+ui.KeyValue("Trash", core.FormatSize(s.TrashBytes)))
	return strings.Join(lines, "\n") + "\n"
}

// RenderPlain draws the snapshot without colors or bars.
func RenderPlain(s *Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Host: %s\n", s.Host)
	for _, d := range s.Disks {
		fmt.Fprintf(&b, "%-24s %5.1f%% used  %s free of %s\n",
			d.Path, d.UsedPercent, core.FormatSize(int64(d.Free)), core.FormatSize(int64(d.Total)))
	}
	fmt.Fprintf(&b, "Trash: %s\n", core.FormatSize(s.TrashBytes))
	return b.String()
}

// ─── Drawing primitives ─────────────────────────────────────────────────────

// colorBar renders a ████░░░░ bar colored by severity.
func colorBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	barColor := clrGreen
	switch {
	case pct >= 90:
		barColor = clrRed
	case pct >= 75:
		barColor = clrOrange
	case pct >= 50:
		barColor = clrYellow
	}

	fStr := lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled))
	eStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(strings.Repeat("░", width-filled))
	return fStr + eStr
}
