// Package ui holds the console look of cleanmypc: the palette and icons,
// the spinner shown while tasks run and the yes/no prompt.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#4f46e5", Dark: "#818cf8"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorCoral     = lipgloss.AdaptiveColor{Light: "#ea580c", Dark: "#fb923c"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim   = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#4b5563"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconBullet  = "•"
	IconChevron = "›"
	IconPipe    = "│"
)

// ─── Styles ──────────────────────────────────────────────────────────────────

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorTextDim).Width(18)

	ValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)

	TagWarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1f2937")).
			Background(ColorWarning).
			Padding(0, 1)

	HintBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
)

// IsTerminal reports whether f is an interactive terminal, including the
// cygwin/msys ptys used by git bash on windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// KeyValue renders one aligned "label  value" line.
func KeyValue(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

// Success prefixes msg with a green check.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render(IconSuccess) + " " + msg
}

func Warning(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorWarning).Render(IconWarning) + " " + msg
}

func Failure(msg string) string {
	return ErrorStyle.Render(IconError + " " + msg)
}
