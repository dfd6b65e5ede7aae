package status

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Darnix-a/cleanmypc/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type tickMsg time.Time

type snapshotMsg struct {
	snap *Snapshot
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is a live-refreshing disk status view.
type Model struct {
	collector       *Collector
	Snapshot        *Snapshot
	Width           int
	refreshInterval time.Duration
	quitting        bool
}

// NewModel creates a Model that re-measures every refreshInterval.
func NewModel(c *Collector, refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = 2 * time.Second
	}
	return Model{collector: c, Width: 80, refreshInterval: refreshInterval}
}

func (m Model) doTick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) collect() tea.Cmd {
	c := m.collector
	return func() tea.Msg {
		return snapshotMsg{snap: c.Collect(context.Background())}
	}
}

// ─── tea.Model interface ─────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	// The first snapshot starts the tick loop, keeping collection and
	// display sequential.
	return m.collect()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.collect()
		}
		return m, nil

	case tickMsg:
		return m, m.collect()

	case snapshotMsg:
		m.Snapshot = msg.snap
		return m, m.doTick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.Snapshot == nil {
		return lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Italic(true).
			Render("  Measuring disks…") + "\n"
	}
	return Render(m.Snapshot, m.Width) + "\n" + ui.HintBarStyle.Render("  r refresh · q quit") + "\n"
}
