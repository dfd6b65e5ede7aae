package ui

import (
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type labelMsg string

type doneMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// spinnerModel shows a spinner next to the current step.
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
	return spinnerModel{spinner: sp, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case labelMsg:
		m.label = string(msg)
		return m, nil
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + lipgloss.NewStyle().Foreground(ColorTextDim).Render(m.label) + "\n"
}

// ─── Progress ────────────────────────────────────────────────────────────────

// Progress runs a spinner on its own goroutine until Stop is called. It
// reads no input and installs no signal handler, so interrupts still reach
// the caller.
type Progress struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

// StartProgress starts a spinner labelled label, drawing to out.
func StartProgress(out io.Writer, label string) *Progress {
	p := &Progress{
		program: tea.NewProgram(newSpinnerModel(label),
			tea.WithOutput(out),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		),
		done: make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		_, _ = p.program.Run()
	}()
	return p
}

// SetLabel replaces the text next to the spinner.
func (p *Progress) SetLabel(label string) {
	p.program.Send(labelMsg(label))
}

// Stop clears the spinner and waits for it to exit. Safe to call twice.
func (p *Progress) Stop() {
	p.once.Do(func() {
		p.program.Send(doneMsg{})
		<-p.done
	})
}
