package ui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned by Confirm when the prompt was cancelled.
var ErrAborted = errors.New("aborted")

// confirmModel is a single y/n question. Enter takes the default.
type confirmModel struct {
	question string
	def      bool
	answer   bool
	answered bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer, m.answered = true, true
	case "n", "N":
		m.answer, m.answered = false, true
	case "enter":
		m.answer, m.answered = m.def, true
	case "esc", "q", "ctrl+c":
		m.aborted = true
	default:
		return m, nil
	}
	return m, tea.Quit
}

func (m confirmModel) View() string {
	hint := "[y/N]"
	if m.def {
		hint = "[Y/n]"
	}
	if m.answered || m.aborted {
		choice := "no"
		if m.answered && m.answer {
			choice = "yes"
		}
		return fmt.Sprintf("%s %s\n", m.question, HintBarStyle.Render(choice))
	}
	return fmt.Sprintf("%s %s ", lipgloss.NewStyle().Bold(true).Render(m.question), HintBarStyle.Render(hint))
}

// Confirm asks question on out and reads the answer from in. def is the
// answer for a bare enter. Cancelling returns ErrAborted.
func Confirm(in io.Reader, out io.Writer, question string, def bool) (bool, error) {
	final, err := tea.NewProgram(
		confirmModel{question: question, def: def},
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return false, fmt.Errorf("confirm prompt: %w", err)
	}

	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}
