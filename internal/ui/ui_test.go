package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, key string) (confirmModel, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := m.Update(msg)
	return next.(confirmModel), cmd
}

func TestConfirmModelKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		def      bool
		key      string
		answer   bool
		answered bool
		aborted  bool
	}{
		{name: "yes", key: "y", answer: true, answered: true},
		{name: "no", def: true, key: "n", answered: true},
		{name: "enter takes default yes", def: true, key: "enter", answer: true, answered: true},
		{name: "enter takes default no", key: "enter", answered: true},
		{name: "escape aborts", def: true, key: "esc", aborted: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, cmd := press(confirmModel{question: "Proceed?", def: tt.def}, tt.key)
			assert.Equal(t, tt.answer, m.answer)
			assert.Equal(t, tt.answered, m.answered)
			assert.Equal(t, tt.aborted, m.aborted)
			require.NotNil(t, cmd)
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	m, cmd := press(confirmModel{question: "Proceed?"}, "x")
	assert.False(t, m.answered)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "[y/N]")
}

func TestSpinnerModelLabelAndDone(t *testing.T) {
	t.Parallel()

	var m tea.Model = newSpinnerModel("starting")
	m, _ = m.Update(labelMsg("Temporary files"))
	assert.Contains(t, m.View(), "Temporary files")

	m, _ = m.Update(spinner.TickMsg{})
	m, cmd := m.Update(doneMsg{})
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}
