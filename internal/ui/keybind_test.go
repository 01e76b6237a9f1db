package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"enter toggles", specialKey(tea.KeyEnter), k.Toggle},
		{"space toggles", specialKey(tea.KeySpace), k.Toggle},
		{"esc closes", specialKey(tea.KeyEsc), k.Close},
		{"j is down", keyMsg("j"), k.Down},
		{"l is right", keyMsg("l"), k.Right},
		{"q quits", keyMsg("q"), k.Quit},
		{"ctrl+c quits", specialKey(tea.KeyCtrlC), k.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_HelpCoversBindings(t *testing.T) {
	k := DefaultKeyMap()

	assert.Contains(t, k.ShortHelp(), k.Toggle)
	var n int
	for _, col := range k.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 9, n)
}
