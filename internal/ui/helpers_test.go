package ui

import (
	"fmt"
	"testing"
	"time"

	"openwhen/internal/envelope"
	"openwhen/internal/letter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// fastTiming lets tests run tea.Tick commands without waiting.
var fastTiming = envelope.Timing{
	Flip:          time.Nanosecond,
	Flap:          time.Nanosecond,
	Contents:      time.Nanosecond,
	Settle:        time.Nanosecond,
	CloseContents: time.Nanosecond,
	CloseFlap:     time.Nanosecond,
	CloseFlip:     time.Nanosecond,
	Reveal:        time.Nanosecond,
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func specialKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// newTestGallery returns a 120x40 gallery of the default letters with
// predictable card ids card-1..card-9.
func newTestGallery(t *testing.T) *GalleryModel {
	t.Helper()
	n := 0
	g, err := NewGalleryModel(letter.Defaults(), Options{
		Heading:   "Open When Letters",
		Signature: "With love,\nYour Name",
		Timing:    fastTiming,
		NewID: func() string {
			n++
			return fmt.Sprintf("card-%d", n)
		},
	})
	require.NoError(t, err)
	g.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return g
}

// collect runs cmd and returns the messages it produces, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump delivers the messages cmd produces and returns the follow-up command.
func pump(g *GalleryModel, cmd tea.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	for _, m := range collect(cmd) {
		_, c := g.Update(m)
		cmds = append(cmds, c)
	}
	return tea.Batch(cmds...)
}

// settle pumps until nothing is scheduled.
func settle(t *testing.T, g *GalleryModel, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 50, "sequence did not settle")
		cmd = pump(g, cmd)
	}
}

// centre returns a screen cell inside card i.
func centre(g *GalleryModel, i int) (int, int) {
	r := g.ScreenRect(i)
	return r.X + r.W/2, r.Y + r.H/2
}
