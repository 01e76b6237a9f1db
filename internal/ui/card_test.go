package ui

import (
	"strings"
	"testing"

	"openwhen/internal/color"
	"openwhen/internal/envelope"
	"openwhen/internal/letter"
	"openwhen/internal/stamp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() letter.Record {
	return letter.Record{
		ID:          1,
		Title:       "Open When You Need a Hug",
		AccentColor: "#856F8D",
		Message:     "Hello there.",
		StampAsset:  "LETTER1_STAMP.png",
	}
}

func newTestCard(t *testing.T, rec letter.Record) *CardView {
	t.Helper()
	c, err := NewCardView("card-1", rec, fastTiming, stamp.Resolver{}, nil)
	require.NoError(t, err)
	return c
}

// runCard drives c's sequence to rest, returning every phase it passed.
func runCard(c *CardView, cmd tea.Cmd) []envelope.Phase {
	var seen []envelope.Phase
	for cmd != nil {
		_, cmd = c.Update(cmd())
		seen = append(seen, c.Phase())
	}
	return seen
}

func TestNewCardView_Palette(t *testing.T) {
	c := newTestCard(t, testRecord())

	p := c.Palette()
	assert.Equal(t, "#856f8d", p.Base.Hex())
	assert.Equal(t, "#715e77", p.Darker.Hex())
	assert.Equal(t, color.TextLight, p.Text)
	assert.Equal(t, envelope.PhaseClosed, c.Phase())
}

func TestNewCardView_BadColour(t *testing.T) {
	rec := testRecord()
	rec.AccentColor = "purple"

	_, err := NewCardView("card-1", rec, fastTiming, stamp.Resolver{}, nil)
	assert.ErrorIs(t, err, color.ErrInvalidColorFormat)
}

func TestCardView_FrontShowsTitleAndStamp(t *testing.T) {
	c := newTestCard(t, testRecord())

	face := c.face().plain()
	assert.Contains(t, face, "Open When You Need a Hug")
	assert.Contains(t, face, stamp.GlyphFor("LETTER1_STAMP.png"))
	assert.Contains(t, face, "┌───┐")
}

func TestCardView_FrontWithoutStamp(t *testing.T) {
	rec := testRecord()
	rec.StampAsset = ""
	c := newTestCard(t, rec)

	assert.NotContains(t, c.face().plain(), "┌───┐")
}

func TestCardView_LongTitleIsTruncated(t *testing.T) {
	rec := testRecord()
	rec.Title = strings.Repeat("very long words ", 20)
	c := newTestCard(t, rec)

	face := c.face().plain()
	assert.Contains(t, face, "…")
	for _, line := range strings.Split(face, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), CardWidth)
	}
}

func TestCardView_ToggleWalksOpeningPhases(t *testing.T) {
	c := newTestCard(t, testRecord())

	cmd := c.Toggle()
	require.NotNil(t, cmd)
	assert.Equal(t, envelope.PhaseOpeningFlip, c.Phase())
	assert.NotContains(t, c.face().plain(), "Open When", "back face has no title")

	seen := runCard(c, cmd)
	assert.Equal(t, []envelope.Phase{
		envelope.PhaseOpeningFlap,
		envelope.PhaseOpeningContents,
		envelope.PhaseOpeningExpand,
		envelope.PhaseOpen,
	}, seen)
}

func TestCardView_ToggleNilMidSequence(t *testing.T) {
	c := newTestCard(t, testRecord())

	require.NotNil(t, c.Toggle())
	assert.Nil(t, c.Toggle())
	assert.Nil(t, c.Close())
}

func TestCardView_IgnoresOtherCardsSteps(t *testing.T) {
	c := newTestCard(t, testRecord())
	c.Toggle()

	_, cmd := c.Update(stepMsg{Step: envelope.Step{Card: "card-2", Seq: 1, Next: envelope.PhaseOpeningFlap}})
	assert.Nil(t, cmd)
	assert.Equal(t, envelope.PhaseOpeningFlip, c.Phase())
}

func TestCardView_FoldedPaperOnlyWhileContentsRise(t *testing.T) {
	c := newTestCard(t, testRecord())
	cmd := c.Toggle()

	for c.Phase() != envelope.PhaseOpeningContents {
		msg := cmd().(stepMsg)
		_, cmd = c.Update(msg)
	}
	assert.Contains(t, c.face().plain(), "┄")

	msg := cmd().(stepMsg)
	c.Update(msg)
	require.Equal(t, envelope.PhaseOpeningExpand, c.Phase())
	assert.NotContains(t, c.face().plain(), "┄", "paper has moved to the overlay")
}

func TestCardView_FooterShowsPhase(t *testing.T) {
	c := newTestCard(t, testRecord())
	assert.NotContains(t, c.footer(), "closed")

	c.Selected = true
	c.Toggle()
	footer := c.footer()
	assert.Contains(t, footer, "▸")
	assert.Contains(t, footer, "#1 · opening-flip")
}

func TestCanvas_WideRuneAndClipping(t *testing.T) {
	cv := newCanvas(4, 1, "#000000", "#ffffff")
	cv.text(0, 0, "ab", "#ffffff", false)
	cv.text(3, 0, "界", "#ffffff", false)

	assert.Equal(t, "ab  ", cv.plain(), "wide rune past the edge is dropped")

	cv.text(2, 0, "界", "#ffffff", false)
	assert.Equal(t, "ab界", cv.plain())
}
