package ui

import (
	"fmt"
	"time"

	"openwhen/internal/color"
	"openwhen/internal/envelope"
	"openwhen/internal/letter"
	"openwhen/internal/stamp"
	"openwhen/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// interiorShade darkens the inside of an opened envelope.
const interiorShade = 8

// flapDepth is how many rows the closed flap reaches down the back face.
const flapDepth = 5

// stepMsg delivers a deferred phase change to the card it belongs to.
type stepMsg struct {
	Step envelope.Step
}

// stepCmd schedules s to be delivered after s.After.
func stepCmd(s envelope.Step) tea.Cmd {
	return tea.Tick(s.After, func(time.Time) tea.Msg {
		return stepMsg{Step: s}
	})
}

// CardView draws one letter as an envelope and runs its open/close sequence.
type CardView struct {
	ID       string
	Letter   letter.Record
	Selected bool

	palette  color.Palette
	interior color.RGB
	stamp    stamp.Stamp
	hasStamp bool
	machine  *envelope.Machine
}

// Ensure CardView implements View.
var _ View = (*CardView)(nil)

// NewCardView builds a closed card. The accent colour must be well formed.
func NewCardView(id string, rec letter.Record, timing envelope.Timing, stamps stamp.Resolver, obs envelope.Observer) (*CardView, error) {
	p, err := rec.Palette()
	if err != nil {
		return nil, fmt.Errorf("letter %d: %w", rec.ID, err)
	}
	st, ok := stamps.Resolve(rec.StampAsset)
	return &CardView{
		ID:       id,
		Letter:   rec,
		palette:  p,
		interior: color.Darken(p.Base, interiorShade),
		stamp:    st,
		hasStamp: ok,
		machine:  envelope.New(id, timing, obs),
	}, nil
}

// Phase returns the current phase of the card's sequence.
func (c *CardView) Phase() envelope.Phase { return c.machine.Phase() }

// Vector returns the phase flags the card is drawn from.
func (c *CardView) Vector() envelope.Vector { return c.machine.Vector() }

// Palette returns the colours derived from the letter's accent.
func (c *CardView) Palette() color.Palette { return c.palette }

// Toggle opens a closed card or closes an open one. Returns nil while a
// sequence is already running.
func (c *CardView) Toggle() tea.Cmd {
	s, ok := c.machine.Toggle()
	if !ok {
		return nil
	}
	return stepCmd(s)
}

// Close closes an open card. Returns nil unless the card is Open.
func (c *CardView) Close() tea.Cmd {
	s, ok := c.machine.Close()
	if !ok {
		return nil
	}
	return stepCmd(s)
}

// Init implements View.
func (c *CardView) Init() tea.Cmd {
	return nil
}

// Update implements View. Only this card's stepMsg values have an effect.
func (c *CardView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(stepMsg); ok && msg.Step.Card == c.ID {
		if next, more := c.machine.Advance(msg.Step); more {
			return c, stepCmd(next)
		}
	}
	return c, nil
}

// View implements View: the bordered face plus a footer line.
func (c *CardView) View() string {
	border := Styles.CardNormal
	if c.Selected {
		border = Styles.CardSelected
	}
	face := border.Render(c.face().render())
	return lipgloss.JoinVertical(lipgloss.Left, face, c.footer())
}

func (c *CardView) footer() string {
	label := fmt.Sprintf("#%d", c.Letter.ID)
	if p := c.Phase(); p != envelope.PhaseClosed {
		label += " · " + p.String()
	}
	marker := "  "
	if c.Selected {
		marker = "▸ "
	}
	return Styles.Footer.Render(textutil.PadRight(marker+label, cardOuterWidth))
}

// face draws whichever side of the envelope the phase vector shows.
func (c *CardView) face() *canvas {
	if c.Vector().Flipped {
		return c.back()
	}
	return c.front()
}

// front is the addressed side: stamp in the corner, title at the bottom.
func (c *CardView) front() *canvas {
	base := c.palette.Base.Hex()
	cv := newCanvas(CardWidth, CardHeight, base, c.palette.Text)

	if c.hasStamp {
		x := CardWidth - 7
		cv.text(x, 1, "┌───┐", c.palette.Text, false)
		cv.text(x, 2, "│   │", c.palette.Text, false)
		cv.text(x+2, 2, c.stamp.Glyph, c.palette.Text, false)
		cv.text(x, 3, "└───┘", c.palette.Text, false)
	}

	const maxTitleLines = 4
	lines := textutil.Wrap(c.Letter.Title, CardWidth-4)
	if len(lines) > maxTitleLines {
		lines = lines[:maxTitleLines]
		lines[maxTitleLines-1] = textutil.Truncate(lines[maxTitleLines-1]+" …", CardWidth-4)
	}
	top := CardHeight - 1 - len(lines)
	for i, l := range lines {
		cv.text(2, top+i, l, c.palette.Text, true)
	}
	return cv
}

// back is the flap side. Closed flap: a downward wedge in the darker shade.
// Open flap: the interior shows, with the hinge along the top row. The
// folded paper pokes out while the contents are visible but not expanded.
func (c *CardView) back() *canvas {
	v := c.Vector()
	base, darker, darkest := c.palette.Base.Hex(), c.palette.Darker.Hex(), c.palette.Darkest.Hex()
	cv := newCanvas(CardWidth, CardHeight, base, c.palette.Text)

	// Bottom flap: an upward wedge in the darkest shade.
	for row := 0; row < CardHeight-flapDepth; row++ {
		y := CardHeight - 1 - row
		inset := row * 4
		cv.fill(inset, y, CardWidth-2*inset, 1, darkest)
	}

	if v.FlapOpen {
		for y := 0; y < flapDepth; y++ {
			cv.fill(0, y, CardWidth, 1, c.interior.Hex())
		}
		for x := 0; x < CardWidth; x++ {
			cv.text(x, 0, "▔", darker, false)
		}
	} else {
		for y := 0; y < flapDepth; y++ {
			inset := y * 3
			cv.fill(inset, y, CardWidth-2*inset, 1, darker)
		}
	}

	if v.ContentsVisible && !v.ContentsExpanded {
		const paperW, paperH = 22, 5
		x := (CardWidth - paperW) / 2
		cv.fill(x, 1, paperW, paperH, ColorPaper)
		for _, y := range []int{1 + paperH/3, 1 + 2*paperH/3} {
			for xx := x + 1; xx < x+paperW-1; xx++ {
				cv.text(xx, y, "┄", ColorPaperFold, false)
			}
		}
	}
	return cv
}
