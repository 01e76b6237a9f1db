package ui

import (
	"strings"
	"time"

	"openwhen/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Overlay paper bounds, in cells.
const (
	paperMaxWidth = 80
	paperMargin   = 4
	paperPadX     = 4 // matches Styles.Paper
	paperPadY     = 1
)

// revealMsg fades the message body in once an overlay has been visible for
// its reveal delay.
type revealMsg struct {
	Card string
	Gen  uint64
}

// LetterOverlay is the full-screen paper showing one card's message. It is
// drawn above the gallery rather than inside the card. The card controls it
// only through SetVisible; the overlay runs its own fade-in timer.
type LetterOverlay struct {
	Card      string
	Message   string
	Signature string

	visible  bool
	revealed bool
	gen      uint64
	reveal   time.Duration

	width, height int
	vp            viewport.Model
}

// Ensure LetterOverlay implements View.
var _ View = (*LetterOverlay)(nil)

// NewLetterOverlay creates a hidden overlay for card.
func NewLetterOverlay(card, message, signature string, reveal time.Duration) *LetterOverlay {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &LetterOverlay{
		Card:      card,
		Message:   message,
		Signature: signature,
		reveal:    reveal,
		vp:        vp,
	}
}

// Visible reports whether the overlay is shown.
func (o *LetterOverlay) Visible() bool { return o.visible }

// Revealed reports whether the message body has faded in.
func (o *LetterOverlay) Revealed() bool { return o.revealed }

// SetVisible shows or hides the overlay. Showing it starts the reveal timer;
// hiding it resets the body so the next showing fades in again.
func (o *LetterOverlay) SetVisible(visible bool) tea.Cmd {
	if visible == o.visible {
		return nil
	}
	o.visible = visible
	o.revealed = false
	o.gen++
	o.refresh()
	if !visible {
		return nil
	}
	card, gen := o.Card, o.gen
	return tea.Tick(o.reveal, func(time.Time) tea.Msg {
		return revealMsg{Card: card, Gen: gen}
	})
}

// SetSize fits the paper to a terminal of width x height.
func (o *LetterOverlay) SetSize(width, height int) {
	o.width, o.height = width, height
	o.refresh()
}

// paperSize returns the content area inside the paper padding.
func (o *LetterOverlay) paperSize() (w, h int) {
	w = paperMaxWidth
	if o.width > 0 && o.width-2*paperMargin < w {
		w = o.width - 2*paperMargin
	}
	w -= 2 * paperPadX
	if w < 10 {
		w = 10
	}
	// 85% of the screen, like a max-height modal.
	h = 20
	if o.height > 0 {
		h = o.height*85/100 - 2*paperPadY
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// lines returns the body text: the message with its line breaks, a blank
// line, then the signature aligned right.
func (o *LetterOverlay) lines(width int) []string {
	out := textutil.Wrap(o.Message, width)
	if o.Signature != "" {
		out = append(out, "", "")
		for _, l := range textutil.Wrap(o.Signature, width) {
			out = append(out, textutil.PadLeft(l, width))
		}
	}
	return out
}

// folded is shown before the reveal: blank paper with two creases.
func folded(width, height int) []string {
	out := make([]string, height)
	crease := strings.Repeat("┄", width)
	out[height/3] = crease
	out[2*height/3] = crease
	return out
}

func (o *LetterOverlay) refresh() {
	w, maxH := o.paperSize()
	body := o.lines(w)
	h := len(body)
	if h > maxH {
		h = maxH
	}
	o.vp.Width, o.vp.Height = w, h
	if o.revealed {
		o.vp.SetContent(strings.Join(body, "\n"))
	} else {
		o.vp.SetContent(strings.Join(folded(w, h), "\n"))
	}
	o.vp.GotoTop()
}

// Init implements View.
func (o *LetterOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View. Scroll keys and the mouse wheel move the body.
func (o *LetterOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.Card == o.Card && msg.Gen == o.gen && o.visible && !o.revealed {
			o.revealed = true
			o.refresh()
		}
		return o, nil
	case tea.WindowSizeMsg:
		o.SetSize(msg.Width, msg.Height)
		return o, nil
	}
	if !o.visible || !o.revealed {
		return o, nil
	}
	var cmd tea.Cmd
	o.vp, cmd = o.vp.Update(msg)
	return o, cmd
}

// View implements View. A hidden overlay renders nothing.
func (o *LetterOverlay) View() string {
	if !o.visible {
		return ""
	}
	w, _ := o.paperSize()
	// Pad every row so the paper background spans the full width.
	rows := strings.Split(o.vp.View(), "\n")
	for i, r := range rows {
		rows[i] = textutil.PadRight(r, w)
	}
	paper := Styles.Paper.Render(strings.Join(rows, "\n"))
	if o.width <= 0 || o.height <= 0 {
		return paper
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, paper,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(ColorBackdrop)))
}

// OverlayStack holds the visible overlays; the topmost is drawn and gets input.
type OverlayStack struct {
	Stack []*LetterOverlay
}

// Push puts o on top. An overlay already in the stack moves to the top.
func (s *OverlayStack) Push(o *LetterOverlay) {
	s.Remove(o.Card)
	s.Stack = append(s.Stack, o)
}

// Remove drops the overlay for card, wherever it is. Returns false if absent.
func (s *OverlayStack) Remove(card string) bool {
	for i, o := range s.Stack {
		if o.Card == card {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (*LetterOverlay, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop passes msg to the top overlay. Caller must run the cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	_, cmd := top.Update(msg)
	return cmd, true
}
