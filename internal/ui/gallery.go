package ui

import (
	"fmt"
	"strings"

	"openwhen/internal/envelope"
	"openwhen/internal/letter"
	"openwhen/internal/logging"
	"openwhen/internal/stamp"
	"openwhen/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// wheelStep is how many rows one mouse-wheel notch scrolls the gallery.
const wheelStep = 3

// Options configures a GalleryModel. Zero values get sensible defaults.
type Options struct {
	Heading   string
	Signature string
	Timing    envelope.Timing
	Stamps    stamp.Resolver
	Observer  envelope.Observer
	Log       logrus.FieldLogger
	NewID     func() string // per-card identifier; defaults to a UUID
}

// GalleryModel is the root model: a grid of cards with the overlays drawn
// above it. Cards never talk to each other; the gallery only routes messages
// and keeps the overlay stack in step with each card's phase.
type GalleryModel struct {
	Heading  string
	Cards    []*CardView
	Overlays OverlayStack
	Selected int
	Keys     KeyMap

	help     help.Model
	byID     map[string]*CardView
	overlays map[string]*LetterOverlay
	width    int
	height   int
	scroll   int
	log      logrus.FieldLogger
}

// Ensure GalleryModel implements tea.Model.
var _ tea.Model = (*GalleryModel)(nil)

// NewGalleryModel builds one card per record, in order.
func NewGalleryModel(set letter.Set, opts Options) (*GalleryModel, error) {
	if opts.Timing == (envelope.Timing{}) {
		opts.Timing = envelope.DefaultTiming()
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	g := &GalleryModel{
		Heading:  opts.Heading,
		Keys:     DefaultKeyMap(),
		help:     newHelpModel(),
		byID:     make(map[string]*CardView, len(set)),
		overlays: make(map[string]*LetterOverlay, len(set)),
		log:      opts.Log,
	}
	for _, rec := range set {
		id := opts.NewID()
		if _, dup := g.byID[id]; dup {
			return nil, fmt.Errorf("duplicate card id %q", id)
		}
		c, err := NewCardView(id, rec, opts.Timing, opts.Stamps, opts.Observer)
		if err != nil {
			return nil, err
		}
		if c.hasStamp && c.stamp.Path != "" && !c.stamp.Found {
			g.log.WithFields(logrus.Fields{"letter": rec.ID, "asset": c.stamp.Path}).Warn("stamp asset not found")
		}
		g.Cards = append(g.Cards, c)
		g.byID[id] = c
		g.overlays[id] = NewLetterOverlay(id, rec.Message, opts.Signature, opts.Timing.Reveal)
	}
	g.setSelected(0)
	return g, nil
}

// Card returns the card with the given id.
func (g *GalleryModel) Card(id string) (*CardView, bool) {
	c, ok := g.byID[id]
	return c, ok
}

// Overlay returns the overlay belonging to card id.
func (g *GalleryModel) Overlay(id string) (*LetterOverlay, bool) {
	o, ok := g.overlays[id]
	return o, ok
}

// Init implements tea.Model.
func (g *GalleryModel) Init() tea.Cmd {
	if g.Heading == "" {
		return nil
	}
	return tea.SetWindowTitle(g.Heading)
}

// Update implements tea.Model.
func (g *GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width, g.height = msg.Width, msg.Height
		g.help.Width = msg.Width
		for _, o := range g.overlays {
			o.SetSize(msg.Width, msg.Height)
		}
		g.ensureVisible()
		return g, nil
	case stepMsg:
		c, ok := g.byID[msg.Step.Card]
		if !ok {
			return g, nil
		}
		_, cmd := c.Update(msg)
		return g, tea.Batch(cmd, g.syncOverlay(c))
	case revealMsg:
		if o, ok := g.overlays[msg.Card]; ok {
			_, cmd := o.Update(msg)
			return g, cmd
		}
		return g, nil
	case tea.KeyMsg:
		return g, g.handleKey(msg)
	case tea.MouseMsg:
		return g, g.handleMouse(msg)
	}
	return g, nil
}

func (g *GalleryModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, g.Keys.Quit):
		return tea.Quit
	case key.Matches(msg, g.Keys.Help):
		g.help.ShowAll = !g.help.ShowAll
		g.ensureVisible()
		return nil
	case key.Matches(msg, g.Keys.Close):
		return g.CloseExpanded()
	}

	// While a letter is shown, toggle closes it and everything else scrolls it.
	if top, ok := g.Overlays.Peek(); ok {
		if key.Matches(msg, g.Keys.Toggle) {
			return g.toggle(g.byID[top.Card])
		}
		cmd, _ := g.Overlays.UpdateTop(msg)
		return cmd
	}

	if len(g.Cards) == 0 {
		return nil
	}
	grid := g.grid()
	switch {
	case key.Matches(msg, g.Keys.Up):
		g.setSelected(grid.Move(g.Selected, 0, -1))
	case key.Matches(msg, g.Keys.Down):
		g.setSelected(grid.Move(g.Selected, 0, 1))
	case key.Matches(msg, g.Keys.Left):
		g.setSelected(grid.Move(g.Selected, -1, 0))
	case key.Matches(msg, g.Keys.Right):
		g.setSelected(grid.Move(g.Selected, 1, 0))
	case key.Matches(msg, g.Keys.Toggle):
		return g.toggle(g.Cards[g.Selected])
	}
	return nil
}

func (g *GalleryModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if g.Overlays.Len() > 0 {
			cmd, _ := g.Overlays.UpdateTop(msg)
			return cmd
		}
		if msg.Button == tea.MouseButtonWheelUp {
			g.scrollBy(-wheelStep)
		} else {
			g.scrollBy(wheelStep)
		}
		return nil
	case tea.MouseButtonLeft:
		return g.Click(msg.X, msg.Y)
	}
	return nil
}

// Click handles a pointer press at screen cell x,y. A press inside a card
// toggles it. Every other card whose contents are expanded is closed, as is
// every expanded card when an overlay covers the grid.
func (g *GalleryModel) Click(x, y int) tea.Cmd {
	covered := g.Overlays.Len() > 0
	var cmds []tea.Cmd
	for i, c := range g.Cards {
		if !covered && g.ScreenRect(i).Contains(x, y) {
			g.setSelected(i)
			g.log.WithFields(logrus.Fields{"card": c.ID, "letter": c.Letter.ID}).Debug("card clicked")
			cmds = append(cmds, g.toggle(c))
			continue
		}
		if c.Vector().ContentsExpanded {
			cmds = append(cmds, g.closeCard(c))
		}
	}
	return tea.Batch(cmds...)
}

// Toggle selects card i and opens or closes it.
func (g *GalleryModel) Toggle(i int) tea.Cmd {
	if i < 0 || i >= len(g.Cards) {
		return nil
	}
	g.setSelected(i)
	return g.toggle(g.Cards[i])
}

// CloseExpanded closes every card whose contents are expanded. Cards still
// mid-sequence are left alone.
func (g *GalleryModel) CloseExpanded() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range g.Cards {
		if c.Vector().ContentsExpanded {
			cmds = append(cmds, g.closeCard(c))
		}
	}
	return tea.Batch(cmds...)
}

func (g *GalleryModel) toggle(c *CardView) tea.Cmd {
	if c == nil {
		return nil
	}
	cmd := c.Toggle()
	if cmd == nil {
		g.log.WithFields(logrus.Fields{"card": c.ID, "phase": c.Phase().String()}).Debug("toggle ignored")
		return nil
	}
	return tea.Batch(cmd, g.syncOverlay(c))
}

func (g *GalleryModel) closeCard(c *CardView) tea.Cmd {
	cmd := c.Close()
	if cmd == nil {
		g.log.WithFields(logrus.Fields{"card": c.ID, "phase": c.Phase().String()}).Debug("close ignored")
		return nil
	}
	return tea.Batch(cmd, g.syncOverlay(c))
}

// syncOverlay shows the card's overlay while its contents are expanded.
func (g *GalleryModel) syncOverlay(c *CardView) tea.Cmd {
	o := g.overlays[c.ID]
	expanded := c.Vector().ContentsExpanded
	if o == nil || o.Visible() == expanded {
		return nil
	}
	cmd := o.SetVisible(expanded)
	if expanded {
		o.SetSize(g.width, g.height)
		g.Overlays.Push(o)
	} else {
		g.Overlays.Remove(c.ID)
	}
	return cmd
}

func (g *GalleryModel) setSelected(i int) {
	if i < 0 || i >= len(g.Cards) {
		return
	}
	for j, c := range g.Cards {
		c.Selected = j == i
	}
	g.Selected = i
	g.ensureVisible()
}

func (g *GalleryModel) grid() Grid {
	return Grid{Cols: Columns(g.width), Count: len(g.Cards)}
}

// ScreenRect returns where card i is drawn on screen, after scrolling.
func (g *GalleryModel) ScreenRect(i int) Rect {
	r := g.grid().CardRect(i)
	r.Y -= g.scroll
	return r
}

func (g *GalleryModel) viewHeight() int {
	return g.height - lipgloss.Height(g.help.View(g.Keys))
}

func (g *GalleryModel) scrollBy(n int) {
	g.scroll += n
	g.clampScroll()
}

func (g *GalleryModel) clampScroll() {
	limit := g.grid().Height() - g.viewHeight()
	if g.height <= 0 || limit < 0 {
		limit = 0
	}
	if g.scroll > limit {
		g.scroll = limit
	}
	if g.scroll < 0 {
		g.scroll = 0
	}
}

// ensureVisible scrolls so the selected card is on screen.
func (g *GalleryModel) ensureVisible() {
	if g.height <= 0 || len(g.Cards) == 0 {
		g.scroll = 0
		return
	}
	grid := g.grid()
	r := grid.CardRect(g.Selected)
	top := r.Y
	if g.Selected < grid.Cols {
		top = 0 // keep the heading in view on the first row
	}
	bottom := r.Y + RowPitch
	if top < g.scroll {
		g.scroll = top
	}
	if vh := g.viewHeight(); bottom > g.scroll+vh {
		g.scroll = bottom - vh
	}
	g.clampScroll()
}

// View implements tea.Model. The top overlay, when present, covers the screen.
func (g *GalleryModel) View() string {
	if top, ok := g.Overlays.Peek(); ok {
		return top.View()
	}
	content := g.Render()
	helpView := g.help.View(g.Keys)
	if g.height <= 0 {
		return content + "\n" + helpView
	}
	lines := strings.Split(content, "\n")
	vh := g.viewHeight()
	start := g.scroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + vh
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]
	for len(visible) < vh {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n") + "\n" + helpView
}

// Render draws the heading and the full card grid, unscrolled.
func (g *GalleryModel) Render() string {
	grid := g.grid()
	margin := strings.Repeat(" ", gridLeft)
	gridWidth := grid.Cols*CellWidth - (CellWidth - cardOuterWidth)

	var b strings.Builder
	b.WriteString(margin + Styles.Heading.Render(textutil.Center(g.Heading, gridWidth)))
	b.WriteString("\n")

	cell := lipgloss.NewStyle().Width(CellWidth)
	for row := 0; row < grid.Rows(); row++ {
		var cells []string
		for col := 0; col < grid.Cols; col++ {
			i := row*grid.Cols + col
			if i >= len(g.Cards) {
				break
			}
			cells = append(cells, cell.Render(g.Cards[i].View()))
		}
		block := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		b.WriteString("\n")
		for _, l := range strings.Split(block, "\n") {
			b.WriteString(margin + l + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
