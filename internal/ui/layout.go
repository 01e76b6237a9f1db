package ui

// Card geometry, in terminal cells.
const (
	CardWidth  = 32 // face width
	CardHeight = 9  // face height

	cardOuterWidth  = CardWidth + 2  // with border
	cardOuterHeight = CardHeight + 2 // with border
	cardFooter      = 1              // phase line under the card

	// CellWidth is the horizontal pitch of the grid.
	CellWidth = cardOuterWidth + 2
	// RowPitch is the vertical pitch of the grid.
	RowPitch = cardOuterHeight + cardFooter + 1

	gridLeft     = 2 // left margin of the grid
	headerHeight = 2 // heading line and a blank line
)

// Breakpoints: one column below BreakpointMedium, two below BreakpointWide, else three.
const (
	BreakpointMedium = 2 * CellWidth
	BreakpointWide   = 3 * CellWidth
)

// Columns returns how many cards fit across width. A zero width (size not
// yet known) lays out the widest grid.
func Columns(width int) int {
	switch {
	case width <= 0:
		return 3
	case width < BreakpointMedium:
		return 1
	case width < BreakpointWide:
		return 2
	default:
		return 3
	}
}

// Rect is a region of the screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x,y is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Grid places cards in rows of Cols.
type Grid struct {
	Cols  int
	Count int
}

// Rows returns the number of rows needed.
func (g Grid) Rows() int {
	if g.Cols <= 0 {
		return 0
	}
	return (g.Count + g.Cols - 1) / g.Cols
}

// CardRect returns the bordered card area of card i in content coordinates
// (before scrolling).
func (g Grid) CardRect(i int) Rect {
	col, row := i%g.Cols, i/g.Cols
	return Rect{
		X: gridLeft + col*CellWidth,
		Y: headerHeight + row*RowPitch,
		W: cardOuterWidth,
		H: cardOuterHeight,
	}
}

// Height returns the total content height including the heading.
func (g Grid) Height() int {
	return headerHeight + g.Rows()*RowPitch
}

// Move returns the index reached from i by moving dx columns and dy rows,
// staying on i when the target does not exist.
func (g Grid) Move(i, dx, dy int) int {
	if g.Count == 0 || g.Cols <= 0 {
		return 0
	}
	col, row := i%g.Cols+dx, i/g.Cols+dy
	if col < 0 || col >= g.Cols || row < 0 {
		return i
	}
	j := row*g.Cols + col
	if j >= g.Count {
		return i
	}
	return j
}
