package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal column of a canvas.
type cell struct {
	s    string // "" for the right half of a wide rune
	bg   string
	fg   string
	bold bool
}

// canvas is a fixed-size grid of colored cells. Every cell carries its own
// background, so nested styling never resets the card color mid-line.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int, bg, fg string) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{s: " ", bg: bg, fg: fg}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// fill paints a rectangle with bg and clears its text.
func (c *canvas) fill(x, y, w, h int, bg string) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if c.in(xx, yy) {
				c.cells[yy][xx] = cell{s: " ", bg: bg, fg: c.cells[yy][xx].fg}
			}
		}
	}
}

// text writes s starting at x,y in fg, keeping each cell's background.
// Text past the right edge is dropped.
func (c *canvas) text(x, y int, s, fg string, bold bool) {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if !c.in(x, y) || !c.in(x+rw-1, y) {
			return
		}
		bg := c.cells[y][x].bg
		c.cells[y][x] = cell{s: string(r), bg: bg, fg: fg, bold: bold}
		for i := 1; i < rw; i++ {
			c.cells[y][x+i] = cell{s: "", bg: bg, fg: fg, bold: bold}
		}
		x += rw
	}
}

// render emits the canvas, one styled run per stretch of identical cells.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b, run strings.Builder
		var cur cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Background(lipgloss.Color(cur.bg)).
				Foreground(lipgloss.Color(cur.fg)).
				Bold(cur.bold)
			b.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x, cl := range row {
			if x == 0 || cl.bg != cur.bg || cl.fg != cur.fg || cl.bold != cur.bold {
				flush()
				cur = cl
			}
			run.WriteString(cl.s)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// plain returns the canvas text without styling, for tests and snapshots.
func (c *canvas) plain() string {
	lines := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteString(cl.s)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
