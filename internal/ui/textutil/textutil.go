// Package textutil provides unicode-aware text layout for terminal rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies, ignoring ANSI styling.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most max columns, ending with Ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, Ellipsis)
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// PadLeft right-aligns s within width columns, truncating if it is wider.
func PadLeft(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return Truncate(s, width)
	}
	return runewidth.FillLeft(s, width)
}

// Center places s in the middle of width columns.
func Center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Wrap word-wraps s to width columns. Existing line breaks are kept, so
// blank lines between paragraphs survive. Words longer than width are split.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, w := range words {
		for runewidth.StringWidth(w) > width {
			if curW > 0 {
				flush()
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// a single rune wider than the line
				head = string([]rune(w)[:1])
			}
			lines = append(lines, head)
			w = w[len(head):]
		}
		ww := runewidth.StringWidth(w)
		if ww == 0 {
			continue
		}
		switch {
		case curW == 0:
			cur.WriteString(w)
			curW = ww
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curW += 1 + ww
		default:
			flush()
			cur.WriteString(w)
			curW = ww
		}
	}
	if curW > 0 {
		flush()
	}
	return lines
}
