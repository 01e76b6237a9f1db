package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - heading
	ColorHighlight = "205" // Magenta - selected card border, help keys
	ColorMuted     = "241" // Gray - hints, phase labels
	ColorDim       = "237" // Dark gray - unselected card border

	ColorPaper     = "#F8F5E6" // Letter paper
	ColorPaperFold = "#D8D2BC" // Fold creases on the paper
	ColorInk       = "#374151" // Message text
	ColorBackdrop  = "#141414" // Behind the overlay
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Heading      lipgloss.Style // Gallery heading
	CardSelected lipgloss.Style // Border around the selected card
	CardNormal   lipgloss.Style // Border around other cards
	Footer       lipgloss.Style // Line under each card
	Paper        lipgloss.Style // Overlay paper
	Hint         lipgloss.Style // Help/hint text
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	CardSelected: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	CardNormal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Paper: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorPaper)).
		Foreground(lipgloss.Color(ColorInk)).
		Padding(1, 4),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// newHelpModel returns a help.Model styled like the rest of the UI.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}
