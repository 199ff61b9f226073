// Package charts renders the spending visualizations on a terminal
// canvas. All styling comes in through an explicit Style value so the
// renderers hold no process-wide state.
package charts

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alanw/fintrack/internal/theme"
)

// Style configures every renderer in this package.
type Style struct {
	Width  int
	Height int

	Title  lipgloss.Style
	Bar    lipgloss.Style
	Line   lipgloss.Style
	Marker lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
}

// DefaultStyle returns the stock chart appearance at the given width.
func DefaultStyle(width, height int) Style {
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}
	return Style{
		Width:  width,
		Height: height,
		Title:  lipgloss.NewStyle().Foreground(theme.Peach).Bold(true),
		Bar:    lipgloss.NewStyle().Foreground(theme.Blue),
		Line:   lipgloss.NewStyle().Foreground(theme.Peach),
		Marker: lipgloss.NewStyle().Foreground(theme.Yellow),
		Axis:   lipgloss.NewStyle().Foreground(theme.Surface2),
		Label:  lipgloss.NewStyle().Foreground(theme.Overlay1),
	}
}
