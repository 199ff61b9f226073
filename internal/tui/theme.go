package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alanw/fintrack/internal/charts"
	"github.com/alanw/fintrack/internal/theme"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(theme.Lavender)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Overlay1)
	loadedStyle = lipgloss.NewStyle().Foreground(theme.Green)
	errorStyle  = lipgloss.NewStyle().Foreground(theme.Red)
	inputStyle  = lipgloss.NewStyle().Foreground(theme.Text)
	footerStyle = lipgloss.NewStyle().Foreground(theme.Surface2)
)

// chartStyle builds the chart configuration for the current viewport.
// Chart colors come from the shared palette via charts.DefaultStyle.
func chartStyle(width, height int) charts.Style {
	return charts.DefaultStyle(width, height)
}
