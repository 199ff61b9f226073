// Package theme holds the Catppuccin Mocha palette shared by every
// rendering package. https://catppuccin.com/palette
package theme

import "github.com/charmbracelet/lipgloss"

const (
	Peach    lipgloss.Color = "#fab387"
	Yellow   lipgloss.Color = "#f9e2af"
	Green    lipgloss.Color = "#a6e3a1"
	Blue     lipgloss.Color = "#89b4fa"
	Lavender lipgloss.Color = "#b4befe"
	Red      lipgloss.Color = "#f38ba8"

	Text     lipgloss.Color = "#cdd6f4"
	Overlay1 lipgloss.Color = "#7f849c"
	Surface2 lipgloss.Color = "#585b70"
)
