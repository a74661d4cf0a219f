package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/splitrand/worldgen"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	WaterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#45B7D1"))

	SandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))

	GrassStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	ForestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E8B57")).
			Bold(true)

	RockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A9A9A9")).
			Bold(true)
)

func tileStyle(t worldgen.Tile) lipgloss.Style {
	switch t {
	case worldgen.Water:
		return WaterStyle
	case worldgen.Sand:
		return SandStyle
	case worldgen.Grass:
		return GrassStyle
	case worldgen.Forest:
		return ForestStyle
	default:
		return RockStyle
	}
}
