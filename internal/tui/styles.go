// ABOUTME: Lip Gloss styles and color bands for the dashboard.
// ABOUTME: Maps progress levels and calendar tiers onto terminal colors.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/drinks/internal/stats"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func levelColor(l stats.Level) lipgloss.Color {
	switch l {
	case stats.LevelOver:
		return lipgloss.Color("196")
	case stats.LevelClose:
		return lipgloss.Color("208")
	case stats.LevelHalfway:
		return lipgloss.Color("220")
	default:
		return lipgloss.Color("42")
	}
}

// tierColor picks a bright or dim shade of the tier color by intensity.
func tierColor(c stats.Classification) lipgloss.Color {
	strong := c.Intensity >= 0.45
	switch c.Tier {
	case stats.TierWithinLimit:
		if strong {
			return lipgloss.Color("220")
		}
		return lipgloss.Color("186")
	case stats.TierOverLimit:
		if strong {
			return lipgloss.Color("196")
		}
		return lipgloss.Color("174")
	default:
		return lipgloss.Color("29")
	}
}
