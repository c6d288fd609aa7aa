package styles

import (
	"dexview/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the style set for the default theme
var Theme = FromConfig(config.New())

// FromConfig builds styles from the theme colors of cfg
func FromConfig(cfg *config.Config) Styles {
	t := cfg.Theme
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Primary)).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Width(CardWidth-2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Width(CardWidth-2).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Emphasis)).
			Padding(0, 1),
		CardLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		CardName: lipgloss.NewStyle().
			Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1).
			MarginRight(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Error)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5A9")),
		Pager: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		PagerOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Emphasis)),
		Close: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Search: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}
