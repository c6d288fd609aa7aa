package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the terminal viewer draws with
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	CardLabel    lipgloss.Style
	CardName     lipgloss.Style
	Badge        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Pager        lipgloss.Style
	PagerOff     lipgloss.Style
	Overlay      lipgloss.Style
	OverlayTitle lipgloss.Style
	Close        lipgloss.Style
	Search       lipgloss.Style
}

// CardWidth is the outer width of one card, borders included
const CardWidth = 24

// RenderBadge renders a category badge on its category color
func (s Styles) RenderBadge(name, color string) string {
	return s.Badge.Background(lipgloss.Color(color)).Render(name)
}
