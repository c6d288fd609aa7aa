package components

import (
	"strings"

	"dexview/internal/render"
	"dexview/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// CloseLabel is the clickable close control in the overlay header
const CloseLabel = "[x] close"

// RenderOverlay draws the detail box. art may be empty while the sprite loads.
func RenderOverlay(d render.Detail, art string, st styles.Styles) string {
	header := st.OverlayTitle.Render(d.Label + "  " + d.Name)
	closeHint := st.Close.Render(CloseLabel)

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, header, "    ", closeHint),
		"",
	}
	if art != "" {
		lines = append(lines, art, "")
	}
	lines = append(lines,
		RenderBadges(d.Badges, st),
		"",
		"Height: "+d.HeightText(),
		"Weight: "+d.WeightText(),
	)
	return st.Overlay.Render(strings.Join(lines, "\n"))
}
