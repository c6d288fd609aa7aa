package components

import (
	"strings"

	"dexview/internal/render"
	"dexview/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Columns is how many cards fit side by side in width cells
func Columns(width int) int {
	cols := width / styles.CardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// RenderBadges draws one colored badge per category
func RenderBadges(badges []render.Badge, st styles.Styles) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		parts[i] = st.RenderBadge(b.Name, b.Color)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderCard draws a single card
func RenderCard(card render.Card, selected bool, st styles.Styles) string {
	box := st.Card
	if selected {
		box = st.SelectedCard
	}
	body := strings.Join([]string{
		st.CardLabel.Render(card.Label),
		st.CardName.Render(card.Name),
		RenderBadges(card.Badges, st),
	}, "\n")
	return box.Render(body)
}

// RenderGrid wraps cards into rows that fit width, in order
func RenderGrid(cards []render.Card, selected, width int, st styles.Styles) string {
	if len(cards) == 0 {
		return ""
	}
	cols := Columns(width)
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, RenderCard(cards[i], i == selected, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
