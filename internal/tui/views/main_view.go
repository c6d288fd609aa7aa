package views

import (
	"strings"

	"dexview/internal/tui/common"
	"dexview/internal/tui/components"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const title = "dexview"

// RenderMainView draws the whole screen. While the overlay is open it is
// centered on an empty scrim that covers everything else.
func RenderMainView(m common.ModelReader) string {
	s := m.Screen()
	st := m.Styles()
	width, height := m.Size()

	if s.Overlay.Open {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, OverlayBox(m))
	}

	var sb strings.Builder
	sb.WriteString(header(m) + "\n")
	if grid := components.RenderGrid(s.Cards, s.Selected, width, st); grid != "" {
		sb.WriteString(grid + "\n")
	}
	if pager := components.RenderPager(s.Pagination, st); pager != "" {
		sb.WriteString(pager + "\n")
	}
	sb.WriteString("\n" + m.HelpView())

	return st.App.Render(sb.String())
}

// header is everything above the card grid
func header(m common.ModelReader) string {
	st := m.Styles()
	lines := []string{
		st.Title.Render(title),
		st.Search.Render(m.SearchView()),
	}
	if status := m.StatusView(); status != "" {
		lines = append(lines, status)
	}
	return strings.Join(lines, "\n")
}

// OverlayBox renders the detail box on its own
func OverlayBox(m common.ModelReader) string {
	s := m.Screen()
	return components.RenderOverlay(s.Overlay.Detail, m.SpriteArt(s.Overlay.Generation), m.Styles())
}

func overlayOrigin(m common.ModelReader, box string) (int, int) {
	width, height := m.Size()
	left := max(0, (width-lipgloss.Width(box))/2)
	top := max(0, (height-lipgloss.Height(box))/2)
	return left, top
}

// InOverlay reports whether the cell at x, y falls inside the centered
// overlay box
func InOverlay(m common.ModelReader, x, y int) bool {
	box := OverlayBox(m)
	left, top := overlayOrigin(m, box)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	return x >= left && x < left+w && y >= top && y < top+h
}

// OnOverlayClose reports whether the cell at x, y is on the close control
func OnOverlayClose(m common.ModelReader, x, y int) bool {
	box := OverlayBox(m)
	left, top := overlayOrigin(m, box)
	for row, line := range strings.Split(box, "\n") {
		plain := ansi.Strip(line)
		idx := strings.Index(plain, components.CloseLabel)
		if idx < 0 {
			continue
		}
		col := left + lipgloss.Width(plain[:idx])
		return y == top+row && x >= col && x < col+lipgloss.Width(components.CloseLabel)
	}
	return false
}

// CardAt returns the index of the card drawn under the cell at x, y
func CardAt(m common.ModelReader, x, y int) (int, bool) {
	s := m.Screen()
	if s.Overlay.Open || len(s.Cards) == 0 {
		return 0, false
	}
	st := m.Styles()
	width, _ := m.Size()

	left := st.App.GetMarginLeft() + st.App.GetBorderLeftSize() + st.App.GetPaddingLeft()
	top := st.App.GetMarginTop() + st.App.GetBorderTopSize() + st.App.GetPaddingTop() +
		lipgloss.Height(header(m))

	cols := components.Columns(width)
	for start := 0; start < len(s.Cards); start += cols {
		end := min(start+cols, len(s.Cards))
		cx, rowHeight := left, 0
		for i := start; i < end; i++ {
			card := components.RenderCard(s.Cards[i], i == s.Selected, st)
			w, h := lipgloss.Width(card), lipgloss.Height(card)
			if x >= cx && x < cx+w && y >= top && y < top+h {
				return i, true
			}
			cx += w
			rowHeight = max(rowHeight, h)
		}
		top += rowHeight
	}
	return 0, false
}
