package components

import (
	"dexview/internal/tui/styles"
	"dexview/internal/viewer"
)

// RenderPager draws the previous/next controls, or nothing when hidden
func RenderPager(p viewer.Pagination, st styles.Styles) string {
	if !p.Visible {
		return ""
	}
	prev := st.PagerOff.Render("‹ prev [p]")
	if p.CanBackward {
		prev = st.Pager.Render("‹ prev [p]")
	}
	next := st.PagerOff.Render("[n] next ›")
	if p.CanForward {
		next = st.Pager.Render("[n] next ›")
	}
	return prev + "   " + next
}
