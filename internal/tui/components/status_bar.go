package components

import (
	"dexview/internal/tui/styles"
	"dexview/internal/viewer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatusBar shows the status message, with a spinner while a request is in flight
type StatusBar struct {
	status  viewer.Status
	styles  styles.Styles
	spinner spinner.Model
}

func NewStatusBar(st styles.Styles) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Status

	return &StatusBar{
		styles:  st,
		spinner: s,
	}
}

// SetStyles re-themes the bar
func (s *StatusBar) SetStyles(st styles.Styles) {
	s.styles = st
	s.spinner.Style = st.Status
}

// SetStatus replaces the shown message
func (s *StatusBar) SetStatus(status viewer.Status) {
	s.status = status
}

// Loading reports whether the spinner is running
func (s *StatusBar) Loading() bool {
	return s.status.Busy()
}

// Tick starts the spinner
func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok || !s.status.Busy() {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

func (s *StatusBar) View() string {
	if !s.status.Visible() {
		return ""
	}
	if s.status.IsError() {
		return s.styles.Error.Render(s.status.Text)
	}
	if s.status.Busy() {
		return s.styles.Status.Render(s.spinner.View() + " " + s.status.Text)
	}
	return s.styles.Status.Render(s.status.Text)
}
