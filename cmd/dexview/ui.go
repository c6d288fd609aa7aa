package main

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func headerText(s string) string { return headerStyle.Render(s) }
func errorText(s string) string  { return errorStyle.Render(s) }
func warnText(s string) string   { return warnStyle.Render(s) }
func mutedText(s string) string  { return mutedStyle.Render(s) }
