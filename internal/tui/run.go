package tui

import (
	"context"

	"dexview/internal/config"
	"dexview/internal/log"
	"dexview/internal/tui/messages"
	"dexview/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal viewer and blocks until it quits. When
// configPath is set the file is watched and theme edits apply live.
func Run(ctx context.Context, source viewer.Source, cfg *config.Config, configPath string) error {
	m := New(ctx, source, cfg)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if configPath != "" {
		w, err := config.Watch(configPath, func(c *config.Config) {
			p.Send(messages.ConfigUpdateMsg{Config: c})
		})
		if err != nil {
			log.Warnf("Config reload disabled: %v", err)
		} else {
			defer w.Stop()
		}
	}

	_, err := p.Run()
	return err
}
