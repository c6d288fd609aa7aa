//go:build nogui
// +build nogui

package gui

import (
	"context"

	"dexview/internal/config"
	"dexview/internal/errors"
	"dexview/internal/viewer"
)

// Run is a stub for builds with the GUI disabled
func Run(ctx context.Context, source viewer.Source, cfg *config.Config) error {
	return errors.New("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
