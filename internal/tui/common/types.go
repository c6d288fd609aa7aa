package common

import (
	"dexview/internal/tui/styles"
	"dexview/internal/viewer"
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Screen() viewer.Screen
	Styles() styles.Styles
	SearchView() string
	StatusView() string
	HelpView() string
	SpriteArt(generation uint64) string
	Size() (width, height int)
}
