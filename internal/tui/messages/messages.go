package messages

import (
	"dexview/internal/config"
	"dexview/internal/viewer"
)

// ResultMsg carries a finished catalog request back to the update loop
type ResultMsg struct {
	Result viewer.Result
}

// SpriteMsg carries sprite art for the overlay opened with Generation
type SpriteMsg struct {
	Generation uint64
	Art        string
	Err        error
}

// ConfigUpdateMsg is sent when the config file changed on disk
type ConfigUpdateMsg struct {
	Config *config.Config
}
