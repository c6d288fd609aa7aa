package main

import (
	"os"
	"path/filepath"

	"dexview/internal/log"
	"dexview/internal/tui"

	"github.com/spf13/cobra"
)

// NewTUICmd creates the tui command
func NewTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal viewer",
		Long:  `Start the full-screen terminal viewer. Logs go to the log file while it runs.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	if path := opts.cfg.Log.File; path != "" {
		f, err := openLogFile(path)
		if err != nil {
			log.Warnf("Logging to stderr: %v", err)
		} else {
			log.SetOutput(f)
			defer func() {
				log.SetOutput(cmd.ErrOrStderr())
				f.Close()
			}()
		}
	}
	return tui.Run(cmd.Context(), opts.client(), opts.cfg, opts.watchPath())
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
