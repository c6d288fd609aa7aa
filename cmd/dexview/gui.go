package main

import (
	"dexview/internal/errors"
	"dexview/internal/gui"

	"github.com/spf13/cobra"
)

// NewGUICmd creates the GUI command for the CLI
func NewGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the desktop viewer",
		Long:  `Launch the desktop version of dexview.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return errors.Newf("GUI not available in this build, use '%s tui'", cmd.Root().Name())
			}
			return gui.Run(cmd.Context(), opts.client(), opts.cfg)
		},
	}
}
