package main

import (
	"fmt"

	"dexview/internal/errors"
	"dexview/internal/viewer"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <name|id>",
		Short: "Look up one record by name or ID",
		Long: `Look up a single record by exact name or numeric ID and print its
details. Exits with status 1 when nothing matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if viewer.NormalizeQuery(args[0]) == "" {
				return errors.NewInvalidInputError("a name or ID is required", nil).WithContext("query", args[0])
			}

			ctrl := viewer.New(opts.client())
			ctrl.Do(cmd.Context(), ctrl.Search(args[0]))

			ov, ok := ctrl.OpenDetail(0)
			if !ok {
				return errors.New(ctrl.Screen().Status.Text)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				fmt.Fprintln(out, ctrl.Screen().Cards[0].Item.ToJSON())
				return nil
			}

			d := ov.Detail
			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.SetTitle(d.Label + " " + d.Name)
			t.AppendRows([]table.Row{
				{"Categories", badgeNames(d.Badges)},
				{"Height", d.HeightText()},
				{"Weight", d.WeightText()},
				{"Image", d.Image},
			})
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the record as JSON")

	return cmd
}
