package main

import (
	"fmt"
	"strings"

	"dexview/internal/errors"
	"dexview/internal/render"
	"dexview/internal/viewer"

	"github.com/gobwas/glob"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(opts *rootOptions) *cobra.Command {
	var (
		offset int
		limit  int
		match  string
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Long: `Fetch one listing page and print its cards as a table. Records that
cannot be fetched are left out. The next and previous cursors are printed so
they can be passed back with --cursor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if offset < 0 || limit < 0 {
				return errors.NewInvalidInputError("offset and limit must not be negative", nil).
					WithContext("offset", offset).
					WithContext("limit", limit)
			}

			var pattern glob.Glob
			if match != "" {
				var err error
				if pattern, err = glob.Compile(match); err != nil {
					return errors.NewInvalidInputError(fmt.Sprintf("invalid --match pattern %q", match), err).WithContext("match", match)
				}
			}

			client := opts.client()
			if cursor == "" && (cmd.Flags().Changed("offset") || cmd.Flags().Changed("limit")) {
				cursor = client.ListingURL(offset, limit)
			}

			ctrl := viewer.New(client)
			ctrl.Do(cmd.Context(), ctrl.Browse(cursor))
			s := ctrl.Screen()

			out := cmd.OutOrStdout()
			switch s.Status.Kind {
			case viewer.StatusError:
				return errors.New(s.Status.Text)
			case viewer.StatusEmpty:
				fmt.Fprintln(out, s.Status.Text)
				return nil
			}

			printCards(cmd, filterCards(s.Cards, pattern))

			next, previous := ctrl.Cursors()
			if previous != "" {
				fmt.Fprintf(out, "%s %s\n", headerText("Previous:"), previous)
			}
			if next != "" {
				fmt.Fprintf(out, "%s %s\n", headerText("Next:"), next)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "index of the first record")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "records per page (default from config)")
	cmd.Flags().StringVarP(&match, "match", "m", "", "only show names matching a glob pattern")
	cmd.Flags().StringVar(&cursor, "cursor", "", "listing cursor URL printed by a previous run")

	return cmd
}

func filterCards(cards []render.Card, pattern glob.Glob) []render.Card {
	if pattern == nil {
		return cards
	}
	var kept []render.Card
	for _, c := range cards {
		if pattern.Match(c.Name) {
			kept = append(kept, c)
		}
	}
	return kept
}

func badgeNames(badges []render.Badge) string {
	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	return strings.Join(names, ", ")
}

func printCards(cmd *cobra.Command, cards []render.Card) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Categories"})
	for _, c := range cards {
		t.AppendRow(table.Row{c.Label, c.Name, badgeNames(c.Badges)})
	}
	t.AppendFooter(table.Row{"", "Total", len(cards)})
	t.Render()
}
