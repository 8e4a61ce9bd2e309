package cli

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/catalog"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/messages"
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	var suggestions int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the people list the way the search box does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			query := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			results := cat.Search(query)
			for _, name := range results {
				fmt.Fprintln(out, name)
			}
			if len(results) > 0 {
				return nil
			}

			for _, name := range cat.Suggest(query, suggestions) {
				fmt.Fprintln(out, messages.T(messages.SearchSuggestion, map[string]any{"Name": name}))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&suggestions, "suggestions", "n", 3, "near matches to offer when nothing matches")

	return cmd
}
