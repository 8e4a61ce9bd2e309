package cli

import (
	"fmt"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newRoutesCommand() *cobra.Command {
	var tabsOnly bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the screens",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := screen.Default()

			descs := registry.All()
			if tabsOnly {
				descs = registry.Tabs()
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ROUTE", "TITLE", "ICON", "TAB")
			for _, d := range descs {
				tab := ""
				if d.Tab {
					tab = "yes"
				}
				t.Row(d.Route.String(), d.Title, string(d.Icon), tab)
			}

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&tabsOnly, "tabs", false, "only list bottom navigation entries")

	return cmd
}
