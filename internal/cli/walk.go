package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/router"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/spf13/cobra"
)

func newWalkCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "walk STEP...",
		Short: "Drive the screens without a display and print the back stack",
		Long: `Apply each step in order and print the back stack after it.

Steps:
  primary            press the screen's main button
  secondary          press the screen's secondary button
  back               go back
  tab=ROUTE          select a bottom navigation entry
  go=ROUTE           navigate without options
  set=FIELD:VALUE    fill a form field
  search=TEXT        type into the search box

A blocked primary button prints the first failing field and the walk
goes on.`,
		Example: `  technoapp walk secondary set=email:ana@mail.com set=password:secret123 \
    set=confirmation:secret123 primary`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			c, err := newController(cfg, slog.New(slog.DiscardHandler))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStack(out, "start", c)
			for _, step := range args {
				if err := walkStep(c, step); err != nil {
					switch {
					case errors.Is(err, app.ErrGateClosed):
						fmt.Fprintf(out, "%-24s blocked (%v)\n", step, err)
						continue
					case errors.Is(err, app.ErrQuit):
						fmt.Fprintf(out, "%-24s quit\n", step)
						return nil
					}
					return fmt.Errorf("step %q: %w", step, err)
				}
				printStack(out, step, c)
			}
			return nil
		},
	}
}

func walkStep(c *app.Controller, step string) error {
	name, arg, _ := strings.Cut(step, "=")

	switch name {
	case "primary":
		return c.Primary()
	case "secondary":
		return c.Secondary()
	case "back":
		return c.Back()
	case "tab":
		route, err := screen.ParseRoute(arg)
		if err != nil {
			return err
		}
		return c.SelectTab(route)
	case "go":
		route, err := screen.ParseRoute(arg)
		if err != nil {
			return err
		}
		if err := c.Dispatcher().Post(router.To(route)); err != nil {
			return err
		}
		c.Pump()
		return nil
	case "set":
		field, value, ok := strings.Cut(arg, ":")
		if !ok {
			return errors.New("want set=FIELD:VALUE")
		}
		return c.Input(field, value)
	case "search":
		c.Search(arg)
		return nil
	default:
		return fmt.Errorf("unknown step %q", name)
	}
}

func printStack(out io.Writer, step string, c *app.Controller) {
	routes := c.Router().BackStack()
	names := make([]string, len(routes))
	for i, r := range routes {
		names[i] = r.String()
	}
	fmt.Fprintf(out, "%-24s %s\n", step, strings.Join(names, " > "))
}
