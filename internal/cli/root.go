// Package cli holds the technoapp command tree.
package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// load reads the settings file and applies the --log-level flag.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func newController(cfg config.Config, logger *slog.Logger) (*app.Controller, error) {
	return app.New(app.Options{
		Registry: screen.Default(),
		Start:    cfg.StartRoute,
		RootBack: cfg.RootBack,
		Logger:   logger,
	})
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "technoapp",
		Short: "TECHNO APP navigation shell",
		Long: `technoapp runs the TECHNO APP screens: sign in, account creation and the
tabbed home, in an SDL window or in the terminal.

The other commands drive the same router and validators without a display.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "technoapp.toml", "settings file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newRoutesCommand())
	rootCmd.AddCommand(newWalkCommand(opts))
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "technoapp %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
