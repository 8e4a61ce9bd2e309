package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/tui"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var renderer string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the app",
		Long: `Open the app in an SDL window (default) or in the terminal.

Edits to the settings file's log_level are applied while the app runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if renderer != "" {
				cfg.Renderer = config.Renderer(renderer)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			switch cfg.Renderer {
			case config.RendererTUI:
				return runTUI(ctx, opts, cfg)
			default:
				return runSDL(ctx, opts, cfg)
			}
		},
	}

	cmd.Flags().StringVarP(&renderer, "renderer", "r", "", "renderer to use (sdl, tui); overrides the settings file")

	return cmd
}

func runSDL(ctx context.Context, opts *rootOptions, cfg config.Config) error {
	defer technoapp.Close()
	if err := technoapp.Init(technoapp.Options{Config: cfg}); err != nil {
		return err
	}

	logger := technoapp.GetLogger()
	go watchLogLevel(ctx, opts.configPath, logger, technoapp.ApplyLogLevel)

	c, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting", "renderer", cfg.Renderer, "start", cfg.StartRoute)
	return technoapp.Run(ctx, c)
}

func runTUI(ctx context.Context, opts *rootOptions, cfg config.Config) error {
	defer technoapp.CloseLogging()
	logger := tuiLogger(cfg)
	go watchLogLevel(ctx, opts.configPath, logger, technoapp.ApplyLogLevel)

	c, err := newController(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("Starting", "renderer", cfg.Renderer, "start", cfg.StartRoute)
	return tui.Run(ctx, c, cfg.AccentColor)
}

// tuiLogger is the shared app logger writing to the log file only; the
// terminal owns stdout. Without a log path records are dropped.
func tuiLogger(cfg config.Config) *slog.Logger {
	technoapp.SetConsoleLogging(false)
	if cfg.LogPath != "" {
		technoapp.SetLogPath(cfg.LogPath)
	}
	technoapp.ApplyLogLevel(cfg.LogLevel)
	return technoapp.GetLogger()
}

func watchLogLevel(ctx context.Context, path string, logger *slog.Logger, apply func(string)) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return
	}
	err := config.Watch(ctx, path, logger, func(cfg config.Config) {
		apply(cfg.LogLevel)
	})
	if err != nil {
		logger.Warn("Settings file not watched", "path", path, "error", err)
	}
}
