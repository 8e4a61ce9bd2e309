// Package technoapp is the graphical shell of TECHNO APP.
//
// Init opens an SDL window sized and themed from the settings file, Run
// draws an app.Controller frame by frame and feeds it keyboard, game
// controller and hardware back key input, and Close releases everything.
package technoapp

import (
	"log/slog"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/internal"
)

// Options configures the shell.
type Options struct {
	WindowTitle string        // Window title displayed in windowed mode
	Config      config.Config // Window, theme, log and back button settings
}

var backButton internal.BackButtonConfig

// Init initializes SDL, the window, fonts and theming. It must be called
// before Run. Close must be called afterwards even when Init fails.
func Init(options Options) error {
	cfg := options.Config

	if cfg.LogPath != "" {
		internal.SetLogPath(cfg.LogPath)
	}
	ApplyLogLevel(cfg.LogLevel)

	accent, err := cfg.Accent()
	if err != nil {
		return NewInfrastructureError("theme", err)
	}
	internal.SetTheme(internal.DefaultTheme(cfg.FontPath, accent))

	backButton = internal.BackButtonConfig{
		DevicePath: cfg.BackButton.DevicePath,
		KeyCode:    cfg.BackButton.KeyCode,
	}

	if options.WindowTitle == "" {
		options.WindowTitle = "TECHNO APP"
	}

	if err := internal.Init(options.WindowTitle, internal.WindowOptionsFromConfig(cfg.Window)); err != nil {
		return NewInfrastructureError("init", err)
	}

	GetLogger().Info("Shell initialized", "width", cfg.Window.Width, "height", cfg.Window.Height)
	return nil
}

// Close releases all SDL resources.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetConsoleLogging turns the stdout copy of log records on or off.
// Call before Init or the first GetLogger.
func SetConsoleLogging(enabled bool) {
	internal.SetConsoleOutput(enabled)
}

// GetLogger returns the application logger. Every record carries the
// session id.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SessionID identifies this run in the logs.
func SessionID() string {
	return internal.SessionID()
}

// ApplyLogLevel sets both the application and the shell logger from a
// string such as "debug" or "warn". Settings reloads go through here.
func ApplyLogLevel(level string) {
	internal.SetRawLogLevel(level)
	internal.SetInternalLogLevel(internal.ParseLevel(level))
}

// CloseLogging closes the log file. Close does this for the SDL shell.
func CloseLogging() {
	internal.CloseLogger()
}
