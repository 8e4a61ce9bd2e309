// Package config loads the TECHNO APP settings file.
//
// The file is TOML. Every key is optional; Default fills the gaps, and a
// few environment variables override the file (see Load).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/BurntSushi/toml"
)

// Renderer selects the shell that draws the screens.
type Renderer string

const (
	RendererSDL Renderer = "sdl"
	RendererTUI Renderer = "tui"
)

// RootBack decides what a back press on the start screen does.
type RootBack string

const (
	RootBackIgnore RootBack = "ignore"
	RootBackExit   RootBack = "exit"
)

// Window mirrors the SDL window flags the shell understands.
type Window struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Borderless bool  `toml:"borderless"`
	Resizable  bool  `toml:"resizable"`
	Fullscreen bool  `toml:"fullscreen"`
}

// BackButton configures the hardware back key read through evdev.
type BackButton struct {
	DevicePath string `toml:"device_path"` // Empty disables the listener
	KeyCode    uint16 `toml:"key_code"`    // Linux input key code, KEY_BACK by default
}

// Config is the decoded settings file.
type Config struct {
	StartRoute  screen.Route `toml:"start_route"`
	Renderer    Renderer     `toml:"renderer"`
	RootBack    RootBack     `toml:"root_back"`
	LogPath     string       `toml:"log_path"`
	LogLevel    string       `toml:"log_level"`
	AccentColor string       `toml:"accent_color"` // Hex, e.g. "#1976D2"
	FontPath    string       `toml:"font_path"`
	Window      Window       `toml:"window"`
	BackButton  BackButton   `toml:"back_button"`
}

// KeyBack is the Linux input code for the dedicated back key.
const KeyBack = 158

// Default returns the built-in settings.
func Default() Config {
	return Config{
		StartRoute:  screen.RouteLogin,
		Renderer:    RendererSDL,
		RootBack:    RootBackIgnore,
		LogLevel:    "info",
		AccentColor: "#1976D2",
		FontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		Window: Window{
			Width:     1024,
			Height:    768,
			Resizable: true,
		},
		BackButton: BackButton{
			KeyCode: KeyBack,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path, or one that does not exist, yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: %w", err)
		default:
			if err := decode(string(data), &cfg); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a TOML document over the defaults, without environment
// overrides.
func Parse(data string) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %s", undecoded[0])
	}
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererSDL, RendererTUI:
	default:
		return fmt.Errorf("config: renderer %q must be %q or %q", c.Renderer, RendererSDL, RendererTUI)
	}
	switch c.RootBack {
	case RootBackIgnore, RootBackExit:
	default:
		return fmt.Errorf("config: root_back %q must be %q or %q", c.RootBack, RootBackIgnore, RootBackExit)
	}
	if _, err := c.Accent(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Accent parses AccentColor into 0xRRGGBB.
func (c Config) Accent() (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(c.AccentColor), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return 0, fmt.Errorf("config: accent_color %q is not #RRGGBB", c.AccentColor)
	}
	return uint32(v), nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(constants.RendererEnvVar); v != "" {
		cfg.Renderer = Renderer(strings.ToLower(v))
	}
	if !constants.IsDevMode() {
		return
	}
	cfg.Window.Borderless = false
	if n, err := strconv.ParseInt(os.Getenv(constants.WindowWidthEnvVar), 10, 32); err == nil && n > 0 {
		cfg.Window.Width = int32(n)
	}
	if n, err := strconv.ParseInt(os.Getenv(constants.WindowHeightEnvVar), 10, 32); err == nil && n > 0 {
		cfg.Window.Height = int32(n)
	}
}
