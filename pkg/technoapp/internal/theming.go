package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the shell.
type Theme struct {
	AccentColor         sdl.Color // Buttons and the selected tab
	ButtonLabelColor    sdl.Color // Text inside buttons
	TextColor           sdl.Color // Default text color
	HintColor           sdl.Color // Placeholders and disabled buttons
	ErrorColor          sdl.Color // Inline validation reasons
	SurfaceColor        sdl.Color // Cards, fields and the tab bar
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Optional image drawn behind every screen
}

var currentTheme = DefaultTheme("", 0x1976D2)

// DefaultTheme builds the TECHNO APP theme around an accent colour.
func DefaultTheme(fontPath string, accent uint32) Theme {
	return Theme{
		AccentColor:      HexToColor(accent),
		ButtonLabelColor: HexToColor(0xFFFFFF),
		TextColor:        HexToColor(0x0D1B2A),
		HintColor:        HexToColor(0x78909C),
		ErrorColor:       HexToColor(0xC62828),
		SurfaceColor:     HexToColor(0xFFFFFF),
		FontPath:         fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque colour.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
