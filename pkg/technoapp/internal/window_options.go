package internal

import (
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/config"
	"github.com/veandco/go-sdl2/sdl"
)

type WindowOptions struct {
	Width      int32
	Height     int32
	Borderless bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable  bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
}

// WindowOptionsFromConfig copies the [window] table of the settings file.
func WindowOptionsFromConfig(w config.Window) WindowOptions {
	return WindowOptions{
		Width:      w.Width,
		Height:     w.Height,
		Borderless: w.Borderless,
		Resizable:  w.Resizable,
		Fullscreen: w.Fullscreen,
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)

	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
