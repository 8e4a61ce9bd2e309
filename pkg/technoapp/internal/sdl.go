package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window and the fonts. Call SDLCleanup on exit,
// also when Init fails part way.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor()

	w, err := initWindow(title, winOpts)
	if err != nil {
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		return err
	}

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
