package technoapp

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/internal"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/router"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"github.com/veandco/go-sdl2/sdl"
)

type shell struct {
	controller    *app.Controller
	window        *internal.Window
	directional   internal.DirectionalInput
	inputDelay    time.Duration
	lastInputTime time.Time
	route         screen.Route
	gateReason    string // Shown under the primary button after a blocked submit
	closed        bool
}

// Run draws c until the window is closed, ctx is done or c asks to quit.
// Navigation posted to c.Dispatcher() from other goroutines is applied
// between frames.
func Run(ctx context.Context, c *app.Controller) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", ErrNotInitialized)
	}

	s := &shell{
		controller:    c,
		window:        window,
		directional:   internal.NewDirectionalInput(),
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
		route:         c.Route(),
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if backButton.DevicePath != "" {
		go s.listenBackButton(ctx)
	}

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.handleEvents()
		if s.closed {
			return nil
		}

		s.handleRepeat()
		c.Pump()

		if c.Quit() {
			GetLogger().Info("Quit requested from the start screen")
			return nil
		}

		if c.Route() != s.route {
			s.route = c.Route()
			s.gateReason = ""
			s.directional.Reset()
		}

		s.render()
		window.Present()
	}
}

func (s *shell) listenBackButton(ctx context.Context) {
	err := internal.ListenBackButton(ctx, backButton, func() {
		if err := s.controller.Dispatcher().Post(router.Back()); err != nil {
			internal.GetInternalLogger().Debug("Back press dropped", "error", err)
		}
	})
	if err != nil {
		internal.GetInternalLogger().Error("Back button listener stopped", "error", err)
	}
}

func (s *shell) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.closed = true
			return

		case *sdl.TextInputEvent:
			s.controller.TypeText(e.GetText())
			s.gateReason = ""

		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_BACKSPACE {
				if e.Type == sdl.KEYDOWN {
					s.controller.Backspace()
					s.gateReason = ""
				}
				continue
			}
			s.handleInput(processor.ProcessSDLEvent(e))

		case *sdl.ControllerButtonEvent:
			s.handleInput(processor.ProcessSDLEvent(e))
		}
	}
}

func (s *shell) handleInput(input *internal.InputEvent) {
	if input == nil {
		return
	}

	s.directional.SetHeld(input.Button, input.Pressed)
	if !input.Pressed {
		return
	}

	if time.Since(s.lastInputTime) < s.inputDelay {
		return
	}
	s.lastInputTime = time.Now()

	s.press(input.Button)
}

func (s *shell) handleRepeat() {
	if dir := s.directional.Update(); dir != internal.DirectionNone {
		s.press(dir.Button())
	}
}

func (s *shell) press(button constants.VirtualButton) {
	c := s.controller

	var focused *form.Field
	if f, ok := c.Focused(); ok {
		focused = &f
	}

	action, step := actionFor(button, c.Screen(), focused)

	var err error
	switch action {
	case ShellActionPrimary:
		err = c.Primary()
	case ShellActionSecondary:
		err = c.Secondary()
	case ShellActionBack:
		err = c.Back()
	case ShellActionFocus:
		c.FocusNext(step)
	case ShellActionScroll:
		c.Scroll(step)
	case ShellActionCycle:
		c.CycleChoice(step)
	case ShellActionTab:
		err = c.CycleTab(step)
	}

	switch {
	case err == nil:
	case errors.Is(err, app.ErrGateClosed):
		if f, ok := c.Focused(); ok {
			s.gateReason = c.Form().Check(f.Name).Reason
		}
	case errors.Is(err, app.ErrNoAction), errors.Is(err, app.ErrQuit):
	default:
		GetLogger().Error("Input failed", "button", button.GetName(), "route", c.Route(), "error", err)
	}
}
