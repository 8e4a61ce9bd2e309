package internal

import (
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a physical input resolved to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  string // "keyboard" or "controller"
}

// InputProcessor maps SDL keyboard and game controller events to virtual
// buttons.
type InputProcessor struct {
	keys    map[sdl.Keycode]constants.VirtualButton
	buttons map[sdl.GameControllerButton]constants.VirtualButton
}

var (
	processor   *InputProcessor
	controllers []*sdl.GameController
)

// Keyboard layout used on desktops. Letters are left to text input, so
// actions sit on keys that never type.
var defaultKeys = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:       constants.VirtualButtonUp,
	sdl.K_DOWN:     constants.VirtualButtonDown,
	sdl.K_LEFT:     constants.VirtualButtonLeft,
	sdl.K_RIGHT:    constants.VirtualButtonRight,
	sdl.K_RETURN:   constants.VirtualButtonA,
	sdl.K_ESCAPE:   constants.VirtualButtonB,
	sdl.K_AC_BACK:  constants.VirtualButtonB,
	sdl.K_F2:       constants.VirtualButtonX,
	sdl.K_PAGEUP:   constants.VirtualButtonL1,
	sdl.K_PAGEDOWN: constants.VirtualButtonR1,
	sdl.K_TAB:      constants.VirtualButtonSelect,
	sdl.K_F1:       constants.VirtualButtonMenu,
}

var defaultButtons = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// InitInputProcessor opens every attached game controller and installs
// the default mapping.
func InitInputProcessor() {
	processor = &InputProcessor{
		keys:    defaultKeys,
		buttons: defaultButtons,
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			controllers = append(controllers, c)
		}
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent returns nil for events that do not map to a button.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button, ok := p.keys[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN, Source: "keyboard"}

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttons[sdl.GameControllerButton(e.Button)]
		if !ok {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.State == sdl.PRESSED, Source: "controller"}
	}
	return nil
}

func CloseAllControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}
