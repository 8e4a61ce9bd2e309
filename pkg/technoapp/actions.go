package technoapp

import (
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/BrandonKowalski/technoapp/pkg/technoapp/form"
)

// ShellAction is what a button press means on the visible screen.
type ShellAction int

const (
	ShellActionNone      ShellAction = iota
	ShellActionPrimary               // Confirm button (A, Enter, Start)
	ShellActionSecondary             // X or F2
	ShellActionBack                  // B, Escape or the hardware back key
	ShellActionFocus                 // Up/Down on a form, Select anywhere
	ShellActionScroll                // Up/Down on screens without a form
	ShellActionCycle                 // Left/Right on a choice field
	ShellActionTab                   // L1/R1, or Left/Right on tab screens
)

// actionFor resolves button on a screen. field is the focused field, if
// the screen has a form.
func actionFor(button constants.VirtualButton, sc app.ScreenConfig, field *form.Field) (ShellAction, int) {
	switch button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		return ShellActionPrimary, 0
	case constants.VirtualButtonX:
		return ShellActionSecondary, 0
	case constants.VirtualButtonB:
		return ShellActionBack, 0
	case constants.VirtualButtonSelect:
		if field != nil {
			return ShellActionFocus, 1
		}
	case constants.VirtualButtonUp, constants.VirtualButtonDown:
		step := 1
		if button == constants.VirtualButtonUp {
			step = -1
		}
		if field != nil {
			return ShellActionFocus, step
		}
		return ShellActionScroll, step
	case constants.VirtualButtonLeft, constants.VirtualButtonRight:
		step := 1
		if button == constants.VirtualButtonLeft {
			step = -1
		}
		if field != nil && field.Kind == form.KindChoice {
			return ShellActionCycle, step
		}
		if sc.ShowTabs {
			return ShellActionTab, step
		}
	case constants.VirtualButtonL1:
		if sc.ShowTabs {
			return ShellActionTab, -1
		}
	case constants.VirtualButtonR1:
		if sc.ShowTabs {
			return ShellActionTab, 1
		}
	}
	return ShellActionNone, 0
}
