package internal

import (
	"time"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalInput tracks a held d-pad direction and fires repeats while
// it stays held: first after repeatDelay, then every repeatInterval.
type DirectionalInput struct {
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput uses 300ms before the first repeat, then 80ms.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 80 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

// DirectionOf returns the direction for a d-pad button.
func DirectionOf(button constants.VirtualButton) Direction {
	switch button {
	case constants.VirtualButtonUp:
		return DirectionUp
	case constants.VirtualButtonDown:
		return DirectionDown
	case constants.VirtualButtonLeft:
		return DirectionLeft
	case constants.VirtualButtonRight:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// SetHeld records a press or release. It reports whether button is a
// direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	dir := DirectionOf(button)
	if dir == DirectionNone {
		return false
	}

	switch {
	case held:
		d.held = dir
		d.hasRepeated = false
		d.lastRepeatTime = time.Now()
	case d.held == dir:
		d.held = DirectionNone
	}
	return true
}

// Update returns the direction to repeat this frame, if any.
func (d *DirectionalInput) Update() Direction {
	if d.held == DirectionNone {
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return d.held
	}
	return DirectionNone
}

// Reset forgets the held direction. Call it on screen changes.
func (d *DirectionalInput) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
}

// Button returns the d-pad button for d.
func (d Direction) Button() constants.VirtualButton {
	switch d {
	case DirectionUp:
		return constants.VirtualButtonUp
	case DirectionDown:
		return constants.VirtualButtonDown
	case DirectionLeft:
		return constants.VirtualButtonLeft
	case DirectionRight:
		return constants.VirtualButtonRight
	default:
		return constants.VirtualButtonUnassigned
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
