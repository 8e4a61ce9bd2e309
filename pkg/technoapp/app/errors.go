package app

import "errors"

var (
	// ErrGateClosed is returned when a gated action is triggered while the
	// screen's form is invalid. The wrapping error names the field.
	ErrGateClosed = errors.New("form incomplete")

	// ErrQuit signals that the host should exit: back was pressed on the
	// start screen with the exit policy configured.
	ErrQuit = errors.New("quit requested")

	// ErrNoAction is returned when a screen has no action in that slot.
	ErrNoAction = errors.New("screen has no such action")

	// ErrNotATab is returned by SelectTab for routes outside the tab bar.
	ErrNotATab = errors.New("route is not a tab")
)
