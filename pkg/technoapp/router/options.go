package router

import "github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"

// Option adjusts how Navigate changes the back stack.
type Option func(*navigateOptions)

type popUpTo struct {
	target    screen.Route
	inclusive bool
}

type navigateOptions struct {
	popUpTo      *popUpTo
	singleTop    bool
	saveState    bool
	restoreState bool
}

// PopUpTo removes entries above the topmost target before pushing.
// With inclusive set the target entry itself is removed too.
// If target is not on the stack nothing is removed.
func PopUpTo(target screen.Route, inclusive bool) Option {
	return func(o *navigateOptions) {
		o.popUpTo = &popUpTo{target: target, inclusive: inclusive}
	}
}

// SingleTop skips the push when the top entry already is the destination.
func SingleTop() Option {
	return func(o *navigateOptions) {
		o.singleTop = true
	}
}

// SaveState keeps the state of entries removed by PopUpTo, keyed by route.
func SaveState() Option {
	return func(o *navigateOptions) {
		o.saveState = true
	}
}

// RestoreState hands previously saved state to the pushed entry.
func RestoreState() Option {
	return func(o *navigateOptions) {
		o.restoreState = true
	}
}

// TabOptions is the option set for bottom navigation: return to start
// (saving whatever is popped), avoid duplicates and restore the tab's state.
func TabOptions(start screen.Route) []Option {
	return []Option{PopUpTo(start, false), SaveState(), SingleTop(), RestoreState()}
}
