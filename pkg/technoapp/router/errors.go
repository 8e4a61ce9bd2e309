package router

import "errors"

var (
	// ErrNoBackEntry is returned by GoBack when only the start entry is left.
	// The stack is left untouched; hosts usually ignore it or exit.
	ErrNoBackEntry = errors.New("router: no back entry")

	// ErrReentrant is returned when an observer tries to navigate while a
	// change is being delivered. Post the navigation to a Dispatcher instead.
	ErrReentrant = errors.New("router: navigation during change notification")

	// ErrDispatcherClosed is returned when posting to a closed Dispatcher.
	ErrDispatcherClosed = errors.New("router: dispatcher closed")
)
