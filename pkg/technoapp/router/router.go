package router

import (
	"log/slog"
	"slices"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
)

// Registry is the subset of the screen registry the router needs.
type Registry interface {
	Has(route screen.Route) bool
}

// Change describes one mutation of the back stack.
type Change struct {
	From  screen.Route   // Route visible before the change
	To    screen.Route   // Route visible after the change
	Stack []screen.Route // Stack after the change, bottom first
}

// Observer receives changes after they have been applied.
type Observer func(Change)

type subscription struct {
	id int
	fn Observer
}

// Router owns the navigation state: an explicit back stack seeded with
// the start route, plus a cache of saved per-route state.
//
// Router is not safe for concurrent use. All calls must happen on the
// goroutine that owns the UI; other goroutines post through a Dispatcher.
type Router struct {
	registry  Registry
	start     screen.Route
	stack     *Stack
	saved     map[screen.Route]any
	observers []subscription
	nextID    int
	notifying bool
	logger    *slog.Logger
}

// New creates a Router whose stack holds only start.
func New(registry Registry, start screen.Route) (*Router, error) {
	if !registry.Has(start) {
		return nil, &screen.UnknownRouteError{Route: start}
	}

	r := &Router{
		registry: registry,
		start:    start,
		stack:    NewStack(),
		saved:    make(map[screen.Route]any),
		logger:   slog.New(slog.DiscardHandler),
	}
	r.stack.Push(StackEntry{Route: start})
	return r, nil
}

// WithLogger sets the logger used for transition tracing.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Start returns the route the router was seeded with.
func (r *Router) Start() screen.Route {
	return r.start
}

// Navigate pushes route onto the back stack, applying opts first.
// Unknown routes fail with *screen.UnknownRouteError and change nothing.
func (r *Router) Navigate(route screen.Route, opts ...Option) error {
	if r.notifying {
		return ErrReentrant
	}
	if !r.registry.Has(route) {
		return &screen.UnknownRouteError{Route: route}
	}

	var o navigateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.popUpTo != nil && !r.registry.Has(o.popUpTo.target) {
		return &screen.UnknownRouteError{Route: o.popUpTo.target}
	}

	from := r.CurrentRoute()
	before := r.stack.Routes()

	if o.popUpTo != nil {
		if i := r.stack.LastIndex(o.popUpTo.target); i >= 0 {
			keep := i + 1
			if o.popUpTo.inclusive {
				keep = i
			}
			removed := r.stack.Truncate(keep)
			if o.saveState {
				r.save(removed)
			}
		}
	}

	if o.singleTop {
		if top := r.stack.Peek(); top != nil && top.Route == route {
			r.logger.Debug("navigate: single top", "route", route)
			r.notify(from, before)
			return nil
		}
	}

	entry := StackEntry{Route: route}
	if o.restoreState {
		if state, ok := r.saved[route]; ok {
			entry.State = state
			delete(r.saved, route)
		}
	}
	r.stack.Push(entry)

	r.logger.Debug("navigate", "from", from, "to", route, "depth", r.stack.Len())
	r.notify(from, before)
	return nil
}

// GoBack pops the top entry. With only the start entry left it returns
// ErrNoBackEntry and leaves the stack as it is.
func (r *Router) GoBack() error {
	if r.notifying {
		return ErrReentrant
	}
	if r.stack.Len() <= 1 {
		return ErrNoBackEntry
	}

	from := r.CurrentRoute()
	before := r.stack.Routes()
	r.stack.Pop()

	r.logger.Debug("back", "from", from, "to", r.CurrentRoute(), "depth", r.stack.Len())
	r.notify(from, before)
	return nil
}

// CurrentRoute returns the route on top of the back stack.
func (r *Router) CurrentRoute() screen.Route {
	return r.stack.Peek().Route
}

// BackStack returns a copy of the stack routes, bottom first.
func (r *Router) BackStack() []screen.Route {
	return r.stack.Routes()
}

// Depth returns the number of entries on the back stack.
func (r *Router) Depth() int {
	return r.stack.Len()
}

// State returns the ephemeral state recorded for the current entry.
func (r *Router) State() any {
	return r.stack.Peek().State
}

// SetState records ephemeral state for the current entry.
// It is advisory: losing it only costs the user a scroll position.
func (r *Router) SetState(state any) {
	r.stack.Peek().State = state
}

// SavedState returns the cached state for route, if any.
func (r *Router) SavedState(route screen.Route) (any, bool) {
	state, ok := r.saved[route]
	return state, ok
}

// Subscribe registers fn to be called after every stack change.
// The returned function removes the subscription.
func (r *Router) Subscribe(fn Observer) func() {
	r.nextID++
	id := r.nextID
	r.observers = append(r.observers, subscription{id: id, fn: fn})

	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(s subscription) bool {
			return s.id == id
		})
	}
}

// save caches the state of popped entries. removed is top first, so the
// topmost entry of a route wins.
func (r *Router) save(removed []StackEntry) {
	seen := make(map[screen.Route]bool, len(removed))
	for _, e := range removed {
		if seen[e.Route] {
			continue
		}
		seen[e.Route] = true
		if e.State == nil {
			delete(r.saved, e.Route)
			continue
		}
		r.saved[e.Route] = e.State
	}
}

func (r *Router) notify(from screen.Route, before []screen.Route) {
	after := r.stack.Routes()
	if slices.Equal(before, after) {
		return
	}

	r.notifying = true
	defer func() { r.notifying = false }()

	to := r.CurrentRoute()
	for _, s := range slices.Clone(r.observers) {
		s.fn(Change{From: from, To: to, Stack: slices.Clone(after)})
	}
}
