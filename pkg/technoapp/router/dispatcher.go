package router

import (
	"context"
	"errors"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"
	"go.uber.org/atomic"
)

// Event is one unit of navigation work applied on the owning goroutine.
type Event func(*Router) error

// To returns an Event that navigates to route.
func To(route screen.Route, opts ...Option) Event {
	return func(r *Router) error {
		return r.Navigate(route, opts...)
	}
}

// Back returns an Event that pops the back stack.
func Back() Event {
	return func(r *Router) error {
		return r.GoBack()
	}
}

// DefaultQueueSize is the number of events a Dispatcher buffers.
const DefaultQueueSize = 64

// Dispatcher serialises navigation events for a Router.
//
// Any goroutine may Post. Events are applied strictly in posting order by
// whoever owns the Router: a frame loop calls Drain once per frame, a
// headless host calls Run. The Router itself never sees two events at once.
type Dispatcher struct {
	router  *Router
	queue   chan Event
	done    chan struct{}
	onError func(error)

	closed    atomic.Bool
	processed atomic.Uint64
	failed    atomic.Uint64
}

// NewDispatcher creates a Dispatcher with a queue of the given size.
func NewDispatcher(r *Router, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Dispatcher{
		router: r,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// OnError sets the handler for errors returned by events.
// ErrNoBackEntry is passed through so the host can decide what root back means.
func (d *Dispatcher) OnError(fn func(error)) *Dispatcher {
	d.onError = fn
	return d
}

// Post queues ev. It blocks while the queue is full and fails once the
// dispatcher is closed.
func (d *Dispatcher) Post(ev Event) error {
	if d.closed.Load() {
		return ErrDispatcherClosed
	}
	select {
	case d.queue <- ev:
		return nil
	case <-d.done:
		return ErrDispatcherClosed
	}
}

// Drain applies every queued event and returns how many ran.
// Call it from the goroutine that owns the Router.
func (d *Dispatcher) Drain() int {
	n := 0
	for {
		select {
		case ev := <-d.queue:
			d.apply(ev)
			n++
		default:
			return n
		}
	}
}

// Run applies events as they arrive until ctx is done or Close is called.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.done:
			d.Drain()
			return nil
		case ev := <-d.queue:
			d.apply(ev)
		}
	}
}

// Close stops accepting events. Queued events can still be drained.
func (d *Dispatcher) Close() {
	if d.closed.CompareAndSwap(false, true) {
		close(d.done)
	}
}

// Processed returns the number of events applied so far.
func (d *Dispatcher) Processed() uint64 {
	return d.processed.Load()
}

// Failed returns the number of events that returned an error.
func (d *Dispatcher) Failed() uint64 {
	return d.failed.Load()
}

// Pending returns the number of queued events.
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

func (d *Dispatcher) apply(ev Event) {
	err := ev(d.router)
	d.processed.Inc()
	if err == nil {
		return
	}

	d.failed.Inc()
	if d.onError != nil {
		d.onError(err)
		return
	}
	if !errors.Is(err, ErrNoBackEntry) {
		d.router.logger.Error("navigation event failed", "error", err)
	}
}
