// Package router provides screen navigation over an explicit back stack.
//
// A Router is seeded with a start route and mutated only through Navigate
// and GoBack. Screens and renderers observe it, they never touch the stack.
//
// # Basic Usage
//
//	r, err := router.New(screen.Default(), screen.RouteLogin)
//	if err != nil {
//	    return err
//	}
//
//	unsubscribe := r.Subscribe(func(c router.Change) {
//	    redraw(c.To)
//	})
//	defer unsubscribe()
//
//	r.Navigate(screen.RouteCreateAccount)
//	r.Navigate(screen.RoutePersonalData)
//
//	// Completing the flow resets the stack to a fresh Login entry.
//	r.Navigate(screen.RouteLogin, router.PopUpTo(screen.RouteLogin, true))
//
// # Bottom Navigation
//
// Tabs navigate with TabOptions: pop back to the start route saving what
// was popped, skip duplicates, and restore the tab's saved state:
//
//	r.Navigate(screen.RouteMenu, router.TabOptions(r.Start())...)
//
// # Saved State
//
// Each stack entry carries advisory state (scroll offset, search text).
// SetState records it for the current entry. SaveState moves the state of
// popped entries into a cache keyed by route; RestoreState hands it back
// when the route is pushed again.
//
// # Dispatch
//
// Router is single-goroutine. Input that originates elsewhere (a hardware
// back key, a timer) is posted to a Dispatcher and applied in order by the
// owner, either once per frame with Drain or continuously with Run.
package router
