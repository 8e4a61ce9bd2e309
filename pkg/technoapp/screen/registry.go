// Package screen defines the closed set of TECHNO APP routes and the
// static registry describing each of them.
package screen

import (
	"fmt"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/icons"
)

// Descriptor is the static metadata for one route.
type Descriptor struct {
	Route Route     // Route being described
	Title string    // Display title, also the tab label
	Icon  icons.Ref // Icon shown in the bottom navigation bar
	Tab   bool      // Whether the route appears in the bottom navigation bar
}

// Registry is a read-only mapping from Route to Descriptor.
// Build it once at startup; it is safe for concurrent reads.
type Registry struct {
	ordered []Descriptor
	index   map[Route]int
}

// NewRegistry builds a registry from descriptors in declaration order.
// Duplicate routes, routes outside the closed set and unknown icons are rejected.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	known := make(map[Route]bool, len(Routes()))
	for _, r := range Routes() {
		known[r] = true
	}

	reg := &Registry{
		ordered: make([]Descriptor, 0, len(descriptors)),
		index:   make(map[Route]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if !known[d.Route] {
			return nil, &UnknownRouteError{Route: d.Route}
		}
		if _, dup := reg.index[d.Route]; dup {
			return nil, fmt.Errorf("screen: route %s registered twice", d.Route)
		}
		if d.Icon != "" && !d.Icon.Known() {
			return nil, fmt.Errorf("screen: route %s uses unknown icon %q", d.Route, d.Icon)
		}
		reg.index[d.Route] = len(reg.ordered)
		reg.ordered = append(reg.ordered, d)
	}

	return reg, nil
}

// MustRegistry is NewRegistry for static tables; it panics on error.
func MustRegistry(descriptors ...Descriptor) *Registry {
	reg, err := NewRegistry(descriptors...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Describe returns the descriptor for route.
func (r *Registry) Describe(route Route) (Descriptor, error) {
	i, ok := r.index[route]
	if !ok {
		return Descriptor{}, &UnknownRouteError{Route: route}
	}
	return r.ordered[i], nil
}

// Has reports whether route is registered.
func (r *Registry) Has(route Route) bool {
	_, ok := r.index[route]
	return ok
}

// All returns every descriptor in declaration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Tabs returns the descriptors shown in the bottom navigation bar.
func (r *Registry) Tabs() []Descriptor {
	var out []Descriptor
	for _, d := range r.ordered {
		if d.Tab {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.ordered)
}

var defaultRegistry = MustRegistry(
	Descriptor{Route: RouteLogin, Title: "Login", Icon: icons.AccountBox, Tab: true},
	Descriptor{Route: RouteCreateAccount, Title: "Create Account", Icon: icons.PersonAdd},
	Descriptor{Route: RoutePersonalData, Title: "Personal Data", Icon: icons.Badge},
	Descriptor{Route: RouteFinish, Title: "All Set", Icon: icons.Done},
	Descriptor{Route: RouteOffers, Title: "Offers", Icon: icons.CheckCircle, Tab: true},
	Descriptor{Route: RouteMenu, Title: "Menu", Icon: icons.Menu, Tab: true},
	Descriptor{Route: RouteCredits, Title: "Credits", Icon: icons.Person, Tab: true},
	Descriptor{Route: RouteNews, Title: "News", Icon: icons.Info, Tab: true},
)

// Default returns the TECHNO APP registry.
func Default() *Registry {
	return defaultRegistry
}
