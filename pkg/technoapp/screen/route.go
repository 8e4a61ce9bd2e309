package screen

import (
	"fmt"
	"strings"
)

// Route is a type-safe identifier for screens.
// The set is closed: every navigable screen has a constant here.
type Route int

const (
	RouteLogin Route = iota
	RouteCreateAccount
	RoutePersonalData
	RouteFinish
	RouteOffers
	RouteMenu
	RouteCredits
	RouteNews
)

// Routes returns every Route in declaration order.
func Routes() []Route {
	return []Route{
		RouteLogin,
		RouteCreateAccount,
		RoutePersonalData,
		RouteFinish,
		RouteOffers,
		RouteMenu,
		RouteCredits,
		RouteNews,
	}
}

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteCreateAccount:
		return "create_account"
	case RoutePersonalData:
		return "personal_data"
	case RouteFinish:
		return "finish"
	case RouteOffers:
		return "offers"
	case RouteMenu:
		return "menu"
	case RouteCredits:
		return "credits"
	case RouteNews:
		return "news"
	default:
		return fmt.Sprintf("route(%d)", int(r))
	}
}

// ParseRoute maps a route name (as printed by String) back to its Route.
// Dashes are accepted in place of underscores.
func ParseRoute(name string) (Route, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, r := range Routes() {
		if r.String() == key {
			return r, nil
		}
	}
	return 0, &UnknownRouteError{Name: name}
}

// MarshalText encodes the route by name, so JSON logs and config files
// carry "menu" rather than a number.
func (r Route) MarshalText() ([]byte, error) {
	for _, known := range Routes() {
		if known == r {
			return []byte(r.String()), nil
		}
	}
	return nil, &UnknownRouteError{Route: r}
}

// UnmarshalText decodes a route name.
func (r *Route) UnmarshalText(text []byte) error {
	parsed, err := ParseRoute(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
