package screen

import (
	"errors"
	"fmt"
)

// UnknownRouteError reports a Route that is absent from the registry.
// It always points at a wiring mistake, never at user input.
type UnknownRouteError struct {
	Route Route
	Name  string // Set instead of Route when parsing a name failed
}

func (e *UnknownRouteError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("screen: unknown route %q", e.Name)
	}
	return fmt.Sprintf("screen: unknown route %s", e.Route)
}

// IsUnknownRoute checks if an error is an UnknownRouteError.
func IsUnknownRoute(err error) bool {
	var unknown *UnknownRouteError
	return errors.As(err, &unknown)
}
