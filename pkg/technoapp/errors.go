package technoapp

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/app"
)

// ErrNotInitialized is returned by Run before Init succeeded.
var ErrNotInitialized = errors.New("shell not initialized")

// InfrastructureError is a failure of the shell itself (SDL, window,
// fonts), as opposed to anything the user did.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("technoapp: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("technoapp: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit reports whether err asks the host to exit.
func IsQuit(err error) bool {
	return errors.Is(err, app.ErrQuit)
}
