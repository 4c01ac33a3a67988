package gxgui

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of a menu. It is flow
// control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError is a failure of the backend itself (window creation,
// font loading, audio device) that the application cannot handle at the
// menu level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_renderer", "load_font")
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gxgui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gxgui: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
