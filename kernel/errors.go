package kernel

import "errors"

// Sentinel errors surfaced through a Kernel's exception hook. Grounded on
// the original's HandlerException hook and on task.Errors' style.
var (
	// ErrNoHandlerSlotsAvailable is reported by AddHandler when every
	// handler slot is occupied.
	ErrNoHandlerSlotsAvailable = errors.New("kernel: no more handler slots available")

	// ErrHandlerNotFound is reported by GetHandle/RemoveHandler for a
	// Handler the Kernel doesn't recognize.
	ErrHandlerNotFound = errors.New("kernel: handler not registered")
)
