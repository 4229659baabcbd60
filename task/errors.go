package task

import "errors"

// Sentinel errors surfaced through a Handler's exception hook (see
// WithExceptionHandler). Grounded on the original's HandlerException virtual
// hook, and on the teacher's eventloop/errors.go preference for typed,
// errors.Is-friendly error values over ad hoc strings.
var (
	// ErrNoSlotsAvailable is reported by CreateTask when every task slot is
	// occupied.
	ErrNoSlotsAvailable = errors.New("task: no more slots available")

	// ErrTaskNotFound is reported by GetTask/DeleteTask for an ID outside
	// the handler's configured range.
	ErrTaskNotFound = errors.New("task: does not exist")

	// ErrIllegalCall is reported by ThisTask/ThisTaskID when called outside
	// of that task's own execution window.
	ErrIllegalCall = errors.New("task: illegal call outside of task execution")
)
