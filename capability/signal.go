package capability

// Signal is a fixed-depth FIFO mailbox: any task may Send into it, but
// Receive only yields data while the owning task is the one currently
// running (spec §4.4) — a sibling sends, the owner (and only the owner,
// and only while running) drains. Requires Status in the same bundle; per
// spec §9's guidance to prefer explicit composition over sibling
// pointer-punning, that dependency is a constructor argument rather than a
// lookup into the enclosing bundle.
type Signal[T any] struct {
	status *Status
	rx     *fifo[T]
}

// NewSignal creates a Signal of the given fifo depth, bound to status (the
// Status capability in the same bundle).
func NewSignal[T any](status *Status, fifoSize int) *Signal[T] {
	return &Signal[T]{status: status, rx: newFifo[T](fifoSize)}
}

// Send pushes v into receiver's mailbox. Returns false if receiver is nil
// or its mailbox is full.
func (s *Signal[T]) Send(receiver *Signal[T], v T) bool {
	if receiver == nil {
		return false
	}
	return receiver.rx.push(v)
}

// Receive pops the oldest pending value, but only while the owning task is
// the one currently executing; otherwise it returns the zero value without
// consuming anything, matching the original's "data unreachable unless the
// owner is running" guard.
func (s *Signal[T]) Receive() T {
	var zero T
	if !s.status.IsRunning() {
		return zero
	}
	return s.rx.pop()
}

// HasData reports whether the mailbox has pending values.
func (s *Signal[T]) HasData() bool { return !s.rx.isEmpty() }

// Init implements Module.
func (s *Signal[T]) Init(*Context) {}

// IsExeReady implements Module; Signal never gates execution by itself.
func (s *Signal[T]) IsExeReady() bool { return true }

// IsDelReady implements Module: only once the mailbox has drained, so a
// sender's in-flight message is never silently lost.
func (s *Signal[T]) IsDelReady() bool { return s.rx.isEmpty() }

// PreExe implements Module.
func (s *Signal[T]) PreExe() {}

// PostExe implements Module.
func (s *Signal[T]) PostExe() {}

// PreDel implements Module.
func (s *Signal[T]) PreDel() {}
