package capability

// StatusFlag is a bit in Status's flag byte.
type StatusFlag uint8

const (
	// StatusRunning is set for the duration of the task body (between
	// PreExe and PostExe). It is system-managed; callers should not set it
	// directly via SetStatus.
	StatusRunning StatusFlag = 1 << iota
	// StatusStarted is set by PostExe after the task's first execution and
	// stays set thereafter.
	StatusStarted
	// StatusSuspended, while set, makes the bundle execution-not-ready.
	StatusSuspended
	// StatusLocked, while set, makes the bundle deletion-not-ready, and
	// forbids SetStatus from touching any other flag until cleared.
	StatusLocked

	statusSystemMask = StatusRunning | StatusStarted
)

// Status carries the {Running, Started, Suspended, Locked} flags every
// task/handler's lifecycle is built from. Spec §4.4.
type Status struct {
	flags StatusFlag
}

// Is reports whether every bit in mask is set.
func (s *Status) Is(mask StatusFlag) bool { return s.flags&mask == mask }

// IsRunning reports whether the task body is currently executing.
func (s *Status) IsRunning() bool { return s.Is(StatusRunning) }

// IsStarted reports whether the task has completed at least one execution.
func (s *Status) IsStarted() bool { return s.Is(StatusStarted) }

// SetStatus sets or clears the bits in mask. While Locked is set, every
// write except clearing Locked itself is silently ignored (spec §7,
// "Locked-task mutation").
func (s *Status) SetStatus(mask StatusFlag, state bool) {
	if s.Is(StatusLocked) && mask != StatusLocked {
		return
	}
	if state {
		s.flags |= mask
	} else {
		s.flags &^= mask
	}
}

// Init implements Module.
func (s *Status) Init(*Context) { s.flags = 0 }

// IsExeReady implements Module.
func (s *Status) IsExeReady() bool { return !s.Is(StatusSuspended) }

// IsDelReady implements Module.
func (s *Status) IsDelReady() bool { return !s.Is(StatusLocked) }

// PreExe implements Module: marks the task Running. Locked is bypassed
// here deliberately — Running/Started are system flags, not subject to the
// lock.
func (s *Status) PreExe() { s.flags |= StatusRunning }

// PostExe implements Module: clears Running, sets Started.
func (s *Status) PostExe() {
	s.flags &^= StatusRunning
	s.flags |= StatusStarted
}

// PreDel implements Module.
func (s *Status) PreDel() {}
