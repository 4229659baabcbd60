package capability

// StatusCallee receives status-change notifications armed via
// StatusNotify.SetNotify. It is typically implemented by the struct that
// owns the bundle (the task's state record), wired in explicitly at
// construction — the same "explicit composition over sibling lookup"
// approach used for Signal/LinkedList/Coroutine's Status dependency.
type StatusCallee interface {
	NotifyStatusChange(prev, next StatusFlag)
}

// StatusNotify is Status plus notify-on-change: whenever a SetStatus call
// actually flips a bit that's been armed via SetNotify, the callee is told
// about it, and PreDel can emit one final notification before the flags are
// cleared. Spec §4.4 "StatusNotify".
type StatusNotify struct {
	status       Status
	callee       StatusCallee
	notifyMask   StatusFlag
	notifyOnDel  bool
}

// NewStatusNotify binds the callee that will receive notifications.
func NewStatusNotify(callee StatusCallee) *StatusNotify {
	return &StatusNotify{callee: callee}
}

// SetNotify arms (or disarms) notification for the bits in mask.
func (s *StatusNotify) SetNotify(mask StatusFlag, armed bool) {
	if armed {
		s.notifyMask |= mask
	} else {
		s.notifyMask &^= mask
	}
}

// SetNotifyOnDelete arms (or disarms) the final preDel notification.
func (s *StatusNotify) SetNotifyOnDelete(armed bool) { s.notifyOnDel = armed }

// Is reports whether every bit in mask is set.
func (s *StatusNotify) Is(mask StatusFlag) bool { return s.status.Is(mask) }

// IsRunning reports whether the task body is currently executing.
func (s *StatusNotify) IsRunning() bool { return s.status.IsRunning() }

// IsStarted reports whether the task has completed at least one execution.
func (s *StatusNotify) IsStarted() bool { return s.status.IsStarted() }

// SetStatus sets or clears the bits in mask, same Locked semantics as
// Status, and notifies the callee if any touched bit is armed and the
// flags actually changed.
func (s *StatusNotify) SetStatus(mask StatusFlag, state bool) {
	if s.status.Is(StatusLocked) && mask != StatusLocked {
		return
	}
	prev := s.status.flags
	s.status.SetStatus(mask, state)
	next := s.status.flags
	if prev == next {
		return
	}
	if mask&s.notifyMask != 0 && s.callee != nil {
		s.callee.NotifyStatusChange(prev, next)
	}
}

// Init implements Module.
func (s *StatusNotify) Init(ctx *Context) { s.status.Init(ctx) }

// IsExeReady implements Module.
func (s *StatusNotify) IsExeReady() bool { return s.status.IsExeReady() }

// IsDelReady implements Module.
func (s *StatusNotify) IsDelReady() bool { return s.status.IsDelReady() }

// PreExe implements Module.
func (s *StatusNotify) PreExe() { s.status.PreExe() }

// PostExe implements Module.
func (s *StatusNotify) PostExe() { s.status.PostExe() }

// PreDel implements Module: emits a final notification (with next==0, the
// post-clear state) if armed, then clears flags.
func (s *StatusNotify) PreDel() {
	if s.notifyOnDel && s.callee != nil {
		s.callee.NotifyStatusChange(s.status.flags, 0)
	}
	s.status.flags = 0
}
