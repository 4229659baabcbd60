package capability

// Lockable is a ref-counted deletion lock: each SetLock(true) increments a
// counter (saturating at 255, same as the original's uint8_t), each
// SetLock(false) decrements it, and deletion is blocked while the counter
// is nonzero. Grounded on original_source/modules/Lockable_M.h. Spec §9
// supplemental modules.
type Lockable struct {
	count uint8
}

// SetLock increments (state true) or decrements (state false) the lock
// count. Saturates at 255; a decrement below zero is a no-op.
func (l *Lockable) SetLock(state bool) {
	if state {
		if l.count < 255 {
			l.count++
		}
	} else if l.count > 0 {
		l.count--
	}
}

// IsLocked reports whether the lock count is nonzero.
func (l *Lockable) IsLocked() bool { return l.count > 0 }

// Init implements Module.
func (l *Lockable) Init(*Context) { l.count = 0 }

// IsExeReady implements Module; Lockable never gates execution.
func (l *Lockable) IsExeReady() bool { return true }

// IsDelReady implements Module.
func (l *Lockable) IsDelReady() bool { return l.count == 0 }

// PreExe implements Module.
func (l *Lockable) PreExe() {}

// PostExe implements Module.
func (l *Lockable) PostExe() {}

// PreDel implements Module.
func (l *Lockable) PreDel() {}
