package capability

import "github.com/lukh/uCoSM/tick"

// Delay makes a task execution-ready once a one-shot deadline has passed.
// Spec §4.4.
type Delay struct {
	ctx      *Context
	deadline tick.Tick
}

// SetDelay arms the deadline to d ticks from now.
func (d *Delay) SetDelay(delay tick.Tick) {
	d.deadline = d.ctx.Now() + delay
}

// GetDelay returns how many ticks remain until the deadline, saturating at
// zero once it has passed.
func (d *Delay) GetDelay() tick.Tick {
	now := d.ctx.Now()
	if d.deadline > now {
		return d.deadline - now
	}
	return 0
}

// Init implements Module; the deadline starts at "now", so a Delay with no
// SetDelay call is immediately execution-ready.
func (d *Delay) Init(ctx *Context) {
	d.ctx = ctx
	d.deadline = ctx.Now()
}

// IsExeReady implements Module.
func (d *Delay) IsExeReady() bool { return d.ctx.Now() >= d.deadline }

// IsDelReady implements Module; Delay never blocks deletion.
func (d *Delay) IsDelReady() bool { return true }

// PreExe implements Module.
func (d *Delay) PreExe() {}

// PostExe implements Module.
func (d *Delay) PostExe() {}

// PreDel implements Module.
func (d *Delay) PreDel() {}
