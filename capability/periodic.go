package capability

import "github.com/lukh/uCoSM/tick"

// Periodic is Delay plus a period: instead of a one-shot deadline, PreExe
// advances the deadline by the period every time the task runs, so the
// average execution rate is exactly 1/period regardless of scheduling
// jitter — a late execution doesn't push later ones back, it just catches
// up. Spec §4.4, tested against scenario §8.2.
type Periodic struct {
	ctx      *Context
	deadline tick.Tick
	period   uint16
}

// SetPeriod sets the period and advances the deadline by it once,
// matching the original's setPeriod (which both configures and nudges the
// next deadline forward).
func (p *Periodic) SetPeriod(period uint16) {
	p.period = period
	p.deadline += tick.Tick(period)
}

// Period returns the configured period.
func (p *Periodic) Period() uint16 { return p.period }

// SetDelay re-arms the deadline to delay ticks from now, independent of the
// period — useful to push out the first execution without disturbing the
// steady-state rate.
func (p *Periodic) SetDelay(delay tick.Tick) {
	p.deadline = p.ctx.Now() + delay
}

// GetDelay returns ticks remaining until the deadline, saturating at zero.
func (p *Periodic) GetDelay() tick.Tick {
	now := p.ctx.Now()
	if p.deadline > now {
		return p.deadline - now
	}
	return 0
}

// Init implements Module.
func (p *Periodic) Init(ctx *Context) {
	p.ctx = ctx
	p.deadline = ctx.Now()
}

// IsExeReady implements Module.
func (p *Periodic) IsExeReady() bool { return p.ctx.Now() >= p.deadline }

// IsDelReady implements Module; Periodic never blocks deletion.
func (p *Periodic) IsDelReady() bool { return true }

// PreExe implements Module: advances the deadline by one period,
// drift-free — it adds to the deadline rather than to "now", so missed
// cycles are caught up rather than skipped.
func (p *Periodic) PreExe() { p.deadline += tick.Tick(p.period) }

// PostExe implements Module.
func (p *Periodic) PostExe() {}

// PreDel implements Module.
func (p *Periodic) PreDel() {}
