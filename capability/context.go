package capability

import "github.com/lukh/uCoSM/tick"

// Context is the scheduler-scoped state shared, by reference, across every
// module and bundle driven by one Kernel. It replaces the original
// implementation's process-wide globals (sCnt, sMaster) with an explicit
// value the Kernel owns and hands to modules at Init — per spec §9's
// design note, this is what lets independent Kernels coexist (each gets
// its own Context), which matters for tests.
type Context struct {
	tick   tick.Source
	cycle  uint64
	master ReScheduler
}

// NewContext creates a Context reading ticks from src. src must not be nil.
func NewContext(src tick.Source) *Context {
	return &Context{tick: src}
}

// Now returns the current tick, per the configured Source.
func (c *Context) Now() tick.Tick {
	return c.tick.Tick()
}

// Cycle returns the current cycle counter value: the number of Kernel inner
// iterations that have run so far, including the one in progress. Priority
// reads this. It is incremented once per Kernel sweep via TickCycle, including
// re-entrant sweeps driven by Coroutine.waitFor.
func (c *Context) Cycle() uint64 {
	return c.cycle
}

// TickCycle increments the cycle counter. Called by the Kernel exactly once
// per inner scheduling iteration (spec §4.1 step 2a).
func (c *Context) TickCycle() {
	c.cycle++
}

// SetMaster records the Kernel that owns this Context, so Coroutine.WaitFor
// can re-enter it. Called once, by the Kernel that constructs/owns the
// Context.
func (c *Context) SetMaster(m ReScheduler) {
	c.master = m
}

// Master returns the Kernel registered via SetMaster, or nil if none was
// set (Coroutine.WaitFor is then a no-op, matching the original's guarded
// `if(SysKernelData::sMaster)`).
func (c *Context) Master() ReScheduler {
	return c.master
}
