package capability

import "github.com/lukh/uCoSM/tick"

// Coroutine lets a task body wait a given number of ticks in the middle of
// its execution by calling WaitFor, which keeps peer tasks running for that
// long and then returns, so the body continues at the next statement — the
// cooperative-yield idiom spec §4.4 "Coroutine" describes. It re-enters the
// master ReScheduler (the Kernel), obtained from Context, rather than
// sleeping: this scheduler is single-threaded (spec §5), so there is no
// thread to block.
type Coroutine struct {
	ctx    *Context
	status *Status
}

// NewCoroutine binds status (the Status capability in the same bundle),
// used to guard against WaitFor being invoked while not actually running.
func NewCoroutine(status *Status) *Coroutine {
	return &Coroutine{status: status}
}

// WaitFor runs the master's Schedule(d) re-entrantly, so sweeps continue
// until at least d ticks have elapsed, then returns that call's result:
// true iff some task executed meanwhile. Returns false without scheduling
// if called outside of the task's own execution, or if no Context or
// master is set.
func (c *Coroutine) WaitFor(d tick.Tick) bool {
	if !c.status.IsRunning() || c.ctx == nil || c.ctx.Master() == nil {
		return false
	}
	return c.ctx.Master().Schedule(d)
}

// Init implements Module.
func (c *Coroutine) Init(ctx *Context) { c.ctx = ctx }

// IsExeReady implements Module: blocked while the owning task is already
// running, which is what makes re-entering the Kernel from inside WaitFor
// safe — the nested sweep's own readiness check stops this task's body
// from being called a second time on the same logical stack.
func (c *Coroutine) IsExeReady() bool { return !c.status.IsRunning() }

// IsDelReady implements Module.
func (c *Coroutine) IsDelReady() bool { return true }

// PreExe implements Module.
func (c *Coroutine) PreExe() {}

// PostExe implements Module.
func (c *Coroutine) PostExe() {}

// PreDel implements Module.
func (c *Coroutine) PreDel() {}
