package capability

// Priority gates execution to every Nth Kernel cycle, where N is the
// priority (1 = every cycle, 255 = every 255th). Priority never blocks
// deletion. Spec §4.4.
type Priority struct {
	ctx *Context
	p   uint8
}

// SetPriority sets the priority, clamping 0 up to 1 (0 would mean "never",
// which this capability doesn't support).
func (p *Priority) SetPriority(prio uint8) {
	if prio == 0 {
		prio = 1
	}
	p.p = prio
}

// Priority returns the current priority value.
func (p *Priority) Priority() uint8 { return p.p }

// Init implements Module.
func (p *Priority) Init(ctx *Context) {
	p.ctx = ctx
	p.p = 1
}

// IsExeReady implements Module. On the very first cycle (Cycle()==0) the
// original implementation treats the counter as if it were 1, so only
// priority 1 tasks fire on that cycle (a raw 0 would satisfy 0%p==0 for
// every priority); this resolves spec §9's open question the same way the original source
// did (`sCnt ? sCnt : sCnt+1` is equivalent to treating 0 as 1).
func (p *Priority) IsExeReady() bool {
	cycle := p.ctx.Cycle()
	if cycle == 0 {
		cycle = 1
	}
	return cycle%uint64(p.p) == 0
}

// IsDelReady implements Module; Priority never blocks deletion.
func (p *Priority) IsDelReady() bool { return true }

// PreExe implements Module.
func (p *Priority) PreExe() {}

// PostExe implements Module.
func (p *Priority) PostExe() {}

// PreDel implements Module.
func (p *Priority) PreDel() {}
