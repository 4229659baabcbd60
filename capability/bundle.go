package capability

// Bundle1 lifts a single capability module to a Module by itself — the
// identity composition, useful when a TaskHandler/Kernel is instantiated
// over exactly one capability and a dedicated wrapper type would be pure
// ceremony.
type Bundle1[A any, PA ModulePtr[A]] struct {
	M1 A
}

func (b *Bundle1[A, PA]) Init(ctx *Context) { PA(&b.M1).Init(ctx) }
func (b *Bundle1[A, PA]) IsExeReady() bool  { return PA(&b.M1).IsExeReady() }
func (b *Bundle1[A, PA]) IsDelReady() bool  { return PA(&b.M1).IsDelReady() }
func (b *Bundle1[A, PA]) PreExe()          { PA(&b.M1).PreExe() }
func (b *Bundle1[A, PA]) PostExe()         { PA(&b.M1).PostExe() }
func (b *Bundle1[A, PA]) PreDel()          { PA(&b.M1).PreDel() }

// First returns the composed module's pointer, e.g. for exposing its
// capability-specific public operations (SetPriority, SetDelay, ...).
func (b *Bundle1[A, PA]) First() PA { return &b.M1 }

// Bundle2 folds two capability modules into one, per spec §4.3: Init calls
// each in order, IsExeReady/IsDelReady AND every module with no
// short-circuit, PreExe/PostExe/PreDel call each in order.
type Bundle2[A, B any, PA ModulePtr[A], PB ModulePtr[B]] struct {
	M1 A
	M2 B
}

func (b *Bundle2[A, B, PA, PB]) Init(ctx *Context) {
	PA(&b.M1).Init(ctx)
	PB(&b.M2).Init(ctx)
}

func (b *Bundle2[A, B, PA, PB]) IsExeReady() bool {
	r1 := PA(&b.M1).IsExeReady()
	r2 := PB(&b.M2).IsExeReady()
	return r1 && r2
}

func (b *Bundle2[A, B, PA, PB]) IsDelReady() bool {
	r1 := PA(&b.M1).IsDelReady()
	r2 := PB(&b.M2).IsDelReady()
	return r1 && r2
}

func (b *Bundle2[A, B, PA, PB]) PreExe() {
	PA(&b.M1).PreExe()
	PB(&b.M2).PreExe()
}

func (b *Bundle2[A, B, PA, PB]) PostExe() {
	PA(&b.M1).PostExe()
	PB(&b.M2).PostExe()
}

func (b *Bundle2[A, B, PA, PB]) PreDel() {
	PA(&b.M1).PreDel()
	PB(&b.M2).PreDel()
}

func (b *Bundle2[A, B, PA, PB]) First() PA  { return &b.M1 }
func (b *Bundle2[A, B, PA, PB]) Second() PB { return &b.M2 }

// Bundle3 folds three capability modules into one.
type Bundle3[A, B, C any, PA ModulePtr[A], PB ModulePtr[B], PC ModulePtr[C]] struct {
	M1 A
	M2 B
	M3 C
}

func (b *Bundle3[A, B, C, PA, PB, PC]) Init(ctx *Context) {
	PA(&b.M1).Init(ctx)
	PB(&b.M2).Init(ctx)
	PC(&b.M3).Init(ctx)
}

func (b *Bundle3[A, B, C, PA, PB, PC]) IsExeReady() bool {
	r1 := PA(&b.M1).IsExeReady()
	r2 := PB(&b.M2).IsExeReady()
	r3 := PC(&b.M3).IsExeReady()
	return r1 && r2 && r3
}

func (b *Bundle3[A, B, C, PA, PB, PC]) IsDelReady() bool {
	r1 := PA(&b.M1).IsDelReady()
	r2 := PB(&b.M2).IsDelReady()
	r3 := PC(&b.M3).IsDelReady()
	return r1 && r2 && r3
}

func (b *Bundle3[A, B, C, PA, PB, PC]) PreExe() {
	PA(&b.M1).PreExe()
	PB(&b.M2).PreExe()
	PC(&b.M3).PreExe()
}

func (b *Bundle3[A, B, C, PA, PB, PC]) PostExe() {
	PA(&b.M1).PostExe()
	PB(&b.M2).PostExe()
	PC(&b.M3).PostExe()
}

func (b *Bundle3[A, B, C, PA, PB, PC]) PreDel() {
	PA(&b.M1).PreDel()
	PB(&b.M2).PreDel()
	PC(&b.M3).PreDel()
}

func (b *Bundle3[A, B, C, PA, PB, PC]) First() PA  { return &b.M1 }
func (b *Bundle3[A, B, C, PA, PB, PC]) Second() PB { return &b.M2 }
func (b *Bundle3[A, B, C, PA, PB, PC]) Third() PC  { return &b.M3 }

// Bundle4 folds four capability modules into one. Bundles may also be
// nested (a Bundle4 whose A is itself a Bundle2) when an application needs
// more than four capabilities on one task.
type Bundle4[A, B, C, D any, PA ModulePtr[A], PB ModulePtr[B], PC ModulePtr[C], PD ModulePtr[D]] struct {
	M1 A
	M2 B
	M3 C
	M4 D
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) Init(ctx *Context) {
	PA(&b.M1).Init(ctx)
	PB(&b.M2).Init(ctx)
	PC(&b.M3).Init(ctx)
	PD(&b.M4).Init(ctx)
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) IsExeReady() bool {
	r1 := PA(&b.M1).IsExeReady()
	r2 := PB(&b.M2).IsExeReady()
	r3 := PC(&b.M3).IsExeReady()
	r4 := PD(&b.M4).IsExeReady()
	return r1 && r2 && r3 && r4
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) IsDelReady() bool {
	r1 := PA(&b.M1).IsDelReady()
	r2 := PB(&b.M2).IsDelReady()
	r3 := PC(&b.M3).IsDelReady()
	r4 := PD(&b.M4).IsDelReady()
	return r1 && r2 && r3 && r4
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) PreExe() {
	PA(&b.M1).PreExe()
	PB(&b.M2).PreExe()
	PC(&b.M3).PreExe()
	PD(&b.M4).PreExe()
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) PostExe() {
	PA(&b.M1).PostExe()
	PB(&b.M2).PostExe()
	PC(&b.M3).PostExe()
	PD(&b.M4).PostExe()
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) PreDel() {
	PA(&b.M1).PreDel()
	PB(&b.M2).PreDel()
	PC(&b.M3).PreDel()
	PD(&b.M4).PreDel()
}

func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) First() PA  { return &b.M1 }
func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) Second() PB { return &b.M2 }
func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) Third() PC  { return &b.M3 }
func (b *Bundle4[A, B, C, D, PA, PB, PC, PD]) Fourth() PD { return &b.M4 }

// Empty is the zero-module bundle: isExeReady/isDelReady are the identity
// (true), and every hook is a no-op. Spec §4.3 calls this the fold's base
// case.
type Empty struct{}

func (Empty) Init(*Context)  {}
func (Empty) IsExeReady() bool { return true }
func (Empty) IsDelReady() bool { return true }
func (Empty) PreExe()          {}
func (Empty) PostExe()         {}
func (Empty) PreDel()          {}
