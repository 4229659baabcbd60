// Package capability implements µCoSm's capability modules and the bundle
// composition that folds them into a single five-hook contract.
//
// A capability module is a small state record that contributes to whether
// its owning task/handler is execution-ready, deletion-ready, and to what
// happens immediately before/after execution or deletion. Modules are
// orthogonal by construction: Priority doesn't know Delay exists, Signal
// doesn't know MemPool32 exists. A handful of modules (Signal, LinkedList,
// Coroutine) need to observe their sibling Status module in the same
// bundle; rather than the original implementation's pointer-punning
// (reinterpret_cast across the enclosing aggregate), those modules take an
// explicit *Status reference at construction time — see status.go.
package capability

import "github.com/lukh/uCoSM/tick"

// Module is the lifecycle contract (Init plus five hooks) every capability implements,
// and therefore also the contract every Bundle folds over. See spec §4.3 /
// §6.
type Module interface {
	// Init is called exactly once, when the owning task or handler slot is
	// created. ctx is the scheduler-scoped state (cycle counter, tick
	// source, master reference) shared by every module/bundle under one
	// Kernel; see Context.
	Init(ctx *Context)

	// IsExeReady reports whether this module currently permits execution.
	// It is a pure query and may be evaluated many times per sweep; a
	// bundle ANDs this across all its modules with no short-circuiting, so
	// implementations must not rely on being skipped.
	IsExeReady() bool

	// IsDelReady reports whether this module currently permits deletion.
	IsDelReady() bool

	// PreExe runs immediately before the task body / handler sweep.
	PreExe()

	// PostExe runs immediately after a successful task body / handler
	// sweep.
	PostExe()

	// PreDel runs once, during deletion, after IsDelReady has been
	// confirmed across the whole bundle. It must leave the module in a
	// state where a subsequent IsDelReady (on a fresh Init) would hold.
	PreDel()
}

// ModulePtr constrains a type parameter T such that *T implements Module.
// It is the standard "pointer method set" generic idiom: Bundle/TaskHandler/
// Kernel store T by value (so a fixed-size array of them has a meaningful
// zero value) while operating on them through *T, which is where the
// lifecycle methods are actually defined.
type ModulePtr[T any] interface {
	*T
	Module
}

// ReScheduler is the minimal surface Coroutine needs to re-enter the
// driving Kernel from inside a task body. Declared here (rather than
// imported from package kernel) to avoid an import cycle — package kernel
// depends on capability, not the other way around — and because it is
// genuinely the smallest useful contract (spec §6's scheduler contract).
type ReScheduler interface {
	Schedule(minDuration tick.Tick) bool
}
