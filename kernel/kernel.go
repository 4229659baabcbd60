// Package kernel implements Kernel: the top-level cooperative scheduler
// that round-robins across registered Handlers, advancing the shared
// Context's cycle counter once per sweep. Spec §4.1.
package kernel

import (
	"github.com/lukh/uCoSM/capability"
	"github.com/lukh/uCoSM/log"
	"github.com/lukh/uCoSM/tick"
)

// Handler is anything a Kernel can round-robin across: one sweep over
// whatever tasks it owns, reporting whether any of them executed.
// task.Handler satisfies this structurally — no import of package task is
// needed here, which is what keeps task -> capability and kernel ->
// capability from ever needing to know about each other.
type Handler interface {
	Schedule() bool
}

// Kernel is a fixed-capacity pool of Handlers, each paired with a
// capability bundle of its own (type T, accessed through PT = *T) that
// governs when that Handler's turn comes around — e.g. a Priority bundle
// lets one Handler's tasks run every sweep while another's only run every
// eighth. Grounded on original_source/kernel.h's Kernel.
type Kernel[T any, PT capability.ModulePtr[T]] struct {
	ctx         *capability.Context
	src         tick.Source
	handlers    []Handler
	modules     []T
	count       int
	idleTask    func()
	logger      log.Logger
	onException func(error)
}

// NewKernel creates a Kernel with room for capacity handlers, reading
// ticks from src. The returned Kernel registers itself as src's Context's
// ReScheduler, so Coroutine.WaitFor (on any capability bundle sharing this
// Context) re-enters this Kernel's Schedule.
func NewKernel[T any, PT capability.ModulePtr[T]](src tick.Source, capacity int, opts ...Option) *Kernel[T, PT] {
	if capacity <= 0 {
		capacity = 1
	}
	cfg := resolveOptions(opts)
	ctx := capability.NewContext(src)
	k := &Kernel[T, PT]{
		ctx:         ctx,
		src:         src,
		handlers:    make([]Handler, capacity),
		modules:     make([]T, capacity),
		logger:      cfg.logger,
		onException: cfg.onException,
	}
	ctx.SetMaster(k)
	return k
}

// Context returns the Context this Kernel drives — pass it to every
// task.Handler registered with AddHandler, so their capability bundles
// observe the same tick source, cycle counter and master reference.
func (k *Kernel[T, PT]) Context() *capability.Context { return k.ctx }

func (k *Kernel[T, PT]) exception(err error) {
	log.New(log.LevelWarn, "kernel", err.Error()).Err(err).Log(k.logger)
	if k.onException != nil {
		k.onException(err)
	}
}

// AddHandler registers h, initializing its kernel-level capability bundle.
// Returns false, and reports ErrNoHandlerSlotsAvailable, if the Kernel is
// full.
func (k *Kernel[T, PT]) AddHandler(h Handler) bool {
	if k.count == len(k.handlers) {
		k.exception(ErrNoHandlerSlotsAvailable)
		return false
	}
	k.handlers[k.count] = h
	PT(&k.modules[k.count]).Init(k.ctx)
	k.count++
	return true
}

// GetHandle returns h's kernel-level capability bundle, or nil (and
// reports ErrHandlerNotFound) if h isn't registered.
func (k *Kernel[T, PT]) GetHandle(h Handler) PT {
	i, ok := k.indexOf(h)
	if !ok {
		k.exception(ErrHandlerNotFound)
		return nil
	}
	return PT(&k.modules[i])
}

// RemoveHandler unregisters h, provided its kernel-level bundle is
// deletion-ready, compacting the remaining handlers into a contiguous
// range. Returns true iff h was actually removed.
func (k *Kernel[T, PT]) RemoveHandler(h Handler) bool {
	i, ok := k.indexOf(h)
	if !ok {
		k.exception(ErrHandlerNotFound)
		return false
	}
	m := PT(&k.modules[i])
	if !m.IsDelReady() {
		return false
	}
	m.PreDel()
	for ; i < k.count-1; i++ {
		k.handlers[i] = k.handlers[i+1]
		k.modules[i] = k.modules[i+1]
	}
	var zero T
	k.modules[k.count-1] = zero
	k.handlers[k.count-1] = nil
	k.count--
	return true
}

// SetIdleTask installs fn to be called once per sweep in which no Handler
// executed anything. Pass nil to clear it.
func (k *Kernel[T, PT]) SetIdleTask(fn func()) { k.idleTask = fn }

// Schedule runs sweeps over every registered Handler until at least
// minDuration ticks have elapsed (always at least one sweep, even for
// minDuration == 0), advancing the Context's cycle counter once per sweep.
// Returns true iff at least one Handler executed at least one task across
// the whole call. Implements capability.ReScheduler, so Coroutine.WaitFor
// can re-enter this loop from inside a running task. Spec §4.1's
// do...while sweep algorithm.
func (k *Kernel[T, PT]) Schedule(minDuration tick.Tick) bool {
	start := k.src.Tick()
	fullCycleExe := false

	for {
		k.ctx.TickCycle()
		singleCycleExe := false

		for i := 0; i < k.count; i++ {
			m := PT(&k.modules[i])
			if !m.IsExeReady() {
				continue
			}
			m.PreExe()
			if k.handlers[i].Schedule() {
				singleCycleExe = true
			}
			m.PostExe()
		}

		if !singleCycleExe {
			if k.idleTask != nil {
				k.idleTask()
			}
		} else {
			fullCycleExe = true
		}

		if tick.Since(k.src.Tick(), start) >= minDuration {
			break
		}
	}

	return fullCycleExe
}

// AsHandler adapts this Kernel to the Handler interface (Schedule() bool,
// no minimum duration), so one Kernel can be registered as a Handler of
// another, building a tree of schedulers — the same hierarchical
// composition the original's shared iScheduler base enables.
func (k *Kernel[T, PT]) AsHandler() Handler {
	return kernelHandler[T, PT]{k}
}

type kernelHandler[T any, PT capability.ModulePtr[T]] struct {
	k *Kernel[T, PT]
}

func (h kernelHandler[T, PT]) Schedule() bool { return h.k.Schedule(0) }

func (k *Kernel[T, PT]) indexOf(h Handler) (int, bool) {
	for i := 0; i < k.count; i++ {
		if k.handlers[i] == h {
			return i, true
		}
	}
	return 0, false
}
