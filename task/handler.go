// Package task implements TaskHandler: a fixed-capacity pool of cooperative
// tasks, each a plain function paired with a capability bundle that decides
// when it may run and when it may be deleted. Spec §4.2.
package task

import "github.com/lukh/uCoSM/capability"
import "github.com/lukh/uCoSM/log"

// Func is a task body: a plain function taking no arguments and returning
// nothing, matching the original's member-function-pointer task signature.
type Func func()

// ID identifies a task slot within a single Handler. Zero is never a valid
// ID; IDs are 1-based, matching the original's TaskID convention so that a
// zeroed ID variable reads naturally as "no task".
type ID int

// Handler is a fixed-capacity pool of tasks sharing one capability bundle
// type T (accessed through PT = *T). Grounded on
// original_source/task-handler.h's TaskHandler.
type Handler[T any, PT capability.ModulePtr[T]] struct {
	ctx         *capability.Context
	functions   []Func
	modules     []T
	idPtrs      []*ID
	currID      ID
	logger      log.Logger
	onException func(error)
}

// NewHandler creates a Handler with room for capacity tasks, reading ticks
// and cycle state from ctx.
func NewHandler[T any, PT capability.ModulePtr[T]](ctx *capability.Context, capacity int, opts ...Option) *Handler[T, PT] {
	if capacity <= 0 {
		capacity = 1
	}
	cfg := resolveOptions(opts)
	return &Handler[T, PT]{
		ctx:         ctx,
		functions:   make([]Func, capacity),
		modules:     make([]T, capacity),
		idPtrs:      make([]*ID, capacity),
		logger:      cfg.logger,
		onException: cfg.onException,
	}
}

func (h *Handler[T, PT]) exception(err error) {
	log.New(log.LevelWarn, "task", err.Error()).Err(err).Log(h.logger)
	if h.onException != nil {
		h.onException(err)
	}
}

// CreateTask allocates the first free slot for fn, initializes its
// capability bundle, and if outID is non-nil stores the new task's ID
// there (and keeps that variable zeroed automatically once the task is
// deleted). Returns false, and reports ErrNoSlotsAvailable, if the handler
// is full.
func (h *Handler[T, PT]) CreateTask(fn Func, outID *ID) bool {
	for i := range h.functions {
		if h.functions[i] != nil {
			continue
		}
		h.functions[i] = fn
		if outID != nil {
			*outID = ID(i + 1)
			h.idPtrs[i] = outID
		} else {
			h.idPtrs[i] = nil
		}
		PT(&h.modules[i]).Init(h.ctx)
		return true
	}
	h.exception(ErrNoSlotsAvailable)
	return false
}

// DeleteTask removes the task with the given ID, provided its bundle is
// deletion-ready. Returns true iff the task was actually deleted (spec §9
// resolves the original's missing return as "true iff deletion occurred").
func (h *Handler[T, PT]) DeleteTask(id ID) bool {
	i, ok := h.index(id)
	if !ok {
		h.exception(ErrTaskNotFound)
		return false
	}
	m := PT(&h.modules[i])
	if !m.IsDelReady() {
		return false
	}
	m.PreDel()
	h.functions[i] = nil
	if h.idPtrs[i] != nil && *h.idPtrs[i] == id {
		*h.idPtrs[i] = 0
	}
	h.idPtrs[i] = nil
	return true
}

// GetTask returns the capability bundle for id, or the zero PT (nil) if id
// is out of range.
func (h *Handler[T, PT]) GetTask(id ID) PT {
	i, ok := h.index(id)
	if !ok {
		h.exception(ErrTaskNotFound)
		return nil
	}
	return PT(&h.modules[i])
}

// ThisTask returns the bundle of the task currently executing, or nil (and
// reports ErrIllegalCall) if called from outside a task's own execution.
func (h *Handler[T, PT]) ThisTask() PT {
	if h.currID == 0 {
		h.exception(ErrIllegalCall)
		return nil
	}
	return PT(&h.modules[h.currID-1])
}

// ThisTaskID returns the ID of the task currently executing, or 0 (and
// reports ErrIllegalCall) if called from outside a task's own execution.
func (h *Handler[T, PT]) ThisTaskID() ID {
	if h.currID == 0 {
		h.exception(ErrIllegalCall)
		return 0
	}
	return h.currID
}

// Schedule runs one sweep over every occupied slot in order, executing
// those whose bundle is currently IsExeReady. Returns true iff at least
// one task executed. Spec §4.2 "TaskHandler.schedule".
func (h *Handler[T, PT]) Schedule() bool {
	hasExe := false
	for i := range h.functions {
		if h.functions[i] == nil {
			continue
		}
		m := PT(&h.modules[i])
		if !m.IsExeReady() {
			continue
		}
		h.currID = ID(i + 1)
		m.PreExe()
		h.functions[i]()
		m.PostExe()
		h.currID = 0
		hasExe = true
	}
	return hasExe
}

func (h *Handler[T, PT]) index(id ID) (int, bool) {
	if id <= 0 || int(id) > len(h.modules) {
		return 0, false
	}
	return int(id) - 1, true
}
