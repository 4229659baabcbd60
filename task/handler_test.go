package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukh/uCoSM/capability"
	"github.com/lukh/uCoSM/tick"
)

func newTestHandler(capacity int, opts ...Option) *Handler[capability.Status, *capability.Status] {
	ctx := capability.NewContext(tick.NewManualSource(0))
	return NewHandler[capability.Status, *capability.Status](ctx, capacity, opts...)
}

func TestHandler_CreateScheduleDelete(t *testing.T) {
	h := newTestHandler(2)
	var ranCount int
	var id ID
	assert.True(t, h.CreateTask(func() { ranCount++ }, &id))
	assert.Equal(t, ID(1), id)

	assert.True(t, h.Schedule())
	assert.Equal(t, 1, ranCount)

	assert.True(t, h.DeleteTask(id))
	assert.Equal(t, ID(0), id, "outID is zeroed on delete")

	assert.False(t, h.Schedule(), "no tasks left to run")
}

func TestHandler_CreateTaskFailsWhenFull(t *testing.T) {
	var exceptions []error
	h := newTestHandler(1, WithExceptionHandler(func(err error) { exceptions = append(exceptions, err) }))

	assert.True(t, h.CreateTask(func() {}, nil))
	assert.False(t, h.CreateTask(func() {}, nil))
	assert.ErrorIs(t, exceptions[0], ErrNoSlotsAvailable)
}

func TestHandler_DeleteTaskBlockedByStatusLocked(t *testing.T) {
	h := newTestHandler(1)
	var id ID
	h.CreateTask(func() {}, &id)

	h.GetTask(id).SetStatus(capability.StatusLocked, true)
	assert.False(t, h.DeleteTask(id))

	h.GetTask(id).SetStatus(capability.StatusLocked, false)
	assert.True(t, h.DeleteTask(id))
}

func TestHandler_ThisTaskOnlyValidDuringExecution(t *testing.T) {
	h := newTestHandler(1)
	assert.Nil(t, h.ThisTask())
	assert.Equal(t, ID(0), h.ThisTaskID())

	var seenID ID
	var seenTask *capability.Status
	h.CreateTask(func() {
		seenID = h.ThisTaskID()
		seenTask = h.ThisTask()
	}, nil)
	h.Schedule()

	assert.Equal(t, ID(1), seenID)
	assert.NotNil(t, seenTask)
	assert.Nil(t, h.ThisTask(), "not valid again once execution finishes")
}

func TestHandler_GetTaskUnknownIDReportsException(t *testing.T) {
	var got error
	h := newTestHandler(1, WithExceptionHandler(func(err error) { got = err }))
	assert.Nil(t, h.GetTask(99))
	assert.ErrorIs(t, got, ErrTaskNotFound)
}

func TestHandler_ScheduleSkipsSuspendedTasks(t *testing.T) {
	h := newTestHandler(2)
	var ran []int
	var id1, id2 ID
	h.CreateTask(func() { ran = append(ran, 1) }, &id1)
	h.CreateTask(func() { ran = append(ran, 2) }, &id2)

	h.GetTask(id1).SetStatus(capability.StatusSuspended, true)
	h.Schedule()
	assert.Equal(t, []int{2}, ran)
}
