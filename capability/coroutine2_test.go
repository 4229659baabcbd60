package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoroutine2_AdvancesThroughSteps(t *testing.T) {
	var step2 Step[int]
	var step1 Step[int]
	step1 = func(s *int) Step[int] {
		*s += 1
		return step2
	}
	step2 = func(s *int) Step[int] {
		*s += 10
		return nil
	}

	co := NewCoroutine2[int](step1)
	assert.False(t, co.Done())

	co.Advance()
	assert.Equal(t, 1, *co.State())
	assert.False(t, co.Done())

	co.Advance()
	assert.Equal(t, 11, *co.State())
	assert.True(t, co.Done())

	co.Advance()
	assert.Equal(t, 11, *co.State(), "advancing past done is a no-op")
}

func TestCoroutine2_ModuleHooksTrackDone(t *testing.T) {
	co := NewCoroutine2[int](func(s *int) Step[int] { return nil })
	assert.True(t, co.IsExeReady())
	assert.False(t, co.IsDelReady())

	co.Advance()
	assert.False(t, co.IsExeReady())
	assert.True(t, co.IsDelReady())
}

func TestCoroutine2_Reset(t *testing.T) {
	start := func(s *int) Step[int] { *s = 99; return nil }
	co := NewCoroutine2[int](start)
	co.Advance()
	assert.True(t, co.Done())

	co.Reset(start)
	assert.False(t, co.Done())
	assert.Equal(t, 0, *co.State())
}
