package tick_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukh/uCoSM/tick"
)

func TestSince(t *testing.T) {
	assert.Equal(t, tick.Tick(5), tick.Since(15, 10))
}

func TestSinceWraps(t *testing.T) {
	start := tick.Tick(math.MaxUint32 - 2)
	now := tick.Tick(2) // wrapped past zero
	assert.Equal(t, tick.Tick(5), tick.Since(now, start))
}

func TestManualSource(t *testing.T) {
	s := tick.NewManualSource(100)
	assert.Equal(t, tick.Tick(100), s.Tick())
	assert.Equal(t, tick.Tick(103), s.Advance(3))
	assert.Equal(t, tick.Tick(103), s.Tick())
	s.Set(0)
	assert.Equal(t, tick.Tick(0), s.Tick())
}

func TestSourceFunc(t *testing.T) {
	var src tick.Source = tick.SourceFunc(func() tick.Tick { return 42 })
	assert.Equal(t, tick.Tick(42), src.Tick())
}
