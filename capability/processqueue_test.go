package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessQueue_WaitsOnPredecessorStarted(t *testing.T) {
	var first, second ProcessQueue
	first.Init(nil)
	second.Init(nil)
	second.ExecuteAfter(&first)

	assert.True(t, first.IsExeReady())
	assert.False(t, second.IsExeReady())

	first.PostExe()
	assert.True(t, second.IsExeReady())
}

func TestAutoProcessQueue_ChainsAndSplicesOnDelete(t *testing.T) {
	var a, b, c AutoProcessQueue
	a.Init(nil)
	b.Init(nil)
	c.Init(nil)
	b.ExecuteAfter(&a)
	c.ExecuteAfter(&b)

	assert.Same(t, &b, a.Next())
	assert.Same(t, &c, b.Next())

	b.PreDel()
	assert.Same(t, &c, a.Next())
}
