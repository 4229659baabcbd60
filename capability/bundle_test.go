package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lukh/uCoSM/capability"
	"github.com/lukh/uCoSM/tick"
)

// countingModule counts lifecycle calls, for asserting fold order/coverage.
type countingModule struct {
	name       string
	exeReady   bool
	delReady   bool
	calls      *[]string
	initCalled bool
}

func (m *countingModule) Init(*capability.Context) {
	m.initCalled = true
	*m.calls = append(*m.calls, m.name+":init")
}
func (m *countingModule) IsExeReady() bool {
	*m.calls = append(*m.calls, m.name+":isExeReady")
	return m.exeReady
}
func (m *countingModule) IsDelReady() bool {
	*m.calls = append(*m.calls, m.name+":isDelReady")
	return m.delReady
}
func (m *countingModule) PreExe()  { *m.calls = append(*m.calls, m.name+":preExe") }
func (m *countingModule) PostExe() { *m.calls = append(*m.calls, m.name+":postExe") }
func (m *countingModule) PreDel()  { *m.calls = append(*m.calls, m.name+":preDel") }
func (m *countingModule) Initialized() bool { return m.initCalled }

func TestBundle2_FoldsInOrderAndEvaluatesBoth(t *testing.T) {
	var calls []string
	b := &capability.Bundle2[countingModule, countingModule, *countingModule, *countingModule]{
		M1: countingModule{name: "a", exeReady: false, delReady: true, calls: &calls},
		M2: countingModule{name: "b", exeReady: true, delReady: true, calls: &calls},
	}

	ctx := capability.NewContext(tick.SourceFunc(func() tick.Tick { return 0 }))
	b.Init(ctx)
	assert.True(t, b.First().Initialized())
	assert.True(t, b.Second().Initialized())

	calls = nil
	ready := b.IsExeReady()
	assert.False(t, ready, "AND of {false,true} must be false")
	// Both modules must have been evaluated even though the first was false.
	assert.Equal(t, []string{"a:isExeReady", "b:isExeReady"}, calls)
}

func TestBundle2_IsDelReadyAndsAllModules(t *testing.T) {
	var calls []string
	b := &capability.Bundle2[countingModule, countingModule, *countingModule, *countingModule]{
		M1: countingModule{name: "a", delReady: true, calls: &calls},
		M2: countingModule{name: "b", delReady: false, calls: &calls},
	}
	ctx := capability.NewContext(tick.SourceFunc(func() tick.Tick { return 0 }))
	b.Init(ctx)

	assert.False(t, b.IsDelReady())
}

func TestEmptyBundle_IsIdentity(t *testing.T) {
	var e capability.Empty
	e.Init(nil)
	assert.True(t, e.IsExeReady())
	assert.True(t, e.IsDelReady())
	assert.NotPanics(t, func() {
		e.PreExe()
		e.PostExe()
		e.PreDel()
	})
}

func TestBundle4_FoldsFourModules(t *testing.T) {
	var calls []string
	b := &capability.Bundle4[
		countingModule, countingModule, countingModule, countingModule,
		*countingModule, *countingModule, *countingModule, *countingModule,
	]{
		M1: countingModule{name: "a", exeReady: true, delReady: true, calls: &calls},
		M2: countingModule{name: "b", exeReady: true, delReady: true, calls: &calls},
		M3: countingModule{name: "c", exeReady: true, delReady: true, calls: &calls},
		M4: countingModule{name: "d", exeReady: true, delReady: true, calls: &calls},
	}
	ctx := capability.NewContext(tick.SourceFunc(func() tick.Tick { return 0 }))
	b.Init(ctx)
	assert.True(t, b.IsExeReady())
	assert.True(t, b.IsDelReady())

	calls = nil
	b.PreExe()
	b.PostExe()
	assert.Equal(t, []string{
		"a:preExe", "b:preExe", "c:preExe", "d:preExe",
		"a:postExe", "b:postExe", "c:postExe", "d:postExe",
	}, calls)
}
