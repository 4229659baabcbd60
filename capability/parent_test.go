package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParent_IsDelReadyBlockedByLiveChild(t *testing.T) {
	parent := &Parent{}
	child := &Parent{}

	assert.True(t, parent.IsDelReady())
	parent.SetChild(child)
	assert.False(t, parent.IsDelReady())
	assert.Same(t, parent, child.ParentOf())
}

func TestParent_PreDelDetachesFromOwnParent(t *testing.T) {
	parent := &Parent{}
	child := &Parent{}
	parent.SetChild(child)

	child.PreDel()
	assert.True(t, parent.IsDelReady())
	assert.Nil(t, child.ParentOf())
}
