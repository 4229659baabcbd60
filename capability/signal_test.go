package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal_ReceiveGatedByRunning(t *testing.T) {
	status := &Status{}
	sig := NewSignal[int](status, 4)

	assert.True(t, sig.Send(sig, 42))
	assert.True(t, sig.HasData())

	// not running: receive yields zero value, doesn't consume.
	assert.Equal(t, 0, sig.Receive())
	assert.True(t, sig.HasData())

	status.SetStatus(StatusRunning, true)
	assert.Equal(t, 42, sig.Receive())
	assert.False(t, sig.HasData())
}

func TestSignal_SendFullOrNilReceiver(t *testing.T) {
	status := &Status{}
	sig := NewSignal[int](status, 1)

	assert.False(t, sig.Send(nil, 1))
	assert.True(t, sig.Send(sig, 1))
	assert.False(t, sig.Send(sig, 2))
}

func TestSignal_IsDelReadyRequiresDrain(t *testing.T) {
	status := &Status{}
	sig := NewSignal[int](status, 2)
	assert.True(t, sig.IsDelReady())

	sig.Send(sig, 1)
	assert.False(t, sig.IsDelReady())

	status.SetStatus(StatusRunning, true)
	sig.Receive()
	assert.True(t, sig.IsDelReady())
}
