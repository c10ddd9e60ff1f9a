package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerSerialReadout(t *testing.T) {
	state := [8]bool{}
	pad := &Controller{Source: func() [8]bool { return state }}

	state[ButtonA] = true
	state[ButtonStart] = true
	state[ButtonLeft] = true

	pad.Write(1) // strobe up
	pad.Write(0) // latch on the falling edge

	want := []byte{1, 0, 0, 1, 0, 0, 1, 0} // A B Select Start Up Down Left Right
	for i, w := range want {
		assert.Equal(t, w, pad.Read(), "bit %d", i)
	}

	// the register shifts in ones
	for i := 0; i < 4; i++ {
		assert.Equal(t, byte(1), pad.Read())
	}
}

func TestControllerStrobeHighReadsLiveA(t *testing.T) {
	state := [8]bool{}
	pad := &Controller{Source: func() [8]bool { return state }}

	pad.Write(1)
	assert.Equal(t, byte(0), pad.Read())
	state[ButtonA] = true
	assert.Equal(t, byte(1), pad.Read())
	assert.Equal(t, byte(1), pad.Read(), "no shifting while strobed")
}

func TestControllerLatchIsEdgeTriggered(t *testing.T) {
	state := [8]bool{}
	pad := &Controller{Source: func() [8]bool { return state }}

	state[ButtonB] = true
	pad.Write(1)
	pad.Write(0)
	state[ButtonB] = false // too late, already latched

	assert.Equal(t, byte(0), pad.Read()) // A
	assert.Equal(t, byte(1), pad.Read()) // B

	// writing 0 again without a high strobe must not re-latch
	pad.Write(0)
	assert.Equal(t, byte(0), pad.Read()) // Select, sequence continues
}

func TestControllerHeldButtons(t *testing.T) {
	pad := &Controller{}

	pad.Press(ButtonStart)
	pad.Write(1)
	pad.Write(0)

	got := []byte{pad.Read(), pad.Read(), pad.Read(), pad.Read()}
	assert.Equal(t, []byte{0, 0, 0, 1}, got)

	pad.Release(ButtonStart)
	pad.Write(1)
	pad.Write(0)
	for i := 0; i < 8; i++ {
		assert.Equal(t, byte(0), pad.Read())
	}
}
