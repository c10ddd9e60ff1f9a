package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDispatch(t *testing.T) {
	bus := NewCPUBus()

	var ram [0x100]byte
	bus.Map(0x0000, 0x0100,
		func(addr uint16) byte { return ram[addr] },
		func(addr uint16, v byte) { ram[addr] = v })

	bus.Write(0x0042, 0xAB)
	assert.Equal(t, byte(0xAB), bus.Read(0x0042))
	assert.Equal(t, byte(0xAB), ram[0x42])
}

func TestBusOverlapOverwrites(t *testing.T) {
	bus := NewCPUBus()

	bus.Map(0x0000, 0x1000,
		func(addr uint16) byte { return 1 },
		func(addr uint16, v byte) {})
	bus.Map(0x0800, 0x1000,
		func(addr uint16) byte { return 2 },
		func(addr uint16, v byte) {})

	assert.Equal(t, byte(1), bus.Read(0x0000))
	assert.Equal(t, byte(1), bus.Read(0x07FF))
	assert.Equal(t, byte(2), bus.Read(0x0800))
	assert.Equal(t, byte(2), bus.Read(0x0FFF))
}

func TestBusOpenBus(t *testing.T) {
	bus := NewCPUBus()

	bus.Map(0x0000, 0x0001,
		func(addr uint16) byte { return 0x5A },
		func(addr uint16, v byte) {})

	// an unmapped read returns the last value that was on the bus
	assert.Equal(t, byte(0x5A), bus.Read(0x0000))
	assert.Equal(t, byte(0x5A), bus.Read(0x8000))

	bus.Write(0x9000, 0xC3) // dropped, but it drives the bus
	assert.Equal(t, byte(0xC3), bus.Read(0x8000))
}

func TestBusExclusiveEnd(t *testing.T) {
	bus := NewCPUBus()

	bus.Map(0x8000, 0x10000,
		func(addr uint16) byte { return 0x77 },
		func(addr uint16, v byte) {})

	assert.True(t, bus.Mapped(0x8000))
	assert.True(t, bus.Mapped(0xFFFF))
	assert.False(t, bus.Mapped(0x7FFF))
	assert.Equal(t, byte(0x77), bus.Read(0xFFFF))
}
