package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusCoverage(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	// every CPU address resolves to a handler after wiring
	for addr := 0; addr <= 0xFFFF; addr++ {
		require.True(t, console.cpuBus.Mapped(uint16(addr)), "CPU %04X unmapped", addr)
	}
	for addr := 0; addr < 0x4000; addr++ {
		require.True(t, console.ppuBus.Mapped(uint16(addr)), "PPU %04X unmapped", addr)
	}
}

func TestRAMMirroring(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	for _, base := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		console.Write(base|0x0123, byte(base>>8))
		for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
			require.Equal(t, byte(base>>8), console.Read(mirror|0x0123),
				"wrote %04X read %04X", base|0x0123, mirror|0x0123)
		}
	}
}

func TestWRAMThroughTheBus(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	console.Write(0x6123, 0x5D)
	assert.Equal(t, byte(0x5D), console.Read(0x6123))
}

func TestAPUSink(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	// APU registers accept writes and never disturb anything
	console.Write(0x4000, 0x3F)
	console.Write(0x4017, 0x40)
	assert.Equal(t, byte(0), console.Read(0x4000))

	console.Write(0x4015, 0x1F)
	assert.Equal(t, byte(0x1F), console.Read(0x4015))

	// test-mode registers are a sink too
	console.Write(0x4018, 0xFF)
	assert.Equal(t, byte(0), console.Read(0x4018))
}

func TestControllerPortsOnTheBus(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	state := [8]bool{}
	state[ButtonA] = true
	console.Controller(0).Source = func() [8]bool { return state }

	console.Write(0x4016, 1)
	console.Write(0x4016, 0)

	assert.Equal(t, byte(1), console.Read(0x4016), "pad 1 bit 0 is A")
	// pad 2 has no source attached and reads zeros then ones
	assert.Equal(t, byte(0), console.Read(0x4017))
}

func TestOAMDMAMatchesPortWrites(t *testing.T) {
	// DMA from a page equals 256 sequential $2004 writes
	dma := newTestConsole(t, []byte{
		0xA9, 0x03, // LDA #$03
		0x8D, 0x14, 0x40, // STA $4014
	})
	manual := newTestConsole(t, []byte{0xEA})

	for i := 0; i < 256; i++ {
		v := byte(i * 7)
		dma.Write(0x0300+uint16(i), v)
		manual.Write(0x2004, v)
	}

	dma.cpu.Step()
	dma.cpu.Step()

	for i := 0; i < 256; i++ {
		require.Equal(t, manual.ppu.ReadOAM(byte(i)), dma.ppu.ReadOAM(byte(i)))
	}
}

func TestResetPreservesMemory(t *testing.T) {
	console := newTestConsole(t, []byte{0xEA})

	console.Write(0x0123, 0xAA)
	console.ppu.Write(0x2045, 0xBB)
	console.ppu.Write(0x3F05, 0x21)
	console.ppu.WriteOAM(7, 0xCC)
	console.ppu.WritePort(0x2001, 0x1E)

	console.Reset()
	console.cpu.Step() // runs the reset sequence

	assert.Equal(t, byte(0xAA), console.Read(0x0123), "RAM survives reset")
	assert.Equal(t, byte(0xBB), console.ppu.Read(0x2045), "VRAM survives reset")
	assert.Equal(t, byte(0x21), console.ppu.Read(0x3F05), "palette survives reset")
	assert.Equal(t, byte(0xCC), console.ppu.ReadOAM(7), "OAM survives reset")

	assert.Equal(t, PpuMask(0), console.ppu.Mask, "PPUMASK cleared by reset")
	assert.Equal(t, uint16(0x8000), console.cpu.pc)
	assert.Equal(t, byte(0xFA), console.cpu.s, "reset decrements SP by 3")
}

func TestStepFrameReachesVBlank(t *testing.T) {
	console := newTestConsole(t, []byte{0x4C, 0x00, 0x80})

	frames := 0
	console.OnFrame(func() { frames++ })

	console.StepFrame()
	console.StepFrame()
	assert.Equal(t, 2, frames)
	// power starts on the pre-render line, so each vblank comes after a wrap
	assert.Equal(t, uint64(2), console.ppu.Frame)
}
