package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mmc1Cart builds an MMC1 cart with n 16 KiB PRG banks, each filled
// with its own bank number, and CHR-RAM.
func mmc1Cart(t *testing.T, banks int) (*Cartridge, *mmc1) {
	t.Helper()

	prg := make([]byte, banks*prgMul)
	for b := 0; b < banks; b++ {
		for i := 0; i < prgMul; i++ {
			prg[b*prgMul+i] = byte(b)
		}
	}

	rom := buildINES(byte(banks), 0, 0x10, 0, prg, nil) // mapper 1
	cart, err := LoadINES(bytes.NewReader(rom))
	require.NoError(t, err)

	m, ok := cart.Mapper().(*mmc1)
	require.True(t, ok)
	return cart, m
}

// loadRegister clocks value through the serial port, LSB first.
func loadRegister(m *mmc1, addr uint16, value byte) {
	for i := 0; i < 5; i++ {
		m.WritePRG(addr, value>>i&1)
	}
}

func TestMMC1SerialLoad(t *testing.T) {
	_, m := mmc1Cart(t, 4)

	// bits 1,0,1,0,1 LSB-first commit 0b10101 = 21 to the PRG register
	for _, bit := range []byte{1, 0, 1, 0, 1} {
		m.WritePRG(0xE000, bit)
	}
	assert.Equal(t, byte(21), m.prgBank)
	assert.Equal(t, 0, m.count, "shifter empties after the fifth write")
}

func TestMMC1ResetBit(t *testing.T) {
	_, m := mmc1Cart(t, 4)

	m.WritePRG(0xE000, 1)
	m.WritePRG(0xE000, 1)
	m.WritePRG(0xE000, 0x80) // reset mid-sequence
	assert.Equal(t, 0, m.count)
	assert.Equal(t, byte(0x0C), m.control&0x0C, "reset fixes the last PRG bank")

	// a full sequence afterwards still works
	for _, bit := range []byte{1, 0, 1, 0, 1} {
		m.WritePRG(0xE000, bit)
	}
	assert.Equal(t, byte(21), m.prgBank)
}

func TestMMC1RegisterSelect(t *testing.T) {
	_, m := mmc1Cart(t, 4)

	loadRegister(m, 0x8000, 0x0E) // control
	assert.Equal(t, byte(0x0E), m.control)
	loadRegister(m, 0xA000, 0x05) // chr bank 0
	assert.Equal(t, byte(0x05), m.chrBank0)
	loadRegister(m, 0xC000, 0x09) // chr bank 1
	assert.Equal(t, byte(0x09), m.chrBank1)
	loadRegister(m, 0xE000, 0x03) // prg bank
	assert.Equal(t, byte(0x03), m.prgBank)
}

func TestMMC1PRGBankModes(t *testing.T) {
	_, m := mmc1Cart(t, 4)

	// power-on: fix-last; bank register selects $8000
	loadRegister(m, 0xE000, 2)
	assert.Equal(t, byte(2), m.ReadPRG(0x8000))
	assert.Equal(t, byte(3), m.ReadPRG(0xC000), "last bank fixed at $C000")

	// fix-first
	loadRegister(m, 0x8000, 0x08)
	loadRegister(m, 0xE000, 2)
	assert.Equal(t, byte(0), m.ReadPRG(0x8000))
	assert.Equal(t, byte(2), m.ReadPRG(0xC000))

	// 32 KiB mode ignores bit 0 of the bank number
	loadRegister(m, 0x8000, 0x00)
	loadRegister(m, 0xE000, 3)
	assert.Equal(t, byte(2), m.ReadPRG(0x8000))
	assert.Equal(t, byte(3), m.ReadPRG(0xC000))
}

func TestMMC1Mirroring(t *testing.T) {
	_, m := mmc1Cart(t, 2)

	for _, tt := range []struct {
		control byte
		want    MirrorMode
	}{
		{0x00, MirrorSingleLow},
		{0x01, MirrorSingleHigh},
		{0x02, MirrorVertical},
		{0x03, MirrorHorizontal},
	} {
		loadRegister(m, 0x8000, tt.control)
		assert.Equal(t, tt.want, m.Mirror())
	}
}

func TestMMC1CHRModes(t *testing.T) {
	_, m := mmc1Cart(t, 2) // CHR-RAM, 8 KiB

	// 4 KiB mode with both banks pointing at the same half
	loadRegister(m, 0x8000, 0x1C) // chr mode 1
	loadRegister(m, 0xA000, 0x01)
	loadRegister(m, 0xC000, 0x01)

	m.WriteCHR(0x0000, 0xAA)
	assert.Equal(t, byte(0xAA), m.ReadCHR(0x1000), "both windows hit bank 1")
}

func TestMMC1IgnoresConsecutiveCycleWrites(t *testing.T) {
	_, m := mmc1Cart(t, 2)

	cycle := uint64(100)
	m.cycles = func() uint64 { return cycle }

	m.WritePRG(0xE000, 1)
	cycle++ // an RMW's second write lands on the very next cycle
	m.WritePRG(0xE000, 0)
	assert.Equal(t, 1, m.count, "second write was ignored")

	cycle += 4
	m.WritePRG(0xE000, 1)
	assert.Equal(t, 2, m.count)
}

func TestNROM(t *testing.T) {
	// 16 KiB cart mirrors its bank at $C000
	prg := make([]byte, prgMul)
	prg[0x0123] = 0x42
	rom := buildINES(1, 0, 0, 0, prg, nil)
	cart, err := LoadINES(bytes.NewReader(rom))
	require.NoError(t, err)

	m := cart.Mapper()
	assert.Equal(t, byte(0x42), m.ReadPRG(0x8123))
	assert.Equal(t, byte(0x42), m.ReadPRG(0xC123))

	m.WritePRG(0x8123, 0x99)
	assert.Equal(t, byte(0x42), m.ReadPRG(0x8123), "PRG-ROM writes are ignored")

	// CHR-RAM takes writes, WRAM holds data
	m.WriteCHR(0x0040, 0x77)
	assert.Equal(t, byte(0x77), m.ReadCHR(0x0040))
	m.WriteWRAM(0x6100, 0x55)
	assert.Equal(t, byte(0x55), m.ReadWRAM(0x6100))
}
