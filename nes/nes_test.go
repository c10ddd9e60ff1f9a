package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildINES assembles an iNES image in memory.
func buildINES(prgBanks, chrBanks, flags6, flags7 byte, prg, chr []byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1A, prgBanks, chrBanks, flags6, flags7})
	buf.Write(make([]byte, 8))
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

// testPRG returns a single 16 KiB PRG bank with program at its start
// and the reset vector pointing at $8000. The NMI vector points at
// $8100 and the IRQ vector at $8200.
func testPRG(program []byte) []byte {
	prg := make([]byte, prgMul)
	copy(prg, program)
	prg[0x3FFA] = 0x00 // NMI -> $8100
	prg[0x3FFB] = 0x81
	prg[0x3FFC] = 0x00 // reset -> $8000
	prg[0x3FFD] = 0x80
	prg[0x3FFE] = 0x00 // IRQ -> $8200
	prg[0x3FFF] = 0x82
	return prg
}

// newTestConsole powers a console with an NROM cart holding program.
// chrBanks 0 gives the cart CHR-RAM.
func newTestConsole(t *testing.T, program []byte) *Console {
	t.Helper()

	rom := buildINES(1, 0, 0, 0, testPRG(program), nil)
	cart, err := LoadINES(bytes.NewReader(rom))
	require.NoError(t, err)

	console := NewConsole()
	console.Load(cart)
	return console
}
