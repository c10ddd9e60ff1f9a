package nes

import "fmt"

var addressingFormats = map[addressingMode]string{
	immediate:       "#$%02X",    // #aa
	absolute:        "$%04X",     // aaaa
	zeroPage:        "$%02X",     // aa
	implied:         "",          //
	indirect:        "($%04X)",   // (aaaa)
	absoluteX:       "$%04X,X",   // aaaa,X
	absoluteY:       "$%04X,Y",   // aaaa,Y
	zeroPageX:       "$%02X,X",   // aa,X
	zeroPageY:       "$%02X,Y",   // aa,Y
	indexedIndirect: "($%02X,X)", // (aa,X)
	indirectIndexed: "($%02X),Y", // (aa),Y
	relative:        "$%04X",     // aaaa
	accumulator:     "A",         // A
}

// InstructionLen returns how many bytes the instruction starting with
// op occupies (1 to 3). Undocumented opcodes count as one byte, which
// is how the CPU executes them.
func InstructionLen(op byte) int {
	return int(instructions[op].Size)
}

// Disassemble renders the instruction whose first byte is op, with lo
// and hi the bytes that follow it in memory (ignored when the
// instruction is shorter). pc is the instruction's own address, used to
// resolve branch targets. Returns the text and the instruction length.
func Disassemble(op, lo, hi byte, pc uint16) (string, int) {
	inst := instructions[op]

	if inst.Illegal {
		return fmt.Sprintf(".byte $%02X", op), 1
	}

	switch inst.Mode {
	case implied:
		return inst.Name, int(inst.Size)
	case accumulator:
		return inst.Name + " A", int(inst.Size)
	case relative:
		// branch targets are relative to the following instruction
		target := pc + 2 + uint16(int8(lo))
		return fmt.Sprintf("%s $%04X", inst.Name, target), int(inst.Size)
	}

	var arg uint16
	switch inst.Size {
	case 2:
		arg = uint16(lo)
	case 3:
		arg = uint16(hi)<<8 | uint16(lo)
	}

	return inst.Name + " " + fmt.Sprintf(addressingFormats[inst.Mode], arg), int(inst.Size)
}

// DisassembleLive is Disassemble plus the branch annotation: branches
// are marked taken or not taken from the live flags.
func DisassembleLive(op, lo, hi byte, pc uint16, p status) (string, int) {
	text, size := Disassemble(op, lo, hi, pc)
	if instructions[op].Mode != relative {
		return text, size
	}

	taken := false
	switch op {
	case 0x90: // BCC
		taken = p&carry == 0
	case 0xB0: // BCS
		taken = p&carry > 0
	case 0xD0: // BNE
		taken = p&zero == 0
	case 0xF0: // BEQ
		taken = p&zero > 0
	case 0x10: // BPL
		taken = p&negative == 0
	case 0x30: // BMI
		taken = p&negative > 0
	case 0x50: // BVC
		taken = p&overflow == 0
	case 0x70: // BVS
		taken = p&overflow > 0
	}

	if taken {
		return text + " [taken]", size
	}
	return text + " [not taken]", size
}
