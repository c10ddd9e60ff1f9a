package nes

type addressingMode byte

const (
	implied addressingMode = iota
	accumulator
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indexedIndirect // (zp,X)
	indirectIndexed // (zp),Y
)

type instructionKind byte

const (
	_ instructionKind = iota
	kindRead
	kindWrite
	kindReadModWrite
)

type instruction struct {
	OpCode     byte
	Name       string
	Mode       addressingMode
	Kind       instructionKind
	Size       byte
	Cycles     byte
	PageCycles byte
	Illegal    bool
}

// instructions covers the full opcode space. The 151 documented opcodes
// carry their mode, size and base cycle count; everything else is
// Illegal and executes as a 1-byte NOP while being reported through the
// invalid-opcode callback.
var instructions = [256]instruction{
	0x00: {Name: "BRK", Mode: implied, Size: 1, Cycles: 7},
	0x01: {Name: "ORA", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0x05: {Name: "ORA", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0x06: {Name: "ASL", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0x08: {Name: "PHP", Mode: implied, Size: 1, Cycles: 3},
	0x09: {Name: "ORA", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0x0A: {Name: "ASL", Mode: accumulator, Size: 1, Cycles: 2},
	0x0D: {Name: "ORA", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0x0E: {Name: "ASL", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0x10: {Name: "BPL", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x11: {Name: "ORA", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0x15: {Name: "ORA", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0x16: {Name: "ASL", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0x18: {Name: "CLC", Mode: implied, Size: 1, Cycles: 2},
	0x19: {Name: "ORA", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x1D: {Name: "ORA", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x1E: {Name: "ASL", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},

	0x20: {Name: "JSR", Mode: absolute, Size: 3, Cycles: 6},
	0x21: {Name: "AND", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0x24: {Name: "BIT", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0x25: {Name: "AND", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0x26: {Name: "ROL", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0x28: {Name: "PLP", Mode: implied, Size: 1, Cycles: 4},
	0x29: {Name: "AND", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0x2A: {Name: "ROL", Mode: accumulator, Size: 1, Cycles: 2},
	0x2C: {Name: "BIT", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0x2D: {Name: "AND", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0x2E: {Name: "ROL", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0x30: {Name: "BMI", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x31: {Name: "AND", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0x35: {Name: "AND", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0x36: {Name: "ROL", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0x38: {Name: "SEC", Mode: implied, Size: 1, Cycles: 2},
	0x39: {Name: "AND", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x3D: {Name: "AND", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x3E: {Name: "ROL", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},

	0x40: {Name: "RTI", Mode: implied, Size: 1, Cycles: 6},
	0x41: {Name: "EOR", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0x45: {Name: "EOR", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0x46: {Name: "LSR", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0x48: {Name: "PHA", Mode: implied, Size: 1, Cycles: 3},
	0x49: {Name: "EOR", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0x4A: {Name: "LSR", Mode: accumulator, Size: 1, Cycles: 2},
	0x4C: {Name: "JMP", Mode: absolute, Size: 3, Cycles: 3},
	0x4D: {Name: "EOR", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0x4E: {Name: "LSR", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0x50: {Name: "BVC", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x51: {Name: "EOR", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0x55: {Name: "EOR", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0x56: {Name: "LSR", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0x58: {Name: "CLI", Mode: implied, Size: 1, Cycles: 2},
	0x59: {Name: "EOR", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x5D: {Name: "EOR", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x5E: {Name: "LSR", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},

	0x60: {Name: "RTS", Mode: implied, Size: 1, Cycles: 6},
	0x61: {Name: "ADC", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0x65: {Name: "ADC", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0x66: {Name: "ROR", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0x68: {Name: "PLA", Mode: implied, Size: 1, Cycles: 4},
	0x69: {Name: "ADC", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0x6A: {Name: "ROR", Mode: accumulator, Size: 1, Cycles: 2},
	0x6C: {Name: "JMP", Mode: indirect, Size: 3, Cycles: 5},
	0x6D: {Name: "ADC", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0x6E: {Name: "ROR", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0x70: {Name: "BVS", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x71: {Name: "ADC", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0x75: {Name: "ADC", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0x76: {Name: "ROR", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0x78: {Name: "SEI", Mode: implied, Size: 1, Cycles: 2},
	0x79: {Name: "ADC", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x7D: {Name: "ADC", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0x7E: {Name: "ROR", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},

	0x81: {Name: "STA", Mode: indexedIndirect, Kind: kindWrite, Size: 2, Cycles: 6},
	0x84: {Name: "STY", Mode: zeroPage, Kind: kindWrite, Size: 2, Cycles: 3},
	0x85: {Name: "STA", Mode: zeroPage, Kind: kindWrite, Size: 2, Cycles: 3},
	0x86: {Name: "STX", Mode: zeroPage, Kind: kindWrite, Size: 2, Cycles: 3},
	0x88: {Name: "DEY", Mode: implied, Size: 1, Cycles: 2},
	0x8A: {Name: "TXA", Mode: implied, Size: 1, Cycles: 2},
	0x8C: {Name: "STY", Mode: absolute, Kind: kindWrite, Size: 3, Cycles: 4},
	0x8D: {Name: "STA", Mode: absolute, Kind: kindWrite, Size: 3, Cycles: 4},
	0x8E: {Name: "STX", Mode: absolute, Kind: kindWrite, Size: 3, Cycles: 4},

	0x90: {Name: "BCC", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0x91: {Name: "STA", Mode: indirectIndexed, Kind: kindWrite, Size: 2, Cycles: 6},
	0x94: {Name: "STY", Mode: zeroPageX, Kind: kindWrite, Size: 2, Cycles: 4},
	0x95: {Name: "STA", Mode: zeroPageX, Kind: kindWrite, Size: 2, Cycles: 4},
	0x96: {Name: "STX", Mode: zeroPageY, Kind: kindWrite, Size: 2, Cycles: 4},
	0x98: {Name: "TYA", Mode: implied, Size: 1, Cycles: 2},
	0x99: {Name: "STA", Mode: absoluteY, Kind: kindWrite, Size: 3, Cycles: 5},
	0x9A: {Name: "TXS", Mode: implied, Size: 1, Cycles: 2},
	0x9D: {Name: "STA", Mode: absoluteX, Kind: kindWrite, Size: 3, Cycles: 5},

	0xA0: {Name: "LDY", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xA1: {Name: "LDA", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0xA2: {Name: "LDX", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xA4: {Name: "LDY", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xA5: {Name: "LDA", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xA6: {Name: "LDX", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xA8: {Name: "TAY", Mode: implied, Size: 1, Cycles: 2},
	0xA9: {Name: "LDA", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xAA: {Name: "TAX", Mode: implied, Size: 1, Cycles: 2},
	0xAC: {Name: "LDY", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xAD: {Name: "LDA", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xAE: {Name: "LDX", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},

	0xB0: {Name: "BCS", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xB1: {Name: "LDA", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0xB4: {Name: "LDY", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0xB5: {Name: "LDA", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0xB6: {Name: "LDX", Mode: zeroPageY, Kind: kindRead, Size: 2, Cycles: 4},
	0xB8: {Name: "CLV", Mode: implied, Size: 1, Cycles: 2},
	0xB9: {Name: "LDA", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xBA: {Name: "TSX", Mode: implied, Size: 1, Cycles: 2},
	0xBC: {Name: "LDY", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xBD: {Name: "LDA", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xBE: {Name: "LDX", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},

	0xC0: {Name: "CPY", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xC1: {Name: "CMP", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0xC4: {Name: "CPY", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xC5: {Name: "CMP", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xC6: {Name: "DEC", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0xC8: {Name: "INY", Mode: implied, Size: 1, Cycles: 2},
	0xC9: {Name: "CMP", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xCA: {Name: "DEX", Mode: implied, Size: 1, Cycles: 2},
	0xCC: {Name: "CPY", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xCD: {Name: "CMP", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xCE: {Name: "DEC", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0xD0: {Name: "BNE", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xD1: {Name: "CMP", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0xD5: {Name: "CMP", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0xD6: {Name: "DEC", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0xD8: {Name: "CLD", Mode: implied, Size: 1, Cycles: 2},
	0xD9: {Name: "CMP", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xDD: {Name: "CMP", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xDE: {Name: "DEC", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},

	0xE0: {Name: "CPX", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xE1: {Name: "SBC", Mode: indexedIndirect, Kind: kindRead, Size: 2, Cycles: 6},
	0xE4: {Name: "CPX", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xE5: {Name: "SBC", Mode: zeroPage, Kind: kindRead, Size: 2, Cycles: 3},
	0xE6: {Name: "INC", Mode: zeroPage, Kind: kindReadModWrite, Size: 2, Cycles: 5},
	0xE8: {Name: "INX", Mode: implied, Size: 1, Cycles: 2},
	0xE9: {Name: "SBC", Mode: immediate, Kind: kindRead, Size: 2, Cycles: 2},
	0xEA: {Name: "NOP", Mode: implied, Size: 1, Cycles: 2},
	0xEC: {Name: "CPX", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xED: {Name: "SBC", Mode: absolute, Kind: kindRead, Size: 3, Cycles: 4},
	0xEE: {Name: "INC", Mode: absolute, Kind: kindReadModWrite, Size: 3, Cycles: 6},

	0xF0: {Name: "BEQ", Mode: relative, Size: 2, Cycles: 2, PageCycles: 1},
	0xF1: {Name: "SBC", Mode: indirectIndexed, Kind: kindRead, Size: 2, Cycles: 5, PageCycles: 1},
	0xF5: {Name: "SBC", Mode: zeroPageX, Kind: kindRead, Size: 2, Cycles: 4},
	0xF6: {Name: "INC", Mode: zeroPageX, Kind: kindReadModWrite, Size: 2, Cycles: 6},
	0xF8: {Name: "SED", Mode: implied, Size: 1, Cycles: 2},
	0xF9: {Name: "SBC", Mode: absoluteY, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xFD: {Name: "SBC", Mode: absoluteX, Kind: kindRead, Size: 3, Cycles: 4, PageCycles: 1},
	0xFE: {Name: "INC", Mode: absoluteX, Kind: kindReadModWrite, Size: 3, Cycles: 7},
}

func init() {
	for i := range instructions {
		if instructions[i].Name == "" {
			instructions[i] = instruction{Name: "???", Mode: implied, Size: 1, Cycles: 2, Illegal: true}
		}
		instructions[i].OpCode = byte(i)
	}
}
