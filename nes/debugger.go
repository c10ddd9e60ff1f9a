package nes

import (
	"fmt"
	"io"
	"os"
)

// MemSource selects which memory a debugger read or write targets.
type MemSource int

const (
	// SourceRAM goes through the CPU bus, so register mirrors and
	// mapper banking behave exactly as they do for the program.
	SourceRAM MemSource = iota
	SourceVRAM
	SourceOAM
)

// Breakpoint watches the program counter over [Start, End], both ends
// included. Erased
// entries keep their slot so breakpoint ids stay stable.
type Breakpoint struct {
	Start  uint16
	End    uint16
	Erased bool
}

// Event is something the emulation stopped for.
type Event interface{ event() }

// BreakEvent reports that the CPU landed inside breakpoint ID.
type BreakEvent struct {
	ID int
	PC uint16
}

// InvalidInstructionEvent reports an opcode outside the documented 151.
type InvalidInstructionEvent struct {
	ID byte
	PC uint16
}

// QuitEvent reports that the program under emulation cannot continue.
type QuitEvent struct{}

func (BreakEvent) event()              {}
func (InvalidInstructionEvent) event() {}
func (QuitEvent) event()               {}

// CPUStatus is a snapshot of the CPU register file.
type CPUStatus struct {
	A, X, Y, SP byte
	PC          uint16
	Flags       string
	P           byte
	Cycles      uint64
}

// PPUStatus is a snapshot of the PPU's timing and VRAM state.
type PPUStatus struct {
	ScanLine int
	Dot      int
	Frame    uint64
	V, T     uint16
	FineX    byte
	W        byte
	Ctrl     byte
	Mask     byte
	Status   byte
	Sprites  [8]SpriteStatus
}

// SpriteStatus mirrors one of the eight sprite units for inspection.
type SpriteStatus struct {
	Index     byte
	X         byte
	Attr      byte
	PatternLo byte
	PatternHi byte
}

// Debugger drives a Console one instruction at a time: breakpoints,
// step modes, memory inspection and tracing. It owns no goroutine; a
// front end (the CLI repl, tests) calls into it.
type Debugger struct {
	console *Console

	breakpoints []Breakpoint

	// stopOnInvalid makes Run halt on undocumented opcodes instead of
	// treating them as NOPs.
	stopOnInvalid bool

	traceOut  io.Writer
	traceFile *os.File

	invalid *InvalidInstructionEvent // latched by the CPU callback
}

func NewDebugger(console *Console) *Debugger {
	d := &Debugger{console: console}
	console.cpu.OnInvalidOpcode(func(op byte, pc uint16) {
		d.invalid = &InvalidInstructionEvent{ID: op, PC: pc}
	})
	return d
}

// SetBreak registers a breakpoint over [start, end] and returns its id.
func (d *Debugger) SetBreak(start, end uint16) int {
	d.breakpoints = append(d.breakpoints, Breakpoint{Start: start, End: end})
	return len(d.breakpoints) - 1
}

// DeleteBreak erases breakpoint id.
func (d *Debugger) DeleteBreak(id int) error {
	if id < 0 || id >= len(d.breakpoints) || d.breakpoints[id].Erased {
		return fmt.Errorf("no breakpoint %d", id)
	}
	d.breakpoints[id].Erased = true
	return nil
}

// Breakpoints returns the breakpoint list, erased slots included.
func (d *Debugger) Breakpoints() []Breakpoint { return d.breakpoints }

// StopOnInvalid selects whether Run halts on undocumented opcodes.
func (d *Debugger) StopOnInvalid(stop bool) { d.stopOnInvalid = stop }

// Step runs a single instruction and reports any event it produced.
func (d *Debugger) Step() Event {
	d.invalid = nil

	if d.traceOut != nil {
		fmt.Fprintln(d.traceOut, d.TraceLine())
	}

	d.console.Step()

	if d.invalid != nil {
		return *d.invalid
	}
	pc := d.console.cpu.pc
	for id, bp := range d.breakpoints {
		if !bp.Erased && pc >= bp.Start && pc <= bp.End {
			return BreakEvent{ID: id, PC: pc}
		}
	}
	return nil
}

// StepOver runs one instruction, and if it is a JSR, keeps going until
// the matching RTS brings the call depth back to zero.
func (d *Debugger) StepOver() Event {
	op := d.console.Read(d.console.cpu.pc)
	ev := d.Step()
	if op != 0x20 || ev != nil {
		return ev
	}

	depth := 1
	for depth > 0 {
		switch d.console.Read(d.console.cpu.pc) {
		case 0x20:
			depth++
		case 0x60:
			depth--
		}
		if ev := d.Step(); ev != nil {
			return ev
		}
	}
	return nil
}

// RunToFrame runs until the CPU enters the NMI handler: execution
// stops when PC reaches the address the NMI vector points at, after
// the interrupt sequence has completed. Any event stops it early.
func (d *Debugger) RunToFrame() Event {
	target := uint16(d.console.Read(nmiVector)) |
		uint16(d.console.Read(nmiVector+1))<<8
	for {
		if ev := d.Step(); ev != nil {
			return ev
		}
		if d.console.cpu.pc == target {
			return nil
		}
	}
}

// Run executes until a breakpoint fires or, when configured, an
// undocumented opcode shows up.
func (d *Debugger) Run() Event {
	for {
		ev := d.Step()
		switch ev.(type) {
		case nil:
		case InvalidInstructionEvent:
			if d.stopOnInvalid {
				return ev
			}
		default:
			return ev
		}
	}
}

// ReadMem reads one byte from the selected memory. RAM reads go through
// the CPU bus so mirrors and mapped registers respond normally.
func (d *Debugger) ReadMem(src MemSource, addr uint16) byte {
	switch src {
	case SourceVRAM:
		return d.console.ppu.Read(addr)
	case SourceOAM:
		return d.console.ppu.ReadOAM(byte(addr))
	default:
		return d.console.Read(addr)
	}
}

// WriteMem writes one byte to the selected memory.
func (d *Debugger) WriteMem(src MemSource, addr uint16, v byte) {
	switch src {
	case SourceVRAM:
		d.console.ppu.Write(addr, v)
	case SourceOAM:
		d.console.ppu.WriteOAM(byte(addr), v)
	default:
		d.console.Write(addr, v)
	}
}

// CPUStatus snapshots the CPU registers.
func (d *Debugger) CPUStatus() CPUStatus {
	c := d.console.cpu
	return CPUStatus{
		A: c.a, X: c.x, Y: c.y, SP: c.s,
		PC:     c.pc,
		Flags:  c.p.String(),
		P:      byte(c.p),
		Cycles: c.cycles,
	}
}

// PPUStatus snapshots the PPU timing and address state.
func (d *Debugger) PPUStatus() PPUStatus {
	p := d.console.ppu
	st := PPUStatus{
		ScanLine: p.ScanLine,
		Dot:      p.Dot,
		Frame:    p.Frame,
		V:        p.v,
		T:        p.t,
		FineX:    p.x,
		W:        p.w,
		Ctrl:     byte(p.Ctrl),
		Mask:     byte(p.Mask),
		Status:   byte(p.Status),
	}
	for i, s := range p.sprites {
		st.Sprites[i] = SpriteStatus{
			Index: s.index, X: s.x, Attr: s.attr,
			PatternLo: s.lo, PatternHi: s.hi,
		}
	}
	return st
}

// Disassemble decodes the instruction at addr without disturbing the
// machine, annotating branches from the live flags.
func (d *Debugger) Disassemble(addr uint16) (string, int) {
	op := d.console.Read(addr)
	lo := d.console.Read(addr + 1)
	hi := d.console.Read(addr + 2)
	return DisassembleLive(op, lo, hi, addr, d.console.cpu.p)
}

// TraceLine formats the state of the machine at the current PC in the
// nestest style, with the PPU's VRAM address appended.
func (d *Debugger) TraceLine() string {
	c := d.console.cpu
	p := d.console.ppu

	op := d.console.Read(c.pc)
	lo := d.console.Read(c.pc + 1)
	hi := d.console.Read(c.pc + 2)

	text, size := Disassemble(op, lo, hi, c.pc)

	var bytes string
	switch size {
	case 1:
		bytes = fmt.Sprintf("%02X      ", op)
	case 2:
		bytes = fmt.Sprintf("%02X %02X   ", op, lo)
	default:
		bytes = fmt.Sprintf("%02X %02X %02X", op, lo, hi)
	}

	return fmt.Sprintf("%04X  %s  %-14s A:%02X X:%02X Y:%02X P:%02X SP:%02X V:%04X CYC:%d",
		c.pc, bytes, text, c.a, c.x, c.y, byte(c.p), c.s, p.v, c.cycles)
}

// Trace starts appending a trace line for every executed instruction to
// the named file.
func (d *Debugger) Trace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	d.stopTrace()
	d.traceFile = f
	d.traceOut = f
	return nil
}

// TraceTo streams trace lines to w; used by tests.
func (d *Debugger) TraceTo(w io.Writer) {
	d.stopTrace()
	d.traceOut = w
}

// StopTrace closes the active trace, if any.
func (d *Debugger) StopTrace() error {
	return d.stopTrace()
}

func (d *Debugger) stopTrace() error {
	d.traceOut = nil
	if d.traceFile != nil {
		err := d.traceFile.Close()
		d.traceFile = nil
		return err
	}
	return nil
}
