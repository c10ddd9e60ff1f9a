package nes

import "log"

const (
	cpuBusSize = 0x10000
	ppuBusSize = 0x4000

	// Size of a bus's handler table. Id 0 marks an unmapped address, so
	// a bus holds at most busHandlers-1 distinct handlers. The console
	// wires 11 ranges on the CPU side and 3 on the PPU side, so the
	// handler table stays small enough to sit in cache.
	busHandlers = 16
)

// Reader resolves a bus address to a byte.
type Reader func(addr uint16) byte

// Writer stores a byte at a bus address.
type Writer func(addr uint16, v byte)

// Bus routes reads and writes to the device mapped at each address.
//
// Map binds a half-open address range to a reader/writer pair; dispatch
// goes through a flat per-address table of handler ids, so a Read or
// Write is one slice index and one call. Later mappings overwrite
// earlier ones. Addresses left unmapped behave as open bus: reads
// return the last value seen on the bus and writes are dropped.
type Bus struct {
	lookup  []uint8
	readers [busHandlers]Reader
	writers [busHandlers]Writer
	next    int

	latch byte // last value driven on the bus, for open-bus reads
}

// NewCPUBus returns an empty bus spanning the CPU's 64 KiB address space.
func NewCPUBus() *Bus {
	return &Bus{lookup: make([]uint8, cpuBusSize), next: 1}
}

// NewPPUBus returns an empty bus spanning the PPU's 16 KiB address space.
func NewPPUBus() *Bus {
	return &Bus{lookup: make([]uint8, ppuBusSize), next: 1}
}

// Map binds [start, end) to the given handler pair. end is exclusive so a
// range may cover the top of the address space.
func (b *Bus) Map(start, end int, r Reader, w Writer) {
	if b.next >= busHandlers {
		log.Fatalf("bus: handler table exhausted mapping %04X-%04X", start, end)
	}
	id := uint8(b.next)
	b.next++
	b.readers[id] = r
	b.writers[id] = w
	for i := start; i < end && i < len(b.lookup); i++ {
		b.lookup[i] = id
	}
}

// Mapped reports whether addr resolves to a handler.
func (b *Bus) Mapped(addr uint16) bool {
	return b.lookup[addr] != 0
}

func (b *Bus) Read(addr uint16) byte {
	id := b.lookup[addr]
	if id == 0 {
		log.Printf("bus: open bus read at %04X", addr)
		return b.latch
	}
	v := b.readers[id](addr)
	b.latch = v
	return v
}

func (b *Bus) Write(addr uint16, v byte) {
	b.latch = v
	id := b.lookup[addr]
	if id == 0 {
		log.Printf("bus: open bus write at %04X", addr)
		return
	}
	b.writers[id](addr, v)
}
