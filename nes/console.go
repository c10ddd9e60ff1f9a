package nes

// Console owns the machine: CPU, PPU, both buses, RAM, VRAM, cartridge
// and controllers. It wires the memory maps and enforces the clocking
// contract between the two chips: after every CPU step the PPU runs
// exactly three dots per CPU cycle elapsed.
type Console struct {
	cpu    *CPU
	ppu    *PPU
	apu    *APU
	screen *Screen

	cpuBus *Bus
	ppuBus *Bus

	cartridge *Cartridge
	ctrl1     *Controller
	ctrl2     *Controller

	ram  [0x800]byte
	vram [0x1000]byte // 2 KiB mirrored, 4 KiB for four-screen boards

	// frameReady latches when the PPU reaches the VBlank dot, whether
	// or not an NMI was delivered; StepFrame consumes it.
	frameReady bool

	// onFrame, when set, runs at the VBlank dot with the framebuffer
	// complete; the presentation layer hangs its publish here.
	onFrame func()
}

func NewConsole() *Console {
	c := &Console{
		cpuBus: NewCPUBus(),
		ppuBus: NewPPUBus(),
		apu:    &APU{},
		screen: newScreen(),
		ctrl1:  &Controller{},
		ctrl2:  &Controller{},
	}

	c.ppu = NewPPU(c.ppuBus, c.screen)
	c.cpu = NewCPU(c.cpuBus)

	c.ppu.onVBlank = func(nmiEnabled bool) {
		c.frameReady = true
		if nmiEnabled {
			c.cpu.SignalNMI()
		}
		if c.onFrame != nil {
			c.onFrame()
		}
	}
	c.ppu.raiseNMI = c.cpu.SignalNMI

	return c
}

// Empty reports whether a cartridge has been inserted.
func (c *Console) Empty() bool { return c.cartridge == nil }

// Load inserts a cartridge, wires both buses and powers the machine.
func (c *Console) Load(cart *Cartridge) {
	c.cartridge = cart

	if m, ok := cart.Mapper().(*mmc1); ok {
		m.cycles = c.cpu.Cycles
	}

	c.cpuBus = NewCPUBus()
	c.ppuBus = NewPPUBus()
	c.cpu.bus = c.cpuBus
	c.ppu.bus = c.ppuBus
	c.wire()

	c.Power()
}

// wire binds every address of both spaces to a device, so that no read
// or write ever falls through to open bus in normal operation.
func (c *Console) wire() {
	bus := c.cpuBus
	mapper := c.cartridge.Mapper()

	// 2 KiB of internal RAM, mirrored four times
	bus.Map(0x0000, 0x2000,
		func(addr uint16) byte { return c.ram[addr&0x07FF] },
		func(addr uint16, v byte) { c.ram[addr&0x07FF] = v })

	// PPU registers, mirrored every 8 bytes up to $3FFF
	bus.Map(0x2000, 0x4000, c.ppu.ReadPort, c.ppu.WritePort)

	// APU register file; $4014 and the controller ports sit on top
	bus.Map(0x4000, 0x4014, c.apu.ReadPort, c.apu.WritePort)
	bus.Map(0x4015, 0x4016, c.apu.ReadPort, c.apu.WritePort)

	// OAM DMA: the CPU intercepts the write for timing and streams the
	// page through this port
	bus.Map(0x4014, 0x4015,
		func(addr uint16) byte { return 0 },
		c.ppu.WritePort)

	// $4016 strobes both pads on write, reads pad 1
	bus.Map(0x4016, 0x4017,
		func(addr uint16) byte { return c.ctrl1.Read() },
		func(addr uint16, v byte) {
			c.ctrl1.Write(v)
			c.ctrl2.Write(v)
		})

	// $4017 reads pad 2; writes hit the APU frame counter
	bus.Map(0x4017, 0x4018,
		func(addr uint16) byte { return c.ctrl2.Read() },
		c.apu.WritePort)

	// CPU test mode registers, disabled on a stock console
	bus.Map(0x4018, 0x4020,
		func(addr uint16) byte { return 0 },
		func(addr uint16, v byte) {})

	// expansion area below WRAM; nothing maps it on NROM/MMC1 boards
	bus.Map(0x4020, 0x6000,
		func(addr uint16) byte { return 0 },
		func(addr uint16, v byte) {})

	bus.Map(0x6000, 0x8000, mapper.ReadWRAM, mapper.WriteWRAM)
	bus.Map(0x8000, 0x10000, mapper.ReadPRG, mapper.WritePRG)

	// PPU side: pattern tables from the cartridge, nametables through
	// the mirroring function, palette RAM inside the PPU
	vbus := c.ppuBus
	vbus.Map(0x0000, 0x2000, mapper.ReadCHR, mapper.WriteCHR)
	vbus.Map(0x2000, 0x3F00,
		func(addr uint16) byte { return c.vram[c.ntIndex(addr)] },
		func(addr uint16, v byte) { c.vram[c.ntIndex(addr)] = v })
	vbus.Map(0x3F00, 0x4000,
		c.ppu.readPalette,
		c.ppu.writePalette)
}

// ntPages maps each mirroring mode to the VRAM page backing the four
// nametable slots.
var ntPages = [...][4]int{
	MirrorHorizontal: {0, 0, 1, 1},
	MirrorVertical:   {0, 1, 0, 1},
	MirrorSingleLow:  {0, 0, 0, 0},
	MirrorSingleHigh: {1, 1, 1, 1},
	MirrorFourScreen: {0, 1, 2, 3},
}

func (c *Console) ntIndex(addr uint16) int {
	addr &= 0x0FFF // folds the $3000-$3EFF mirror
	pages := ntPages[c.cartridge.Mapper().Mirror()]
	return pages[addr>>10]*0x400 + int(addr&0x03FF)
}

// Power runs the power-on sequence. RAM and VRAM start zeroed only
// because the process memory is; nothing relies on it.
func (c *Console) Power() {
	c.cpu.Power()
	c.frameReady = false
}

// Reset presses the reset button: the CPU latches its reset line, the
// PPU drops its control registers. RAM, VRAM, OAM and palette contents
// survive.
func (c *Console) Reset() {
	c.cpu.SignalReset()
	c.ppu.Reset()
}

// Step executes one CPU instruction (or interrupt sequence) and keeps
// the PPU in phase, three dots per cycle.
func (c *Console) Step() uint64 {
	cycles := c.cpu.Step()
	for i := uint64(0); i < cycles*3; i++ {
		c.ppu.Tick()
	}
	return cycles
}

// StepFrame runs until the PPU reaches the VBlank dot of line 241,
// which is when the finished picture is ready to present.
func (c *Console) StepFrame() {
	if c.Empty() {
		return
	}
	for !c.frameReady {
		c.Step()
	}
	c.frameReady = false
}

// OnFrame installs the end-of-frame hook.
func (c *Console) OnFrame(fn func()) { c.onFrame = fn }

// Screen returns the framebuffer the PPU draws into.
func (c *Console) Screen() *Screen { return c.screen }

// Controller returns pad 0 or 1.
func (c *Console) Controller(n int) *Controller {
	if n == 0 {
		return c.ctrl1
	}
	return c.ctrl2
}

// Read peeks the CPU bus without spending a cycle; debugger use.
func (c *Console) Read(addr uint16) byte { return c.cpuBus.Read(addr) }

// Write pokes the CPU bus without spending a cycle; debugger use.
func (c *Console) Write(addr uint16, v byte) { c.cpuBus.Write(addr, v) }
