package nes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type command int

const (
	cmdHelp command = iota
	cmdContinue
	cmdRunFrame
	cmdNext
	cmdStep
	cmdBreak
	cmdListBreaks
	cmdDeleteBreak
	cmdStatus
	cmdRead
	cmdWrite
	cmdBlock
	cmdDisassemble
	cmdDisBlock
	cmdTrace
	cmdStopTrace
	cmdHold
	cmdUnhold
	cmdReset
	cmdQuit
)

type commandInfo struct {
	name    string
	abbrev  string
	minArgs int
	maxArgs int
	desc    string
}

var commandTable = map[command]commandInfo{
	cmdHelp:        {"help", "h", 0, 0, "print this help text"},
	cmdContinue:    {"continue", "c", 0, 0, "continue execution until a breakpoint"},
	cmdRunFrame:    {"runframe", "nmi", 0, 0, "run an entire frame, stop at the nmi handler"},
	cmdNext:        {"next", "n", 0, 0, "run the next instruction, stepping over subroutines"},
	cmdStep:        {"step", "s", 0, 0, "step one instruction"},
	cmdBreak:       {"break", "b", 1, 2, "set a breakpoint: start [end]"},
	cmdListBreaks:  {"listbreaks", "lb", 0, 0, "list breakpoints"},
	cmdDeleteBreak: {"deletebreak", "delb", 1, 1, "delete a breakpoint"},
	cmdStatus:      {"status", "st", 0, 1, "print machine status: [cpu|ppu]"},
	cmdRead:        {"read", "rd", 1, 2, "read a byte: addr [ram|vram|oam]"},
	cmdWrite:       {"write", "wr", 2, 3, "write a byte: addr value [ram|vram|oam]"},
	cmdBlock:       {"block", "bl", 2, 3, "dump a block: start end [ram|vram|oam]"},
	cmdDisassemble: {"disassemble", "dis", 1, 3, "disassemble bytes: op [lo] [hi]"},
	cmdDisBlock:    {"disblock", "db", 2, 2, "disassemble a block: start end"},
	cmdTrace:       {"trace", "t", 1, 1, "trace execution to a file"},
	cmdStopTrace:   {"stoptrace", "str", 0, 0, "stop tracing"},
	cmdHold:        {"hold", "hb", 1, 1, "hold a controller button down"},
	cmdUnhold:      {"unhold", "uhb", 1, 1, "release a held button"},
	cmdReset:       {"reset", "r", 0, 0, "reset the machine"},
	cmdQuit:        {"quit", "q", 0, 0, "quit"},
}

var commandNames = func() map[string]command {
	m := make(map[string]command, len(commandTable)*2)
	for cmd, info := range commandTable {
		m[info.name] = cmd
		m[info.abbrev] = cmd
	}
	return m
}()

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	eventStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// CLIDebugger is the line-oriented shell over Debugger. Commands come
// in full or abbreviated form; numeric arguments are hexadecimal with
// no prefix.
type CLIDebugger struct {
	dbg *Debugger
	in  *bufio.Scanner
	out io.Writer
}

func NewCLIDebugger(dbg *Debugger, in io.Reader, out io.Writer) *CLIDebugger {
	return &CLIDebugger{
		dbg: dbg,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Repl reads commands until quit or input EOF.
func (c *CLIDebugger) Repl() {
	c.printf("%s\n", c.dbg.TraceLine())
	for {
		fmt.Fprint(c.out, promptStyle.Render("nestor> "))
		if !c.in.Scan() {
			return
		}
		fields := strings.Fields(c.in.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, ok := commandNames[fields[0]]
		if !ok {
			c.errorf("%s is not a command, try 'help'", fields[0])
			continue
		}
		args := fields[1:]
		info := commandTable[cmd]
		if len(args) < info.minArgs || len(args) > info.maxArgs {
			c.errorf("%s takes %d to %d arguments", info.name, info.minArgs, info.maxArgs)
			continue
		}

		if quit := c.exec(cmd, args); quit {
			return
		}
	}
}

func (c *CLIDebugger) exec(cmd command, args []string) (quit bool) {
	switch cmd {
	case cmdHelp:
		for i := cmdHelp; i <= cmdQuit; i++ {
			info := commandTable[i]
			c.printf("%-12s %-5s %s\n", info.name, info.abbrev, info.desc)
		}

	case cmdContinue:
		c.printf("continuing\n")
		c.report(c.dbg.Run())

	case cmdRunFrame:
		c.report(c.dbg.RunToFrame())

	case cmdNext:
		c.report(c.dbg.StepOver())
		c.printf("%s\n", c.dbg.TraceLine())

	case cmdStep:
		c.report(c.dbg.Step())
		c.printf("%s\n", c.dbg.TraceLine())

	case cmdBreak:
		start, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		end := start
		if len(args) == 2 {
			if end, err = parseHex16(args[1]); err != nil {
				c.errorf("%v", err)
				return false
			}
		}
		if end < start {
			c.errorf("invalid range")
			return false
		}
		id := c.dbg.SetBreak(start, end)
		c.printf("breakpoint #%d set at %04X-%04X\n", id, start, end)

	case cmdListBreaks:
		any := false
		for id, bp := range c.dbg.Breakpoints() {
			if bp.Erased {
				continue
			}
			c.printf("#%d: %04X-%04X\n", id, bp.Start, bp.End)
			any = true
		}
		if !any {
			c.printf("no breakpoints set\n")
		}

	case cmdDeleteBreak:
		id, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		if err := c.dbg.DeleteBreak(int(id)); err != nil {
			c.errorf("%v", err)
			return false
		}
		c.printf("breakpoint #%d deleted\n", id)

	case cmdStatus:
		which := "cpu"
		if len(args) == 1 {
			which = args[0]
		}
		switch which {
		case "cpu":
			st := c.dbg.CPUStatus()
			c.printf("PC: $%04X A: $%02X X: $%02X Y: $%02X S: $%02X\nflags: [%s]\ncycles: %d\n",
				st.PC, st.A, st.X, st.Y, st.SP, st.Flags, st.Cycles)
		case "ppu":
			st := c.dbg.PPUStatus()
			c.printf("line: %d dot: %d frame: %d\nv: $%04X t: $%04X x: %d w: %d\nctrl: $%02X mask: $%02X status: $%02X\n",
				st.ScanLine, st.Dot, st.Frame, st.V, st.T, st.FineX, st.W, st.Ctrl, st.Mask, st.Status)
			c.printf("%s", spew.Sdump(st.Sprites))
		default:
			c.errorf("status wants cpu or ppu")
		}

	case cmdRead:
		addr, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		src, err := parseSource(args, 1)
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		c.printf("%04X: %02X\n", addr, c.dbg.ReadMem(src, addr))

	case cmdWrite:
		addr, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		val, err := parseHex16(args[1])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		src, err := parseSource(args, 2)
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		c.dbg.WriteMem(src, addr, byte(val))

	case cmdBlock:
		start, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		end, err := parseHex16(args[1])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		src, err := parseSource(args, 2)
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		if end < start {
			c.errorf("invalid range")
			return false
		}
		for base := int(start); base <= int(end); base += 16 {
			c.printf("%04X: ", base)
			for i := 0; i < 16 && base+i <= int(end); i++ {
				c.printf("%02X ", c.dbg.ReadMem(src, uint16(base+i)))
			}
			c.printf("\n")
		}

	case cmdDisassemble:
		var b [3]byte
		for i, arg := range args {
			v, err := parseHex16(arg)
			if err != nil {
				c.errorf("%v", err)
				return false
			}
			b[i] = byte(v)
		}
		text, _ := Disassemble(b[0], b[1], b[2], 0)
		c.printf("%s\n", text)

	case cmdDisBlock:
		start, err := parseHex16(args[0])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		end, err := parseHex16(args[1])
		if err != nil {
			c.errorf("%v", err)
			return false
		}
		for addr := int(start); addr <= int(end); {
			text, size := c.dbg.Disassemble(uint16(addr))
			c.printf("$%04X: %s\n", addr, text)
			addr += size
		}

	case cmdTrace:
		if err := c.dbg.Trace(args[0]); err != nil {
			c.errorf("%v", err)
		}

	case cmdStopTrace:
		if err := c.dbg.StopTrace(); err != nil {
			c.errorf("%v", err)
		}

	case cmdHold, cmdUnhold:
		button, ok := buttonNames[strings.ToLower(args[0])]
		if !ok {
			c.errorf("unknown button %s", args[0])
			return false
		}
		pad := c.dbg.console.Controller(0)
		if cmd == cmdHold {
			pad.Press(button)
		} else {
			pad.Release(button)
		}

	case cmdReset:
		c.dbg.console.Reset()
		c.printf("machine reset\n")

	case cmdQuit:
		return true
	}

	return false
}

func (c *CLIDebugger) report(ev Event) {
	switch ev := ev.(type) {
	case nil:
	case BreakEvent:
		fmt.Fprintln(c.out, eventStyle.Render(
			fmt.Sprintf("breakpoint #%d reached at $%04X", ev.ID, ev.PC)))
	case InvalidInstructionEvent:
		fmt.Fprintln(c.out, eventStyle.Render(
			fmt.Sprintf("invalid instruction $%02X at $%04X", ev.ID, ev.PC)))
	}
}

func (c *CLIDebugger) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLIDebugger) errorf(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%s is not a hex value", s)
	}
	return uint16(v), nil
}

func parseSource(args []string, i int) (MemSource, error) {
	if len(args) <= i {
		return SourceRAM, nil
	}
	switch args[i] {
	case "ram":
		return SourceRAM, nil
	case "vram":
		return SourceVRAM, nil
	case "oam":
		return SourceOAM, nil
	default:
		return SourceRAM, fmt.Errorf("unknown memory source %s", args[i])
	}
}
