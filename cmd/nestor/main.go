package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/veandco/go-sdl2/sdl"

	"nestor/nes"
)

func init() {
	runtime.LockOSThread()
}

// errCartridge marks load failures of the ROM itself; only these exit
// with code 2.
var errCartridge = errors.New("cartridge error")

func loadRom(path string) (*nes.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to open rom: %v", errCartridge, err)
	}
	defer f.Close()

	cart, err := nes.LoadINES(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errCartridge, err)
	}
	return cart, nil
}

func run(romPath string, debug, freeRun bool, keysPath, tracePath string) error {
	cartridge, err := loadRom(romPath)
	if err != nil {
		return err
	}

	console := nes.NewConsole()
	console.Load(cartridge)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("unable to init sdl: %w", err)
	}
	defer sdl.Quit()

	keymap, err := loadKeymap(keysPath)
	if err != nil {
		return err
	}

	engine, err := newEngine("nestor", 4, freeRun, keymap)
	if err != nil {
		return err
	}
	defer engine.destroy()

	engine.console = console
	console.Controller(0).Source = engine.buttonState

	var repl *nes.CLIDebugger
	if debug {
		dbg := nes.NewDebugger(console)
		if tracePath != "" {
			if err := dbg.Trace(tracePath); err != nil {
				return err
			}
			defer dbg.StopTrace()
		}
		repl = nes.NewCLIDebugger(dbg, os.Stdin, os.Stdout)
	}

	return engine.run(repl)
}

func main() {
	debug := flag.Bool("dbg", false, "drop into the interactive debugger")
	freeRun := flag.Bool("freerun", false, "do not couple emulation to the display refresh")
	keys := flag.String("keys", "", "JSON file mapping buttons to key names")
	trace := flag.String("trace", "", "trace execution to a file (with -dbg)")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] rom\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(flag.Arg(0), *debug, *freeRun, *keys, *trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errCartridge) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
