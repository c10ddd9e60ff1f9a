package main

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"nestor/nes"
)

var errQuit = errors.New("quit requested")

// engine owns the presentation side: the SDL window, texture and event
// pump run on the locked main thread while the console runs in its own
// goroutine. Frames cross between them through a mutex-and-condvar
// handoff; by default the emulation side blocks until the frame has
// been consumed, which couples it to vsync.
type engine struct {
	console *nes.Console

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	mu         sync.Mutex
	cond       *sync.Cond
	frame      []byte
	frameReady bool
	exiting    bool
	freeRun    bool

	done chan struct{}

	inputMu sync.Mutex
	buttons [8]bool

	keymap map[sdl.Keycode]nes.Button
}

func newEngine(title string, zoom int, freeRun bool, keymap map[sdl.Keycode]nes.Button) (*engine, error) {
	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(nes.ScreenWidth*zoom), int32(nes.ScreenHeight*zoom),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("engine: unable to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("engine: unable to create renderer: %w", err)
	}

	// ABGR byte order matches image.RGBA's R,G,B,A layout
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, nes.ScreenWidth, nes.ScreenHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("engine: unable to create texture: %w", err)
	}

	e := &engine{
		window:   window,
		renderer: renderer,
		texture:  texture,
		frame:    make([]byte, nes.ScreenWidth*nes.ScreenHeight*4),
		freeRun:  freeRun,
		keymap:   keymap,
		done:     make(chan struct{}),
	}
	e.cond = sync.NewCond(&e.mu)
	return e, nil
}

func (e *engine) destroy() {
	e.texture.Destroy()
	e.renderer.Destroy()
	e.window.Destroy()
}

// buttonState is what the console's controller samples on strobe.
func (e *engine) buttonState() [8]bool {
	e.inputMu.Lock()
	defer e.inputMu.Unlock()
	return e.buttons
}

// publish hands the finished frame to the presentation thread. Called
// on the emulation goroutine at the VBlank dot; unless free-running it
// waits here until the frame has been drawn.
func (e *engine) publish(pix []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()

	copy(e.frame, pix)
	e.frameReady = true
	e.cond.Signal()

	if e.freeRun {
		return
	}
	for e.frameReady && !e.exiting {
		e.cond.Wait()
	}
}

// shutdown flips the shared state to exiting and wakes anyone blocked
// on the frame handoff. Either side may call it.
func (e *engine) shutdown() {
	e.mu.Lock()
	e.exiting = true
	e.cond.Broadcast()
	e.mu.Unlock()
}

func (e *engine) exited() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exiting
}

// emulate is the emulation thread: it owns the console and loops one
// frame at a time. Frame publication happens through the console's
// frame callback, so a debugger driving the console publishes too.
func (e *engine) emulate(repl *nes.CLIDebugger) {
	defer close(e.done)
	defer e.shutdown()

	if repl != nil {
		repl.Repl()
		return
	}

	for !e.exited() {
		e.console.StepFrame()
	}
}

// run is the presentation loop. It must be called on the main thread.
func (e *engine) run(repl *nes.CLIDebugger) error {
	e.console.OnFrame(func() {
		e.publish(e.console.Screen().Buffer().Pix)
	})

	go e.emulate(repl)

	// with the REPL active the emulation goroutine can sit in a stdin
	// read, which nothing can interrupt; skip the join in that case
	join := func() {
		if repl == nil {
			<-e.done
		}
	}

	for {
		if err := e.poll(); err != nil {
			e.shutdown()
			join()
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}

		e.mu.Lock()
		if e.exiting {
			e.mu.Unlock()
			join()
			return nil
		}
		if e.frameReady {
			e.texture.Update(nil, unsafe.Pointer(&e.frame[0]), nes.ScreenWidth*4)
			e.frameReady = false
			e.cond.Signal()
		}
		e.mu.Unlock()

		e.renderer.Clear()
		if err := e.renderer.Copy(e.texture, nil, nil); err != nil {
			e.shutdown()
			join()
			return fmt.Errorf("engine: render: %w", err)
		}
		e.renderer.Present()
	}
}

func (e *engine) poll() error {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return errQuit
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return errQuit
			}
			button, ok := e.keymap[ev.Keysym.Sym]
			if !ok {
				continue
			}
			e.inputMu.Lock()
			e.buttons[button] = ev.Type == sdl.KEYDOWN
			e.inputMu.Unlock()
		}
	}
	return nil
}
