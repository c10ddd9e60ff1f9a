package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"nestor/nes"
)

// defaultKeys is the stock layout; a -keys file overrides entries with
// {"button": "key name"} pairs using SDL key names.
var defaultKeys = map[string]string{
	"a":      "X",
	"b":      "Z",
	"start":  "Return",
	"select": "Right Shift",
	"up":     "Up",
	"down":   "Down",
	"left":   "Left",
	"right":  "Right",
}

var buttonsByName = map[string]nes.Button{
	"a": nes.ButtonA, "b": nes.ButtonB,
	"start": nes.ButtonStart, "select": nes.ButtonSelect,
	"up": nes.ButtonUp, "down": nes.ButtonDown,
	"left": nes.ButtonLeft, "right": nes.ButtonRight,
}

// loadKeymap builds the keycode table from the defaults plus an
// optional JSON mapping file.
func loadKeymap(path string) (map[sdl.Keycode]nes.Button, error) {
	names := make(map[string]string, len(defaultKeys))
	for b, k := range defaultKeys {
		names[b] = k
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		var overrides map[string]string
		if err := json.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		for b, k := range overrides {
			if _, ok := buttonsByName[b]; !ok {
				return nil, fmt.Errorf("keymap: unknown button %q", b)
			}
			names[b] = k
		}
	}

	keymap := make(map[sdl.Keycode]nes.Button, len(names))
	for b, k := range names {
		code := sdl.GetKeyFromName(k)
		if code == sdl.K_UNKNOWN {
			return nil, fmt.Errorf("keymap: unknown key %q for %s", k, b)
		}
		keymap[code] = buttonsByName[b]
	}
	return keymap, nil
}
