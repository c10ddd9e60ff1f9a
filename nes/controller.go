package nes

// Button identifies one of the eight pad buttons, in the order the 4021
// shift register reports them.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

var buttonNames = map[string]Button{
	"a": ButtonA, "b": ButtonB, "select": ButtonSelect, "start": ButtonStart,
	"up": ButtonUp, "down": ButtonDown, "left": ButtonLeft, "right": ButtonRight,
}

// Controller models the standard pad's 4021 shift register. Writing the
// strobe bit high puts it in parallel mode; on the 1->0 edge the eight
// button lines are latched, and reads then shift them out serially,
// button A first. The register shifts in ones, so reads past the eighth
// return 1.
type Controller struct {
	// Source supplies the live button state when set; the presentation
	// layer points it at its input snapshot.
	Source func() [8]bool

	held    [8]bool // buttons pinned down (debugger hold command)
	latched bool
	bits    byte
}

func (c *Controller) sample() [8]bool {
	var b [8]bool
	if c.Source != nil {
		b = c.Source()
	}
	for i, h := range c.held {
		b[i] = b[i] || h
	}
	return b
}

// Write drives the strobe line with bit 0 of v.
func (c *Controller) Write(v byte) {
	state := v&1 == 1
	if c.latched == state {
		return
	}
	c.latched = state
	if !c.latched {
		buttons := c.sample()
		c.bits = 0
		for i := 7; i >= 0; i-- {
			c.bits <<= 1
			if buttons[i] {
				c.bits |= 1
			}
		}
	}
}

// Read returns the next serial bit. While the strobe is high it keeps
// returning the live state of button A.
func (c *Controller) Read() byte {
	if c.latched {
		if c.sample()[ButtonA] {
			return 1
		}
		return 0
	}
	bit := c.bits & 1
	c.bits = c.bits>>1 | 0x80
	return bit
}

// Press pins a button down until Release; used by the debugger's hold
// command and by tests.
func (c *Controller) Press(b Button) {
	c.held[b] = true
}

func (c *Controller) Release(b Button) {
	c.held[b] = false
}
