package internal

import (
	"time"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}

// masks returns the buttons that stand for d on both surfaces.
func (d Direction) masks() (constants.RemoteMask, constants.PadMask) {
	switch d {
	case DirectionUp:
		return constants.RemoteNavUp, constants.PadButtonUp
	case DirectionDown:
		return constants.RemoteNavDown, constants.PadButtonDown
	case DirectionLeft:
		return constants.RemoteNavLeft, constants.PadButtonLeft
	case DirectionRight:
		return constants.RemoteNavRight, constants.PadButtonRight
	default:
		return 0, 0
	}
}

// heldDirection picks the held direction, in up, down, left, right order.
func heldDirection(in *gxgui.Input) Direction {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		remote, pad := d.masks()
		if in.Remote.Held&remote != 0 || in.Pad.Held&pad != 0 {
			return d
		}
	}
	return DirectionNone
}

// DirectionalRepeat turns a held direction into repeated press edges, so
// holding down scrolls a browser. One instance serves one channel.
type DirectionalRepeat struct {
	held           Direction
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalRepeat uses the default timing: 300ms before the first
// repeat, then 50ms between repeats.
func NewDirectionalRepeat() *DirectionalRepeat {
	return NewDirectionalRepeatWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

func NewDirectionalRepeatWithTiming(delay, interval time.Duration) *DirectionalRepeat {
	return &DirectionalRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// Apply inspects in's held masks at time now and, when a repeat is due,
// adds the held direction to in's press masks. It reports the direction
// that was repeated.
func (d *DirectionalRepeat) Apply(in *gxgui.Input, now time.Time) Direction {
	dir := heldDirection(in)

	if dir != d.held {
		// A new direction starts its own delay.
		d.held = dir
		d.hasRepeated = false
		d.lastRepeatTime = now
		return DirectionNone
	}

	if dir == DirectionNone {
		return DirectionNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if now.Sub(d.lastRepeatTime) < threshold {
		return DirectionNone
	}

	d.lastRepeatTime = now
	d.hasRepeated = true

	remote, pad := dir.masks()
	in.Remote.Down |= in.Remote.Held & remote
	in.Pad.Down |= in.Pad.Held & pad
	return dir
}

// Reset forgets the held direction.
func (d *DirectionalRepeat) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
}
