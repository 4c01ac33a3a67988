package internal

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

type sourceKind uint8

const (
	sourceController sourceKind = iota
	sourceKeyboard
	sourceMouse
)

type buttonKey struct {
	kind sourceKind
	code int32
}

// channelState is what one channel holds between frames.
type channelState struct {
	held      map[buttonKey]Binding
	expansion constants.Expansion
	pointer   gxgui.Pointer
	prev      Binding
	repeat    *DirectionalRepeat
}

func (c *channelState) fold() Binding {
	var b Binding
	for _, v := range c.held {
		b.Remote |= v.Remote
		b.Pad |= v.Pad
	}
	return b
}

type controllerSlot struct {
	ctrl *sdl.GameController
	ch   int
}

// InputProcessor folds SDL events into per-channel Input snapshots.
// Keyboard, mouse and the optional key device feed channel 0. Game
// controllers take the lowest free channel as they connect.
type InputProcessor struct {
	mapping     *Mapping
	channels    [constants.MaxChannels]*channelState
	controllers map[sdl.JoystickID]*controllerSlot
	keys        *KeySource
	rumble      *RumbleSink
	feedback    gxgui.Feedback
	quit        bool
}

func NewInputProcessor(m *Mapping, repeatDelay, repeatInterval time.Duration) *InputProcessor {
	if m == nil {
		m = GetMapping()
	}
	p := &InputProcessor{
		mapping:     m,
		controllers: make(map[sdl.JoystickID]*controllerSlot),
	}
	for i := range p.channels {
		p.channels[i] = &channelState{
			held:   make(map[buttonKey]Binding),
			repeat: NewDirectionalRepeatWithTiming(repeatDelay, repeatInterval),
		}
	}
	return p
}

// SetKeySource merges a raw key device into channel 0.
func (p *InputProcessor) SetKeySource(k *KeySource) {
	p.keys = k
}

// SetRumbleSink routes controller motors to s as controllers connect.
func (p *InputProcessor) SetRumbleSink(s *RumbleSink) {
	p.rumble = s
}

// Feedback returns the request sink shared by the current snapshots.
func (p *InputProcessor) Feedback() *gxgui.Feedback {
	return &p.feedback
}

// Poll drains the SDL event queue.
func (p *InputProcessor) Poll() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		p.HandleEvent(event)
	}
}

// Quit reports whether the window was asked to close.
func (p *InputProcessor) Quit() bool {
	return p.quit
}

// HandleEvent records a single SDL event.
func (p *InputProcessor) HandleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.quit = true

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return
		}
		b, ok := p.mapping.Keyboard[e.Keysym.Sym]
		if !ok {
			return
		}
		p.press(0, buttonKey{kind: sourceKeyboard, code: int32(e.Keysym.Sym)}, b, e.Type == sdl.KEYDOWN)

	case *sdl.MouseMotionEvent:
		p.channels[0].pointer = gxgui.Pointer{Valid: true, X: int(e.X), Y: int(e.Y)}

	case *sdl.MouseButtonEvent:
		p.channels[0].pointer = gxgui.Pointer{Valid: true, X: int(e.X), Y: int(e.Y)}
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		b := Binding{Remote: constants.RemoteButtonA}
		p.press(0, buttonKey{kind: sourceMouse, code: int32(e.Button)}, b, e.Type == sdl.MOUSEBUTTONDOWN)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(e.Which)
		}

	case *sdl.ControllerButtonEvent:
		slot, ok := p.controllers[e.Which]
		if !ok {
			return
		}
		b, ok := p.mapping.Controller[sdl.GameControllerButton(e.Button)]
		if !ok {
			return
		}
		p.press(slot.ch, buttonKey{kind: sourceController, code: int32(e.Button)}, b, e.State == sdl.PRESSED)
	}
}

func (p *InputProcessor) press(ch int, key buttonKey, b Binding, down bool) {
	c := p.channels[ch]
	if down {
		c.held[key] = b
		if key.kind != sourceMouse {
			// Buttons take over from the pointer until it moves again.
			c.pointer.Valid = false
		}
	} else {
		delete(c.held, key)
	}
}

func (p *InputProcessor) openController(index int) {
	ch := p.freeChannel()
	if ch < 0 {
		GetInternalLogger().Warn("No free channel for controller", "index", index)
		return
	}

	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		GetInternalLogger().Error("Unable to open controller", "index", index, "error", sdl.GetError())
		return
	}

	id := ctrl.Joystick().InstanceID()
	p.controllers[id] = &controllerSlot{ctrl: ctrl, ch: ch}
	p.channels[ch].expansion = p.mapping.Expansion
	if p.rumble != nil {
		p.rumble.Attach(ch, ctrl)
	}

	GetInternalLogger().Debug("Controller connected", "name", ctrl.Name(), "channel", ch)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	slot, ok := p.controllers[id]
	if !ok {
		return
	}
	delete(p.controllers, id)

	c := p.channels[slot.ch]
	for key := range c.held {
		if key.kind == sourceController {
			delete(c.held, key)
		}
	}
	c.expansion = constants.ExpansionNone
	if p.rumble != nil {
		p.rumble.Attach(slot.ch, nil)
	}
	slot.ctrl.Close()

	GetInternalLogger().Debug("Controller disconnected", "channel", slot.ch)
}

func (p *InputProcessor) freeChannel() int {
	used := [constants.MaxChannels]bool{}
	for _, s := range p.controllers {
		used[s.ch] = true
	}
	for ch, u := range used {
		if !u {
			return ch
		}
	}
	return -1
}

// Snapshot builds this frame's inputs from the held state and resets the
// shared Feedback.
func (p *InputProcessor) Snapshot(now time.Time) [constants.MaxChannels]gxgui.Input {
	p.feedback.Reset()

	var out [constants.MaxChannels]gxgui.Input
	for ch, c := range p.channels {
		held := c.fold()
		if ch == 0 {
			remote, pad := p.keys.Held()
			held.Remote |= remote
			held.Pad |= pad
		}

		in := gxgui.Input{
			Chan: ch,
			Remote: gxgui.RemoteState{
				Held:      held.Remote,
				Down:      held.Remote &^ c.prev.Remote,
				Up:        c.prev.Remote &^ held.Remote,
				Expansion: c.expansion,
				Pointer:   c.pointer,
			},
			Pad: gxgui.PadState{
				Held: held.Pad,
				Down: held.Pad &^ c.prev.Pad,
				Up:   c.prev.Pad &^ held.Pad,
			},
			Feedback: &p.feedback,
		}
		c.repeat.Apply(&in, now)

		c.prev = held
		out[ch] = in
	}
	return out
}

// Close releases every open controller.
func (p *InputProcessor) Close() {
	for id := range p.controllers {
		p.closeController(id)
	}
}
