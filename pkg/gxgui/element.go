package gxgui

import "github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"

// State is the interaction state of an element.
type State int

const (
	StateDefault State = iota
	StateSelected
	StateClicked
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateSelected:
		return "selected"
	case StateClicked:
		return "clicked"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Focus tracks whether an element owns directional input.
type Focus int

const (
	FocusNone     Focus = -1 // Cannot take focus
	FocusInactive Focus = 0
	FocusActive   Focus = 1
)

// Element is a node of the widget tree.
type Element interface {
	Draw(r Renderer)
	Update(in *Input)

	State() State
	SetState(s State)
	ResetState()
	Focus() Focus
	SetFocus(f Focus)

	Left() int
	Top() int
	Width() int
	Height() int
	IsInside(x, y int) bool

	IsVisible() bool
	IsSelectable() bool
	IsClickable() bool

	Parent() Element
	SetParent(p Element)
}

// Base carries the geometry, state and triggers shared by every element.
// Widgets embed it and override what they need.
type Base struct {
	xoffset, yoffset int
	width, height    int
	alignHor         constants.Align
	alignVert        constants.Align

	visible    bool
	selectable bool
	clickable  bool
	focus      Focus
	state      State

	triggers [2]*Trigger

	// parent does not own this element. It is only read for geometry and
	// the disabled check.
	parent Element
}

func newBase(width, height int) Base {
	return Base{
		width:     width,
		height:    height,
		alignHor:  constants.AlignLeft,
		alignVert: constants.AlignTop,
		visible:   true,
		focus:     FocusNone,
		state:     StateDefault,
	}
}

func (b *Base) Parent() Element     { return b.parent }
func (b *Base) SetParent(p Element) { b.parent = p }

// Left returns the absolute x coordinate, resolved against the parent.
func (b *Base) Left() int {
	pLeft, pWidth := 0, 0
	if b.parent != nil {
		pLeft = b.parent.Left()
		pWidth = b.parent.Width()
	}

	switch b.alignHor {
	case constants.AlignCenter:
		return pLeft + pWidth/2 - b.width/2 + b.xoffset
	case constants.AlignRight:
		return pLeft + pWidth - b.width + b.xoffset
	default:
		return pLeft + b.xoffset
	}
}

// Top returns the absolute y coordinate, resolved against the parent.
func (b *Base) Top() int {
	pTop, pHeight := 0, 0
	if b.parent != nil {
		pTop = b.parent.Top()
		pHeight = b.parent.Height()
	}

	switch b.alignVert {
	case constants.AlignMiddle:
		return pTop + pHeight/2 - b.height/2 + b.yoffset
	case constants.AlignBottom:
		return pTop + pHeight - b.height + b.yoffset
	default:
		return pTop + b.yoffset
	}
}

func (b *Base) Width() int  { return b.width }
func (b *Base) Height() int { return b.height }

func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetPosition sets the offset applied after alignment.
func (b *Base) SetPosition(x, y int) {
	b.xoffset = x
	b.yoffset = y
}

// SetAlignment sets the horizontal and vertical anchors. Values that do not
// belong to an axis are ignored for that axis.
func (b *Base) SetAlignment(hor, vert constants.Align) {
	switch hor {
	case constants.AlignLeft, constants.AlignCenter, constants.AlignRight:
		b.alignHor = hor
	}
	switch vert {
	case constants.AlignTop, constants.AlignMiddle, constants.AlignBottom:
		b.alignVert = vert
	}
}

// IsInside reports whether (x, y) lies strictly within the element.
func (b *Base) IsInside(x, y int) bool {
	left, top := b.Left(), b.Top()
	return x > left && x < left+b.width && y > top && y < top+b.height
}

func (b *Base) IsVisible() bool      { return b.visible }
func (b *Base) SetVisible(v bool)    { b.visible = v }
func (b *Base) IsSelectable() bool   { return b.selectable }
func (b *Base) SetSelectable(s bool) { b.selectable = s }
func (b *Base) IsClickable() bool    { return b.clickable }
func (b *Base) SetClickable(c bool)  { b.clickable = c }

func (b *Base) State() State { return b.state }

// SetState moves the element to s. SELECTED is refused for elements that
// are not selectable and CLICKED for elements that are not clickable.
func (b *Base) SetState(s State) {
	switch {
	case s == StateSelected && !b.selectable:
		return
	case s == StateClicked && !b.clickable:
		return
	}
	b.state = s
}

// ResetState returns the element to DEFAULT, re-enabling it.
func (b *Base) ResetState() {
	b.state = StateDefault
}

func (b *Base) Focus() Focus     { return b.focus }
func (b *Base) SetFocus(f Focus) { b.focus = f }

// SetTrigger fills the first empty trigger slot. When both slots are in
// use the first one is replaced.
func (b *Base) SetTrigger(t *Trigger) {
	switch {
	case b.triggers[0] == nil:
		b.triggers[0] = t
	case b.triggers[1] == nil:
		b.triggers[1] = t
	default:
		b.triggers[0] = t
	}
}

// SetTriggerAt places t in slot i. It returns false for an invalid slot.
func (b *Base) SetTriggerAt(i int, t *Trigger) bool {
	if i < 0 || i >= len(b.triggers) {
		return false
	}
	b.triggers[i] = t
	return true
}

// Trigger returns the trigger in slot i, or nil.
func (b *Base) Trigger(i int) *Trigger {
	if i < 0 || i >= len(b.triggers) {
		return nil
	}
	return b.triggers[i]
}

// matchTrigger returns the first trigger, in slot order, that fires for in.
func (b *Base) matchTrigger(in *Input) *Trigger {
	for _, t := range b.triggers {
		if t != nil && t.Matches(in) {
			return t
		}
	}
	return nil
}

func (b *Base) parentDisabled() bool {
	return b.parent != nil && b.parent.State() == StateDisabled
}

func (b *Base) Draw(Renderer) {}
func (b *Base) Update(*Input) {}

// root walks parent links to the top of the tree.
func root(e Element) Element {
	for e.Parent() != nil {
		e = e.Parent()
	}
	return e
}
