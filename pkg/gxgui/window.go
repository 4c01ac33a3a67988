package gxgui

import (
	"image"
	"image/color"
	"iter"
	"slices"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// DimColor is drawn over the whole screen in front of a disabled child
// window.
var DimColor = color.RGBA{R: 0x64, G: 0x64, B: 0x64, A: 0xDD}

// Window is an ordered container. Child order is draw order and the
// candidate order for focus and directional navigation.
type Window struct {
	Base
	children []Element
}

// NewWindow returns a focusable window of the given size.
func NewWindow(width, height int) *Window {
	w := &Window{Base: newBase(width, height)}
	w.focus = FocusInactive
	return w
}

// Append adds e at the end. An element already present is moved.
func (w *Window) Append(e Element) {
	if e == nil {
		return
	}
	w.Remove(e)
	w.children = append(w.children, e)
	e.SetParent(w)
}

// Insert places e at index. An element already present is moved first and
// the index is clamped to the shortened sequence. It returns false when
// index is outside 0..Len().
func (w *Window) Insert(e Element, index int) bool {
	if e == nil || index < 0 || index > len(w.children) {
		return false
	}
	w.Remove(e)
	index = min(index, len(w.children))
	w.children = slices.Insert(w.children, index, e)
	e.SetParent(w)
	return true
}

// Remove drops e from the window. The element's parent link is left alone.
func (w *Window) Remove(e Element) {
	if i := w.Find(e); i >= 0 {
		w.children = slices.Delete(w.children, i, i+1)
	}
}

func (w *Window) RemoveAll() {
	w.children = nil
}

// Find returns the position of e, or -1.
func (w *Window) Find(e Element) int {
	return slices.Index(w.children, e)
}

// At returns the child at index, or nil when out of range.
func (w *Window) At(index int) Element {
	if index < 0 || index >= len(w.children) {
		return nil
	}
	return w.children[index]
}

func (w *Window) Len() int { return len(w.children) }

func (w *Window) Draw(r Renderer) {
	if len(w.children) == 0 || !w.visible {
		return
	}

	for _, e := range w.children {
		if e == nil {
			continue
		}
		e.Draw(r)
	}

	if w.parent != nil && w.state == StateDisabled {
		top := root(w)
		rect := image.Rect(top.Left(), top.Top(), top.Left()+top.Width(), top.Top()+top.Height())
		r.FillRect(rect, DimColor)
	}
}

// Update forwards in to every child, then arbitrates focus and applies
// directional input when this window holds focus.
func (w *Window) Update(in *Input) {
	if in == nil || len(w.children) == 0 || (w.state == StateDisabled && w.parent != nil) {
		return
	}

	for _, e := range w.children {
		if e == nil {
			continue
		}
		e.Update(in)
	}

	w.ChangeFocus(in)

	if w.focus != FocusActive {
		return
	}

	switch {
	case in.Pressed(constants.RemoteNavRight, constants.PadButtonRight):
		w.MoveSelectionHor(1)
	case in.Pressed(constants.RemoteNavLeft, constants.PadButtonLeft):
		w.MoveSelectionHor(-1)
	case in.Pressed(constants.RemoteNavDown, constants.PadButtonDown):
		w.MoveSelectionVert(1)
	case in.Pressed(constants.RemoteNavUp, constants.PadButtonUp):
		w.MoveSelectionVert(-1)
	}
}

// SetState sets the window's own state and pushes s to every child.
func (w *Window) SetState(s State) {
	w.Base.SetState(s)
	for _, e := range w.children {
		if e == nil {
			continue
		}
		e.SetState(s)
	}
}

func (w *Window) ResetState() {
	w.Base.ResetState()
	for _, e := range w.children {
		if e == nil {
			continue
		}
		e.ResetState()
	}
}

// SetFocus(FocusActive) seeds a selection by moving down once.
// SetFocus(FocusInactive) clears every child's state.
func (w *Window) SetFocus(f Focus) {
	w.focus = f
	switch f {
	case FocusActive:
		w.MoveSelectionVert(1)
	case FocusInactive:
		w.ResetState()
	}
}

// ChangeFocus hands focus between the root's children. With nothing
// focused the first focusable child takes it; the back button cycles to
// the next focusable child, wrapping around.
func (w *Window) ChangeFocus(in *Input) {
	if w.parent != nil || w.state == StateDisabled {
		return
	}

	found := slices.IndexFunc(w.children, func(e Element) bool {
		return e != nil && e.Focus() == FocusActive
	})

	if found < 0 {
		for _, e := range w.children {
			if e != nil && e.Focus() == FocusInactive {
				e.SetFocus(FocusActive)
				return
			}
		}
		return
	}

	if !in.Pressed(constants.RemoteBack, constants.PadButtonB) {
		return
	}

	n := len(w.children)
	for step := 1; step < n; step++ {
		i := (found + step) % n
		e := w.children[i]
		if e == nil || e.Focus() != FocusInactive {
			continue
		}
		e.SetFocus(FocusActive)
		w.children[found].SetFocus(FocusInactive)
		logger.Debug("focus changed", "from", found, "to", i)
		return
	}
}

// Selected returns the index of the first SELECTED child, or -1.
func (w *Window) Selected() int {
	return slices.IndexFunc(w.children, func(e Element) bool {
		return e != nil && e.State() == StateSelected
	})
}

func (w *Window) selection() (selected, left, top int) {
	selected = w.Selected()
	if selected >= 0 {
		left = w.children[selected].Left()
		top = w.children[selected].Top()
	}
	return selected, left, top
}

func (w *Window) candidates() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, e := range w.children {
			if e == nil || !e.IsSelectable() {
				continue
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// MoveSelectionHor selects the closest child to the right (dir 1) or left
// (dir -1) on the current row, falling back to the first child of the next
// row in that direction. The selection does not wrap.
func (w *Window) MoveSelectionHor(dir int) {
	selected, left, top := w.selection()

	found := -1
	var foundLeft int
	for i, e := range w.candidates() {
		l := e.Left() * dir
		if e.Top() != top || l <= left*dir {
			continue
		}
		if found < 0 || l < foundLeft {
			found, foundLeft = i, l
		}
	}

	if found < 0 {
		var foundTop int
		for i, e := range w.candidates() {
			t, l := e.Top()*dir, e.Left()*dir
			if t <= top*dir {
				continue
			}
			if found < 0 || t < foundTop || (t == foundTop && l < foundLeft) {
				found, foundTop, foundLeft = i, t, l
			}
		}
	}

	w.moveSelection(selected, found)
}

// MoveSelectionVert selects the nearest row below (dir 1) or above (dir -1),
// preferring the child horizontally closest to the current selection.
func (w *Window) MoveSelectionVert(dir int) {
	selected, left, top := w.selection()

	found := -1
	var foundTop, foundDist int
	for i, e := range w.candidates() {
		t := e.Top() * dir
		if t <= top*dir {
			continue
		}
		dist := abs(e.Left() - left)
		if found < 0 || t < foundTop || (t == foundTop && dist < foundDist) {
			found, foundTop, foundDist = i, t, dist
		}
	}

	w.moveSelection(selected, found)
}

func (w *Window) moveSelection(selected, found int) {
	if found < 0 {
		return
	}
	w.children[found].SetState(StateSelected)
	if selected >= 0 {
		w.children[selected].ResetState()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
