package gxgui_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// grid builds a window with a 2x2 button grid:
//
//	0 1
//	2 3
func grid() (*gxgui.Window, []*gxgui.Button) {
	w := gxgui.NewWindow(640, 480)
	var buttons []*gxgui.Button
	for _, pos := range []image.Point{{10, 10}, {130, 10}, {10, 70}, {130, 70}} {
		b := gxgui.NewButton(100, 40)
		b.SetPosition(pos.X, pos.Y)
		w.Append(b)
		buttons = append(buttons, b)
	}
	return w, buttons
}

func TestWindowAppend(t *testing.T) {
	w := gxgui.NewWindow(100, 100)
	a, b := gxgui.NewButton(1, 1), gxgui.NewButton(1, 1)

	w.Append(a)
	w.Append(b)
	w.Append(a)

	require.Equal(t, 2, w.Len())
	assert.Same(t, b, w.At(0))
	assert.Same(t, a, w.At(1))
	assert.Same(t, w, a.Parent())
	assert.Nil(t, w.At(2))
	assert.Nil(t, w.At(-1))
}

func TestWindowInsert(t *testing.T) {
	w := gxgui.NewWindow(100, 100)
	a, b, c := gxgui.NewButton(1, 1), gxgui.NewButton(1, 1), gxgui.NewButton(1, 1)
	w.Append(a)
	w.Append(b)

	assert.False(t, w.Insert(c, 3))
	assert.False(t, w.Insert(c, -1))
	assert.Equal(t, 2, w.Len())

	assert.True(t, w.Insert(c, 0))
	assert.Equal(t, 0, w.Find(c))

	assert.True(t, w.Insert(c, 2))
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 1, w.Find(c), "index is clamped after the element is moved")

	w.Remove(a)
	assert.Equal(t, -1, w.Find(a))

	w.RemoveAll()
	assert.Zero(t, w.Len())
}

func TestMoveSelectionVert(t *testing.T) {
	w, bs := grid()

	w.MoveSelectionVert(1)
	assert.Equal(t, gxgui.StateSelected, bs[0].State())

	w.MoveSelectionVert(1)
	assert.Equal(t, gxgui.StateSelected, bs[2].State())
	assert.Equal(t, gxgui.StateDefault, bs[0].State())

	t.Run("idempotent at the last row", func(t *testing.T) {
		w.MoveSelectionVert(1)
		assert.Equal(t, 2, w.Selected())
		w.MoveSelectionVert(1)
		assert.Equal(t, 2, w.Selected())
	})

	t.Run("prefers the horizontally closest", func(t *testing.T) {
		bs[2].ResetState()
		bs[3].SetState(gxgui.StateSelected)
		w.MoveSelectionVert(-1)
		assert.Equal(t, 1, w.Selected())
	})
}

func TestMoveSelectionVertSingleRow(t *testing.T) {
	w := gxgui.NewWindow(640, 480)
	a, b := gxgui.NewButton(50, 20), gxgui.NewButton(50, 20)
	a.SetPosition(10, 10)
	b.SetPosition(100, 10)
	w.Append(a)
	w.Append(b)

	w.MoveSelectionVert(1)
	once := w.Selected()
	w.MoveSelectionVert(1)

	assert.Equal(t, 0, once)
	assert.Equal(t, once, w.Selected())
}

func TestMoveSelectionHor(t *testing.T) {
	w, bs := grid()
	bs[0].SetState(gxgui.StateSelected)

	w.MoveSelectionHor(1)
	assert.Equal(t, 1, w.Selected())

	w.MoveSelectionHor(1)
	assert.Equal(t, 2, w.Selected(), "wraps to the first button of the next row")

	w.MoveSelectionHor(-1)
	assert.Equal(t, 1, w.Selected(), "backs up to the last button of the previous row")

	bs[1].ResetState()
	bs[3].SetState(gxgui.StateSelected)
	w.MoveSelectionHor(1)
	assert.Equal(t, 3, w.Selected(), "no wraparound past the end")
}

func TestMoveSelectionSkipsUnselectable(t *testing.T) {
	w, bs := grid()
	bs[0].SetSelectable(false)

	w.MoveSelectionVert(1)
	assert.Equal(t, 1, w.Selected())
}

func TestWindowFocusRoundTrip(t *testing.T) {
	w, bs := grid()

	w.SetFocus(gxgui.FocusActive)
	assert.Equal(t, gxgui.StateSelected, bs[0].State())

	w.SetFocus(gxgui.FocusInactive)
	for i, b := range bs {
		assert.Equal(t, gxgui.StateDefault, b.State(), "button %d", i)
	}
}

func TestWindowUpdateNavigates(t *testing.T) {
	w, bs := grid()
	w.SetFocus(gxgui.FocusActive)

	w.Update(right)
	assert.Equal(t, gxgui.StateSelected, bs[1].State())

	w.Update(down)
	assert.Equal(t, gxgui.StateSelected, bs[3].State())

	w.SetFocus(gxgui.FocusInactive)
	w.Update(left)
	assert.Equal(t, -1, w.Selected(), "unfocused windows ignore directions")
}

func TestChangeFocus(t *testing.T) {
	root := gxgui.NewWindow(640, 480)
	first, firstButtons := grid()
	second, secondButtons := grid()
	root.Append(first)
	root.Append(second)

	root.Update(frame())
	assert.Equal(t, gxgui.FocusActive, first.Focus())
	assert.Equal(t, gxgui.FocusInactive, second.Focus())
	assert.Equal(t, gxgui.StateSelected, firstButtons[0].State())

	root.Update(back)
	assert.Equal(t, gxgui.FocusInactive, first.Focus())
	assert.Equal(t, gxgui.FocusActive, second.Focus())
	assert.Equal(t, gxgui.StateDefault, firstButtons[0].State())
	assert.Equal(t, gxgui.StateSelected, secondButtons[0].State())

	root.Update(back)
	assert.Equal(t, gxgui.FocusActive, first.Focus(), "cycling wraps around")

	t.Run("no-op below the root", func(t *testing.T) {
		first.ChangeFocus(back)
		assert.Equal(t, gxgui.FocusActive, first.Focus())
	})
}

func TestDisabledWindow(t *testing.T) {
	root := gxgui.NewWindow(640, 480)
	child, bs := grid()
	root.Append(child)
	child.SetState(gxgui.StateDisabled)

	for _, b := range bs {
		assert.Equal(t, gxgui.StateDisabled, b.State())
	}

	r := &fakeRenderer{}
	root.Draw(r)
	require.Len(t, r.rects, 1)
	assert.Equal(t, image.Rect(0, 0, 640, 480), r.rects[0].rect)
	assert.Equal(t, gxgui.DimColor, r.rects[0].color)

	child.Base.SetFocus(gxgui.FocusActive)
	child.Update(right)
	assert.Equal(t, -1, child.Selected())

	r = &fakeRenderer{}
	child.Base.SetState(gxgui.StateDefault)
	root.Draw(r)
	assert.Empty(t, r.rects)
}

func TestWindowDrawOrder(t *testing.T) {
	w := gxgui.NewWindow(100, 100)
	a, b := solid(5, 5), solid(5, 5)
	w.Append(gxgui.NewImage(a))
	w.Append(gxgui.NewImage(b))

	r := &fakeRenderer{}
	w.Draw(r)
	require.Len(t, r.images, 2)
	assert.Same(t, a, r.images[0].data)
	assert.Same(t, b, r.images[1].data)
}
