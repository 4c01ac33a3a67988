package gxgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

func TestAlignment(t *testing.T) {
	parent := gxgui.NewWindow(200, 100)
	parent.SetPosition(10, 20)

	child := gxgui.NewButton(50, 30)
	parent.Append(child)

	tests := []struct {
		name      string
		hor, vert constants.Align
		x, y      int
		left, top int
	}{
		{"left top", constants.AlignLeft, constants.AlignTop, 5, 5, 15, 25},
		{"center middle", constants.AlignCenter, constants.AlignMiddle, 0, 0, 10 + 100 - 25, 20 + 50 - 15},
		{"right bottom", constants.AlignRight, constants.AlignBottom, -4, -2, 10 + 200 - 50 - 4, 20 + 100 - 30 - 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child.SetAlignment(tt.hor, tt.vert)
			child.SetPosition(tt.x, tt.y)
			assert.Equal(t, tt.left, child.Left())
			assert.Equal(t, tt.top, child.Top())
		})
	}
}

func TestIsInsideIsStrict(t *testing.T) {
	b := gxgui.NewButton(10, 10)

	assert.True(t, b.IsInside(5, 5))
	assert.False(t, b.IsInside(0, 5))
	assert.False(t, b.IsInside(10, 5))
	assert.False(t, b.IsInside(5, 10))
}

func TestStateRequiresCapability(t *testing.T) {
	t.Run("clicked requires clickable", func(t *testing.T) {
		b := gxgui.NewButton(10, 10)
		b.SetClickable(false)
		b.SetState(gxgui.StateClicked)
		assert.Equal(t, gxgui.StateDefault, b.State())
	})

	t.Run("selected requires selectable", func(t *testing.T) {
		b := gxgui.NewButton(10, 10)
		b.SetSelectable(false)
		b.SetState(gxgui.StateSelected)
		assert.Equal(t, gxgui.StateDefault, b.State())

		in := pointAt(5, 5)
		b.Update(in)
		assert.Equal(t, gxgui.StateDefault, b.State())
		assert.False(t, in.Feedback.Rumble(0))
	})

	t.Run("reset re-enables", func(t *testing.T) {
		b := gxgui.NewButton(10, 10)
		b.SetState(gxgui.StateDisabled)
		b.ResetState()
		assert.Equal(t, gxgui.StateDefault, b.State())
	})
}

func TestTriggerSlots(t *testing.T) {
	first := gxgui.NewSimpleTrigger(constants.ChanAny, constants.RemoteButtonA, 0)
	second := gxgui.NewSimpleTrigger(constants.ChanAny, constants.RemoteButtonB, 0)
	third := gxgui.NewSimpleTrigger(constants.ChanAny, constants.RemoteButton1, 0)

	b := gxgui.NewButton(10, 10)
	b.SetTrigger(first)
	b.SetTrigger(second)
	assert.Same(t, first, b.Trigger(0))
	assert.Same(t, second, b.Trigger(1))

	b.SetTrigger(third)
	assert.Same(t, third, b.Trigger(0))
	assert.Same(t, second, b.Trigger(1))

	assert.False(t, b.SetTriggerAt(2, first))
	assert.Nil(t, b.Trigger(-1))
}

func TestFeedback(t *testing.T) {
	var f gxgui.Feedback
	f.RequestRumble(2)
	f.RequestRumble(2)
	f.RequestRumble(constants.MaxChannels)

	assert.True(t, f.Rumble(2))
	assert.False(t, f.Rumble(0))
	assert.False(t, f.Rumble(constants.MaxChannels))

	f.Reset()
	assert.False(t, f.Rumble(2))

	var none *gxgui.Feedback
	assert.NotPanics(t, func() { none.RequestRumble(0) })
}
