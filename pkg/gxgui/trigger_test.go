package gxgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

func TestTriggerMatches(t *testing.T) {
	trig := gxgui.NewSimpleTrigger(constants.ChanAny, constants.RemoteButtonA, constants.PadButtonA)

	t.Run("exact remote mask", func(t *testing.T) {
		assert.True(t, trig.Matches(pressRemote(constants.RemoteButtonA)))
	})

	t.Run("extra button suppresses the match", func(t *testing.T) {
		assert.False(t, trig.Matches(pressRemote(constants.RemoteButtonA|constants.RemoteButtonB)))
	})

	t.Run("pad surface matches on its own", func(t *testing.T) {
		assert.True(t, trig.Matches(pressPad(constants.PadButtonA)))
		assert.False(t, trig.Matches(pressPad(constants.PadButtonA|constants.PadButtonB)))
	})

	t.Run("nothing pressed never matches", func(t *testing.T) {
		empty := gxgui.NewSimpleTrigger(constants.ChanAny, 0, 0)
		assert.False(t, empty.Matches(frame()))
	})

	t.Run("held masks are only used by MatchesHeld", func(t *testing.T) {
		in := frame()
		in.Remote.Held = constants.RemoteButtonA
		assert.False(t, trig.Matches(in))
		assert.True(t, trig.MatchesHeld(in))
	})

	t.Run("nil trigger or input", func(t *testing.T) {
		var none *gxgui.Trigger
		assert.False(t, none.Matches(press))
		assert.False(t, trig.Matches(nil))
	})
}

func TestTriggerChannel(t *testing.T) {
	trig := gxgui.NewSimpleTrigger(1, constants.RemoteButtonA, 0)

	in := pressRemote(constants.RemoteButtonA)
	assert.False(t, trig.Matches(in))

	in.Chan = 1
	assert.True(t, trig.Matches(in))
}

func TestTriggerClassicExpansion(t *testing.T) {
	trig := gxgui.NewSimpleTrigger(constants.ChanAny, constants.RemoteSelect, constants.PadButtonA)

	in := pressRemote(constants.ClassicButtonA)
	assert.False(t, trig.Matches(in), "classic bits need a classic controller")

	in.Remote.Expansion = constants.ExpansionClassic
	assert.True(t, trig.Matches(in))

	in.Remote.Down |= constants.ClassicButtonB
	assert.False(t, trig.Matches(in))
}
