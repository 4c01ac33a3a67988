package gxgui

import "github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"

// TriggerKind selects how a Trigger interacts with a button's state.
type TriggerKind int

const (
	// TriggerSimple clicks a button only while it is SELECTED.
	TriggerSimple TriggerKind = iota
	// TriggerButtonOnly clicks a button from any eligible state.
	TriggerButtonOnly
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerSimple:
		return "simple"
	case TriggerButtonOnly:
		return "button-only"
	default:
		return "unknown"
	}
}

// Trigger is a controller button combination that activates an element.
// Triggers are shared by pointer between elements and never change after
// construction.
type Trigger struct {
	Kind   TriggerKind
	Chan   int
	Remote constants.RemoteMask
	Pad    constants.PadMask
}

// NewSimpleTrigger returns a trigger that clicks selected elements.
func NewSimpleTrigger(ch int, remote constants.RemoteMask, pad constants.PadMask) *Trigger {
	return &Trigger{Kind: TriggerSimple, Chan: ch, Remote: remote, Pad: pad}
}

// NewButtonOnlyTrigger returns a trigger that clicks regardless of
// selection.
func NewButtonOnlyTrigger(ch int, remote constants.RemoteMask, pad constants.PadMask) *Trigger {
	return &Trigger{Kind: TriggerButtonOnly, Chan: ch, Remote: remote, Pad: pad}
}

// Matches reports whether the buttons pressed this frame on in's channel
// are exactly this trigger's combination on one of the three surfaces.
// A trigger for remote A does not fire for A+B.
func (t *Trigger) Matches(in *Input) bool {
	if t == nil || in == nil {
		return false
	}
	return t.matches(in, in.Remote.Down, in.Pad.Down)
}

// MatchesHeld applies the same rule as Matches to the held masks.
func (t *Trigger) MatchesHeld(in *Input) bool {
	if t == nil || in == nil {
		return false
	}
	return t.matches(in, in.Remote.Held, in.Pad.Held)
}

func (t *Trigger) matches(in *Input, remote constants.RemoteMask, pad constants.PadMask) bool {
	if t.Chan != constants.ChanAny && t.Chan != in.Chan {
		return false
	}

	if r := remote.Remote(); r != 0 && r == t.Remote.Remote() {
		return true
	}

	if in.Remote.Expansion == constants.ExpansionClassic {
		if c := remote.Classic(); c != 0 && c == t.Remote.Classic() {
			return true
		}
	}

	return pad != 0 && pad == t.Pad
}
