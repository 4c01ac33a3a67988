package gxgui

import "github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"

// Pointer is a cursor position reported by a pointing remote or a mouse.
type Pointer struct {
	Valid bool
	X, Y  int
}

// RemoteState holds the primary namespace masks for one channel.
type RemoteState struct {
	Down      constants.RemoteMask // Pressed this frame
	Up        constants.RemoteMask // Released this frame
	Held      constants.RemoteMask // Down during this frame
	Expansion constants.Expansion
	Pointer   Pointer
}

// PadState holds the secondary namespace masks for one channel.
type PadState struct {
	Down constants.PadMask
	Up   constants.PadMask
	Held constants.PadMask
}

// Input is the snapshot of one controller channel for one frame.
// The host builds one per channel and passes it to the root Update.
type Input struct {
	Chan     int
	Remote   RemoteState
	Pad      PadState
	Feedback *Feedback
}

// Pressed reports whether any of the given buttons went down this frame on
// either surface.
func (in *Input) Pressed(remote constants.RemoteMask, pad constants.PadMask) bool {
	if in == nil {
		return false
	}
	return in.Remote.Down&remote != 0 || in.Pad.Down&pad != 0
}

func (in *Input) requestRumble() {
	if in == nil {
		return
	}
	in.Feedback.RequestRumble(in.Chan)
}

// Feedback collects the out-of-band requests raised while a frame is
// updated. A channel carries at most one rumble request per frame.
type Feedback struct {
	rumble [constants.MaxChannels]bool
}

// RequestRumble asks the host to pulse the controller on channel ch.
func (f *Feedback) RequestRumble(ch int) {
	if f == nil || ch < 0 || ch >= len(f.rumble) {
		return
	}
	f.rumble[ch] = true
}

// Rumble reports whether a rumble pulse was requested for channel ch.
func (f *Feedback) Rumble(ch int) bool {
	if f == nil || ch < 0 || ch >= len(f.rumble) {
		return false
	}
	return f.rumble[ch]
}

// Reset clears every request. Hosts call it at the start of a frame.
func (f *Feedback) Reset() {
	if f == nil {
		return
	}
	f.rumble = [constants.MaxChannels]bool{}
}
