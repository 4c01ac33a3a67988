package internal

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// KeySource tracks the buttons held on a raw key device. A reader
// goroutine writes the masks, the frame loop reads them. Both masks share
// one word so a reader never sees half of an update.
type KeySource struct {
	held   atomic.Uint64 // remote in the high half, pad in the low
	closed atomic.Bool
	wg     sync.WaitGroup
	close  func() error
}

// Held returns the masks of the keys currently down.
func (k *KeySource) Held() (constants.RemoteMask, constants.PadMask) {
	if k == nil {
		return 0, 0
	}
	return unpackHeld(k.held.Load())
}

// Close stops the reader and releases the device.
func (k *KeySource) Close() error {
	if k == nil || !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	var err error
	if k.close != nil {
		err = k.close()
	}
	k.wg.Wait()
	return err
}

func (k *KeySource) publish(remote constants.RemoteMask, pad constants.PadMask) {
	k.held.Store(packHeld(remote, pad))
}

func packHeld(remote constants.RemoteMask, pad constants.PadMask) uint64 {
	return uint64(remote)<<32 | uint64(pad)
}

func unpackHeld(v uint64) (constants.RemoteMask, constants.PadMask) {
	return constants.RemoteMask(v >> 32), constants.PadMask(v)
}

// keyState folds key events into held masks.
type keyState struct {
	bindings map[uint16]Binding
	down     map[uint16]bool
}

func newKeyState(bindings map[uint16]Binding) *keyState {
	return &keyState{bindings: bindings, down: make(map[uint16]bool)}
}

// apply records one key event. Value 0 is a release, 1 a press and 2 an
// autorepeat.
func (s *keyState) apply(code uint16, value int32) (constants.RemoteMask, constants.PadMask) {
	if _, ok := s.bindings[code]; ok {
		if value == 0 {
			delete(s.down, code)
		} else {
			s.down[code] = true
		}
	}

	var remote constants.RemoteMask
	var pad constants.PadMask
	for code := range s.down {
		b := s.bindings[code]
		remote |= b.Remote
		pad |= b.Pad
	}
	return remote, pad
}
