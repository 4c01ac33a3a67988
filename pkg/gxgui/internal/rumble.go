package internal

import (
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// Motor is a controller able to rumble. *sdl.GameController satisfies it.
type Motor interface {
	Rumble(low, high uint16, durationMS uint32) error
}

// RumbleSink drains per-frame rumble requests into controller motors. A
// channel that is still pulsing ignores new requests.
type RumbleSink struct {
	mu       sync.Mutex
	motors   [constants.MaxChannels]Motor
	busy     [constants.MaxChannels]atomic.Bool
	duration time.Duration
}

func NewRumbleSink(duration time.Duration) *RumbleSink {
	return &RumbleSink{duration: duration}
}

// Attach binds motor to channel ch. A nil motor detaches.
func (s *RumbleSink) Attach(ch int, motor Motor) {
	if ch < 0 || ch >= constants.MaxChannels {
		return
	}
	s.mu.Lock()
	s.motors[ch] = motor
	s.mu.Unlock()
}

// Drain starts a pulse on every channel fb asked for.
func (s *RumbleSink) Drain(fb *gxgui.Feedback) {
	if fb == nil {
		return
	}

	for ch := range constants.MaxChannels {
		if !fb.Rumble(ch) {
			continue
		}

		s.mu.Lock()
		motor := s.motors[ch]
		s.mu.Unlock()

		if motor == nil || !s.busy[ch].CompareAndSwap(false, true) {
			continue
		}

		if err := motor.Rumble(constants.RumbleIntensity, constants.RumbleIntensity, uint32(s.duration.Milliseconds())); err != nil {
			GetInternalLogger().Debug("Rumble not supported", "channel", ch, "error", err)
			s.busy[ch].Store(false)
			continue
		}

		busy := &s.busy[ch]
		time.AfterFunc(s.duration, func() { busy.Store(false) })
	}
}

// Busy reports whether channel ch is mid pulse.
func (s *RumbleSink) Busy(ch int) bool {
	if ch < 0 || ch >= constants.MaxChannels {
		return false
	}
	return s.busy[ch].Load()
}
