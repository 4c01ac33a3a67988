package host

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/internal"
)

// ErrQuit is returned when the window is closed while a loop is running.
var ErrQuit = errors.New("window closed")

// ErrNotInitialized is returned when a loop runs before Init.
var ErrNotInitialized = errors.New("host not initialized")

// Step runs one frame: it polls input, updates root once per channel,
// drains rumble requests and draws root. It reports whether the window
// was asked to close.
func Step(root gxgui.Element) bool {
	b := current
	if b == nil {
		return true
	}

	b.input.Poll()
	inputs := b.input.Snapshot(time.Now())
	for i := range inputs {
		root.Update(&inputs[i])
	}
	b.rumble.Drain(b.input.Feedback())

	b.window.Clear()
	root.Draw(b.renderer)
	b.window.Present()

	return b.input.Quit()
}

// Run steps root until done reports true, the context is cancelled or
// the window is closed.
func Run(ctx context.Context, root gxgui.Element, done func() bool) error {
	if current == nil {
		return ErrNotInitialized
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if Step(root) {
			return ErrQuit
		}
		if done != nil && done() {
			return nil
		}
	}
}

// LoadImage decodes an image file into shareable pixel data.
func LoadImage(path string) (*gxgui.ImageData, error) {
	return internal.LoadImage(path)
}
