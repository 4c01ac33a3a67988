//go:build linux

package internal

import (
	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// OpenKeySource starts reading key events from the evdev device at path.
// Only codes present in bindings are tracked.
func OpenKeySource(path string, bindings map[uint16]Binding) (*KeySource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("open_evdev", err)
	}

	name, _ := dev.Name()
	GetInternalLogger().Debug("Opened key device", "path", path, "name", name)

	k := &KeySource{close: dev.Close}
	state := newKeyState(bindings)

	k.wg.Add(1)
	go func() {
		defer k.wg.Done()
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				if !k.closed.Load() {
					GetInternalLogger().Error("Key device read failed", "path", path, "error", err)
				}
				k.publish(0, 0)
				return
			}
			if ev.Type != evdev.EV_KEY {
				continue
			}
			k.publish(state.apply(uint16(ev.Code), ev.Value))
		}
	}()

	return k, nil
}
