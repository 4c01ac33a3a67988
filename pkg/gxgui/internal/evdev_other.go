//go:build !linux

package internal

import (
	"errors"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// OpenKeySource is only available on Linux.
func OpenKeySource(path string, _ map[uint16]Binding) (*KeySource, error) {
	return nil, gxgui.NewInfrastructureError("open_evdev", errors.New("evdev is not supported on this platform: "+path))
}
