// Package constants defines shared constants, types, and configuration values
// used throughout the gxgui widget toolkit and its SDL host.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the host.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LocaleEnvVar       = "GXGUI_LOCALE"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// ChanAny matches input from every controller channel.
const ChanAny = -1

// MaxChannels is the number of controller channels polled per frame.
const MaxChannels = 4

// Number of row widgets materialized by the list browsers.
const (
	PageSize     = 8
	SaveListSize = 6
)

// ScrollTrackHeight is the travel of the scrollbar box in pixels.
const ScrollTrackHeight = 144

// Align positions an element relative to its parent.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	AlignTop
	AlignBottom
	AlignMiddle
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Expansion is the accessory plugged into a remote.
type Expansion int

const (
	ExpansionNone Expansion = iota
	ExpansionNunchuk
	ExpansionClassic
)

// Held-direction repeat timing.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Time between subsequent repeats
)

// Rumble pulse sent when a pointer enters a button.
const (
	RumbleDuration  = 60 * time.Millisecond
	RumbleIntensity = 0x6000
)
