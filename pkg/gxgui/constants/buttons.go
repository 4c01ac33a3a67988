package constants

import "strings"

// RemoteMask is the primary button namespace. The low 16 bits carry the
// remote itself, the high 16 bits carry a classic controller expansion.
type RemoteMask uint32

const (
	RemoteButton2     RemoteMask = 0x0001
	RemoteButton1     RemoteMask = 0x0002
	RemoteButtonB     RemoteMask = 0x0004
	RemoteButtonA     RemoteMask = 0x0008
	RemoteButtonMinus RemoteMask = 0x0010
	RemoteButtonHome  RemoteMask = 0x0080
	RemoteButtonLeft  RemoteMask = 0x0100
	RemoteButtonRight RemoteMask = 0x0200
	RemoteButtonDown  RemoteMask = 0x0400
	RemoteButtonUp    RemoteMask = 0x0800
	RemoteButtonPlus  RemoteMask = 0x1000
)

const (
	ClassicButtonUp    RemoteMask = 0x0001 << 16
	ClassicButtonLeft  RemoteMask = 0x0002 << 16
	ClassicButtonZR    RemoteMask = 0x0004 << 16
	ClassicButtonX     RemoteMask = 0x0008 << 16
	ClassicButtonA     RemoteMask = 0x0010 << 16
	ClassicButtonY     RemoteMask = 0x0020 << 16
	ClassicButtonB     RemoteMask = 0x0040 << 16
	ClassicButtonZL    RemoteMask = 0x0080 << 16
	ClassicButtonR     RemoteMask = 0x0200 << 16
	ClassicButtonPlus  RemoteMask = 0x0400 << 16
	ClassicButtonHome  RemoteMask = 0x0800 << 16
	ClassicButtonMinus RemoteMask = 0x1000 << 16
	ClassicButtonL     RemoteMask = 0x2000 << 16
	ClassicButtonDown  RemoteMask = 0x4000 << 16
	ClassicButtonRight RemoteMask = 0x8000 << 16
)

// Remote returns the bits belonging to the remote itself.
func (m RemoteMask) Remote() uint16 {
	return uint16(m & 0xFFFF)
}

// Classic returns the bits belonging to the classic controller expansion.
func (m RemoteMask) Classic() uint16 {
	return uint16(m >> 16)
}

// Has reports whether any bit of b is set in m.
func (m RemoteMask) Has(b RemoteMask) bool {
	return m&b != 0
}

// PadMask is the secondary button namespace (standalone pad).
type PadMask uint16

const (
	PadButtonLeft  PadMask = 0x0001
	PadButtonRight PadMask = 0x0002
	PadButtonDown  PadMask = 0x0004
	PadButtonUp    PadMask = 0x0008
	PadTriggerZ    PadMask = 0x0010
	PadTriggerR    PadMask = 0x0020
	PadTriggerL    PadMask = 0x0040
	PadButtonA     PadMask = 0x0100
	PadButtonB     PadMask = 0x0200
	PadButtonX     PadMask = 0x0400
	PadButtonY     PadMask = 0x0800
	PadButtonStart PadMask = 0x1000
)

// Has reports whether any bit of b is set in m.
func (m PadMask) Has(b PadMask) bool {
	return m&b != 0
}

// Combined masks used by navigation, one per direction and surface.
const (
	RemoteNavUp    = RemoteButtonUp | ClassicButtonUp
	RemoteNavDown  = RemoteButtonDown | ClassicButtonDown
	RemoteNavLeft  = RemoteButtonLeft | ClassicButtonLeft
	RemoteNavRight = RemoteButtonRight | ClassicButtonRight
	RemoteSelect   = RemoteButtonA | ClassicButtonA
	RemoteBack     = RemoteButtonB | ClassicButtonB
)

var remoteNames = map[string]RemoteMask{
	"remote.2":      RemoteButton2,
	"remote.1":      RemoteButton1,
	"remote.b":      RemoteButtonB,
	"remote.a":      RemoteButtonA,
	"remote.minus":  RemoteButtonMinus,
	"remote.home":   RemoteButtonHome,
	"remote.left":   RemoteButtonLeft,
	"remote.right":  RemoteButtonRight,
	"remote.down":   RemoteButtonDown,
	"remote.up":     RemoteButtonUp,
	"remote.plus":   RemoteButtonPlus,
	"classic.up":    ClassicButtonUp,
	"classic.left":  ClassicButtonLeft,
	"classic.zr":    ClassicButtonZR,
	"classic.x":     ClassicButtonX,
	"classic.a":     ClassicButtonA,
	"classic.y":     ClassicButtonY,
	"classic.b":     ClassicButtonB,
	"classic.zl":    ClassicButtonZL,
	"classic.r":     ClassicButtonR,
	"classic.plus":  ClassicButtonPlus,
	"classic.home":  ClassicButtonHome,
	"classic.minus": ClassicButtonMinus,
	"classic.l":     ClassicButtonL,
	"classic.down":  ClassicButtonDown,
	"classic.right": ClassicButtonRight,
}

var padNames = map[string]PadMask{
	"pad.left":  PadButtonLeft,
	"pad.right": PadButtonRight,
	"pad.down":  PadButtonDown,
	"pad.up":    PadButtonUp,
	"pad.z":     PadTriggerZ,
	"pad.r":     PadTriggerR,
	"pad.l":     PadTriggerL,
	"pad.a":     PadButtonA,
	"pad.b":     PadButtonB,
	"pad.x":     PadButtonX,
	"pad.y":     PadButtonY,
	"pad.start": PadButtonStart,
}

// ParseButton resolves a mapping target such as "remote.a", "classic.b" or
// "pad.start" to its mask. Exactly one of the returned masks is non-zero
// when ok is true.
func ParseButton(name string) (remote RemoteMask, pad PadMask, ok bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if m, found := remoteNames[key]; found {
		return m, 0, true
	}
	if m, found := padNames[key]; found {
		return 0, m, true
	}
	return 0, 0, false
}
