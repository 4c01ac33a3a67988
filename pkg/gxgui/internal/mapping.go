package internal

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

//go:embed default_mapping.toml
var defaultMappingTOML []byte

// Binding is what one physical button sets in an Input snapshot.
type Binding struct {
	Remote constants.RemoteMask
	Pad    constants.PadMask
}

// Mapping translates SDL controller buttons, keyboard keys and evdev key
// codes into the two gxgui button namespaces.
type Mapping struct {
	Expansion  constants.Expansion // Reported for game controller channels
	Controller map[sdl.GameControllerButton]Binding
	Keyboard   map[sdl.Keycode]Binding
	Evdev      map[uint16]Binding
}

type mappingFile struct {
	Expansion  string            `toml:"expansion"`
	Controller map[string]string `toml:"controller"`
	Keyboard   map[string]string `toml:"keyboard"`
	Evdev      map[string]string `toml:"evdev"`
}

var currentMapping *Mapping

// DefaultMapping returns the built in bindings.
func DefaultMapping() *Mapping {
	m, err := ParseMapping(defaultMappingTOML)
	if err != nil {
		panic(fmt.Sprintf("default input mapping: %v", err))
	}
	return m
}

// GetMapping returns the active mapping.
func GetMapping() *Mapping {
	if currentMapping == nil {
		currentMapping = DefaultMapping()
	}
	return currentMapping
}

func SetMapping(m *Mapping) {
	currentMapping = m
}

// LoadMapping reads a mapping file.
func LoadMapping(path string) (*Mapping, error) {
	var f mappingFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode mapping %s: %w", path, err)
	}
	return f.mapping()
}

// ParseMapping decodes a mapping document. Each value is one or more
// comma separated targets such as "remote.a" or "classic.b, pad.b".
func ParseMapping(data []byte) (*Mapping, error) {
	var f mappingFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode mapping: %w", err)
	}
	return f.mapping()
}

func (f mappingFile) mapping() (*Mapping, error) {
	m := &Mapping{
		Controller: make(map[sdl.GameControllerButton]Binding),
		Keyboard:   make(map[sdl.Keycode]Binding),
		Evdev:      make(map[uint16]Binding),
	}

	switch strings.ToLower(f.Expansion) {
	case "", "none":
		m.Expansion = constants.ExpansionNone
	case "nunchuk":
		m.Expansion = constants.ExpansionNunchuk
	case "classic":
		m.Expansion = constants.ExpansionClassic
	default:
		return nil, fmt.Errorf("unknown expansion %q", f.Expansion)
	}

	for name, target := range f.Controller {
		button := sdl.GameControllerGetButtonFromString(name)
		if button == sdl.CONTROLLER_BUTTON_INVALID {
			return nil, fmt.Errorf("controller: unknown button %q", name)
		}
		b, err := parseBinding(target)
		if err != nil {
			return nil, fmt.Errorf("controller.%s: %w", name, err)
		}
		m.Controller[button] = b
	}

	for name, target := range f.Keyboard {
		key := sdl.GetKeyFromName(name)
		if key == sdl.K_UNKNOWN {
			return nil, fmt.Errorf("keyboard: unknown key %q", name)
		}
		b, err := parseBinding(target)
		if err != nil {
			return nil, fmt.Errorf("keyboard.%s: %w", name, err)
		}
		m.Keyboard[key] = b
	}

	for code, target := range f.Evdev {
		n, err := strconv.ParseUint(code, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("evdev: invalid key code %q", code)
		}
		b, err := parseBinding(target)
		if err != nil {
			return nil, fmt.Errorf("evdev.%s: %w", code, err)
		}
		m.Evdev[uint16(n)] = b
	}

	return m, nil
}

func parseBinding(target string) (Binding, error) {
	var b Binding
	for part := range strings.SplitSeq(target, ",") {
		remote, pad, ok := constants.ParseButton(part)
		if !ok {
			return Binding{}, fmt.Errorf("unknown target %q", strings.TrimSpace(part))
		}
		b.Remote |= remote
		b.Pad |= pad
	}
	return b, nil
}
