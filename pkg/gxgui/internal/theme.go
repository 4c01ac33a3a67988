package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and files the backend draws with.
type Theme struct {
	BackgroundColor     sdl.Color // Cleared to every frame
	FontPath            string    // TrueType font used for every text size
	BackgroundImagePath string    // Optional image stretched behind the tree
}

const defaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// DefaultTheme is a light grey screen with DejaVu Sans.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: HexToColor(0xDCDCDC),
		FontPath:        defaultFontPath,
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return sdl.Color{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(v)), nil
	}
	return sdl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

type themeFile struct {
	BackgroundColor string `toml:"background_color"`
	FontPath        string `toml:"font_path"`
	BackgroundImage string `toml:"background_image"`
}

// LoadTheme reads a theme file. Keys missing from the file keep their
// DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	var f themeFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Theme{}, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return f.theme()
}

// ParseTheme is LoadTheme for an in-memory document.
func ParseTheme(data string) (Theme, error) {
	var f themeFile
	if _, err := toml.Decode(data, &f); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	return f.theme()
}

func (f themeFile) theme() (Theme, error) {
	theme := DefaultTheme()

	if f.BackgroundColor != "" {
		c, err := ParseHexColor(f.BackgroundColor)
		if err != nil {
			return Theme{}, fmt.Errorf("background_color: %w", err)
		}
		theme.BackgroundColor = c
	}
	if f.FontPath != "" {
		theme.FontPath = f.FontPath
	}
	theme.BackgroundImagePath = f.BackgroundImage

	return theme, nil
}
