package internal

import (
	"sync"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/veandco/go-sdl2/ttf"
)

// Fonts opens the theme font lazily, once per point size.
type Fonts struct {
	mu    sync.Mutex
	path  string
	sizes map[int]*ttf.Font
}

func NewFonts(path string) *Fonts {
	return &Fonts{path: path, sizes: make(map[int]*ttf.Font)}
}

// Get returns the font at size, opening it on first use.
func (f *Fonts) Get(size int) (*ttf.Font, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if font, ok := f.sizes[size]; ok {
		return font, nil
	}

	font, err := ttf.OpenFont(f.path, size)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("load_font", err)
	}

	GetInternalLogger().Debug("Opened font", "path", f.path, "size", size)
	f.sizes[size] = font
	return font, nil
}

func (f *Fonts) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for size, font := range f.sizes {
		font.Close()
		delete(f.sizes, size)
	}
}
