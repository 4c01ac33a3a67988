package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

//go:embed assets/*.svg assets/*.wav
var assetFS embed.FS

// RasterizeSVG draws an SVG document into a w by h image, scaling its
// viewBox to fill it.
func RasterizeSVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

// loadSVGAsset rasterizes an embedded asset.
func loadSVGAsset(name string, w, h int) (*gxgui.ImageData, error) {
	data, err := assetFS.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	img, err := RasterizeSVG(data, w, h)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", name, err)
	}
	return gxgui.NewImageData(img), nil
}

type svgAsset struct {
	name string
	w, h int
	dst  **gxgui.ImageData
}

func loadSVGAssets(list []svgAsset) error {
	for _, a := range list {
		data, err := loadSVGAsset(a.name, a.w, a.h)
		if err != nil {
			return err
		}
		*a.dst = data
	}
	return nil
}

// DefaultScrollbarAssets rasterizes the built in scrollbar.
func DefaultScrollbarAssets() (gxgui.ScrollbarAssets, error) {
	var s gxgui.ScrollbarAssets
	err := loadSVGAssets([]svgAsset{
		{"scrollbar.svg", 24, 184, &s.Track},
		{"arrow_up.svg", 24, 24, &s.ArrowUp},
		{"arrow_up_over.svg", 24, 24, &s.ArrowUpOver},
		{"arrow_down.svg", 24, 24, &s.ArrowDown},
		{"arrow_down_over.svg", 24, 24, &s.ArrowDownOver},
		{"scrollbar_box.svg", 24, 24, &s.Box},
		{"scrollbar_box_over.svg", 24, 24, &s.BoxOver},
	})
	return s, err
}

// DefaultOptionBrowserAssets builds the option browser look. Sounds play
// through out, which may be nil.
func DefaultOptionBrowserAssets(out gxgui.Speaker) (gxgui.OptionBrowserAssets, error) {
	var a gxgui.OptionBrowserAssets

	sb, err := DefaultScrollbarAssets()
	if err != nil {
		return a, err
	}
	a.Scrollbar = sb

	if err := loadSVGAssets([]svgAsset{
		{"bg_options.svg", 552, 248, &a.Background},
		{"bg_options_entry.svg", 552, 30, &a.EntryOver},
	}); err != nil {
		return a, err
	}

	a.HoverSound, a.ClickSound = defaultSounds(out)
	return a, nil
}

// DefaultSaveBrowserAssets builds the save browser look.
func DefaultSaveBrowserAssets(out gxgui.Speaker) (gxgui.SaveBrowserAssets, error) {
	var a gxgui.SaveBrowserAssets

	sb, err := DefaultScrollbarAssets()
	if err != nil {
		return a, err
	}
	a.Scrollbar = sb

	if err := loadSVGAssets([]svgAsset{
		{"button_gamesave.svg", 240, 80, &a.Entry},
		{"button_gamesave_over.svg", 240, 80, &a.EntryOver},
		{"button_gamesave_blank.svg", 64, 64, &a.Preview},
	}); err != nil {
		return a, err
	}

	a.HoverSound, a.ClickSound = defaultSounds(out)
	return a, nil
}

func defaultSounds(out gxgui.Speaker) (*gxgui.Sound, *gxgui.Sound) {
	over, _ := assetFS.ReadFile("assets/button_over.wav")
	click, _ := assetFS.ReadFile("assets/button_click.wav")
	return gxgui.NewSound(over, out), gxgui.NewSound(click, out)
}
