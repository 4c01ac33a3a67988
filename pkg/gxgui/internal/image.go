package internal

import (
	"image"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// LoadImage decodes an image file with SDL_image and copies it into
// memory the widgets can share.
func LoadImage(path string) (*gxgui.ImageData, error) {
	surface, err := img.Load(path)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("load_image", err)
	}
	defer surface.Free()

	rgba, err := surface.ConvertFormat(uint32(sdl.PIXELFORMAT_ABGR8888), 0)
	if err != nil {
		return nil, gxgui.NewInfrastructureError("convert_image", err)
	}
	defer rgba.Free()

	return gxgui.NewImageData(readRows(rgba.Pixels(), int(rgba.Pitch), int(rgba.W), int(rgba.H))), nil
}

// readRows is the inverse of copyRows.
func readRows(src []byte, pitch, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	rowBytes := w * 4
	for y := range h {
		start := y * pitch
		if start+rowBytes > len(src) {
			break
		}
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], src[start:start+rowBytes])
	}
	return dst
}
