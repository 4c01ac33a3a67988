package internal

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	imageCacheSize = 64
	textCacheSize  = 256
)

type textKey struct {
	content string
	size    int
	color   color.RGBA
}

type sizedTexture struct {
	tex  *sdl.Texture
	w, h int32
}

func destroyTexture[K comparable](_ K, t sizedTexture) {
	if t.tex != nil {
		t.tex.Destroy()
	}
}

// SDLRenderer draws widget trees onto an SDL renderer. Uploaded images and
// rendered strings are kept in LRU caches.
type SDLRenderer struct {
	renderer *sdl.Renderer
	fonts    *Fonts
	images   *Cache[*gxgui.ImageData, sizedTexture]
	texts    *Cache[textKey, sizedTexture]
}

func NewSDLRenderer(renderer *sdl.Renderer, fonts *Fonts) *SDLRenderer {
	return &SDLRenderer{
		renderer: renderer,
		fonts:    fonts,
		images:   NewCache(imageCacheSize, destroyTexture[*gxgui.ImageData]),
		texts:    NewCache(textCacheSize, destroyTexture[textKey]),
	}
}

func (r *SDLRenderer) DrawImage(data *gxgui.ImageData, x, y int, angle float64) {
	if data == nil || data.Image() == nil {
		return
	}

	t, ok := r.images.Get(data)
	if !ok {
		var err error
		t, err = r.upload(data.Image())
		if err != nil {
			GetInternalLogger().Error("Unable to upload image", "error", err)
			return
		}
		r.images.Set(data, t)
	}

	dst := &sdl.Rect{X: int32(x), Y: int32(y), W: t.w, H: t.h}
	if angle == 0 {
		r.renderer.Copy(t.tex, nil, dst)
		return
	}
	r.renderer.CopyEx(t.tex, nil, dst, angle, nil, sdl.FLIP_NONE)
}

func (r *SDLRenderer) DrawText(run gxgui.TextRun, x, y int) {
	if run.Content == "" {
		return
	}

	key := textKey{content: run.Content, size: run.Size, color: run.Color}
	t, ok := r.texts.Get(key)
	if !ok {
		var err error
		t, err = r.renderText(key)
		if err != nil {
			GetInternalLogger().Error("Unable to render text", "text", run.Content, "error", err)
			return
		}
		r.texts.Set(key, t)
	}

	dx, dy := justify(run.Hor, run.Vert, int(t.w), int(t.h))
	r.renderer.Copy(t.tex, nil, &sdl.Rect{X: int32(x + dx), Y: int32(y + dy), W: t.w, H: t.h})
}

func (r *SDLRenderer) FillRect(rect image.Rectangle, c color.RGBA) {
	r.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	r.renderer.FillRect(&sdl.Rect{
		X: int32(rect.Min.X),
		Y: int32(rect.Min.Y),
		W: int32(rect.Dx()),
		H: int32(rect.Dy()),
	})
}

// Purge drops every cached texture.
func (r *SDLRenderer) Purge() {
	r.images.Purge()
	r.texts.Purge()
}

// justify returns the offset from the text anchor to the top left corner
// of a w by h run.
func justify(hor, vert constants.Align, w, h int) (int, int) {
	var dx, dy int
	switch hor {
	case constants.AlignCenter:
		dx = -w / 2
	case constants.AlignRight:
		dx = -w
	}
	switch vert {
	case constants.AlignMiddle:
		dy = -h / 2
	case constants.AlignBottom:
		dy = -h
	}
	return dx, dy
}

func (r *SDLRenderer) renderText(key textKey) (sizedTexture, error) {
	font, err := r.fonts.Get(key.size)
	if err != nil {
		return sizedTexture{}, err
	}

	surface, err := font.RenderUTF8Blended(key.content, sdl.Color{R: key.color.R, G: key.color.G, B: key.color.B, A: key.color.A})
	if err != nil {
		return sizedTexture{}, gxgui.NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	tex, err := r.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return sizedTexture{}, gxgui.NewInfrastructureError("create_texture", err)
	}
	return sizedTexture{tex: tex, w: surface.W, h: surface.H}, nil
}

func (r *SDLRenderer) upload(src image.Image) (sizedTexture, error) {
	pix := toNRGBA(src)
	w, h := int32(pix.Rect.Dx()), int32(pix.Rect.Dy())

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return sizedTexture{}, gxgui.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	copyRows(surface.Pixels(), int(surface.Pitch), pix)

	tex, err := r.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return sizedTexture{}, gxgui.NewInfrastructureError("create_texture", err)
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)

	return sizedTexture{tex: tex, w: w, h: h}, nil
}

// toNRGBA converts src to straight alpha RGBA with its origin at 0,0.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
	return dst
}

// copyRows copies pix into a surface buffer with the given pitch.
func copyRows(dst []byte, pitch int, pix *image.NRGBA) {
	rowBytes := pix.Rect.Dx() * 4
	for y := 0; y < pix.Rect.Dy(); y++ {
		from := pix.Pix[y*pix.Stride : y*pix.Stride+rowBytes]
		start := y * pitch
		if start+rowBytes > len(dst) {
			return
		}
		copy(dst[start:start+rowBytes], from)
	}
}
