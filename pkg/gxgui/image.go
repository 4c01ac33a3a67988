package gxgui

import "image"

// ImageData is decoded pixel content shared by any number of Image
// elements. Backends key their texture caches on the pointer.
type ImageData struct {
	img    image.Image
	width  int
	height int
}

// NewImageData wraps img. A nil img yields an empty 0x0 image.
func NewImageData(img image.Image) *ImageData {
	d := &ImageData{img: img}
	if img != nil {
		b := img.Bounds()
		d.width, d.height = b.Dx(), b.Dy()
	}
	return d
}

func (d *ImageData) Image() image.Image { return d.img }

func (d *ImageData) Width() int {
	if d == nil {
		return 0
	}
	return d.width
}

func (d *ImageData) Height() int {
	if d == nil {
		return 0
	}
	return d.height
}

// Image draws an ImageData at its resolved position.
type Image struct {
	Base
	data  *ImageData
	angle float64
}

// NewImage returns an image element sized to data.
func NewImage(data *ImageData) *Image {
	return &Image{
		Base: newBase(data.Width(), data.Height()),
		data: data,
	}
}

func (i *Image) Data() *ImageData { return i.data }

// SetData swaps the pixel content and resizes the element to match.
func (i *Image) SetData(data *ImageData) {
	i.data = data
	i.SetSize(data.Width(), data.Height())
}

func (i *Image) Angle() float64     { return i.angle }
func (i *Image) SetAngle(a float64) { i.angle = a }

func (i *Image) Draw(r Renderer) {
	if !i.visible || i.data == nil {
		return
	}
	r.DrawImage(i.data, i.Left(), i.Top(), i.angle)
}
