package internal

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

func TestJustify(t *testing.T) {
	tests := []struct {
		hor, vert constants.Align
		dx, dy    int
	}{
		{constants.AlignLeft, constants.AlignTop, 0, 0},
		{constants.AlignCenter, constants.AlignMiddle, -50, -10},
		{constants.AlignRight, constants.AlignBottom, -100, -20},
	}

	for _, tt := range tests {
		t.Run(tt.hor.String()+"/"+tt.vert.String(), func(t *testing.T) {
			dx, dy := justify(tt.hor, tt.vert, 100, 20)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestToNRGBAAndCopyRows(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 7))
	src.Set(5, 5, color.RGBA{R: 0xFF, A: 0xFF})
	src.Set(6, 6, color.RGBA{B: 0xFF, A: 0xFF})

	n := toNRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), n.Rect)

	pitch := 12
	dst := make([]byte, pitch*2)
	copyRows(dst, pitch, n)

	assert.Equal(t, []byte{0xFF, 0, 0, 0xFF}, dst[0:4])
	assert.Equal(t, []byte{0, 0, 0xFF, 0xFF}, dst[pitch+4:pitch+8])
	assert.Equal(t, []byte{0, 0, 0, 0}, dst[8:12], "padding is left alone")
}

func TestReadRowsRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	pitch := 16
	buf := make([]byte, pitch*2)
	copyRows(buf, pitch, src)

	assert.Equal(t, src.Pix, readRows(buf, pitch, 3, 2).Pix)
}
