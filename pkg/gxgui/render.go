package gxgui

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

// TextRun is one string to draw, anchored at the position handed to
// Renderer.DrawText and justified by Hor and Vert.
type TextRun struct {
	Content string
	Size    int
	Color   color.RGBA
	Hor     constants.Align
	Vert    constants.Align
}

// Renderer submits draw calls. Widgets decide where, never what pixels.
type Renderer interface {
	DrawImage(img *ImageData, x, y int, angle float64)
	DrawText(run TextRun, x, y int)
	FillRect(r image.Rectangle, c color.RGBA)
}

// Speaker plays short sound effects.
type Speaker interface {
	Play(s *Sound)
}
