package gxgui_test

import (
	"image"
	"image/color"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

type drawnImage struct {
	data  *gxgui.ImageData
	x, y  int
	angle float64
}

type drawnText struct {
	run  gxgui.TextRun
	x, y int
}

type filledRect struct {
	rect  image.Rectangle
	color color.RGBA
}

type fakeRenderer struct {
	images []drawnImage
	texts  []drawnText
	rects  []filledRect
}

func (f *fakeRenderer) DrawImage(img *gxgui.ImageData, x, y int, angle float64) {
	f.images = append(f.images, drawnImage{data: img, x: x, y: y, angle: angle})
}

func (f *fakeRenderer) DrawText(run gxgui.TextRun, x, y int) {
	f.texts = append(f.texts, drawnText{run: run, x: x, y: y})
}

func (f *fakeRenderer) FillRect(r image.Rectangle, c color.RGBA) {
	f.rects = append(f.rects, filledRect{rect: r, color: c})
}

func (f *fakeRenderer) imagesOf(data *gxgui.ImageData) []drawnImage {
	var out []drawnImage
	for _, d := range f.images {
		if d.data == data {
			out = append(out, d)
		}
	}
	return out
}

type fakeSpeaker struct {
	played []*gxgui.Sound
}

func (f *fakeSpeaker) Play(s *gxgui.Sound) {
	f.played = append(f.played, s)
}

func solid(w, h int) *gxgui.ImageData {
	return gxgui.NewImageData(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func frame() *gxgui.Input {
	return &gxgui.Input{Chan: 0, Feedback: &gxgui.Feedback{}}
}

func pressRemote(m constants.RemoteMask) *gxgui.Input {
	in := frame()
	in.Remote.Down = m
	in.Remote.Held = m
	return in
}

func pressPad(m constants.PadMask) *gxgui.Input {
	in := frame()
	in.Pad.Down = m
	in.Pad.Held = m
	return in
}

func pointAt(x, y int) *gxgui.Input {
	in := frame()
	in.Remote.Pointer = gxgui.Pointer{Valid: true, X: x, Y: y}
	return in
}

var (
	down  = pressRemote(constants.RemoteButtonDown)
	up    = pressRemote(constants.RemoteButtonUp)
	left  = pressRemote(constants.RemoteButtonLeft)
	right = pressRemote(constants.RemoteButtonRight)
	press = pressRemote(constants.RemoteButtonA)
	back  = pressRemote(constants.RemoteButtonB)
)
