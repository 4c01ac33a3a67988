package gxgui

import "github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"

// ScrollbarAssets are the images shared by both list browsers.
type ScrollbarAssets struct {
	Track         *ImageData
	ArrowUp       *ImageData
	ArrowUpOver   *ImageData
	ArrowDown     *ImageData
	ArrowDownOver *ImageData
	Box           *ImageData
	BoxOver       *ImageData
}

// Pixels between the top of the browser and the top of the box travel.
const scrollBoxOrigin = 36

type scrollbar struct {
	track *Image
	up    *Button
	down  *Button
	box   *Button
}

func newScrollbar(parent Element, a ScrollbarAssets, trig *Trigger) *scrollbar {
	s := &scrollbar{track: NewImage(a.Track)}
	s.track.SetParent(parent)
	s.track.SetAlignment(constants.AlignRight, constants.AlignTop)
	s.track.SetPosition(0, 30)

	s.up = newArrow(parent, a.ArrowUp, a.ArrowUpOver, trig)
	s.up.SetAlignment(constants.AlignRight, constants.AlignTop)

	s.down = newArrow(parent, a.ArrowDown, a.ArrowDownOver, trig)
	s.down.SetAlignment(constants.AlignRight, constants.AlignBottom)

	s.box = NewButton(a.Box.Width(), a.Box.Height())
	s.box.SetParent(parent)
	s.box.SetImage(NewImage(a.Box))
	s.box.SetImageOver(NewImage(a.BoxOver))
	s.box.SetAlignment(constants.AlignRight, constants.AlignTop)
	s.box.SetSelectable(false)
	s.box.SetClickable(false)
	return s
}

func newArrow(parent Element, img, over *ImageData, trig *Trigger) *Button {
	b := NewButton(img.Width(), img.Height())
	b.SetParent(parent)
	b.SetImage(NewImage(img))
	b.SetImageOver(NewImage(over))
	b.SetTrigger(trig)
	return b
}

// setProgress places the box pos pixels down its travel.
func (s *scrollbar) setProgress(pos int) {
	s.box.SetPosition(0, pos+scrollBoxOrigin)
}

// update runs the arrow buttons and reports which one was clicked this
// frame. A clicked arrow goes back to SELECTED so it can fire again.
func (s *scrollbar) update(in *Input) (up, down bool) {
	s.up.Update(in)
	s.down.Update(in)
	s.box.Update(in)

	if s.up.State() == StateClicked {
		s.up.SetState(StateSelected)
		up = true
	}
	if s.down.State() == StateClicked {
		s.down.SetState(StateSelected)
		down = true
	}
	return up, down
}

func (s *scrollbar) draw(r Renderer) {
	s.track.Draw(r)
	s.up.Draw(r)
	s.down.Draw(r)
	s.box.Draw(r)
}
