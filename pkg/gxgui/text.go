package gxgui

import "image/color"

// Default text styling.
const DefaultFontSize = 20

var DefaultTextColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// Text is a label drawn through the renderer. Its alignment also justifies
// the string around the resolved anchor point.
type Text struct {
	Base
	content string
	size    int
	color   color.RGBA
}

// NewText returns a label with the given content, size and color.
func NewText(content string, size int, c color.RGBA) *Text {
	return &Text{
		Base:    newBase(0, 0),
		content: content,
		size:    size,
		color:   c,
	}
}

func (t *Text) Text() string           { return t.content }
func (t *Text) SetText(content string) { t.content = content }
func (t *Text) FontSize() int          { return t.size }
func (t *Text) SetFontSize(size int)   { t.size = size }
func (t *Text) Color() color.RGBA      { return t.color }
func (t *Text) SetColor(c color.RGBA)  { t.color = c }

func (t *Text) Draw(r Renderer) {
	if !t.visible || t.content == "" {
		return
	}
	r.DrawText(TextRun{
		Content: t.content,
		Size:    t.size,
		Color:   t.color,
		Hor:     t.alignHor,
		Vert:    t.alignVert,
	}, t.Left(), t.Top())
}
