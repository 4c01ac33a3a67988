package gxgui

// Button is a clickable element composed of optional images, an icon, up to
// three text labels and two sounds. All parts are referenced, not owned.
type Button struct {
	Base

	image     *Image
	imageOver *Image
	icon      *Image
	iconOver  *Image
	label     [3]*Text
	labelOver [3]*Text

	soundOver  *Sound
	soundClick *Sound
}

// NewButton returns a selectable, clickable button of the given size.
func NewButton(width, height int) *Button {
	b := &Button{Base: newBase(width, height)}
	b.selectable = true
	b.clickable = true
	return b
}

func (b *Button) SetImage(img *Image)     { b.image = b.adopt(img) }
func (b *Button) SetImageOver(img *Image) { b.imageOver = b.adopt(img) }
func (b *Button) SetIcon(img *Image)      { b.icon = b.adopt(img) }
func (b *Button) SetIconOver(img *Image)  { b.iconOver = b.adopt(img) }

// SetLabel places t in label slot n (0..2). Invalid slots are ignored.
func (b *Button) SetLabel(t *Text, n int) {
	if n < 0 || n >= len(b.label) {
		return
	}
	b.label[n] = b.adoptText(t)
}

// SetLabelOver places t in the hovered label slot n (0..2).
func (b *Button) SetLabelOver(t *Text, n int) {
	if n < 0 || n >= len(b.labelOver) {
		return
	}
	b.labelOver[n] = b.adoptText(t)
}

// Label returns label slot n, or nil.
func (b *Button) Label(n int) *Text {
	if n < 0 || n >= len(b.label) {
		return nil
	}
	return b.label[n]
}

func (b *Button) SetSoundOver(s *Sound)  { b.soundOver = s }
func (b *Button) SetSoundClick(s *Sound) { b.soundClick = s }

func (b *Button) adopt(img *Image) *Image {
	if img != nil {
		img.SetParent(b)
	}
	return img
}

func (b *Button) adoptText(t *Text) *Text {
	if t != nil {
		t.SetParent(b)
	}
	return t
}

func (b *Button) highlighted() bool {
	return b.state == StateSelected || b.state == StateClicked
}

func (b *Button) Draw(r Renderer) {
	if !b.visible {
		return
	}

	if b.highlighted() && b.imageOver != nil {
		b.imageOver.Draw(r)
	} else if b.image != nil {
		b.image.Draw(r)
	}

	if b.highlighted() && b.iconOver != nil {
		b.iconOver.Draw(r)
	} else if b.icon != nil {
		b.icon.Draw(r)
	}

	for i := range b.label {
		if b.highlighted() && b.labelOver[i] != nil {
			b.labelOver[i].Draw(r)
		} else if b.label[i] != nil {
			b.label[i].Draw(r)
		}
	}
}

// Update applies pointer hover and trigger input. A clicked button stays
// clicked until its owner resets it.
func (b *Button) Update(in *Input) {
	if in == nil || b.state == StateClicked || b.state == StateDisabled || b.parentDisabled() {
		return
	}

	if p := in.Remote.Pointer; p.Valid {
		if b.IsInside(p.X, p.Y) {
			if b.state == StateDefault {
				b.SetState(StateSelected)
				if b.state == StateSelected {
					in.requestRumble()
					b.soundOver.Play()
				}
			}
		} else if b.state == StateSelected {
			b.state = StateDefault
		}
	}

	if !b.clickable {
		return
	}

	t := b.matchTrigger(in)
	if t == nil {
		return
	}

	switch {
	case b.state == StateSelected:
		b.soundClick.Play()
		b.state = StateClicked
	case t.Kind == TriggerButtonOnly:
		b.state = StateClicked
	default:
		return
	}
	logger.Debug("button clicked", "chan", in.Chan, "trigger", t.Kind.String())
}
