package gxgui

import (
	"image/color"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

const (
	optionRowWidth  = 552
	optionRowHeight = 30
	rowFontSize     = 22
)

var rowTextColor = color.RGBA{A: 0xFF}

// OptionBrowserAssets supply the option browser's images and row sounds.
// Any of them may be nil.
type OptionBrowserAssets struct {
	Scrollbar  ScrollbarAssets
	Background *ImageData
	EntryOver  *ImageData
	HoverSound *Sound
	ClickSound *Sound
}

// OptionBrowser shows a window of PageSize rows over an OptionList,
// skipping blank entries.
type OptionBrowser struct {
	Base

	options      *OptionList
	selectedItem int
	listOffset   int

	optionIndex [constants.PageSize]int
	optionBtn   [constants.PageSize]*Button
	optionTxt   [constants.PageSize]*Text
	optionVal   [constants.PageSize]*Text

	bg     *Image
	scroll *scrollbar
	trigA  *Trigger
}

// NewOptionBrowser builds the row widgets and binds them to list, starting
// at its first non-blank entry.
func NewOptionBrowser(width, height int, list *OptionList, assets OptionBrowserAssets) *OptionBrowser {
	b := &OptionBrowser{
		Base:    newBase(width, height),
		options: list,
		trigA:   NewSimpleTrigger(constants.ChanAny, constants.RemoteSelect, constants.PadButtonA),
	}
	b.selectable = true
	b.focus = FocusInactive
	b.listOffset = b.FindMenuItem(-1, 1)

	b.bg = NewImage(assets.Background)
	b.bg.SetParent(b)
	b.bg.SetAlignment(constants.AlignLeft, constants.AlignMiddle)

	b.scroll = newScrollbar(b, assets.Scrollbar, b.trigA)

	for i := range b.optionBtn {
		b.optionTxt[i] = NewText("", rowFontSize, rowTextColor)
		b.optionTxt[i].SetAlignment(constants.AlignLeft, constants.AlignMiddle)
		b.optionTxt[i].SetPosition(8, 0)

		b.optionVal[i] = NewText("", rowFontSize, rowTextColor)
		b.optionVal[i].SetAlignment(constants.AlignLeft, constants.AlignMiddle)
		b.optionVal[i].SetPosition(300, 0)

		btn := NewButton(optionRowWidth, optionRowHeight)
		btn.SetParent(b)
		btn.SetLabel(b.optionTxt[i], 0)
		btn.SetLabel(b.optionVal[i], 1)
		btn.SetImageOver(NewImage(assets.EntryOver))
		btn.SetPosition(0, optionRowHeight*i+3)
		btn.SetTrigger(b.trigA)
		btn.SetSoundOver(assets.HoverSound)
		btn.SetSoundClick(assets.ClickSound)
		b.optionBtn[i] = btn
	}

	b.refresh(nil)
	return b
}

// FindMenuItem returns the next non-blank entry after current in direction
// dir (1 or -1), or -1 when the end of the list is reached.
func (b *OptionBrowser) FindMenuItem(current, dir int) int {
	for next := current + dir; next >= 0 && next < b.options.Len(); next += dir {
		if b.options.Name[next] != "" {
			return next
		}
	}
	return -1
}

func (b *OptionBrowser) SelectedItem() int { return b.selectedItem }
func (b *OptionBrowser) ListOffset() int   { return b.listOffset }

// SetListOffset moves the window so entry offset is on the first row. Blank
// or out of range entries are ignored.
func (b *OptionBrowser) SetListOffset(offset int) {
	if offset < 0 || offset >= b.options.Len() || b.options.Name[offset] == "" {
		return
	}
	b.listOffset = offset
	b.refresh(nil)
	if b.optionIndex[b.selectedItem] < 0 {
		b.SetSelectedItem(0)
	}
}

// SetSelectedItem moves the cursor to row, if the row is bound to an entry.
func (b *OptionBrowser) SetSelectedItem(row int) {
	if row < 0 || row >= len(b.optionBtn) || b.optionIndex[row] < 0 {
		return
	}
	if b.focus == FocusActive {
		b.moveRow(row)
		return
	}
	b.selectedItem = row
}

// Row returns the row button at i, or nil.
func (b *OptionBrowser) Row(i int) *Button {
	if i < 0 || i >= len(b.optionBtn) {
		return nil
	}
	return b.optionBtn[i]
}

// RowIndex returns the logical entry bound to row i, or -1 for an empty row.
func (b *OptionBrowser) RowIndex(i int) int {
	if i < 0 || i >= len(b.optionIndex) {
		return -1
	}
	return b.optionIndex[i]
}

// SetFocus clears every row and, when focused, selects the current row.
func (b *OptionBrowser) SetFocus(f Focus) {
	b.focus = f
	for _, btn := range b.optionBtn {
		btn.ResetState()
	}
	if f == FocusActive && b.optionIndex[b.selectedItem] >= 0 {
		b.optionBtn[b.selectedItem].SetState(StateSelected)
	}
}

func (b *OptionBrowser) ResetState() {
	b.state = StateDefault
	for _, btn := range b.optionBtn {
		btn.ResetState()
	}
}

// SetState applies s to the browser and to the rows currently bound to an
// entry. SELECTED and CLICKED only reach the current row.
func (b *OptionBrowser) SetState(s State) {
	b.Base.SetState(s)
	for i, btn := range b.optionBtn {
		if b.optionIndex[i] < 0 {
			continue
		}
		if (s == StateSelected || s == StateClicked) && i != b.selectedItem {
			continue
		}
		btn.SetState(s)
	}
}

// GetClickedOption returns the entry of the first clicked row and puts the
// row back to SELECTED, or returns -1.
func (b *OptionBrowser) GetClickedOption() int {
	for i, btn := range b.optionBtn {
		if btn.State() == StateClicked {
			btn.SetState(StateSelected)
			return b.optionIndex[i]
		}
	}
	return -1
}

func (b *OptionBrowser) Draw(r Renderer) {
	if !b.visible {
		return
	}

	b.bg.Draw(r)
	for _, btn := range b.optionBtn {
		btn.Draw(r)
	}
	b.scroll.draw(r)
}

func (b *OptionBrowser) Update(in *Input) {
	if in == nil || b.state == StateDisabled {
		return
	}

	if n := b.options.Len(); n > 0 && b.listOffset >= 0 {
		b.scroll.setProgress(constants.ScrollTrackHeight * (b.listOffset + b.selectedItem) / n)
	}

	up, down := b.scroll.update(in)
	switch {
	case up:
		b.scrollUp()
	case down:
		b.scrollDown()
	}

	if b.focus == FocusActive {
		b.navigate(in)
	}

	b.refresh(in)
}

func (b *OptionBrowser) navigate(in *Input) {
	current := b.optionIndex[b.selectedItem]
	if current < 0 {
		return
	}

	switch {
	case in.Pressed(constants.RemoteNavDown, constants.PadButtonDown):
		if b.FindMenuItem(current, 1) < 0 {
			return
		}
		if b.selectedItem == len(b.optionBtn)-1 {
			b.listOffset = b.FindMenuItem(b.listOffset, 1)
		} else if b.optionBtn[b.selectedItem+1].IsVisible() {
			b.moveRow(b.selectedItem + 1)
		}
	case in.Pressed(constants.RemoteNavUp, constants.PadButtonUp):
		prev := b.FindMenuItem(current, -1)
		if prev < 0 {
			return
		}
		if b.selectedItem == 0 {
			b.listOffset = prev
		} else {
			b.moveRow(b.selectedItem - 1)
		}
	}
}

func (b *OptionBrowser) moveRow(to int) {
	b.optionBtn[b.selectedItem].ResetState()
	b.optionBtn[to].SetState(StateSelected)
	b.selectedItem = to
}

func (b *OptionBrowser) scrollUp() {
	if prev := b.FindMenuItem(b.listOffset, -1); prev >= 0 {
		b.listOffset = prev
	}
}

func (b *OptionBrowser) scrollDown() {
	last := b.optionIndex[len(b.optionIndex)-1]
	if last >= 0 && b.FindMenuItem(last, 1) >= 0 {
		b.listOffset = b.FindMenuItem(b.listOffset, 1)
	}
}

// refresh binds the rows to the entries from listOffset on, hides and
// disables rows past the end, then updates each row.
func (b *OptionBrowser) refresh(in *Input) {
	next := b.listOffset
	for i, btn := range b.optionBtn {
		if next >= 0 {
			if btn.State() == StateDisabled {
				btn.SetVisible(true)
				btn.ResetState()
			}
			name, value, _ := b.options.Entry(next)
			b.optionTxt[i].SetText(name)
			b.optionVal[i].SetText(value)
			b.optionIndex[i] = next
			next = b.FindMenuItem(next, 1)
		} else {
			btn.SetVisible(false)
			btn.SetState(StateDisabled)
			b.optionIndex[i] = -1
		}

		btn.Update(in)

		if btn.State() == StateSelected {
			b.selectedItem = i
		}
	}
}
