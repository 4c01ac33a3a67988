package gxgui

import "github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"

// SaveAction selects what the save browser is used for.
type SaveAction int

const (
	// SaveActionLoad lists existing saves only.
	SaveActionLoad SaveAction = iota
	// SaveActionSave prepends "New SRAM" and "New Snapshot" slots.
	SaveActionSave
)

func (a SaveAction) String() string {
	if a == SaveActionSave {
		return "save"
	}
	return "load"
}

const (
	saveColumns      = 2
	saveColumnStride = 247
	saveRowStride    = 87
	saveRowWidth     = 240
	saveRowHeight    = 80
)

// SaveBrowserAssets supply the save browser's images and row sounds.
type SaveBrowserAssets struct {
	Scrollbar  ScrollbarAssets
	Entry      *ImageData
	EntryOver  *ImageData
	Preview    *ImageData
	HoverSound *Sound
	ClickSound *Sound
}

// SaveBrowser shows SaveListSize saves in a two column grid. In save mode
// the list starts two slots early so the first row holds the synthetic
// "new save" slots.
type SaveBrowser struct {
	Base

	saves        *SaveList
	action       SaveAction
	labels       SaveLabels
	selectedItem int
	listOffset   int

	saveBtn  [constants.SaveListSize]*Button
	saveDate [constants.SaveListSize]*Text
	saveTime [constants.SaveListSize]*Text
	saveType [constants.SaveListSize]*Text

	scroll *scrollbar
	trigA  *Trigger
}

// NewSaveBrowser builds the row widgets over list. Rows start disabled and
// are bound on the first refresh.
func NewSaveBrowser(width, height int, list *SaveList, action SaveAction, assets SaveBrowserAssets) *SaveBrowser {
	b := &SaveBrowser{
		Base:   newBase(width, height),
		saves:  list,
		action: action,
		labels: DefaultSaveLabels,
		trigA:  NewSimpleTrigger(constants.ChanAny, constants.RemoteSelect, constants.PadButtonA),
	}
	b.selectable = true
	b.focus = FocusInactive
	if action == SaveActionSave {
		b.listOffset = -saveColumns
	}

	b.scroll = newScrollbar(b, assets.Scrollbar, b.trigA)

	rowWidth, rowHeight := saveRowWidth, saveRowHeight
	if assets.Entry != nil {
		rowWidth, rowHeight = assets.Entry.Width(), assets.Entry.Height()
	}

	for i := range b.saveBtn {
		b.saveDate[i] = newSaveLabel(80, 5)
		b.saveTime[i] = newSaveLabel(80, 27)
		b.saveType[i] = newSaveLabel(80, 50)

		preview := NewImage(assets.Preview)
		preview.SetAlignment(constants.AlignLeft, constants.AlignMiddle)
		preview.SetPosition(5, 0)

		btn := NewButton(rowWidth, rowHeight)
		btn.SetParent(b)
		btn.SetLabel(b.saveDate[i], 0)
		btn.SetLabel(b.saveTime[i], 1)
		btn.SetLabel(b.saveType[i], 2)
		btn.SetImage(NewImage(assets.Entry))
		btn.SetImageOver(NewImage(assets.EntryOver))
		btn.SetIcon(preview)
		btn.SetPosition(saveColumnStride*(i%saveColumns), saveRowStride*(i/saveColumns))
		btn.SetTrigger(b.trigA)
		btn.SetSoundOver(assets.HoverSound)
		btn.SetSoundClick(assets.ClickSound)
		btn.SetState(StateDisabled)
		b.saveBtn[i] = btn
	}

	b.refresh(nil)
	return b
}

func newSaveLabel(x, y int) *Text {
	t := NewText("", rowFontSize, rowTextColor)
	t.SetAlignment(constants.AlignLeft, constants.AlignTop)
	t.SetPosition(x, y)
	return t
}

// SetLabels replaces the strings used for synthetic rows and type tags.
func (b *SaveBrowser) SetLabels(l SaveLabels) { b.labels = l }

func (b *SaveBrowser) Action() SaveAction { return b.action }
func (b *SaveBrowser) SelectedItem() int  { return b.selectedItem }
func (b *SaveBrowser) ListOffset() int    { return b.listOffset }

// Row returns the row button at i, or nil.
func (b *SaveBrowser) Row(i int) *Button {
	if i < 0 || i >= len(b.saveBtn) {
		return nil
	}
	return b.saveBtn[i]
}

// EntryIndex maps row i to its position in the save list. Negative values
// are the synthetic new save slots: -2 for SRAM, -1 for a snapshot.
func (b *SaveBrowser) EntryIndex(row int) int {
	return b.listOffset + row
}

func (b *SaveBrowser) SetFocus(f Focus) {
	b.focus = f
	for _, btn := range b.saveBtn {
		btn.ResetState()
	}
	if f == FocusActive && b.bound(b.selectedItem) {
		b.saveBtn[b.selectedItem].SetState(StateSelected)
	}
}

func (b *SaveBrowser) ResetState() {
	b.state = StateDefault
	for _, btn := range b.saveBtn {
		btn.ResetState()
	}
}

// SetState applies s to the browser and to the bound rows. SELECTED and
// CLICKED only reach the current row.
func (b *SaveBrowser) SetState(s State) {
	b.Base.SetState(s)
	for i, btn := range b.saveBtn {
		if !b.bound(i) {
			continue
		}
		if (s == StateSelected || s == StateClicked) && i != b.selectedItem {
			continue
		}
		btn.SetState(s)
	}
}

// GetClickedSave returns the first clicked row, not its list index, and
// puts the row back to SELECTED. It returns -1 when nothing was clicked.
func (b *SaveBrowser) GetClickedSave() int {
	for i, btn := range b.saveBtn {
		if btn.State() == StateClicked {
			btn.SetState(StateSelected)
			return i
		}
	}
	return -1
}

func (b *SaveBrowser) Draw(r Renderer) {
	if !b.visible {
		return
	}

	for _, btn := range b.saveBtn {
		btn.Draw(r)
	}
	b.scroll.draw(r)
}

func (b *SaveBrowser) Update(in *Input) {
	if in == nil || b.state == StateDisabled {
		return
	}

	if n := b.saves.Len(); n > 0 {
		b.scroll.setProgress(constants.ScrollTrackHeight * b.selectedItem / n)
	}

	up, down := b.scroll.update(in)
	switch {
	case up && b.canScrollUp():
		b.listOffset -= saveColumns
	case down && b.listOffset+len(b.saveBtn) < b.saves.Len():
		b.listOffset += saveColumns
	}

	if b.focus == FocusActive {
		b.navigate(in)
	}

	b.refresh(in)
}

func (b *SaveBrowser) canScrollUp() bool {
	return (b.listOffset-2 >= 0 && b.action == SaveActionLoad) ||
		(b.listOffset-2 >= -2 && b.action == SaveActionSave)
}

func (b *SaveBrowser) navigate(in *Input) {
	last := len(b.saveBtn) - 1
	n := b.saves.Len()
	prev := b.selectedItem

	switch {
	case in.Pressed(constants.RemoteNavRight, constants.PadButtonRight):
		if b.selectedItem == last {
			if b.listOffset+len(b.saveBtn) < n {
				b.listOffset += 2
				b.selectedItem++
			}
		} else if b.saveBtn[b.selectedItem+1].IsVisible() {
			b.moveRow(b.selectedItem + 1)
		}
	case in.Pressed(constants.RemoteNavLeft, constants.PadButtonLeft):
		if b.selectedItem == 0 {
			if b.canScrollUp() {
				b.listOffset -= 2
				b.selectedItem--
			}
		} else {
			b.moveRow(b.selectedItem - 1)
		}
	case in.Pressed(constants.RemoteNavDown, constants.PadButtonDown):
		if b.selectedItem >= last-1 {
			if b.listOffset+len(b.saveBtn)+1 < n {
				b.listOffset += 2
				b.selectedItem += 2
			} else if b.listOffset+len(b.saveBtn) < n {
				b.listOffset += 2
				b.selectedItem++
			}
		} else if b.saveBtn[b.selectedItem+2].IsVisible() {
			b.moveRow(b.selectedItem + 2)
		}
	case in.Pressed(constants.RemoteNavUp, constants.PadButtonUp):
		if b.selectedItem < 2 {
			if b.canScrollUp() {
				b.listOffset -= 2
				b.selectedItem -= 2
			}
		} else {
			b.moveRow(b.selectedItem - 2)
		}
	}

	b.selectedItem = max(0, min(b.selectedItem, last))

	// An edge scroll can leave the cursor past the end of a short list.
	if !b.bound(b.selectedItem) {
		for row := last; row >= 0; row-- {
			if b.bound(row) {
				b.selectedItem = prev
				b.moveRow(row)
				break
			}
		}
	}
}

func (b *SaveBrowser) moveRow(to int) {
	b.saveBtn[b.selectedItem].ResetState()
	b.saveBtn[to].SetState(StateSelected)
	b.selectedItem = to
}

func (b *SaveBrowser) bound(row int) bool {
	idx := b.listOffset + row
	if idx < 0 {
		return b.action == SaveActionSave
	}
	return idx < b.saves.Len()
}

// refresh rebinds every row to the window starting at listOffset, hides and
// disables rows past the end, then updates each row.
func (b *SaveBrowser) refresh(in *Input) {
	for i, btn := range b.saveBtn {
		idx := b.listOffset + i

		switch {
		case idx < 0 && b.action == SaveActionSave:
			b.enable(btn)
			b.saveDate[i].SetText("")
			b.saveType[i].SetText("")
			if idx == -2 {
				b.saveTime[i].SetText(b.labels.NewSRAM)
			} else {
				b.saveTime[i].SetText(b.labels.NewSnapshot)
			}
		case idx >= 0 && idx < b.saves.Len():
			b.enable(btn)
			entry := b.saves.Files[idx]
			b.saveDate[i].SetText(entry.Date)
			b.saveTime[i].SetText(entry.Time)
			b.saveType[i].SetText(b.labels.TypeLabel(entry))
		default:
			btn.SetVisible(false)
			btn.SetState(StateDisabled)
		}

		btn.Update(in)

		if btn.State() == StateSelected {
			b.selectedItem = i
		}
	}
}

func (b *SaveBrowser) enable(btn *Button) {
	if btn.State() == StateDisabled {
		btn.SetVisible(true)
		btn.ResetState()
	}
}
