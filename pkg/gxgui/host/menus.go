package host

import (
	"context"
	"image/color"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/internal"
)

const (
	titleFontSize = 28
	titleTop      = 40
	browserTop    = 100

	optionBrowserWidth  = 552
	optionBrowserHeight = 248
	saveBrowserWidth    = 520
	saveBrowserHeight   = 261
)

var titleColor = color.RGBA{A: 0xFF}

// OptionMenuView is the scroll position of an option menu. Pass it back to
// OptionMenu to reopen the menu where the user left it.
type OptionMenuView struct {
	ListOffset int // First shown entry
	Row        int // Selected row
}

// OptionMenuResult is the entry the user clicked.
type OptionMenuResult struct {
	Index int // Logical index into the OptionList
	Name  string
	Value string
	View  OptionMenuView
}

// SaveMenuResult is the save slot the user clicked. In save mode the two
// synthetic rows come back with New set and Index -2 (SRAM) or -1
// (snapshot).
type SaveMenuResult struct {
	Index int
	New   bool
	Type  gxgui.SaveType
	Entry gxgui.SaveEntry // Zero for new saves
}

// SaveMenuSettings configures SaveMenu.
type SaveMenuSettings struct {
	Title     string
	Action    gxgui.SaveAction
	Labels    gxgui.SaveLabels // DefaultSaveLabels when zero
	EmptyText string           // Shown in load mode when there is nothing to load
}

// screen is a full window tree with a title and a hidden back button
// bound to B.
type screen struct {
	root  *gxgui.Window
	title *gxgui.Text
	back  *gxgui.Button
}

func newScreen(width, height int, title string) *screen {
	s := &screen{root: gxgui.NewWindow(width, height)}

	s.title = gxgui.NewText(title, titleFontSize, titleColor)
	s.title.SetAlignment(constants.AlignCenter, constants.AlignTop)
	s.title.SetPosition(0, titleTop)
	s.root.Append(s.title)

	s.back = gxgui.NewButton(0, 0)
	s.back.SetSelectable(false)
	s.back.SetTrigger(gxgui.NewButtonOnlyTrigger(constants.ChanAny, constants.RemoteBack, constants.PadButtonB))
	s.root.Append(s.back)

	return s
}

func (s *screen) cancelled() bool {
	return s.back.State() == gxgui.StateClicked
}

func (s *screen) place(e interface {
	gxgui.Element
	SetAlignment(hor, vert constants.Align)
	SetPosition(x, y int)
}) {
	e.SetAlignment(constants.AlignCenter, constants.AlignTop)
	e.SetPosition(0, browserTop)
	s.root.Append(e)
}

type optionScreen struct {
	*screen
	list    *gxgui.OptionList
	browser *gxgui.OptionBrowser
}

func newOptionScreen(width, height int, title string, list *gxgui.OptionList, view *OptionMenuView, assets gxgui.OptionBrowserAssets) *optionScreen {
	s := &optionScreen{screen: newScreen(width, height, title), list: list}
	s.browser = gxgui.NewOptionBrowser(optionBrowserWidth, optionBrowserHeight, list, assets)
	if view != nil {
		s.browser.SetListOffset(view.ListOffset)
		s.browser.SetSelectedItem(view.Row)
	}
	s.place(s.browser)
	return s
}

// outcome reports whether the screen is finished, and with what.
func (s *optionScreen) outcome() (*OptionMenuResult, bool, error) {
	if s.cancelled() {
		return nil, true, gxgui.ErrCancelled
	}
	idx := s.browser.GetClickedOption()
	if idx < 0 {
		return nil, false, nil
	}
	name, value, _ := s.list.Entry(idx)
	return &OptionMenuResult{
		Index: idx,
		Name:  name,
		Value: value,
		View:  OptionMenuView{ListOffset: s.browser.ListOffset(), Row: s.browser.SelectedItem()},
	}, true, nil
}

type saveScreen struct {
	*screen
	list    *gxgui.SaveList
	browser *gxgui.SaveBrowser
	empty   *gxgui.Text
}

func newSaveScreen(width, height int, settings SaveMenuSettings, list *gxgui.SaveList, assets gxgui.SaveBrowserAssets) *saveScreen {
	s := &saveScreen{screen: newScreen(width, height, settings.Title), list: list}

	s.browser = gxgui.NewSaveBrowser(saveBrowserWidth, saveBrowserHeight, list, settings.Action, assets)
	if settings.Labels != (gxgui.SaveLabels{}) {
		s.browser.SetLabels(settings.Labels)
	}
	s.place(s.browser)

	if settings.Action == gxgui.SaveActionLoad && list.Len() == 0 && settings.EmptyText != "" {
		s.empty = gxgui.NewText(settings.EmptyText, gxgui.DefaultFontSize, titleColor)
		s.empty.SetAlignment(constants.AlignCenter, constants.AlignMiddle)
		s.root.Append(s.empty)
	}
	return s
}

func (s *saveScreen) outcome() (*SaveMenuResult, bool, error) {
	if s.cancelled() {
		return nil, true, gxgui.ErrCancelled
	}
	row := s.browser.GetClickedSave()
	if row < 0 {
		return nil, false, nil
	}

	idx := s.browser.EntryIndex(row)
	switch {
	case idx == -2:
		return &SaveMenuResult{Index: idx, New: true, Type: gxgui.SaveSRAM}, true, nil
	case idx == -1:
		return &SaveMenuResult{Index: idx, New: true, Type: gxgui.SaveSnapshot}, true, nil
	case idx >= 0 && idx < s.list.Len():
		e := s.list.Files[idx]
		return &SaveMenuResult{Index: idx, Type: e.Type, Entry: e}, true, nil
	}
	return nil, false, nil
}

// OptionMenu shows list until an entry is clicked. It blocks, and returns
// gxgui.ErrCancelled when the user backs out. A non-nil view reopens the
// menu at that scroll position.
func OptionMenu(ctx context.Context, title string, list *gxgui.OptionList, view *OptionMenuView) (*OptionMenuResult, error) {
	assets, err := internal.DefaultOptionBrowserAssets(Speaker())
	if err != nil {
		return nil, gxgui.NewInfrastructureError("option_assets", err)
	}

	w, h := ScreenSize()
	s := newOptionScreen(w, h, title, list, view, assets)

	var result *OptionMenuResult
	var menuErr error
	err = Run(ctx, s.root, func() bool {
		var done bool
		result, done, menuErr = s.outcome()
		return done
	})
	if err != nil {
		return nil, err
	}
	if menuErr != nil {
		return nil, menuErr
	}

	internal.GetInternalLogger().Debug("Option selected", "index", result.Index, "name", result.Name)
	return result, nil
}

// SaveMenu shows list in a save browser until a slot is clicked. It
// blocks, and returns gxgui.ErrCancelled when the user backs out.
func SaveMenu(ctx context.Context, settings SaveMenuSettings, list *gxgui.SaveList) (*SaveMenuResult, error) {
	assets, err := internal.DefaultSaveBrowserAssets(Speaker())
	if err != nil {
		return nil, gxgui.NewInfrastructureError("save_assets", err)
	}

	w, h := ScreenSize()
	s := newSaveScreen(w, h, settings, list, assets)

	var result *SaveMenuResult
	var menuErr error
	err = Run(ctx, s.root, func() bool {
		var done bool
		result, done, menuErr = s.outcome()
		return done
	})
	if err != nil {
		return nil, err
	}
	if menuErr != nil {
		return nil, menuErr
	}

	internal.GetInternalLogger().Debug("Save slot selected", "index", result.Index, "new", result.New)
	return result, nil
}
