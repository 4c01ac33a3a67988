package gxgui_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
)

func saves(n int) *gxgui.SaveList {
	list := &gxgui.SaveList{}
	for i := range n {
		list.Files = append(list.Files, gxgui.SaveEntry{
			Filename: fmt.Sprintf("Game %d.srm", i),
			Date:     fmt.Sprintf("2009-02-%02d", i+1),
			Time:     "12:00",
			Type:     gxgui.SaveSRAM,
		})
	}
	return list
}

func newSaveBrowser(list *gxgui.SaveList, action gxgui.SaveAction) *gxgui.SaveBrowser {
	return gxgui.NewSaveBrowser(494, 248, list, action, gxgui.SaveBrowserAssets{})
}

func TestSaveBrowserSaveMode(t *testing.T) {
	b := newSaveBrowser(saves(3), gxgui.SaveActionSave)
	require.Equal(t, -2, b.ListOffset())

	assert.Equal(t, "New SRAM", b.Row(0).Label(1).Text())
	assert.Equal(t, "New Snapshot", b.Row(1).Label(1).Text())
	assert.Empty(t, b.Row(0).Label(0).Text())
	assert.Equal(t, "2009-02-01", b.Row(2).Label(0).Text())
	assert.Equal(t, -2, b.EntryIndex(0))
	assert.Equal(t, 2, b.EntryIndex(4))

	b.SetFocus(gxgui.FocusActive)
	b.Update(down)
	assert.Equal(t, 2, b.SelectedItem())
	b.Update(down)

	// Two rows down from the first synthetic slot lands on the last save
	// without scrolling. The list only advances when DOWN is pressed on the
	// bottom row pair, so the window stays at -2 rather than 0.
	assert.Equal(t, -2, b.ListOffset())
	assert.Equal(t, 4, b.SelectedItem())

	last := b.Row(5)
	assert.Equal(t, gxgui.StateDisabled, last.State())
	assert.False(t, last.IsVisible())

	t.Run("down at the bottom of a short list", func(t *testing.T) {
		b.Update(down)
		assert.Equal(t, -2, b.ListOffset())
		assert.Equal(t, 4, b.SelectedItem())
	})

	t.Run("up returns to the synthetic rows", func(t *testing.T) {
		b.Update(up)
		b.Update(up)
		assert.Equal(t, 0, b.SelectedItem())
		b.Update(up)
		assert.Equal(t, -2, b.ListOffset(), "cannot scroll above the synthetic rows")
	})
}

func TestSaveBrowserLoadMode(t *testing.T) {
	b := newSaveBrowser(saves(8), gxgui.SaveActionLoad)
	require.Equal(t, 0, b.ListOffset())
	b.SetFocus(gxgui.FocusActive)

	for range constants.SaveListSize - 1 {
		b.Update(right)
	}
	require.Equal(t, 5, b.SelectedItem())

	b.Update(right)
	assert.Equal(t, 2, b.ListOffset())
	assert.Equal(t, 5, b.SelectedItem())
	assert.Equal(t, 7, b.EntryIndex(b.SelectedItem()))
	assert.Equal(t, "2009-02-08", b.Row(5).Label(0).Text())

	b.Update(right)
	assert.Equal(t, 2, b.ListOffset(), "no more saves to the right")

	t.Run("left scrolls back from the first row", func(t *testing.T) {
		for range constants.SaveListSize - 1 {
			b.Update(left)
		}
		require.Equal(t, 0, b.SelectedItem())

		b.Update(left)
		assert.Equal(t, 0, b.ListOffset())

		b.Update(left)
		assert.Equal(t, 0, b.ListOffset(), "load mode never goes negative")
	})
}

func TestSaveBrowserDownAdvance(t *testing.T) {
	t.Run("advances two when a full row remains", func(t *testing.T) {
		b := newSaveBrowser(saves(8), gxgui.SaveActionLoad)
		b.SetFocus(gxgui.FocusActive)
		b.Update(down)
		b.Update(down)
		require.Equal(t, 4, b.SelectedItem())

		b.Update(down)
		assert.Equal(t, 2, b.ListOffset())
	})

	t.Run("advances one when a single save remains", func(t *testing.T) {
		b := newSaveBrowser(saves(7), gxgui.SaveActionLoad)
		b.SetFocus(gxgui.FocusActive)
		b.Update(right)
		b.Update(down)
		b.Update(down)
		require.Equal(t, 5, b.SelectedItem())

		b.Update(down)
		assert.Equal(t, 2, b.ListOffset())
		assert.False(t, b.Row(5).IsVisible())
	})

	t.Run("keeps a selectable row after scrolling past the end", func(t *testing.T) {
		b := newSaveBrowser(saves(7), gxgui.SaveActionLoad)
		b.SetFocus(gxgui.FocusActive)
		b.Update(right)
		b.Update(down)
		b.Update(down)
		b.Update(down)

		require.Equal(t, 2, b.ListOffset())
		assert.Equal(t, 4, b.SelectedItem())
		assert.Equal(t, gxgui.StateSelected, b.Row(4).State())
		assert.Equal(t, gxgui.StateDisabled, b.Row(5).State())

		b.Update(press)
		row := b.GetClickedSave()
		assert.Equal(t, 4, row)
		assert.Equal(t, 6, b.EntryIndex(row))
	})
}

func TestSaveBrowserTypeLabel(t *testing.T) {
	list := &gxgui.SaveList{Files: []gxgui.SaveEntry{
		{Filename: "Zelda Auto.srm", Type: gxgui.SaveSRAM},
		{Filename: "Zelda Auto.frz", Type: gxgui.SaveSnapshot},
		{Filename: "Zelda 1.frz", Type: gxgui.SaveSnapshot},
		{Filename: "A Auto.srm", Type: gxgui.SaveSRAM},
	}}
	b := newSaveBrowser(list, gxgui.SaveActionLoad)

	assert.Equal(t, "SRAM (Auto)", b.Row(0).Label(2).Text())
	assert.Equal(t, "Snapshot (Auto)", b.Row(1).Label(2).Text())
	assert.Equal(t, "Snapshot", b.Row(2).Label(2).Text())
	assert.Equal(t, "SRAM", b.Row(3).Label(2).Text(), "name too short to be an auto save")
}

func TestSaveBrowserLabels(t *testing.T) {
	b := newSaveBrowser(saves(1), gxgui.SaveActionSave)
	labels := gxgui.DefaultSaveLabels
	labels.NewSRAM = "Nouvelle SRAM"
	b.SetLabels(labels)

	b.Update(frame())
	assert.Equal(t, "Nouvelle SRAM", b.Row(0).Label(1).Text())
}

func TestGetClickedSave(t *testing.T) {
	b := newSaveBrowser(saves(3), gxgui.SaveActionSave)
	b.SetFocus(gxgui.FocusActive)
	b.Update(right)
	b.Update(press)

	row := b.GetClickedSave()
	assert.Equal(t, 1, row)
	assert.Equal(t, -1, b.EntryIndex(row))
	assert.Equal(t, gxgui.StateSelected, b.Row(1).State())
	assert.Equal(t, -1, b.GetClickedSave())
}

func TestSaveBrowserEmpty(t *testing.T) {
	b := newSaveBrowser(&gxgui.SaveList{}, gxgui.SaveActionLoad)
	b.SetFocus(gxgui.FocusActive)
	b.Update(down)

	for i := range constants.SaveListSize {
		assert.Equal(t, gxgui.StateDisabled, b.Row(i).State())
	}
	assert.Equal(t, -1, b.GetClickedSave())
}

func TestSaveBrowserScrollbar(t *testing.T) {
	box := solid(10, 10)
	b := gxgui.NewSaveBrowser(494, 248, saves(3), gxgui.SaveActionSave, gxgui.SaveBrowserAssets{
		Scrollbar: gxgui.ScrollbarAssets{Box: box},
	})
	b.SetFocus(gxgui.FocusActive)

	boxTop := func() int {
		r := &fakeRenderer{}
		b.Draw(r)
		drawn := r.imagesOf(box)
		require.Len(t, drawn, 1)
		return drawn[0].y
	}

	b.Update(frame())
	assert.Equal(t, 36, boxTop())

	b.Update(down)
	b.Update(frame())
	assert.Equal(t, 144*2/3+36, boxTop())
}
