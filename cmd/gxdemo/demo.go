package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/host"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/i18n"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/router"
)

const (
	MenuOptions router.Menu = iota
	MenuSaves
)

// Entries of the options menu. The blank entry is a visual gap.
const (
	entryLoad = iota
	entrySave
	entryGap
	entryRumble
	entryScaling
	entryExit
)

type menuRunners struct {
	options func(ctx context.Context, title string, list *gxgui.OptionList, view *host.OptionMenuView) (*host.OptionMenuResult, error)
	saves   func(ctx context.Context, settings host.SaveMenuSettings, list *gxgui.SaveList) (*host.SaveMenuResult, error)
}

type demo struct {
	catalog  *i18n.Catalog
	lang     string
	savesDir string
	options  *gxgui.OptionList
}

func newDemo(catalog *i18n.Catalog, lang, savesDir string) *demo {
	return &demo{
		catalog:  catalog,
		lang:     lang,
		savesDir: savesDir,
		options: &gxgui.OptionList{
			Name:  []string{"Load State", "Save State", "", "Rumble", "Scaling", "Exit"},
			Value: []string{"", "", "", "On", "Original", ""},
		},
	}
}

var toggles = map[int][]string{
	entryRumble:  {"On", "Off"},
	entryScaling: {"Original", "Fit", "Stretch"},
}

// cycle advances the value of a toggle entry.
func (d *demo) cycle(index int) {
	values, ok := toggles[index]
	if !ok {
		return
	}
	i := slices.Index(values, d.options.Value[index])
	d.options.Value[index] = values[(i+1)%len(values)]
}

func (d *demo) router(run menuRunners) *router.Router {
	r := router.New().WithLogger(host.GetLogger())

	// The options menu takes the view it should reopen at, if any.
	r.Register(MenuOptions, func(ctx context.Context, input any) (any, error) {
		view, _ := input.(*host.OptionMenuView)
		return run.options(ctx, d.catalog.Localize(i18n.MsgOptionsTitle, d.lang), d.options, view)
	})

	r.Register(MenuSaves, func(ctx context.Context, input any) (any, error) {
		action := input.(gxgui.SaveAction)
		list, err := scanSaves(d.savesDir)
		if err != nil {
			return nil, err
		}

		title := i18n.MsgSavesLoadTitle
		if action == gxgui.SaveActionSave {
			title = i18n.MsgSavesSaveTitle
		}
		return run.saves(ctx, host.SaveMenuSettings{
			Title:     d.catalog.Localize(title, d.lang),
			Action:    action,
			Labels:    d.catalog.SaveLabels(d.lang),
			EmptyText: d.catalog.Localize(i18n.MsgNoSaves, d.lang),
		}, list)
	})

	r.OnTransition(d.transition)
	return r
}

func (d *demo) transition(from router.Menu, result any, stack *router.Stack) (router.Menu, any) {
	switch from {
	case MenuOptions:
		res, ok := result.(*host.OptionMenuResult)
		if !ok {
			return router.MenuExit, nil
		}
		switch res.Index {
		case entryLoad:
			stack.Push(MenuOptions, nil, &res.View)
			return MenuSaves, gxgui.SaveActionLoad
		case entrySave:
			stack.Push(MenuOptions, nil, &res.View)
			return MenuSaves, gxgui.SaveActionSave
		case entryExit:
			return router.MenuExit, nil
		default:
			d.cycle(res.Index)
			host.GetLogger().Info("Option changed", "name", res.Name, "value", d.options.Value[res.Index])
			return MenuOptions, &res.View
		}

	case MenuSaves:
		if res, ok := result.(*host.SaveMenuResult); ok {
			host.GetLogger().Info("Save slot chosen", "index", res.Index, "new", res.New, "type", res.Type.String(), "file", res.Entry.Filename)
		}
		if entry := stack.Pop(); entry != nil {
			return entry.Menu, entry.Resume
		}
		return MenuOptions, nil
	}

	return router.MenuExit, nil
}

// scanSaves lists the .srm (SRAM) and .gcs (snapshot) files in dir, using
// the modification time for the date and time columns.
func scanSaves(dir string) (*gxgui.SaveList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read saves %s: %w", dir, err)
	}

	list := &gxgui.SaveList{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		var t gxgui.SaveType
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".srm":
			t = gxgui.SaveSRAM
		case ".gcs":
			t = gxgui.SaveSnapshot
		default:
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		mod := info.ModTime()
		list.Files = append(list.Files, gxgui.SaveEntry{
			Filename: e.Name(),
			Date:     mod.Format("01/02/06"),
			Time:     mod.Format("15:04"),
			Type:     t,
		})
	}
	return list, nil
}
