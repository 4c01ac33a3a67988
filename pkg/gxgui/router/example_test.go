package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/router"
)

const (
	MenuSettings router.Menu = iota
	MenuSaves
)

type SettingsInput struct {
	Resume *BrowserResume
}

type SettingsResult struct {
	Chosen int
	Resume *BrowserResume
}

type SavesInput struct {
	Action gxgui.SaveAction
}

type SavesResult struct {
	Row int
}

// BrowserResume is the scroll position of a list browser.
type BrowserResume struct {
	ListOffset   int
	SelectedItem int
}

// Example walks settings -> saves -> back to settings -> exit.
func Example() {
	r := router.New()

	settingsCalls := 0

	r.Register(MenuSettings, func(_ context.Context, input any) (any, error) {
		in := input.(SettingsInput)
		settingsCalls++

		if settingsCalls == 1 {
			fmt.Println("Settings: choosing option 3")
			return SettingsResult{Chosen: 3, Resume: &BrowserResume{ListOffset: 1, SelectedItem: 2}}, nil
		}
		fmt.Printf("Settings: restored offset %d row %d, backing out\n", in.Resume.ListOffset, in.Resume.SelectedItem)
		return nil, gxgui.ErrCancelled
	})

	r.Register(MenuSaves, func(_ context.Context, input any) (any, error) {
		in := input.(SavesInput)
		fmt.Printf("Saves: %s mode, going back\n", in.Action)
		return nil, gxgui.ErrCancelled
	})

	r.OnTransition(func(from router.Menu, result any, stack *router.Stack) (router.Menu, any) {
		switch from {
		case MenuSettings:
			if _, back := result.(router.Back); back {
				return router.MenuExit, nil
			}
			res := result.(SettingsResult)
			stack.Push(from, SettingsInput{}, res.Resume)
			return MenuSaves, SavesInput{Action: gxgui.SaveActionSave}

		case MenuSaves:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(SettingsInput)
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*BrowserResume)
				}
				return entry.Menu, in
			}
		}
		return router.MenuExit, nil
	})

	_ = r.Run(context.Background(), MenuSettings, SettingsInput{})

	// Output:
	// Settings: choosing option 3
	// Saves: save mode, going back
	// Settings: restored offset 1 row 2, backing out
}

// Example_saveSelection shows a menu result that carries a clicked row.
func Example_saveSelection() {
	r := router.New()

	r.Register(MenuSaves, func(_ context.Context, _ any) (any, error) {
		return SavesResult{Row: 4}, nil
	})

	r.OnTransition(func(from router.Menu, result any, _ *router.Stack) (router.Menu, any) {
		if res, ok := result.(SavesResult); ok {
			fmt.Printf("Loading save at row %d\n", res.Row)
		}
		return router.MenuExit, nil
	})

	_ = r.Run(context.Background(), MenuSaves, SavesInput{Action: gxgui.SaveActionLoad})

	// Output:
	// Loading save at row 4
}
