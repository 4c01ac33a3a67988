// Package router runs menus one after another with explicit data flow.
//
// Each menu is a function that builds its widget tree, runs frames until it
// has an answer, and returns a result. A single transition function decides
// which menu runs next, and a stack keeps the input and resume state (list
// offset, selected row) of menus the user may come back to.
//
// # Basic Usage
//
//	const (
//	    MenuSettings router.Menu = iota
//	    MenuSaves
//	)
//
//	r := router.New()
//
//	r.Register(MenuSettings, func(ctx context.Context, input any) (any, error) {
//	    in := input.(SettingsInput)
//	    return runSettings(ctx, in)
//	})
//
//	r.OnTransition(func(from router.Menu, result any, stack *router.Stack) (router.Menu, any) {
//	    switch from {
//	    case MenuSettings:
//	        if _, back := result.(router.Back); back {
//	            return router.MenuExit, nil
//	        }
//	        res := result.(SettingsResult)
//	        stack.Push(from, SettingsInput{}, res.Resume)
//	        return MenuSaves, SavesInput{Action: res.Action}
//	    case MenuSaves:
//	        entry := stack.Pop()
//	        if entry == nil {
//	            return router.MenuExit, nil
//	        }
//	        in := entry.Input.(SettingsInput)
//	        in.Resume = entry.Resume.(*BrowserResume)
//	        return entry.Menu, in
//	    }
//	    return router.MenuExit, nil
//	})
//
//	err := r.Run(ctx, MenuSettings, SettingsInput{})
//
// # Backing Out
//
// A menu that returns an error matching gxgui.ErrCancelled has not failed:
// the user pressed back. The router hands the transition function a Back
// result instead of aborting, so going back is routed in the same place as
// going forward.
package router
