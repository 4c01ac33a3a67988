package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
)

// InitSDL starts the SDL subsystems the backend uses.
func InitSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return gxgui.NewInfrastructureError("init_sdl", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("Image codecs unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return gxgui.NewInfrastructureError("init_ttf", err)
	}

	return nil
}

// QuitSDL shuts the subsystems down in reverse order.
func QuitSDL() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
