package internal

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
	frameMillis     = 16
)

// WindowOptions selects the SDL window flags.
type WindowOptions struct {
	Borderless        bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable         bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen        bool // Fullscreen mode (SDL_WINDOW_FULLSCREEN)
	FullscreenDesktop bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	Hidden            bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}
	if wo.FullscreenDesktop {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

// Window owns the SDL window, its renderer and the optional themed
// background.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

// devSize returns the window size used in dev mode, honouring
// WINDOW_WIDTH and WINDOW_HEIGHT.
func devSize() (int32, int32) {
	return envDimension(constants.WindowWidthEnvVar, devWindowWidth),
		envDimension(constants.WindowHeightEnvVar, devWindowHeight)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// OpenWindow creates the window at the display size, or at the dev size
// when ENVIRONMENT=DEV.
func OpenWindow(title string, winOpts WindowOptions) (*Window, error) {
	x, y := int32(0), int32(0)
	var width, height int32

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false
		x, y = 50, 50
		width, height = devSize()
	} else {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			return nil, gxgui.NewInfrastructureError("display_mode", err)
		}
		width, height = mode.W, mode.H
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, gxgui.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, gxgui.NewInfrastructureError("create_renderer", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}
	win.loadBackground()

	return win, nil
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}

	bg, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Unable to load background image", "path", path, "error", err)
		return
	}
	w.Background = bg
}

func (w *Window) Width() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) Height() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear paints the theme background color, then the background image if
// one was loaded.
func (w *Window) Clear() {
	c := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()

	if w.Background != nil {
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: w.Width(), H: w.Height()})
	}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frameMillis {
			sdl.Delay(uint32(frameMillis - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the background, the renderer and the window.
func (w *Window) Close() {
	if w.Background != nil {
		w.Background.Destroy()
		w.Background = nil
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
