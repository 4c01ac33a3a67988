// Package host runs gxgui widget trees on SDL2. It owns the window, the
// input devices and the audio device, and drives one frame per Step.
package host

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/gxgui/pkg/gxgui"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/constants"
	"github.com/BrandonKowalski/gxgui/pkg/gxgui/internal"
)

// WindowOptions selects the SDL window flags.
type WindowOptions = internal.WindowOptions

// Options configures Init.
type Options struct {
	Title          string        // Window title displayed in windowed mode
	WindowOptions  WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	LogPath        string        // Log file path; stdout only when empty
	LogLevel       string        // "debug", "info", "warn" or "error"
	MappingPath    string        // Input mapping TOML; built in mapping when empty
	ThemePath      string        // Theme TOML; default theme when empty
	EvdevPath      string        // Raw key device merged into channel 0 (Linux)
	RepeatDelay    time.Duration // Held direction delay before the first repeat
	RepeatInterval time.Duration // Held direction delay between repeats
}

type backend struct {
	window   *internal.Window
	fonts    *internal.Fonts
	renderer *internal.SDLRenderer
	mixer    *internal.Mixer
	input    *internal.InputProcessor
	rumble   *internal.RumbleSink
	keys     *internal.KeySource
}

var current *backend

// Init opens the window and the input and audio devices. It must be called
// before Step, and paired with Close.
func Init(opts Options) error {
	if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		level := internal.ParseLevel(opts.LogLevel)
		internal.SetLogLevel(level)
		internal.SetInternalLogLevel(level)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	gxgui.SetLogger(internal.GetInternalLogger())

	mapping := internal.DefaultMapping()
	if opts.MappingPath != "" {
		m, err := internal.LoadMapping(opts.MappingPath)
		if err != nil {
			return err
		}
		mapping = m
	}
	internal.SetMapping(mapping)

	if opts.ThemePath != "" {
		theme, err := internal.LoadTheme(opts.ThemePath)
		if err != nil {
			return err
		}
		internal.SetTheme(theme)
	}

	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = constants.DefaultRepeatDelay
	}
	if opts.RepeatInterval <= 0 {
		opts.RepeatInterval = constants.DefaultRepeatInterval
	}

	if err := internal.InitSDL(); err != nil {
		return err
	}

	if opts.WindowOptions.IsZero() {
		opts.WindowOptions = internal.WindowOptions{Resizable: true}
	}
	window, err := internal.OpenWindow(opts.Title, opts.WindowOptions)
	if err != nil {
		internal.QuitSDL()
		return err
	}

	b := &backend{
		window: window,
		fonts:  internal.NewFonts(internal.GetTheme().FontPath),
		rumble: internal.NewRumbleSink(constants.RumbleDuration),
		input:  internal.NewInputProcessor(mapping, opts.RepeatDelay, opts.RepeatInterval),
	}
	b.renderer = internal.NewSDLRenderer(window.Renderer, b.fonts)
	b.input.SetRumbleSink(b.rumble)

	if mixer, err := internal.OpenMixer(); err != nil {
		internal.GetInternalLogger().Warn("Audio disabled", "error", err)
	} else {
		b.mixer = mixer
	}

	if opts.EvdevPath != "" && !constants.IsDevMode() {
		keys, err := internal.OpenKeySource(opts.EvdevPath, mapping.Evdev)
		if err != nil {
			internal.GetInternalLogger().Warn("Key device disabled", "path", opts.EvdevPath, "error", err)
		} else {
			b.keys = keys
			b.input.SetKeySource(keys)
		}
	}

	current = b
	return nil
}

// Close releases every device opened by Init.
func Close() {
	b := current
	if b == nil {
		return
	}
	current = nil

	if b.keys != nil {
		b.keys.Close()
	}
	b.input.Close()
	b.mixer.Close()
	b.renderer.Purge()
	b.fonts.Close()
	b.window.Close()
	internal.QuitSDL()
	internal.CloseLogger()
}

// Speaker returns the audio sink for widget sounds. It is silent when no
// audio device could be opened.
func Speaker() gxgui.Speaker {
	if current == nil || current.mixer == nil {
		return nil
	}
	return current.mixer
}

// ScreenSize returns the logical size of the window.
func ScreenSize() (int, int) {
	if current == nil {
		return 0, 0
	}
	return int(current.window.Width()), int(current.window.Height())
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
