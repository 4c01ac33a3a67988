package gxgui

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes widget debug output (focus changes, clicks) to l.
// A nil logger restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
