// Package internal is the SDL2 backend for gxgui: window and renderer
// setup, the Renderer and Speaker implementations, controller polling into
// per channel Input snapshots, rumble, held-direction repeat, input
// mapping and theme files, embedded SVG assets and logging.
// Types and functions in this package are not part of the public API.
package internal
