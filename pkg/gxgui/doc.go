// Package gxgui is a retained-mode widget toolkit for controller driven
// console style applications.
//
// A host builds a tree of elements rooted at a Window, then once per frame
// hands each controller channel's Input snapshot to the root's Update and
// calls Draw with a Renderer. Widgets never poll devices and never draw
// pixels themselves: input arrives as button masks and pointer positions,
// output leaves through the Renderer and Speaker contracts and through the
// Feedback carried by the snapshot.
//
// The widget set is closed: Window, Button, Image, Text, OptionBrowser and
// SaveBrowser all embed Base and satisfy Element.
package gxgui
