// Package ui defines the rendering interfaces by which widgets and panes draw
// themselves, independent of the concrete terminal backend.
package ui

import (
	"fmt"

	"github.com/ja-he/inplace/styling"
)

// Renderer is anything that can draw boxes and text.
type Renderer interface {
	// DrawBox draws a box of the indicated dimensions at the indicated
	// location, limited to the constraint (bounding box) of the renderer.
	DrawBox(x, y, w, h int, style styling.DrawStyling)

	// DrawText draws text within the box described by the given coordinates
	// and dimensions, limited to the constraint (bounding box) of the
	// renderer.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer constrained to certain dimensions, i.E.
// it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a
// terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is a position of the text cursor on the x-y-plane, origin
// 0,0 in the top left.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
