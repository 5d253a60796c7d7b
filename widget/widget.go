// Package widget provides the widgets from which edit forms are built: a form
// container with optional OK/Cancel buttons and the input widgets editor
// variants place inside it (text field, text area, select, checkbox).
package widget

import (
	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// Widget is a UI element of an edit form.
type Widget interface {
	// Draw draws this widget at the given location with the given width.
	Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet, focussed bool)

	// HandleKey attempts to process the provided input.
	// Returns whether the input "applied", i.E. the widget performed an
	// action based on it.
	HandleKey(k input.Key) bool

	// Height returns the current height of this widget in terminal rows.
	Height() int
}

// Clickable is a widget that reacts to a mouse click at a position (relative
// to the widget's origin).
type Clickable interface {
	Click(x, y int)
}
