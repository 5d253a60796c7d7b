// Package edit defines the editor-plugin contract by which field types (text,
// textarea, select, checkbox, and host-defined types) provide in-place
// editing, together with the registry these editor variants are selected
// from.
package edit

import (
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

// An Editor is a per-type implementation of in-place editing of a field.
//
// One Editor instance belongs to exactly one edit session; any state a
// variant needs across the four calls (widget handles, choice lists, ...) is
// held on the instance.
//
// All four capabilities have suitable defaults for a single-line text field
// in Base; variants embed Base and override what differs.
type Editor interface {
	// MakeField constructs the edit form for the given field and resolved
	// initial data.
	// It must not itself attach submit or cancel triggers; that is the
	// session controller's job after insertion.
	MakeField(field *page.Field, data Data) (*widget.Form, error)

	// Activate is invoked after the form has been inserted into the live
	// page. It is responsible for focus management and for wiring
	// type-specific interaction events.
	Activate(form *widget.Form)

	// Value returns the value to transmit to the submit endpoint.
	Value() string

	// DisplayValue converts the submit endpoint's reply into the text shown
	// once editing ends.
	DisplayValue(response string) string
}

// Base is the default Editor implementation: a plain single-line text field.
//
// Its field input is exported so that embedding variants (and tests) can
// reach the widget it spans.
type Base struct {
	Input *widget.TextField
}

// MakeField constructs a single-line text form with the raw data as initial
// content.
func (e *Base) MakeField(field *page.Field, data Data) (*widget.Form, error) {
	e.Input = widget.NewTextField(data.Raw)
	return widget.NewForm(e.Input), nil
}

// Activate focusses and selects the text field and arms blur as a submit
// trigger.
func (e *Base) Activate(form *widget.Form) {
	form.FocusPrimary()
	e.Input.SelectAll()
	form.ArmBlurSubmit()
}

// Value returns the text field's current content.
func (e *Base) Value() string { return e.Input.Content() }

// DisplayValue passes the response through unchanged.
func (e *Base) DisplayValue(response string) string { return response }
