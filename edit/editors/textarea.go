package editors

import (
	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

// TextareaEditor edits a field as multi-line text.
type TextareaEditor struct {
	edit.Base

	area *widget.TextArea
}

// MakeField constructs a textarea form with the raw data as initial content.
func (e *TextareaEditor) MakeField(field *page.Field, data edit.Data) (*widget.Form, error) {
	e.area = widget.NewTextArea(data.Raw)
	return widget.NewForm(e.area), nil
}

// Activate focusses the textarea.
// Blur is not a submit trigger here; Enter inserts newlines, so the buttons
// (or the host's explicit triggers) are the way out.
func (e *TextareaEditor) Activate(form *widget.Form) {
	form.FocusPrimary()
}

// Value returns the textarea's current content.
func (e *TextareaEditor) Value() string { return e.area.Content() }
