package editors

import (
	"strings"

	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

// checkboxDefaultChoices are the display texts for the unchecked and checked
// state when the field declares no data of its own.
var checkboxDefaultChoices = [2]string{"No", "Yes"}

// CheckboxEditor edits a boolean field as a labeled checkbox.
//
// The wire value is "0"/"1"; the display texts for the two states default to
// "No"/"Yes" and can be overridden by a two-element JSON array data
// attribute. The initial state is checked iff the field currently displays
// the checked-state text.
type CheckboxEditor struct {
	edit.Base

	choices [2]string
	box     *widget.Checkbox
}

// MakeField constructs a checkbox form for the field.
func (e *CheckboxEditor) MakeField(field *page.Field, data edit.Data) (*widget.Form, error) {
	e.choices = checkboxDefaultChoices
	if len(data.List) >= 2 {
		e.choices = [2]string{data.List[0], data.List[1]}
	}

	e.box = widget.NewCheckbox(field.Display == e.choices[1], e.choices[0], e.choices[1])
	return widget.NewForm(e.box), nil
}

// Activate focusses the checkbox and arms blur as a submit trigger, wiring
// toggles to count as in-form clicks so that toggling never races the
// deferred blur submit into firing.
func (e *CheckboxEditor) Activate(form *widget.Form) {
	form.FocusPrimary()
	form.ArmBlurSubmit()
	e.box.AddToggleCallback(form.NoteClick)
}

// Value returns "1" for checked, "0" for unchecked.
func (e *CheckboxEditor) Value() string {
	if e.box.Checked() {
		return "1"
	}
	return "0"
}

// DisplayValue maps the responded wire value back to the state's display
// text.
func (e *CheckboxEditor) DisplayValue(response string) string {
	if strings.TrimSpace(response) == "1" {
		return e.choices[1]
	}
	return e.choices[0]
}
