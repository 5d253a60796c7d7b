package editors

import (
	"fmt"
	"sort"

	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

// SelectEditor edits a field by choosing one of a fixed set of options.
//
// The options come from the field's structured data: a JSON array means the
// displayed label is also the wire value; a JSON object maps wire values
// (keys) to displayed labels (values).
type SelectEditor struct {
	edit.Base

	box *widget.SelectBox

	// valueByLabel maps displayed labels back to wire values; nil for array
	// data, where label and value coincide.
	valueByLabel map[string]string
	labelByValue map[string]string
}

// MakeField constructs a select form over the options in the field's data.
func (e *SelectEditor) MakeField(field *page.Field, data edit.Data) (*widget.Form, error) {
	var labels []string

	switch {
	case len(data.List) > 0:
		labels = data.List

	case len(data.Object) > 0:
		e.valueByLabel = map[string]string{}
		e.labelByValue = map[string]string{}
		for value, label := range data.Object {
			e.valueByLabel[label] = value
			e.labelByValue[value] = label
			labels = append(labels, label)
		}
		sort.Strings(labels)

	default:
		return nil, fmt.Errorf("select editor requires JSON array or object data (got '%s')", data.Raw)
	}

	e.box = widget.NewSelectBox(labels, field.Display)
	return widget.NewForm(e.box), nil
}

// Activate focusses the select box.
func (e *SelectEditor) Activate(form *widget.Form) {
	form.FocusPrimary()
}

// Value returns the wire value for the selected option.
func (e *SelectEditor) Value() string {
	label := e.box.Selected()
	if e.valueByLabel != nil {
		return e.valueByLabel[label]
	}
	return label
}

// DisplayValue maps the responded wire value back to its label.
func (e *SelectEditor) DisplayValue(response string) string {
	if e.labelByValue != nil {
		if label, known := e.labelByValue[response]; known {
			return label
		}
	}
	return response
}
