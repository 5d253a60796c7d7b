package editors_test

import (
	"testing"

	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/edit/editors"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

func TestTextEditor(t *testing.T) {

	t.Run("round trip without edits keeps the display text", func(t *testing.T) {
		editor := &editors.TextEditor{}
		field := &page.Field{Key: "name", Display: "Ada Lovelace"}

		form, err := editor.MakeField(field, edit.Data{Raw: field.Display})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)

		if editor.Value() != "Ada Lovelace" {
			t.Errorf("expected unedited value to equal display text, got '%s'", editor.Value())
		}
		if editor.DisplayValue(editor.Value()) != "Ada Lovelace" {
			t.Error("expected display value to pass through unchanged")
		}
	})

	t.Run("activation selects the content for replacement", func(t *testing.T) {
		editor := &editors.TextEditor{}
		field := &page.Field{Key: "name", Display: "old"}

		form, err := editor.MakeField(field, edit.Data{Raw: field.Display})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)

		if !editor.Input.Selected() {
			t.Error("expected content to be selected after activation")
		}
		editor.Input.AddRune('x')
		if editor.Value() != "x" {
			t.Errorf("expected first rune to replace selected content, got '%s'", editor.Value())
		}
	})

	t.Run("activation arms blur submit", func(t *testing.T) {
		editor := &editors.TextEditor{}
		form, err := editor.MakeField(&page.Field{Key: "k"}, edit.Data{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)
		if !form.BlurSubmitArmed() {
			t.Error("expected blur submit to be armed for a text editor")
		}
	})
}

func TestTextareaEditor(t *testing.T) {

	t.Run("preserves multi-line content", func(t *testing.T) {
		editor := &editors.TextareaEditor{}
		field := &page.Field{Key: "notes", Display: "line one\nline two"}

		form, err := editor.MakeField(field, edit.Data{Raw: field.Display})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)

		if editor.Value() != "line one\nline two" {
			t.Errorf("unexpected value '%s'", editor.Value())
		}
	})

	t.Run("does not arm blur submit", func(t *testing.T) {
		editor := &editors.TextareaEditor{}
		form, err := editor.MakeField(&page.Field{Key: "notes"}, edit.Data{})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)
		if form.BlurSubmitArmed() {
			t.Error("blur should not be a submit trigger for a textarea")
		}
	})
}

func TestSelectEditor(t *testing.T) {

	t.Run("array data uses the label as wire value", func(t *testing.T) {
		editor := &editors.SelectEditor{}
		field := &page.Field{Key: "channel", Display: "Phone"}
		data, err := edit.ResolveData(`["Walk-In", "Phone", "Email"]`)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		form, err := editor.MakeField(field, data)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)

		if editor.Value() != "Phone" {
			t.Errorf("expected initial selection from display text, got '%s'", editor.Value())
		}
		if editor.DisplayValue("Email") != "Email" {
			t.Error("expected label to pass through for array data")
		}
	})

	t.Run("object data maps wire values to labels", func(t *testing.T) {
		editor := &editors.SelectEditor{}
		field := &page.Field{Key: "channel", Display: "Email"}
		data, err := edit.ResolveData(`{"E": "Email", "P": "Phone", "W": "Walk-In"}`)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		form, err := editor.MakeField(field, data)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)

		if editor.Value() != "E" {
			t.Errorf("expected wire value 'E' for selected label 'Email', got '%s'", editor.Value())
		}
		if editor.DisplayValue("P") != "Phone" {
			t.Errorf("expected responded wire value to map back to its label, got '%s'", editor.DisplayValue("P"))
		}
		if editor.DisplayValue("unknown") != "unknown" {
			t.Error("expected unknown wire value to pass through")
		}
	})

	t.Run("unstructured data is an error", func(t *testing.T) {
		editor := &editors.SelectEditor{}
		_, err := editor.MakeField(&page.Field{Key: "channel"}, edit.Data{Raw: "just text"})
		if err == nil {
			t.Error("expected error for select editor without options")
		}
	})
}

func TestCheckboxEditor(t *testing.T) {

	makeActivated := func(t *testing.T, display, dataAttr string) (*editors.CheckboxEditor, *widget.Form) {
		t.Helper()
		editor := &editors.CheckboxEditor{}
		field := &page.Field{Key: "flag", Display: display}
		var data edit.Data
		if dataAttr != "" {
			var err error
			data, err = edit.ResolveData(dataAttr)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
		}
		form, err := editor.MakeField(field, data)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		editor.Activate(form)
		return editor, form
	}

	t.Run("default choices", func(t *testing.T) {
		editor, form := makeActivated(t, "No", "")

		box, ok := form.Primary().(*widget.Checkbox)
		if !ok {
			t.Fatal("expected a checkbox as the primary input")
		}
		if box.Checked() {
			t.Error("expected unchecked box for display text 'No'")
		}
		if editor.Value() != "0" {
			t.Errorf("expected wire value '0', got '%s'", editor.Value())
		}

		box.Toggle()
		if editor.Value() != "1" {
			t.Errorf("expected wire value '1' after toggle, got '%s'", editor.Value())
		}
		if editor.DisplayValue("1") != "Yes" {
			t.Errorf("expected display text 'Yes' for responded '1', got '%s'", editor.DisplayValue("1"))
		}
	})

	t.Run("choices overridden by data", func(t *testing.T) {
		editor, form := makeActivated(t, "Of course", `["No way", "Of course"]`)

		box := form.Primary().(*widget.Checkbox)
		if !box.Checked() {
			t.Error("expected checked box for checked-state display text")
		}
		if editor.Value() != "1" {
			t.Errorf("expected wire value '1', got '%s'", editor.Value())
		}
		if editor.DisplayValue("0") != "No way" {
			t.Errorf("expected display text 'No way' for responded '0', got '%s'", editor.DisplayValue("0"))
		}
	})

	t.Run("responded value is trimmed before mapping", func(t *testing.T) {
		editor, _ := makeActivated(t, "No", "")
		if editor.DisplayValue(" 1\n") != "Yes" {
			t.Error("expected whitespace around the responded value to be ignored")
		}
	})
}
