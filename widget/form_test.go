package widget_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/widget"
)

func TestForm(t *testing.T) {

	enter := input.Key{Key: tcell.KeyEnter}
	escape := input.Key{Key: tcell.KeyEscape}
	tab := input.Key{Key: tcell.KeyTab}

	t.Run("enter on single-line primary requests submit", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("x"))
		submitted := false
		form.OnSubmitRequested(func() { submitted = true })
		form.FocusPrimary()

		if !form.HandleKey(enter) {
			t.Error("expected enter to apply")
		}
		if !submitted {
			t.Error("expected submit to have been requested")
		}
	})

	t.Run("enter on a textarea primary inserts a newline instead", func(t *testing.T) {
		area := widget.NewTextArea("line")
		form := widget.NewForm(area)
		submitted := false
		form.OnSubmitRequested(func() { submitted = true })
		form.FocusPrimary()

		form.HandleKey(enter)
		if submitted {
			t.Error("enter on a textarea should not request submit")
		}
		if area.Content() != "line\n" {
			t.Errorf("expected newline inserted, got '%s'", area.Content())
		}
	})

	t.Run("escape requests cancel", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("x"))
		cancelled := false
		form.OnCancelRequested(func() { cancelled = true })

		form.HandleKey(escape)
		if !cancelled {
			t.Error("expected cancel to have been requested")
		}
	})

	t.Run("tab cycles focus through the buttons", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("x"))
		submitted, cancelled := false, false
		form.OnSubmitRequested(func() { submitted = true })
		form.OnCancelRequested(func() { cancelled = true })
		form.FocusPrimary()

		form.HandleKey(tab) // -> OK
		form.HandleKey(enter)
		if !submitted {
			t.Error("expected enter on focussed OK button to request submit")
		}

		form.HandleKey(tab) // -> Cancel
		form.HandleKey(enter)
		if !cancelled {
			t.Error("expected enter on focussed Cancel button to request cancel")
		}

		form.HandleKey(tab) // -> back to primary
		typed := form.HandleKey(input.Key{Key: tcell.KeyRune, Ch: 'a'})
		if !typed {
			t.Error("expected primary to be focussed again after full tab cycle")
		}
	})

	t.Run("blur is only noticed when armed", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("x"))
		blurred := false
		form.OnBlur(func() { blurred = true })

		form.NoteBlur()
		if blurred {
			t.Error("blur should be ignored while not armed")
		}

		form.ArmBlurSubmit()
		form.NoteBlur()
		if !blurred {
			t.Error("expected armed blur to be noticed")
		}
	})

	t.Run("mouse clicks", func(t *testing.T) {
		// draw to a throwaway renderer to establish hit-test geometry
		draw := func(form *widget.Form) {
			form.Draw(nopRenderer{}, 10, 5, 30, testSheet())
		}

		t.Run("outside the form is not consumed", func(t *testing.T) {
			form := widget.NewForm(widget.NewTextField("x"))
			draw(form)
			if form.HandleMouseClick(0, 0) {
				t.Error("click outside the form should not be consumed")
			}
		})

		t.Run("inside the form is noticed", func(t *testing.T) {
			form := widget.NewForm(widget.NewTextField("x"))
			clicked := false
			form.OnClick(func() { clicked = true })
			draw(form)

			if !form.HandleMouseClick(12, 5) {
				t.Error("click inside the form should be consumed")
			}
			if !clicked {
				t.Error("expected in-form click to be noticed")
			}
		})

		t.Run("on the OK button requests submit", func(t *testing.T) {
			form := widget.NewForm(widget.NewTextField("x"))
			submitted := false
			form.OnSubmitRequested(func() { submitted = true })
			draw(form)

			form.HandleMouseClick(11, 6)
			if !submitted {
				t.Error("expected click on OK button to request submit")
			}
		})

		t.Run("on the Cancel button requests cancel", func(t *testing.T) {
			form := widget.NewForm(widget.NewTextField("x"))
			cancelled := false
			form.OnCancelRequested(func() { cancelled = true })
			draw(form)

			form.HandleMouseClick(20, 6)
			if !cancelled {
				t.Error("expected click on Cancel button to request cancel")
			}
		})

		t.Run("on a clickable primary forwards the click", func(t *testing.T) {
			box := widget.NewCheckbox(false, "No", "Yes")
			form := widget.NewForm(box)
			draw(form)

			form.HandleMouseClick(12, 5)
			if !box.Checked() {
				t.Error("expected click on the checkbox to toggle it")
			}
		})
	})

	t.Run("height accounts for the button row", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("x"))
		if form.Height() != 2 {
			t.Errorf("expected height 2 with buttons, got %d", form.Height())
		}
		form.SetShowButtons(false)
		if form.Height() != 1 {
			t.Errorf("expected height 1 without buttons, got %d", form.Height())
		}
	})
}

func TestFormTextCursor(t *testing.T) {

	t.Run("follows the text field cursor", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("ab"))
		form.FocusPrimary()
		form.Draw(nopRenderer{}, 10, 5, 30, testSheet())

		location, ok := form.TextCursor()
		if !ok {
			t.Fatal("expected a text cursor")
		}
		if location.X != 12 || location.Y != 5 {
			t.Errorf("expected cursor at 12:5, got %s", location)
		}
	})

	t.Run("follows the textarea cursor across lines", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextArea("one\ntwo"))
		form.FocusPrimary()
		form.Draw(nopRenderer{}, 10, 5, 30, testSheet())

		location, ok := form.TextCursor()
		if !ok {
			t.Fatal("expected a text cursor")
		}
		if location.X != 13 || location.Y != 6 {
			t.Errorf("expected cursor at 13:6, got %s", location)
		}
	})

	t.Run("clamps to the form width", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("well past the available width"))
		form.FocusPrimary()
		form.Draw(nopRenderer{}, 10, 5, 10, testSheet())

		location, ok := form.TextCursor()
		if !ok {
			t.Fatal("expected a text cursor")
		}
		if location.X != 19 || location.Y != 5 {
			t.Errorf("expected cursor clamped to 19:5, got %s", location)
		}
	})

	t.Run("hidden while a button is focussed", func(t *testing.T) {
		form := widget.NewForm(widget.NewTextField("ab"))
		form.FocusPrimary()
		form.Draw(nopRenderer{}, 10, 5, 30, testSheet())

		form.HandleKey(input.Key{Key: tcell.KeyTab})
		if _, ok := form.TextCursor(); ok {
			t.Error("expected no text cursor while a button is focussed")
		}
	})

	t.Run("hidden for non-textual primaries", func(t *testing.T) {
		form := widget.NewForm(widget.NewCheckbox(false, "No", "Yes"))
		form.FocusPrimary()
		form.Draw(nopRenderer{}, 10, 5, 30, testSheet())

		if _, ok := form.TextCursor(); ok {
			t.Error("expected no text cursor for a checkbox primary")
		}
	})
}
