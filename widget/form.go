package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// Form focus targets.
const (
	focusPrimary = iota
	focusOK
	focusCancel
)

const (
	okLabel     = "[  OK  ]"
	cancelLabel = "[Cancel]"
)

// A Form is the edit-form subtree shown in place of a field's display text
// while the field is being edited.
//
// It wraps a primary input widget and optional OK/Cancel buttons.
// The form itself only notices interaction; what submit, cancel, blur, and
// in-form clicks mean is decided by the callbacks the session controller
// installs.
type Form struct {
	primary Widget

	showButtons bool
	focus       int

	// blurSubmitArmed is set by editors whose primary input submits on blur.
	blurSubmitArmed bool

	submitRequested func()
	cancelRequested func()
	blurNoticed     func()
	clickNoticed    func()

	// geometry of the last draw, for mouse hit-testing
	lastX, lastY, lastW, lastH int
	okX, cancelX, buttonY      int
}

// NewForm constructs and returns a new Form around the given primary input
// widget.
func NewForm(primary Widget) *Form {
	return &Form{
		primary:     primary,
		showButtons: true,
	}
}

// Primary returns the primary input widget.
func (f *Form) Primary() Widget { return f.primary }

// SetShowButtons sets whether this form shows OK/Cancel buttons.
func (f *Form) SetShowButtons(show bool) { f.showButtons = show }

// OnSubmitRequested sets the callback for explicit submit triggers (OK
// button, Enter on a single-line input).
func (f *Form) OnSubmitRequested(fn func()) { f.submitRequested = fn }

// OnCancelRequested sets the callback for explicit cancel triggers (Cancel
// button, Escape).
func (f *Form) OnCancelRequested(fn func()) { f.cancelRequested = fn }

// OnBlur sets the callback for a blur on the primary input.
func (f *Form) OnBlur(fn func()) { f.blurNoticed = fn }

// OnClick sets the callback for any click inside the form.
func (f *Form) OnClick(fn func()) { f.clickNoticed = fn }

// ArmBlurSubmit marks that a blur on the primary input is a submit trigger
// for this form.
func (f *Form) ArmBlurSubmit() { f.blurSubmitArmed = true }

// BlurSubmitArmed returns whether a blur on the primary input is a submit
// trigger for this form.
func (f *Form) BlurSubmitArmed() bool { return f.blurSubmitArmed }

// FocusPrimary focusses the primary input widget.
func (f *Form) FocusPrimary() { f.focus = focusPrimary }

// RequestSubmit invokes the installed submit callback.
func (f *Form) RequestSubmit() {
	if f.submitRequested != nil {
		f.submitRequested()
	}
}

// RequestCancel invokes the installed cancel callback.
func (f *Form) RequestCancel() {
	if f.cancelRequested != nil {
		f.cancelRequested()
	}
}

// NoteBlur notes that the primary input lost focus to something outside the
// form. It only has an effect when blur-submit is armed.
func (f *Form) NoteBlur() {
	if f.blurSubmitArmed && f.blurNoticed != nil {
		f.blurNoticed()
	}
}

// NoteClick notes a click inside the form.
func (f *Form) NoteClick() {
	if f.clickNoticed != nil {
		f.clickNoticed()
	}
}

// HandleKey attempts to process the provided input.
func (f *Form) HandleKey(k input.Key) bool {
	switch {

	case k.Key == tcell.KeyEscape:
		f.RequestCancel()
		return true

	case k.Key == tcell.KeyTab:
		f.advanceFocus()
		return true

	case k.Key == tcell.KeyEnter:
		switch f.focus {
		case focusOK:
			f.RequestSubmit()
			return true
		case focusCancel:
			f.RequestCancel()
			return true
		default:
			// multi-line inputs use Enter themselves
			if _, multiline := f.primary.(*TextArea); multiline {
				return f.primary.HandleKey(k)
			}
			f.RequestSubmit()
			return true
		}

	default:
		if f.focus == focusPrimary {
			return f.primary.HandleKey(k)
		}
		return false
	}
}

func (f *Form) advanceFocus() {
	if !f.showButtons {
		return
	}
	switch f.focus {
	case focusPrimary:
		f.focus = focusOK
	case focusOK:
		f.focus = focusCancel
	case focusCancel:
		f.focus = focusPrimary
	}
}

// Contains returns whether the given screen position lies within the area of
// the last draw of this form.
func (f *Form) Contains(x, y int) bool {
	return x >= f.lastX && x < f.lastX+f.lastW &&
		y >= f.lastY && y < f.lastY+f.lastH
}

// HandleMouseClick processes a click at the given screen position.
// Returns whether the click landed within the form; a click outside the form
// is the caller's to interpret (typically as a blur).
func (f *Form) HandleMouseClick(x, y int) bool {
	if !f.Contains(x, y) {
		return false
	}

	f.NoteClick()

	if f.showButtons && y == f.buttonY {
		switch {
		case x >= f.okX && x < f.okX+len(okLabel):
			f.focus = focusOK
			f.RequestSubmit()
			return true
		case x >= f.cancelX && x < f.cancelX+len(cancelLabel):
			f.focus = focusCancel
			f.RequestCancel()
			return true
		}
	}

	if y >= f.lastY && y < f.lastY+f.primary.Height() {
		f.focus = focusPrimary
		if clickable, ok := f.primary.(Clickable); ok {
			clickable.Click(x-f.lastX, y-f.lastY)
		}
	}
	return true
}

// TextCursor returns the terminal cursor location for the primary input of
// this form, as of the last draw.
// The second return is false when there is no cursor to show, i.e. when
// focus is on a button or the primary input is not textual.
func (f *Form) TextCursor() (ui.CursorLocation, bool) {
	if f.focus != focusPrimary {
		return ui.CursorLocation{}, false
	}

	clampX := func(x int) int {
		if max := f.lastX + f.lastW - 1; x > max {
			return max
		}
		return x
	}

	switch primary := f.primary.(type) {
	case *TextField:
		return ui.CursorLocation{X: clampX(f.lastX + primary.CursorPos()), Y: f.lastY}, true
	case *TextArea:
		line, pos := primary.CursorPos()
		return ui.CursorLocation{X: clampX(f.lastX + pos), Y: f.lastY + line}, true
	default:
		return ui.CursorLocation{}, false
	}
}

// Height returns the current height of this form in terminal rows.
func (f *Form) Height() int {
	h := f.primary.Height()
	if f.showButtons {
		h++
	}
	return h
}

// Draw draws this form at the given location and records the geometry for
// mouse hit-testing.
func (f *Form) Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet) {
	f.lastX, f.lastY, f.lastW, f.lastH = x, y, w, f.Height()

	renderer.DrawBox(x, y, w, f.Height(), sheet.Form)
	f.primary.Draw(renderer, x, y, w, sheet, f.focus == focusPrimary)

	if f.showButtons {
		f.buttonY = y + f.primary.Height()
		f.okX = x
		f.cancelX = x + len(okLabel) + 1

		okStyle, cancelStyle := sheet.Button, sheet.Button
		if f.focus == focusOK {
			okStyle = sheet.ButtonFocussed
		}
		if f.focus == focusCancel {
			cancelStyle = sheet.ButtonFocussed
		}
		renderer.DrawText(f.okX, f.buttonY, len(okLabel), 1, okStyle, okLabel)
		renderer.DrawText(f.cancelX, f.buttonY, len(cancelLabel), 1, cancelStyle, cancelLabel)
	}
}
