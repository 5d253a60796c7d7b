package widget

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// TextField is a single-line text input widget.
type TextField struct {
	content   string
	cursorPos int

	// selected indicates whole-content selection, as after activation; the
	// next added rune replaces the full content.
	selected bool
}

// NewTextField constructs and returns a new TextField with the given initial
// content and the cursor past its end.
func NewTextField(content string) *TextField {
	return &TextField{
		content:   content,
		cursorPos: len([]rune(content)),
	}
}

// Content returns the current (edited) contents.
func (f *TextField) Content() string { return f.content }

// SetContent replaces the contents and places the cursor past their end.
func (f *TextField) SetContent(content string) {
	f.content = content
	f.cursorPos = len([]rune(content))
	f.selected = false
}

// CursorPos returns the current cursor position in the content, 0 being
// before the first rune.
func (f *TextField) CursorPos() int { return f.cursorPos }

// SelectAll marks the whole content as selected, so that the next added rune
// replaces it.
func (f *TextField) SelectAll() { f.selected = true }

// Selected returns whether the whole content is currently selected.
func (f *TextField) Selected() bool { return f.selected }

// AddRune adds a rune at the cursor position.
// If the content is selected it is replaced by the rune.
func (f *TextField) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	if f.selected {
		f.content = string(newRune)
		f.cursorPos = 1
		f.selected = false
		return
	}
	tmp := []rune(f.content)
	if len(tmp) == f.cursorPos {
		tmp = append(tmp, newRune)
	} else {
		tmp = append(tmp[:f.cursorPos+1], tmp[f.cursorPos:]...)
		tmp[f.cursorPos] = newRune
	}
	f.content = string(tmp)
	f.cursorPos++
}

// BackspaceRune deletes the rune before the cursor position.
// If the content is selected it is cleared entirely.
func (f *TextField) BackspaceRune() {
	if f.selected {
		f.Clear()
		return
	}
	if f.cursorPos > 0 {
		tmp := []rune(f.content)
		preCursor := tmp[:f.cursorPos-1]
		postCursor := tmp[f.cursorPos:]

		f.content = string(append(preCursor, postCursor...))
		f.cursorPos--
	}
}

// DeleteRune deletes the rune at the cursor position.
func (f *TextField) DeleteRune() {
	if f.selected {
		f.Clear()
		return
	}
	tmp := []rune(f.content)
	if f.cursorPos < len(tmp) {
		preCursor := tmp[:f.cursorPos]
		postCursor := tmp[f.cursorPos+1:]

		f.content = string(append(preCursor, postCursor...))
	}
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (f *TextField) BackspaceToBeginning() {
	f.content = string([]rune(f.content)[f.cursorPos:])
	f.cursorPos = 0
	f.selected = false
}

// DeleteToEnd deletes all runes after the cursor position.
func (f *TextField) DeleteToEnd() {
	f.content = string([]rune(f.content)[:f.cursorPos])
	f.selected = false
}

// Clear deletes all runes.
func (f *TextField) Clear() {
	f.content = ""
	f.cursorPos = 0
	f.selected = false
}

// MoveCursorToBeginning moves the cursor to the beginning of the content.
func (f *TextField) MoveCursorToBeginning() {
	f.cursorPos = 0
	f.selected = false
}

// MoveCursorPastEnd moves the cursor past the end of the content.
func (f *TextField) MoveCursorPastEnd() {
	f.cursorPos = len([]rune(f.content))
	f.selected = false
}

// MoveCursorLeft moves the cursor one rune to the left.
func (f *TextField) MoveCursorLeft() {
	if f.cursorPos > 0 {
		f.cursorPos--
	}
	f.selected = false
}

// MoveCursorRight moves the cursor one rune to the right (at most past the
// end of the content).
func (f *TextField) MoveCursorRight() {
	if f.cursorPos < len([]rune(f.content)) {
		f.cursorPos++
	}
	f.selected = false
}

// HandleKey attempts to process the provided input.
func (f *TextField) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyRune:
		f.AddRune(k.Ch)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.BackspaceRune()
	case tcell.KeyDelete:
		f.DeleteRune()
	case tcell.KeyLeft:
		f.MoveCursorLeft()
	case tcell.KeyRight:
		f.MoveCursorRight()
	case tcell.KeyHome:
		f.MoveCursorToBeginning()
	case tcell.KeyEnd:
		f.MoveCursorPastEnd()
	case tcell.KeyCtrlU:
		f.BackspaceToBeginning()
	case tcell.KeyCtrlK:
		f.DeleteToEnd()
	default:
		return false
	}
	return true
}

// Height returns the height of this widget (always a single row).
func (f *TextField) Height() int { return 1 }

// Draw draws this text field at the given location.
func (f *TextField) Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet, focussed bool) {
	sty := sheet.Input
	if focussed {
		sty = sheet.InputFocussed
	}
	if f.selected {
		sty = sty.DefaultEmphasized()
	}

	renderer.DrawBox(x, y, w, 1, sty)
	renderer.DrawText(x, y, w, 1, sty, f.content)

	if focussed {
		cursorX := x + f.cursorPos
		if cursorX >= x+w {
			cursorX = x + w - 1
		}
		cursorRune := " "
		if r := []rune(f.content); f.cursorPos < len(r) {
			cursorRune = string(r[f.cursorPos])
		}
		renderer.DrawText(cursorX, y, 1, 1, sty.DefaultEmphasized().Bolded(), cursorRune)
	}
}
