package widget

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// minTextAreaHeight is the height a text area is padded to, so that even a
// near-empty one is visibly an area rather than a line.
const minTextAreaHeight = 3

// TextArea is a multi-line text input widget.
type TextArea struct {
	lines []string
	curX  int
	curY  int
}

// NewTextArea constructs and returns a new TextArea with the given initial
// content and the cursor at the end of the last line.
func NewTextArea(content string) *TextArea {
	lines := strings.Split(content, "\n")
	return &TextArea{
		lines: lines,
		curX:  len([]rune(lines[len(lines)-1])),
		curY:  len(lines) - 1,
	}
}

// Content returns the current (edited) contents.
func (a *TextArea) Content() string { return strings.Join(a.lines, "\n") }

// CursorPos returns the current line and in-line cursor position.
func (a *TextArea) CursorPos() (lineIndex, posInLine int) { return a.curY, a.curX }

// AddRune adds a rune at the cursor position.
func (a *TextArea) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	line := []rune(a.lines[a.curY])
	if a.curX > len(line) {
		a.curX = len(line)
	}
	newLine := make([]rune, 0, len(line)+1)
	newLine = append(newLine, line[:a.curX]...)
	newLine = append(newLine, newRune)
	newLine = append(newLine, line[a.curX:]...)
	a.lines[a.curY] = string(newLine)
	a.curX++
}

// Newline splits the current line at the cursor position.
func (a *TextArea) Newline() {
	line := []rune(a.lines[a.curY])
	if a.curX > len(line) {
		a.curX = len(line)
	}
	before, after := string(line[:a.curX]), string(line[a.curX:])

	newLines := make([]string, 0, len(a.lines)+1)
	newLines = append(newLines, a.lines[:a.curY]...)
	newLines = append(newLines, before, after)
	newLines = append(newLines, a.lines[a.curY+1:]...)
	a.lines = newLines

	a.curY++
	a.curX = 0
}

// BackspaceRune deletes the rune before the cursor position, joining lines
// when at a line beginning.
func (a *TextArea) BackspaceRune() {
	if a.curX > 0 {
		line := []rune(a.lines[a.curY])
		a.lines[a.curY] = string(append(line[:a.curX-1], line[a.curX:]...))
		a.curX--
		return
	}
	if a.curY > 0 {
		prev := a.lines[a.curY-1]
		a.curX = len([]rune(prev))
		a.lines[a.curY-1] = prev + a.lines[a.curY]
		a.lines = append(a.lines[:a.curY], a.lines[a.curY+1:]...)
		a.curY--
	}
}

func (a *TextArea) clampX() {
	if l := len([]rune(a.lines[a.curY])); a.curX > l {
		a.curX = l
	}
}

// MoveCursorUp moves the cursor one line up.
func (a *TextArea) MoveCursorUp() {
	if a.curY > 0 {
		a.curY--
		a.clampX()
	}
}

// MoveCursorDown moves the cursor one line down.
func (a *TextArea) MoveCursorDown() {
	if a.curY+1 < len(a.lines) {
		a.curY++
		a.clampX()
	}
}

// MoveCursorLeft moves the cursor one rune to the left.
func (a *TextArea) MoveCursorLeft() {
	if a.curX > 0 {
		a.curX--
	}
}

// MoveCursorRight moves the cursor one rune to the right (at most past the
// end of the line).
func (a *TextArea) MoveCursorRight() {
	if a.curX < len([]rune(a.lines[a.curY])) {
		a.curX++
	}
}

// HandleKey attempts to process the provided input.
func (a *TextArea) HandleKey(k input.Key) bool {
	switch k.Key {
	case tcell.KeyRune:
		a.AddRune(k.Ch)
	case tcell.KeyEnter:
		a.Newline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.BackspaceRune()
	case tcell.KeyUp:
		a.MoveCursorUp()
	case tcell.KeyDown:
		a.MoveCursorDown()
	case tcell.KeyLeft:
		a.MoveCursorLeft()
	case tcell.KeyRight:
		a.MoveCursorRight()
	case tcell.KeyHome:
		a.curX = 0
	case tcell.KeyEnd:
		a.curX = len([]rune(a.lines[a.curY]))
	default:
		return false
	}
	return true
}

// Height returns the current height of this widget in terminal rows.
func (a *TextArea) Height() int {
	if len(a.lines) < minTextAreaHeight {
		return minTextAreaHeight
	}
	return len(a.lines)
}

// Draw draws this text area at the given location.
func (a *TextArea) Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet, focussed bool) {
	sty := sheet.Input
	if focussed {
		sty = sheet.InputFocussed
	}

	renderer.DrawBox(x, y, w, a.Height(), sty)
	for i, line := range a.lines {
		renderer.DrawText(x, y+i, w, 1, sty, line)
	}

	if focussed {
		cursorX := x + a.curX
		if cursorX >= x+w {
			cursorX = x + w - 1
		}
		cursorRune := " "
		if r := []rune(a.lines[a.curY]); a.curX < len(r) {
			cursorRune = string(r[a.curX])
		}
		renderer.DrawText(cursorX, y+a.curY, 1, 1, sty.DefaultEmphasized().Bolded(), cursorRune)
	}
}
