package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// SelectBox is an input widget for choosing one of a fixed set of options.
type SelectBox struct {
	options []string
	index   int
}

// NewSelectBox constructs and returns a new SelectBox over the given options
// with the option matching initial (if any) preselected.
func NewSelectBox(options []string, initial string) *SelectBox {
	s := &SelectBox{options: options}
	for i, option := range options {
		if option == initial {
			s.index = i
			break
		}
	}
	return s
}

// Selected returns the currently selected option.
// For a SelectBox without options this is the empty string.
func (s *SelectBox) Selected() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.index]
}

// SelectedIndex returns the index of the currently selected option.
func (s *SelectBox) SelectedIndex() int { return s.index }

// Next selects the next option, wrapping around after the last.
func (s *SelectBox) Next() {
	if len(s.options) > 0 {
		s.index = (s.index + 1) % len(s.options)
	}
}

// Prev selects the previous option, wrapping around before the first.
func (s *SelectBox) Prev() {
	if len(s.options) > 0 {
		s.index = (s.index + len(s.options) - 1) % len(s.options)
	}
}

// HandleKey attempts to process the provided input.
func (s *SelectBox) HandleKey(k input.Key) bool {
	switch {
	case k.Key == tcell.KeyDown || k.Key == tcell.KeyRight:
		s.Next()
	case k.Key == tcell.KeyUp || k.Key == tcell.KeyLeft:
		s.Prev()
	case k.Key == tcell.KeyRune && k.Ch == ' ':
		s.Next()
	default:
		return false
	}
	return true
}

// Click cycles to the next option.
func (s *SelectBox) Click(x, y int) { s.Next() }

// Height returns the height of this widget (always a single row).
func (s *SelectBox) Height() int { return 1 }

// Draw draws this select box at the given location.
func (s *SelectBox) Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet, focussed bool) {
	sty := sheet.Input
	if focussed {
		sty = sheet.InputFocussed
	}

	renderer.DrawBox(x, y, w, 1, sty)
	renderer.DrawText(x, y, w, 1, sty, "< "+s.Selected()+" >")
}
