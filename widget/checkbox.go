package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// Checkbox is a two-state input widget with a per-state label.
type Checkbox struct {
	checked        bool
	uncheckedLabel string
	checkedLabel   string

	toggleCallback func()
}

// NewCheckbox constructs and returns a new Checkbox with the given initial
// state and labels.
func NewCheckbox(checked bool, uncheckedLabel, checkedLabel string) *Checkbox {
	return &Checkbox{
		checked:        checked,
		uncheckedLabel: uncheckedLabel,
		checkedLabel:   checkedLabel,
	}
}

// Checked returns the current state.
func (c *Checkbox) Checked() bool { return c.checked }

// Label returns the label for the current state.
func (c *Checkbox) Label() string {
	if c.checked {
		return c.checkedLabel
	}
	return c.uncheckedLabel
}

// Toggle flips the state and calls the toggle callback, if any.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	if c.toggleCallback != nil {
		c.toggleCallback()
	}
}

// AddToggleCallback adds a callback that is called whenever the checkbox is
// toggled.
func (c *Checkbox) AddToggleCallback(f func()) {
	if c.toggleCallback == nil {
		c.toggleCallback = f
		return
	}
	existingCallback := c.toggleCallback
	c.toggleCallback = func() {
		existingCallback()
		f()
	}
}

// HandleKey attempts to process the provided input.
// The space key toggles the checkbox.
func (c *Checkbox) HandleKey(k input.Key) bool {
	if k.Key == tcell.KeyRune && k.Ch == ' ' {
		c.Toggle()
		return true
	}
	return false
}

// Click toggles the checkbox (both on the box and on the label, like a label
// bound to its input).
func (c *Checkbox) Click(x, y int) { c.Toggle() }

// Height returns the height of this widget (always a single row).
func (c *Checkbox) Height() int { return 1 }

// Draw draws this checkbox at the given location.
func (c *Checkbox) Draw(renderer ui.Renderer, x, y, w int, sheet *styling.Stylesheet, focussed bool) {
	sty := sheet.Input
	if focussed {
		sty = sheet.InputFocussed
	}

	box := "[ ] "
	if c.checked {
		box = "[x] "
	}

	renderer.DrawBox(x, y, w, 1, sty)
	renderer.DrawText(x, y, w, 1, sty, box+c.Label())
}
