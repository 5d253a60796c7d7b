package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/session"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// PagePane renders a page of editable fields, showing each field either as
// its display text or -- while it has a live edit session -- as its edit
// form, and routes key and mouse input accordingly.
type PagePane struct {
	renderer ui.ConstrainedRenderer
	cursors  ui.TextCursorController

	pg      *page.Page
	manager *session.Manager
	sheet   *styling.Stylesheet

	// activate is the controller's field-activation callback.
	activate func(*page.Field)

	selected int
	current  *page.Field
	status   string

	rows []fieldRow
}

type fieldRow struct {
	field *page.Field
	y, h  int
}

// NewPagePane constructs and returns a new PagePane.
func NewPagePane(
	renderer ui.ConstrainedRenderer,
	cursors ui.TextCursorController,
	pg *page.Page,
	manager *session.Manager,
	sheet *styling.Stylesheet,
	activate func(*page.Field),
) *PagePane {
	return &PagePane{
		renderer: renderer,
		cursors:  cursors,
		pg:       pg,
		manager:  manager,
		sheet:    sheet,
		activate: activate,
	}
}

// SetStatus sets the status line text.
func (p *PagePane) SetStatus(status string) { p.status = status }

// Editing returns whether a field is currently being edited in this pane.
func (p *PagePane) Editing() bool { return p.editingSession() != nil }

// editingSession returns the live session of the currently edited field, nil
// if there is none (clearing the stale current-field marker as a side
// effect).
func (p *PagePane) editingSession() *session.Session {
	if p.current == nil {
		return nil
	}
	s := p.manager.SessionFor(p.current)
	if s == nil {
		p.current = nil
	}
	return s
}

// Draw draws this pane.
func (p *PagePane) Draw() {
	x, y, w, h := p.renderer.Dimensions()

	p.renderer.DrawBox(x, y, w, h, p.sheet.Normal)
	p.renderer.DrawText(x+1, y, w-1, 1, p.sheet.Normal.Bolded(), p.pg.Title)

	labelWidth := 0
	for _, field := range p.pg.Fields {
		if len(field.Key) > labelWidth {
			labelWidth = len(field.Key)
		}
	}

	p.rows = p.rows[:0]
	rowY := y + 2
	for i, field := range p.pg.Fields {
		labelStyle := p.sheet.Normal
		if i == p.selected {
			labelStyle = p.sheet.FieldActive
		}
		p.renderer.DrawText(x+1, rowY, labelWidth, 1, labelStyle, field.Key)

		contentX := x + 1 + labelWidth + 2
		contentW := w - (contentX - x) - 1

		rowH := 1
		if s := p.manager.SessionFor(field); s != nil {
			form := s.Form()
			form.Draw(p.renderer, contentX, rowY, contentW, p.sheet)
			rowH = form.Height()
		} else {
			p.renderer.DrawText(contentX, rowY, contentW, 1, p.sheet.Field, field.Display)
		}

		p.rows = append(p.rows, fieldRow{field: field, y: rowY, h: rowH})
		rowY += rowH + 1
	}

	p.renderer.DrawBox(x, y+h-1, w, 1, p.sheet.Status)
	statusText := p.status
	if statusText == "" {
		statusText = "click or <enter> to edit, <esc> to cancel, l for log, q to quit"
	}
	p.renderer.DrawText(x+1, y+h-1, w-2, 1, p.sheet.Status, statusText)

	if s := p.editingSession(); s != nil {
		if location, ok := s.Form().TextCursor(); ok {
			p.cursors.ShowCursor(location)
			return
		}
	}
	p.cursors.HideCursor()
}

// HandleKey attempts to process the provided input.
// Returns whether the input "applied".
func (p *PagePane) HandleKey(k input.Key) bool {
	if s := p.editingSession(); s != nil {
		return s.Form().HandleKey(k)
	}

	switch {
	case k.Key == tcell.KeyDown || (k.Key == tcell.KeyRune && k.Ch == 'j'):
		if p.selected+1 < len(p.pg.Fields) {
			p.selected++
		}
	case k.Key == tcell.KeyUp || (k.Key == tcell.KeyRune && k.Ch == 'k'):
		if p.selected > 0 {
			p.selected--
		}
	case k.Key == tcell.KeyEnter:
		if p.selected < len(p.pg.Fields) {
			p.activateField(p.pg.Fields[p.selected])
		}
	default:
		return false
	}
	return true
}

// HandleMouseClick processes a primary click at the given screen position.
func (p *PagePane) HandleMouseClick(x, y int) {
	if s := p.editingSession(); s != nil {
		if s.Form().HandleMouseClick(x, y) {
			return
		}
		// a click outside the live form is a blur on its primary input
		s.Form().NoteBlur()
		return
	}

	for i, row := range p.rows {
		if y >= row.y && y < row.y+row.h {
			p.selected = i
			p.activateField(row.field)
			return
		}
	}
}

func (p *PagePane) activateField(field *page.Field) {
	p.activate(field)
	if p.manager.SessionFor(field) != nil {
		p.current = field
	}
}
