package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/event"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/submit"
)

// A Manager activates fields into edit sessions and enforces the invariant
// that a field has at most one live session at any time.
//
// A repeated activation trigger on a field with a live session is ignored
// (the live session is returned unchanged, not cancelled).
type Manager struct {
	mtx sync.Mutex

	settings   Settings
	submitter  submit.Submitter
	dispatcher *event.Dispatcher

	sessions map[*page.Field]*Session
}

// NewManager constructs and returns a new Manager without live sessions.
func NewManager(settings Settings, submitter submit.Submitter, dispatcher *event.Dispatcher) *Manager {
	return &Manager{
		settings:   settings,
		submitter:  submitter,
		dispatcher: dispatcher,
		sessions:   map[*page.Field]*Session{},
	}
}

// Activate converts the given field into a live edit form and returns the
// session governing it.
//
// The sequence is: resolve options and initial data, look up and instantiate
// the editor variant, have it make the field, insert the form (register the
// session), then have the editor activate it. Any error before insertion
// leaves the field's display untouched.
//
// If the field already has a live session that session is returned.
func (m *Manager) Activate(ctx context.Context, field *page.Field) (*Session, error) {
	m.mtx.Lock()
	if existing, live := m.sessions[field]; live {
		log.Debug().Str("field", field.Key).Msg("activation trigger on field with live session; ignoring")
		m.mtx.Unlock()
		return existing, nil
	}
	m.mtx.Unlock()

	settings := m.settings.overriddenBy(field)

	editor, err := edit.New(field.EditorType())
	if err != nil {
		return nil, fmt.Errorf("cannot edit field '%s': %w", field.Key, err)
	}

	data, err := m.resolveData(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("cannot edit field '%s': %w", field.Key, err)
	}

	form, err := editor.MakeField(field, data)
	if err != nil {
		return nil, fmt.Errorf("editor for field '%s' could not make field: %w", field.Key, err)
	}
	form.SetShowButtons(settings.ShowButtons)

	s := &Session{
		id:       uuid.NewString(),
		field:    field,
		editor:   editor,
		form:     form,
		settings: settings,
		manager:  m,
		state:    StateEditing,
		prior:    field.Display,
	}

	form.OnSubmitRequested(s.Submit)
	form.OnCancelRequested(s.Cancel)
	form.OnBlur(s.noteBlur)
	form.OnClick(s.noteFormClick)

	m.mtx.Lock()
	if existing, live := m.sessions[field]; live {
		// lost a race to another activation; theirs stands
		m.mtx.Unlock()
		return existing, nil
	}
	m.sessions[field] = s
	m.mtx.Unlock()

	editor.Activate(form)

	log.Debug().
		Str("field", field.Key).
		Str("type", field.EditorType()).
		Str("session", s.id).
		Msg("edit session started")

	m.dispatcher.Publish(event.Event{
		Kind:      event.SessionStart,
		SessionID: s.id,
		FieldKey:  field.Key,
	})

	return s, nil
}

// resolveData resolves the initial data for editing the given field: its
// declared data attribute if present, else just-in-time loaded data if it
// declares a load URL, else its current display text (as literal text).
func (m *Manager) resolveData(ctx context.Context, field *page.Field) (edit.Data, error) {
	switch {
	case field.Data != "":
		return edit.ResolveData(field.Data)

	case field.LoadURL != "":
		raw, err := m.submitter.Load(ctx, field.LoadURL)
		if err != nil {
			return edit.Data{}, err
		}
		return edit.ResolveData(raw)

	default:
		return edit.Data{Raw: field.Display}, nil
	}
}

// SessionFor returns the live session for the given field, or nil if the
// field is in display mode.
func (m *Manager) SessionFor(field *page.Field) *Session {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.sessions[field]
}

// ActiveCount returns the number of live sessions.
func (m *Manager) ActiveCount() int {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return len(m.sessions)
}

// releaseLocked removes the session registration for the given field.
// The caller must hold the manager lock.
func (m *Manager) releaseLocked(field *page.Field) {
	delete(m.sessions, field)
}
