// Package session implements the edit-session lifecycle: the activation of a
// field into a live edit form and the submit/cancel state machine that
// governs it until the field returns to display mode.
package session

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/inplace/edit"
	"github.com/ja-he/inplace/event"
	"github.com/ja-he/inplace/page"
	"github.com/ja-he/inplace/widget"
)

// State is the state of an edit session.
type State int

const (
	// StateIdle is display mode; a session never observably has it, a field
	// without session does.
	StateIdle State = iota
	// StateEditing means the form is live.
	StateEditing
	// StateSubmitting means a submit is in flight; further submit and cancel
	// triggers are ignored until it resolves.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// A Session is the relationship between one field and one live editor
// instance. It is created by a Manager on activation and destroyed when
// editing ends by submit or cancel.
type Session struct {
	// immutable after construction
	id       string
	field    *page.Field
	editor   edit.Editor
	form     *widget.Form
	settings Settings

	manager *Manager

	// guarded by the manager-held session lock
	state     State
	prior     string
	blurDelay *Delay
}

// ID returns the unique identifier of this session.
func (s *Session) ID() string { return s.id }

// Field returns the field this session edits.
func (s *Session) Field() *page.Field { return s.field }

// Form returns the live edit form of this session.
func (s *Session) Form() *widget.Form { return s.form }

// State returns the current state of this session.
func (s *Session) State() State {
	s.manager.mtx.Lock()
	defer s.manager.mtx.Unlock()
	return s.state
}

// Submit triggers submission of the editor's current value.
//
// It is a no-op unless the session is editing: triggers while a submit is in
// flight are ignored until that submit resolves, and an in-flight submit
// cannot be aborted.
func (s *Session) Submit() {
	s.manager.mtx.Lock()
	if s.state != StateEditing {
		log.Debug().
			Str("field", s.field.Key).
			Str("state", s.state.String()).
			Msg("ignoring submit trigger")
		s.manager.mtx.Unlock()
		return
	}
	s.cancelPendingBlurSubmit()
	s.state = StateSubmitting
	value := s.editor.Value()
	submitURL, key := s.field.URL, s.field.Key
	s.manager.mtx.Unlock()

	log.Debug().Str("field", key).Str("value", value).Msg("submitting")

	go func() {
		response, err := s.manager.submitter.Submit(context.Background(), submitURL, key, value)
		s.resolveSubmit(value, response, err)
	}()
}

func (s *Session) resolveSubmit(value, response string, err error) {
	s.manager.mtx.Lock()

	var e event.Event
	if err != nil {
		log.Warn().Err(err).Str("field", s.field.Key).Msg("submit failed")
		switch s.settings.FailurePolicy {
		case FailureReturnsToEditing:
			s.state = StateEditing
		case FailureDiscards:
			s.state = StateIdle
		}
		e = event.Event{
			Kind:      event.SubmitFailure,
			SessionID: s.id,
			FieldKey:  s.field.Key,
			Value:     value,
			Err:       err,
		}
	} else {
		display := s.editor.DisplayValue(response)
		s.field.Display = display
		s.state = StateIdle
		e = event.Event{
			Kind:      event.SubmitSuccess,
			SessionID: s.id,
			FieldKey:  s.field.Key,
			Value:     value,
			Display:   display,
		}
	}

	ended := s.state == StateIdle
	if ended {
		s.manager.releaseLocked(s.field)
	}
	s.manager.mtx.Unlock()

	s.manager.dispatcher.Publish(e)
}

// Cancel discards the edit and restores the exact pre-edit display text.
// No network call is made. It is a no-op unless the session is editing.
func (s *Session) Cancel() {
	s.manager.mtx.Lock()
	if s.state != StateEditing {
		log.Debug().
			Str("field", s.field.Key).
			Str("state", s.state.String()).
			Msg("ignoring cancel trigger")
		s.manager.mtx.Unlock()
		return
	}
	s.cancelPendingBlurSubmit()
	s.state = StateIdle
	s.field.Display = s.prior
	s.manager.releaseLocked(s.field)
	s.manager.mtx.Unlock()

	s.manager.dispatcher.Publish(event.Event{
		Kind:      event.Cancel,
		SessionID: s.id,
		FieldKey:  s.field.Key,
	})
}

// noteBlur handles a blur on the primary input: it starts the grace delay
// carrying the deferred submit.
func (s *Session) noteBlur() {
	s.manager.mtx.Lock()
	defer s.manager.mtx.Unlock()

	if s.state != StateEditing || !s.settings.SubmitOnBlur {
		return
	}

	s.cancelPendingBlurSubmit()
	log.Debug().
		Str("field", s.field.Key).
		Dur("grace", s.settings.BlurGrace).
		Msg("blur on primary input; deferring submit")
	s.blurDelay = NewDelay(s.settings.BlurGrace, s.Submit)
}

// noteFormClick handles a qualifying click inside the edit form: it
// suppresses any pending deferred blur submit.
func (s *Session) noteFormClick() {
	s.manager.mtx.Lock()
	defer s.manager.mtx.Unlock()
	s.cancelPendingBlurSubmit()
}

func (s *Session) cancelPendingBlurSubmit() {
	if s.blurDelay != nil {
		if s.blurDelay.Cancel() {
			log.Debug().Str("field", s.field.Key).Msg("suppressed deferred blur submit")
		}
		s.blurDelay = nil
	}
}
