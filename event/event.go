// Package event provides the named events the library surfaces to host
// programs as edit sessions progress, and the dispatcher they subscribe on.
package event

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Kind names a surfaced event.
type Kind string

const (
	// SessionStart fires when a field enters editing.
	SessionStart Kind = "session-start"
	// SubmitSuccess fires when a submit resolved successfully.
	SubmitSuccess Kind = "submit-success"
	// SubmitFailure fires when a submit resolved with an error.
	SubmitFailure Kind = "submit-failure"
	// Cancel fires when editing was cancelled.
	Cancel Kind = "cancel"
)

// An Event is a single occurrence on a field's edit session.
type Event struct {
	Kind      Kind
	SessionID string
	FieldKey  string

	// Value is the wire value that was (to be) submitted, where applicable.
	Value string
	// Display is the new display text, on submit success.
	Display string
	// Err is the surfaced error, on submit failure.
	Err error

	Timestamp time.Time
}

// A Handler is called with events it subscribed to.
// Handlers are called synchronously on the publishing control flow and should
// return quickly.
type Handler func(Event)

// A Dispatcher delivers events to subscribed handlers.
// The zero value is not usable; construct with NewDispatcher.
type Dispatcher struct {
	mtx    sync.RWMutex
	byKind map[Kind][]Handler
	all    []Handler
}

// NewDispatcher constructs and returns a new Dispatcher without subscribers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byKind: map[Kind][]Handler{},
	}
}

// Subscribe adds a handler for events of the given kind.
// Subscriptions are additive; there is no unsubscription, matching the
// additive nature of the library's process-wide registries.
func (d *Dispatcher) Subscribe(kind Kind, handler Handler) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.byKind[kind] = append(d.byKind[kind], handler)
}

// SubscribeAll adds a handler for events of any kind.
func (d *Dispatcher) SubscribeAll(handler Handler) {
	d.mtx.Lock()
	defer d.mtx.Unlock()
	d.all = append(d.all, handler)
}

// SubscribeField adds a handler for events (of any kind) on the field with
// the given key.
func (d *Dispatcher) SubscribeField(fieldKey string, handler Handler) {
	d.SubscribeAll(func(e Event) {
		if e.FieldKey == fieldKey {
			handler(e)
		}
	})
}

// Publish delivers the given event to its subscribers.
func (d *Dispatcher) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	log.Debug().
		Str("kind", string(e.Kind)).
		Str("field", e.FieldKey).
		Str("session", e.SessionID).
		Msg("publishing event")

	d.mtx.RLock()
	handlers := append([]Handler{}, d.byKind[e.Kind]...)
	handlers = append(handlers, d.all...)
	d.mtx.RUnlock()

	for _, handler := range handlers {
		handler(e)
	}
}
