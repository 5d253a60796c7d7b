package event_test

import (
	"testing"

	"github.com/ja-he/inplace/event"
)

func TestDispatcher(t *testing.T) {

	t.Run("kind subscription only sees its kind", func(t *testing.T) {
		d := event.NewDispatcher()
		var got []event.Kind
		d.Subscribe(event.SubmitSuccess, func(e event.Event) { got = append(got, e.Kind) })

		d.Publish(event.Event{Kind: event.SessionStart, FieldKey: "a"})
		d.Publish(event.Event{Kind: event.SubmitSuccess, FieldKey: "a"})
		d.Publish(event.Event{Kind: event.Cancel, FieldKey: "a"})

		if len(got) != 1 || got[0] != event.SubmitSuccess {
			t.Errorf("expected exactly the submit-success event, got %v", got)
		}
	})

	t.Run("all-subscription sees every kind", func(t *testing.T) {
		d := event.NewDispatcher()
		count := 0
		d.SubscribeAll(func(e event.Event) { count++ })

		d.Publish(event.Event{Kind: event.SessionStart})
		d.Publish(event.Event{Kind: event.SubmitFailure})

		if count != 2 {
			t.Errorf("expected 2 events, got %d", count)
		}
	})

	t.Run("multiple handlers per kind all fire", func(t *testing.T) {
		d := event.NewDispatcher()
		a, b := false, false
		d.Subscribe(event.Cancel, func(event.Event) { a = true })
		d.Subscribe(event.Cancel, func(event.Event) { b = true })

		d.Publish(event.Event{Kind: event.Cancel})

		if !a || !b {
			t.Error("expected both handlers to fire")
		}
	})

	t.Run("field subscription only sees its field", func(t *testing.T) {
		d := event.NewDispatcher()
		var got []string
		d.SubscribeField("mine", func(e event.Event) { got = append(got, e.FieldKey) })

		d.Publish(event.Event{Kind: event.SessionStart, FieldKey: "other"})
		d.Publish(event.Event{Kind: event.SessionStart, FieldKey: "mine"})
		d.Publish(event.Event{Kind: event.Cancel, FieldKey: "mine"})

		if len(got) != 2 {
			t.Errorf("expected 2 events for the subscribed field, got %v", got)
		}
	})

	t.Run("publish fills the timestamp", func(t *testing.T) {
		d := event.NewDispatcher()
		var got event.Event
		d.SubscribeAll(func(e event.Event) { got = e })

		d.Publish(event.Event{Kind: event.SessionStart})

		if got.Timestamp.IsZero() {
			t.Error("expected publish to fill the timestamp")
		}
	})
}
