package edit_test

import (
	"reflect"
	"testing"

	"github.com/ja-he/inplace/edit"
)

func TestResolveData(t *testing.T) {

	t.Run("plain text", func(t *testing.T) {
		data, err := edit.ResolveData("hello world")
		if err != nil {
			t.Error("unexpected error on plain text:", err.Error())
		}
		if data.Structured() {
			t.Error("plain text should not resolve as structured")
		}
		if data.Raw != "hello world" {
			t.Errorf("expected raw 'hello world', got '%s'", data.Raw)
		}
	})

	t.Run("text that merely mentions brackets", func(t *testing.T) {
		data, err := edit.ResolveData("see [1] and {2}")
		if err != nil {
			t.Error("unexpected error:", err.Error())
		}
		if data.Structured() {
			t.Error("should not resolve as structured")
		}
	})

	t.Run("array", func(t *testing.T) {
		data, err := edit.ResolveData(`["Walk-In", "Phone", "Email"]`)
		if err != nil {
			t.Error("unexpected error on array data:", err.Error())
		}
		if !data.Structured() {
			t.Error("array data should resolve as structured")
		}
		if !reflect.DeepEqual(data.List, []string{"Walk-In", "Phone", "Email"}) {
			t.Errorf("unexpected list: %v", data.List)
		}
	})

	t.Run("array with leading whitespace", func(t *testing.T) {
		data, err := edit.ResolveData(`   ["a", "b"]`)
		if err != nil {
			t.Error("unexpected error:", err.Error())
		}
		if len(data.List) != 2 {
			t.Errorf("expected 2 list elements, got %d", len(data.List))
		}
	})

	t.Run("object", func(t *testing.T) {
		data, err := edit.ResolveData(`{"E": "Email", "P": "Phone"}`)
		if err != nil {
			t.Error("unexpected error on object data:", err.Error())
		}
		if !data.Structured() {
			t.Error("object data should resolve as structured")
		}
		expected := map[string]string{"E": "Email", "P": "Phone"}
		if !reflect.DeepEqual(data.Object, expected) {
			t.Errorf("unexpected object: %v", data.Object)
		}
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		_, err := edit.ResolveData(`["unterminated`)
		if err == nil {
			t.Error("expected error on malformed JSON data")
		}
		_, err = edit.ResolveData(`{"key": }`)
		if err == nil {
			t.Error("expected error on malformed JSON data")
		}
	})
}
