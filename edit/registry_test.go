package edit_test

import (
	"strings"
	"testing"

	"github.com/ja-he/inplace/edit"
	_ "github.com/ja-he/inplace/edit/editors"
)

func TestRegistry(t *testing.T) {

	t.Run("built-in types are registered", func(t *testing.T) {
		for _, name := range []string{"text", "textarea", "select", "checkbox"} {
			editor, err := edit.New(name)
			if err != nil {
				t.Errorf("unexpected error for built-in type '%s': %s", name, err.Error())
			}
			if editor == nil {
				t.Errorf("expected non-nil editor for built-in type '%s'", name)
			}
		}
	})

	t.Run("unknown type is an error naming the known types", func(t *testing.T) {
		editor, err := edit.New("no-such-type")
		if err == nil {
			t.Error("expected error for unregistered type")
		}
		if editor != nil {
			t.Error("expected nil editor for unregistered type")
		}
		if !strings.Contains(err.Error(), "no-such-type") {
			t.Error("expected error to name the unknown type, got:", err.Error())
		}
		if !strings.Contains(err.Error(), "text") {
			t.Error("expected error to list registered types, got:", err.Error())
		}
	})

	t.Run("host-defined types can be registered", func(t *testing.T) {
		edit.Register("custom-test-type", func() edit.Editor { return &edit.Base{} })

		editor, err := edit.New("custom-test-type")
		if err != nil {
			t.Error("unexpected error for freshly registered type:", err.Error())
		}
		if editor == nil {
			t.Error("expected non-nil editor for freshly registered type")
		}
	})

	t.Run("each instantiation is a fresh instance", func(t *testing.T) {
		a, _ := edit.New("text")
		b, _ := edit.New("text")
		if a == b {
			t.Error("expected separate editor instances per instantiation")
		}
	})

	t.Run("invalid registrations are ignored", func(t *testing.T) {
		before := len(edit.RegisteredNames())
		edit.Register("", func() edit.Editor { return &edit.Base{} })
		edit.Register("nil-factory", nil)
		if len(edit.RegisteredNames()) != before {
			t.Error("invalid registration should not alter the registry")
		}
	})
}
