// Package page models a page of editable fields: static display texts bound
// to the attributes that govern how each of them is edited and where its
// edited value is submitted.
//
// A field toggles between a display presentation and an editing presentation
// but is never destroyed by the library; what is created and destroyed per
// edit is the session (see package session).
package page

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A Field is a single editable element of a page.
//
// Its attributes mirror what the host declares about the element: the editor
// type to use, the submit destination, optional initial data (literal text or
// JSON-encoded structure), an optional load URL for just-in-time data, and
// optional per-field overrides of the editing defaults.
type Field struct {
	// Key identifies the field towards the submit endpoint.
	Key string `yaml:"key"`

	// Display is the text shown while the field is not being edited.
	Display string `yaml:"display"`

	// Type names the editor variant to edit this field with; empty selects
	// the plain text editor.
	Type string `yaml:"type,omitempty"`

	// URL is the submit destination.
	URL string `yaml:"url,omitempty"`

	// Data is the initial data for the editor; if it begins with '[' or '{'
	// it is treated as JSON-encoded structure.
	Data string `yaml:"data,omitempty"`

	// LoadURL, if set and Data is empty, is fetched for the initial data just
	// before editing starts.
	LoadURL string `yaml:"load-url,omitempty"`

	// ShowButtons overrides the configured button visibility for this field.
	ShowButtons *bool `yaml:"show-buttons,omitempty"`

	// SubmitOnBlur overrides the configured blur-submit behavior for this
	// field.
	SubmitOnBlur *bool `yaml:"submit-on-blur,omitempty"`
}

// EditorType returns the name of the editor variant this field declares, or
// the default ("text") if it declares none.
func (f *Field) EditorType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

// A Page is an ordered collection of fields under a title.
type Page struct {
	Title  string   `yaml:"title"`
	Fields []*Field `yaml:"fields"`
}

// FromYAML parses a page description from YAML-formatted data.
func FromYAML(yamlData []byte) (*Page, error) {
	p := Page{}
	err := yaml.Unmarshal(yamlData, &p)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling page yaml (%w)", err)
	}

	seen := map[string]bool{}
	for i, field := range p.Fields {
		if field.Key == "" {
			return nil, fmt.Errorf("field %d has no key", i)
		}
		if seen[field.Key] {
			return nil, fmt.Errorf("duplicate field key '%s'", field.Key)
		}
		seen[field.Key] = true
	}

	return &p, nil
}

// FieldByKey returns the field with the given key, or nil if the page has no
// such field.
func (p *Page) FieldByKey(key string) *Field {
	for _, field := range p.Fields {
		if field.Key == key {
			return field
		}
	}
	return nil
}
