package edit

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Data is the resolved initial data an editor builds its form from.
//
// It is either plain text (Raw only) or structure parsed from a JSON-encoded
// data attribute: a list of strings, or a string-to-string object.
type Data struct {
	// Raw is the data as declared (or loaded).
	Raw string

	// List holds the elements of a JSON array data attribute.
	List []string

	// Object holds the members of a JSON object data attribute.
	Object map[string]string

	structured bool
}

// Structured returns whether this data was parsed from JSON structure.
func (d Data) Structured() bool { return d.structured }

// ResolveData resolves a raw data attribute into Data.
//
// Data beginning with '[' or '{' is treated as JSON-encoded structure;
// malformed JSON is an error for the caller to surface, local to the one
// session being started.
func ResolveData(raw string) (Data, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
		return Data{Raw: raw}, nil
	}

	if !gjson.Valid(trimmed) {
		return Data{}, fmt.Errorf("data attribute begins with '%c' but is not valid JSON", trimmed[0])
	}

	parsed := gjson.Parse(trimmed)
	switch {

	case parsed.IsArray():
		list := []string{}
		for _, element := range parsed.Array() {
			list = append(list, element.String())
		}
		return Data{Raw: raw, List: list, structured: true}, nil

	case parsed.IsObject():
		object := map[string]string{}
		parsed.ForEach(func(key, value gjson.Result) bool {
			object[key.String()] = value.String()
			return true
		})
		return Data{Raw: raw, Object: object, structured: true}, nil

	default:
		return Data{}, fmt.Errorf("data attribute is valid JSON but neither array nor object")
	}
}
