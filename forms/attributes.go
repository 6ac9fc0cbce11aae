package forms

import (
	"maps"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// Attributes is an ordered set of HTML attributes. Keys are case-sensitive and unique.
type Attributes struct {
	keys   []string
	values map[string]string
}

func (attributes *Attributes) Set(key string, value string) *Attributes {
	return attributes.SetMany(map[string]string{key: value})
}

// SetMany merges mapping into the set. Existing keys keep their position and take the new
// value. New keys are appended in sorted order.
func (attributes *Attributes) SetMany(mapping map[string]string) *Attributes {
	if mapping == nil {
		return attributes
	}
	if attributes.values == nil {
		attributes.values = make(map[string]string, len(mapping))
	}
	for _, key := range slices.Sorted(maps.Keys(mapping)) {
		if _, ok := attributes.values[key]; !ok {
			attributes.keys = append(attributes.keys, key)
		}
		attributes.values[key] = mapping[key]
	}
	return attributes
}

func (attributes *Attributes) Remove(key string) *Attributes {
	if _, ok := attributes.values[key]; !ok {
		return attributes
	}
	delete(attributes.values, key)
	for i, k := range attributes.keys {
		if k == key {
			attributes.keys = append(attributes.keys[:i], attributes.keys[i+1:]...)
			break
		}
	}
	return attributes
}

func (attributes *Attributes) Get(key string) (string, bool) {
	value, ok := attributes.values[key]
	return value, ok
}

func (attributes *Attributes) Has(key string) bool {
	_, ok := attributes.values[key]
	return ok
}

// All returns a copy of the current mapping.
func (attributes *Attributes) All() map[string]string {
	result := make(map[string]string, len(attributes.values))
	for key, value := range attributes.values {
		result[key] = value
	}
	return result
}

// Keys returns the keys in render order.
func (attributes *Attributes) Keys() []string {
	return append([]string(nil), attributes.keys...)
}

func (attributes *Attributes) Len() int {
	return len(attributes.keys)
}

// HTML renders ` key="value"` for each attribute in order.
func (attributes *Attributes) HTML() string {
	var html strings.Builder
	for _, key := range attributes.keys {
		writeAttribute(&html, key, attributes.values[key])
	}
	return html.String()
}

func writeAttribute(html *strings.Builder, key string, value string) {
	html.WriteString(" ")
	html.WriteString(key)
	html.WriteString(`="`)
	html.WriteString(templ.EscapeString(value))
	html.WriteString(`"`)
}
