package bundle

import "github.com/dmitrymomot/overlay/core/pattern"

// Message is a named translation unit: an optional value pattern plus named
// attribute patterns. A nil Value is valid and signals attributes-only
// usage, where the translation localizes element attributes (title, aria
// labels and the like) without overriding the element's own content.
type Message struct {
	ID         string
	Value      *pattern.Pattern
	Attributes map[string]*pattern.Pattern
}

// NewMessage builds a message from raw pattern sources. An empty value
// yields a nil Value; empty attribute sources are skipped.
func NewMessage(id, value string, attributes map[string]string) *Message {
	m := &Message{ID: id}
	if value != "" {
		m.Value = pattern.Compile(value)
	}
	if len(attributes) > 0 {
		m.Attributes = make(map[string]*pattern.Pattern, len(attributes))
		for name, src := range attributes {
			if src == "" {
				continue
			}
			m.Attributes[name] = pattern.Compile(src)
		}
	}
	return m
}

// Attribute returns the named attribute pattern, or nil when absent.
func (m *Message) Attribute(name string) *pattern.Pattern {
	if m == nil {
		return nil
	}
	return m.Attributes[name]
}
