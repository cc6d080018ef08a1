package bundle

import (
	"fmt"

	"golang.org/x/text/language"
)

// Bundle holds the messages of one locale chain. Bundles are built up front
// (constructor plus Load/Add calls) and then treated as read-only; lookups
// are plain map reads, safe for concurrent use once loading is done.
type Bundle struct {
	locales  []language.Tag
	messages map[string]*Message
}

// New creates a bundle for the given locales, primary first.
func New(locales ...string) (*Bundle, error) {
	if len(locales) == 0 {
		return nil, ErrNoLocale
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, loc, err)
		}
		tags = append(tags, tag)
	}
	return &Bundle{
		locales:  tags,
		messages: make(map[string]*Message),
	}, nil
}

// MustNew is New that panics on error, for static bundle declarations.
func MustNew(locales ...string) *Bundle {
	b, err := New(locales...)
	if err != nil {
		panic(err)
	}
	return b
}

// AddMessage registers a message, replacing any previous one with the same
// id.
func (b *Bundle) AddMessage(msg *Message) error {
	if msg == nil || msg.ID == "" {
		return ErrEmptyMessageID
	}
	b.messages[msg.ID] = msg
	return nil
}

// HasMessage reports whether the bundle contains the given message id.
func (b *Bundle) HasMessage(id string) bool {
	if b == nil {
		return false
	}
	_, ok := b.messages[id]
	return ok
}

// Message returns the message for id, or (nil, false) when absent.
func (b *Bundle) Message(id string) (*Message, bool) {
	if b == nil {
		return nil, false
	}
	msg, ok := b.messages[id]
	return msg, ok
}

// Len returns the number of messages in the bundle.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.messages)
}

// Locales returns the bundle's locales, primary first.
func (b *Bundle) Locales() []language.Tag {
	if b == nil {
		return nil
	}
	return b.locales
}
