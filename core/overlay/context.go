package overlay

import (
	"errors"

	"github.com/dmitrymomot/overlay/core/bundle"
	"github.com/dmitrymomot/overlay/core/markup"
	"github.com/dmitrymomot/overlay/core/node"
)

// MarkupParser turns a formatted value into its flat node sequence. It is
// an injected capability so the reconciler can run against a fake parser in
// tests; a nil parser disables the markup path entirely and inline markup
// then renders as literal text.
type MarkupParser func(string) []markup.ParsedNode

// Context is the localization context the reconciler runs against: an
// ordered bundle fallback chain, a markup parser, a diagnostic sink and the
// void-tag classification. It is passed explicitly rather than resolved
// from ambient scope, and is immutable after construction, so one context
// can serve concurrent rendering calls.
type Context struct {
	bundles []*bundle.Bundle
	parser  MarkupParser
	sink    func(error)
	isVoid  func(tag string) bool
}

// Option configures a Context during construction.
type Option func(*Context) error

// New creates a localization context. By default it has no bundles, parses
// markup with the markup package, classifies void tags with the node
// package table, and drops diagnostics.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		parser: markup.Parse,
		isVoid: node.IsVoid,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithBundles sets the bundle fallback chain, resolution order first to
// last. Nil entries are rejected.
func WithBundles(bundles ...*bundle.Bundle) Option {
	return func(c *Context) error {
		for _, b := range bundles {
			if b == nil {
				return errors.New("overlay: bundle cannot be nil")
			}
		}
		c.bundles = append([]*bundle.Bundle(nil), bundles...)
		return nil
	}
}

// WithMarkupParser replaces the default markup parser.
func WithMarkupParser(p MarkupParser) Option {
	return func(c *Context) error {
		if p == nil {
			return errors.New("overlay: markup parser cannot be nil, use WithoutMarkup to disable")
		}
		c.parser = p
		return nil
	}
}

// WithoutMarkup disables markup reconciliation: formatted values always
// take the flat substitution path, markup and all.
func WithoutMarkup() Option {
	return func(c *Context) error {
		c.parser = nil
		return nil
	}
}

// WithErrorSink sets the fire-and-forget diagnostic sink. Each Render call
// flushes its own error batch to the sink before returning.
func WithErrorSink(sink func(error)) Option {
	return func(c *Context) error {
		if sink == nil {
			return errors.New("overlay: error sink cannot be nil")
		}
		c.sink = sink
		return nil
	}
}

// WithVoidTags replaces the void-tag classification table shared by
// template and allow-listed element handling.
func WithVoidTags(tags map[string]bool) Option {
	return func(c *Context) error {
		if len(tags) == 0 {
			return errors.New("overlay: void tag table cannot be empty")
		}
		copied := make(map[string]bool, len(tags))
		for tag, v := range tags {
			copied[tag] = v
		}
		c.isVoid = func(tag string) bool { return copied[tag] }
		return nil
	}
}

// Bundles returns the context's bundle chain in resolution order.
func (c *Context) Bundles() []*bundle.Bundle {
	if c == nil {
		return nil
	}
	return c.bundles
}

// HasMessage reports whether any bundle in the chain has the message.
func (c *Context) HasMessage(id string) bool {
	if c == nil {
		return false
	}
	for _, b := range c.bundles {
		if b.HasMessage(id) {
			return true
		}
	}
	return false
}
