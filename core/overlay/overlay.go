package overlay

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/overlay/core/bundle"
	"github.com/dmitrymomot/overlay/core/markup"
	"github.com/dmitrymomot/overlay/core/node"
	"github.com/dmitrymomot/overlay/core/pattern"
)

// Request describes one reconciliation call.
type Request struct {
	// ID names the message to localize.
	ID string
	// Template carries the developer-authored element the translation is
	// merged into: zero or one node. More than one is a caller bug.
	Template []*node.Node
	// Vars supplies variable values for pattern formatting.
	Vars map[string]any
	// Attrs is the allow-list of attribute names the translation may set.
	// Attributes are opt-in per call; an absent map permits none.
	Attrs map[string]bool
	// Elems maps tag names to the pre-approved elements a translation with
	// inline markup may pick from. Tags outside the map are neutralized to
	// their text content.
	Elems map[string]*node.Node
}

// Render reconciles the message into the request template and returns the
// final node. All inputs are borrowed for the duration of the call; the
// result is a fresh node tree and no caller-owned structure is mutated.
//
// Fatal conditions (nil context, more than one template node) return an
// error and no output. Everything else degrades: resolution failures fall
// back to the template unchanged, formatting problems keep best-effort
// text, and every recoverable error is flushed to the context's sink
// before Render returns.
func (c *Context) Render(req Request) (*node.Node, error) {
	if c == nil {
		return nil, ErrMissingContext
	}
	if len(req.Template) > 1 {
		return nil, fmt.Errorf("%w, got %d siblings", ErrInvalidChildCount, len(req.Template))
	}
	var tpl *node.Node
	if len(req.Template) == 1 {
		tpl = req.Template[0]
	}

	var errs pattern.ErrorList
	defer c.flush(&errs)

	msg, ok := c.resolve(req.ID, &errs)
	if !ok {
		return tpl.Clone(), nil
	}

	props := c.localizeAttributes(msg, req.Attrs, req.Vars, &errs)

	// Flat path: no renderable element to merge into. The formatted value
	// (if any) becomes the whole output; otherwise the fallback content
	// stands.
	if !tpl.IsElement() {
		if msg.Value != nil {
			return node.Text(msg.Value.Format(req.Vars, &errs)), nil
		}
		return tpl.Clone(), nil
	}

	// Void templates cannot own children, so only props localize.
	if c.isVoid(strings.ToLower(tpl.Tag)) {
		return tpl.CloneWith(props, []*node.Node{}), nil
	}

	// Attributes-only message: the developer's children stay as-is. An
	// absent translation value does not erase anything.
	if msg.Value == nil {
		return tpl.CloneWith(props, nil), nil
	}

	value := msg.Value.Format(req.Vars, &errs)

	if c.parser == nil || !markup.ContainsMarkup(value) {
		return tpl.CloneWith(props, []*node.Node{node.Text(value)}), nil
	}

	return tpl.CloneWith(props, c.reconcileMarkup(value, req.Elems)), nil
}

// resolve looks the message up across the bundle chain, classifying the
// not-found cases. Exactly one error is appended per failed resolution.
func (c *Context) resolve(id string, errs *pattern.ErrorList) (*bundle.Message, bool) {
	if id == "" {
		errs.Append(ErrNoMessageID)
		return nil, false
	}
	if len(c.bundles) == 0 {
		errs.Append(ErrNoBundlesLoaded)
		return nil, false
	}
	for _, b := range c.bundles {
		if msg, ok := b.Message(id); ok {
			return msg, true
		}
	}
	errs.Append(fmt.Errorf("%w: %q", ErrMessageNotFound, id))
	return nil, false
}

// localizeAttributes computes the prop overrides: only names the caller
// allowed AND the message defines. A failing attribute pattern still
// produces best-effort text and never blocks the other attributes.
func (c *Context) localizeAttributes(msg *bundle.Message, attrs map[string]bool, vars map[string]any, errs *pattern.ErrorList) node.Props {
	if len(attrs) == 0 || len(msg.Attributes) == 0 {
		return nil
	}
	var props node.Props
	for name, allowed := range attrs {
		if !allowed {
			continue
		}
		p := msg.Attribute(name)
		if p == nil {
			continue
		}
		if props == nil {
			props = make(node.Props)
		}
		props[name] = p.Format(vars, errs)
	}
	return props
}

// reconcileMarkup merges a parsed value sequence against the caller's
// element allow-list, producing exactly one output node per parsed entry
// in parse order. Translators choose which pre-approved element to use and
// the text inside it; tags outside the allow-list are stripped down to
// their text, and allow-listed void elements pass through with translator
// text discarded.
func (c *Context) reconcileMarkup(value string, elems map[string]*node.Node) []*node.Node {
	parsed := c.parser(value)

	lookup := make(map[string]*node.Node, len(elems))
	for tag, el := range elems {
		// Case folded: the parser lower-cases tag names.
		lookup[strings.ToLower(tag)] = el
	}

	out := make([]*node.Node, 0, len(parsed))
	for _, pn := range parsed {
		if pn.Kind == node.KindText {
			out = append(out, node.Text(pn.Text))
			continue
		}

		// Folded on both sides so a parser that preserves case still
		// matches the allow-list.
		el, ok := lookup[strings.ToLower(pn.Tag)]
		if !ok || !el.IsElement() {
			out = append(out, node.Text(pn.Content))
			continue
		}
		if c.isVoid(strings.ToLower(el.Tag)) {
			out = append(out, el.Clone())
			continue
		}

		content := []*node.Node{}
		if pn.Content != "" {
			content = append(content, node.Text(pn.Content))
		}
		out = append(out, el.CloneWith(nil, content))
	}
	return out
}

// flush hands the call's error batch to the sink, preserving append order.
func (c *Context) flush(errs *pattern.ErrorList) {
	if c.sink == nil {
		return
	}
	for _, err := range errs.Errors() {
		c.sink(err)
	}
}
