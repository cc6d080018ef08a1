// Package overlay merges localized messages into developer-authored UI
// elements under strict allow-list control.
//
// The reconciler takes a message id, a template element, variable values
// and two allow-lists, and produces one output node. Translators control
// text content, the attribute values the developer explicitly allowed, and
// which pre-approved inline elements to use; they can never introduce new
// element types, attributes or event handlers. Every output node derives
// from the caller's template or the caller's Elems entries.
//
// # Basic usage
//
//	en := bundle.MustNew("en")
//	_ = en.AddMessage(bundle.NewMessage("greeting", "Hello, {$name}!", nil))
//
//	ctx, err := overlay.New(
//		overlay.WithBundles(en),
//		overlay.WithErrorSink(func(err error) { slog.Warn("l10n", logger.Error(err)) }),
//	)
//	if err != nil { ... }
//
//	out, err := ctx.Render(overlay.Request{
//		ID:       "greeting",
//		Template: []*node.Node{node.Element("p", nil)},
//		Vars:     map[string]any{"name": "Ada"},
//	})
//	// out renders as <p>Hello, Ada!</p>
//
// # Attribute localization
//
// Attributes are opt-in per call. A prop is set only when the developer
// allowed the name and the message defines it:
//
//	out, _ := ctx.Render(overlay.Request{
//		ID:       "greeting",
//		Template: []*node.Node{node.Element("p", nil)},
//		Attrs:    map[string]bool{"title": true},
//	})
//
// # Markup reconciliation
//
// When a formatted value contains inline markup, the value is parsed into a
// flat sequence and merged against the Elems allow-list. For the message
// value "Click <a>here</a> now" with Elems{"a": link}, the output children
// are the text "Click ", a clone of link whose sole content is "here", and
// the text " now". Without the "a" entry the tag is stripped and only
// "here" survives as text. The caller-supplied element keeps its own props
// untouched either way.
//
// # Error handling
//
// Fatal conditions (missing context, a template with more than one sibling
// node) are caller bugs: Render returns an error and no output. Resolution
// and formatting problems are recoverable: they are flushed to the
// context's sink as the call returns, and the output falls back to the
// template unchanged or best-effort text. Rendering never leaves the UI
// blank because a translation is broken.
//
// Rendering is synchronous, performs no I/O and shares no mutable state
// between calls; one Context safely serves concurrent renders.
package overlay
