package node

import (
	"context"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Component returns the node as a templ component so it can be composed
// into templ layouts or rendered through any templ-aware response helper.
func (n *Node) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(ctx, w)
	})
}

// Render writes the node as HTML. Text and attribute values are escaped;
// void elements render self-contained with their children omitted.
// Rendering a nil node writes nothing.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	if n == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if n.Kind == KindText {
		_, err := io.WriteString(w, html.EscapeString(n.Text))
		return err
	}

	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	// Stable attribute order keeps output deterministic across renders.
	names := make([]string, 0, len(n.Props))
	for name := range n.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attr := ` ` + name + `="` + html.EscapeString(n.Props[name]) + `"`
		if _, err := io.WriteString(w, attr); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if IsVoid(n.Tag) {
		return nil
	}

	for _, c := range n.Children {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// String renders the node to an HTML string. Intended for tests and
// diagnostics; write errors cannot occur against the in-memory buffer.
func (n *Node) String() string {
	var sb strings.Builder
	_ = n.Render(context.Background(), &sb)
	return sb.String()
}
