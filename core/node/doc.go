// Package node defines the typed UI node model the overlay library operates
// on: text and element nodes with flat prop maps and child lists.
//
// The model deliberately avoids any host-framework coupling. An element is
// identified by its tag, carries a string prop map, and owns an ordered
// child list; a text node carries content only. Nodes are immutable by
// convention: every transforming operation (CloneWith, Clone) returns a new
// node and leaves its inputs untouched, which is what makes the overlay's
// "clone with prop-merge and child-replacement" operation a pure function.
//
// # Building nodes
//
//	link := node.Element("a", node.Props{"href": "/docs", "class": "link"})
//	para := node.Element("p", nil,
//		node.Text("Read the "),
//		link.CloneWith(nil, []*node.Node{node.Text("docs")}),
//		node.Text("."),
//	)
//
// # Void elements
//
// Tags such as img and br cannot own children. IsVoid classifies them using
// the standard HTML void element table, and rendering enforces the
// classification by never emitting children or a closing tag for them.
//
// # Rendering
//
// Nodes render to HTML with escaping applied to all text and attribute
// values. Component adapts a node to the templ.Component interface:
//
//	var out *node.Node = renderSomething()
//	_ = out.Component().Render(ctx, w)
package node
