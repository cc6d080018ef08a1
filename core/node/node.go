package node

import "maps"

// Kind discriminates between the two node shapes.
type Kind int

const (
	// KindText is a plain text node carrying translator-visible content.
	KindText Kind = iota
	// KindElement is an element node with a tag, props and children.
	KindElement
)

// Props holds element attributes as a flat name/value map.
type Props map[string]string

// Node is the typed UI node the overlay operates on. A node is either a
// text node (Text set, everything else empty) or an element node (Tag set,
// optional Props and Children). Nodes are treated as immutable once
// constructed; all overlay operations produce new nodes via CloneWith.
type Node struct {
	Kind     Kind
	Tag      string
	Props    Props
	Children []*Node
	Text     string
}

// Text creates a text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Element creates an element node with the given tag, props and children.
// The props map is copied so later changes to the argument do not leak into
// the node.
func Element(tag string, props Props, children ...*Node) *Node {
	n := &Node{Kind: KindElement, Tag: tag}
	if len(props) > 0 {
		n.Props = maps.Clone(props)
	}
	if len(children) > 0 {
		n.Children = append([]*Node(nil), children...)
	}
	return n
}

// IsElement reports whether the node is a non-nil element node.
func (n *Node) IsElement() bool {
	return n != nil && n.Kind == KindElement
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}

// CloneWith returns a copy of the node with props merged on top of the
// original ones and children replaced. A nil children argument keeps the
// original child list (shared, since nodes are immutable); pass an empty
// non-nil slice to drop children. The receiver is never mutated.
func (n *Node) CloneWith(props Props, children []*Node) *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Tag: n.Tag, Text: n.Text}
	if len(n.Props) > 0 || len(props) > 0 {
		merged := make(Props, len(n.Props)+len(props))
		maps.Copy(merged, n.Props)
		maps.Copy(merged, props)
		out.Props = merged
	}
	switch {
	case children != nil:
		out.Children = append([]*Node(nil), children...)
	case len(n.Children) > 0:
		out.Children = append([]*Node(nil), n.Children...)
	}
	return out
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Tag: n.Tag, Text: n.Text}
	if len(n.Props) > 0 {
		out.Props = maps.Clone(n.Props)
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}
