package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/overlay/core/node"
)

// ParsedNode is one entry of a parsed translation value: either a text run
// or an element descriptor. Parsing is deliberately flat: an element node
// surfaces its tag and the concatenated text of its subtree only, never a
// nested structure, so a translation can pick an allow-listed element and
// fill it with text but cannot smuggle deeper markup through it.
type ParsedNode struct {
	Kind node.Kind
	// Text is the content of a text node.
	Text string
	// Tag is the lower-cased tag name of an element node.
	Tag string
	// Content is the flattened text content of an element node.
	Content string
}

// ContainsMarkup reports whether the string carries markup indicators: an
// opening-tag character or an HTML-entity-like sequence. Values without
// them skip parsing entirely and take the flat substitution path.
func ContainsMarkup(s string) bool {
	return strings.ContainsAny(s, "<&")
}

// Parse turns a formatted translation value into its flat node sequence.
// The value is parsed as an HTML fragment in a div context, which
// lower-cases tag names, decodes entities, and ignores stray closing tags
// instead of truncating what follows them. Parse failures degrade to a
// single text node with the raw input, keeping the content visible.
func Parse(s string) []ParsedNode {
	nodes, err := html.ParseFragment(strings.NewReader(s), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return []ParsedNode{{Kind: node.KindText, Text: s}}
	}

	var out []ParsedNode
	for _, c := range nodes {
		switch c.Type {
		case html.TextNode:
			out = append(out, ParsedNode{Kind: node.KindText, Text: c.Data})
		case html.ElementNode:
			out = append(out, ParsedNode{
				Kind:    node.KindElement,
				Tag:     c.Data,
				Content: textContent(c),
			})
		}
	}
	return out
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
