package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is the structural tree of a compiled preview: an ordered forest
// of element, text, and raw-HTML nodes parsed in body context. It is
// recomputed from the document buffer on every compile; it carries no
// identity across calls.
type Fragment struct {
	container *html.Node // DocumentNode holding the parsed forest
}

// ParseFragment parses an HTML fragment in body context.
func ParseFragment(content string) (*Fragment, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return &Fragment{container: container}, nil
}

// Render serializes the fragment back to HTML, without any document wrapper.
func (f *Fragment) Render() (string, error) {
	var buf strings.Builder
	for c := f.container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// Walk visits every node in the fragment in document order.
// The visitor returns false to stop descending into a subtree.
func (f *Fragment) Walk(visit func(*html.Node) bool) {
	walkNode(f.container, visit)
}

func walkNode(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkNode(c, visit)
	}
}

// elementIs reports whether n is an element with the given atom.
func elementIs(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}

// hasAncestor reports whether any ancestor of n is an element with the given atom.
func hasAncestor(n *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if elementIs(p, a) {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
