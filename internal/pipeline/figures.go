package pipeline

import (
	"context"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FigureNormalizer abstracts the figure/caption normalization pass.
type FigureNormalizer interface {
	NormalizeHTML(ctx context.Context, content string) (string, error)
}

// TreeNormalizer normalizes figures on the parsed HTML tree.
type TreeNormalizer struct{}

// NormalizeHTML parses an HTML fragment, normalizes its figures, and
// serializes it back. Applying it to its own output is a no-op.
func (t *TreeNormalizer) NormalizeHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	frag, err := ParseFragment(content)
	if err != nil {
		return "", err
	}
	NormalizeFigures(frag)
	return frag.Render()
}

// NormalizeFigures rewrites the fragment in place with two passes:
//
//  1. Caption repair: a figcaption whose content was HTML-escaped by the
//     markdown compiler (its credit anchor arrives as literal text) is
//     re-parsed into a real element subtree.
//  2. Bare-image wrapping: an img with no figure ancestor is wrapped in a
//     figure, with the alt text appended as a figcaption when present.
//
// Caption repair runs first so an image restored from escaped caption text
// is already inside its original figure when pass 2 looks at it.
func NormalizeFigures(f *Fragment) {
	repairCaptions(f)
	wrapBareImages(f)
}

// repairCaptions re-parses figcaption content that carries escaped markup.
//
// Only captions whose children are all text nodes are candidates: that is
// the signature of compiler-escaped markup. The text is re-parsed as a
// fragment and adopted only when it yields at least one element, so
// captions with literal angle brackets ("5 < 6") stay untouched. Escaped
// text anywhere else in the document is never unescaped.
func repairCaptions(f *Fragment) {
	var captions []*html.Node
	f.Walk(func(n *html.Node) bool {
		if elementIs(n, atom.Figcaption) {
			captions = append(captions, n)
		}
		return true
	})

	for _, caption := range captions {
		text, ok := textOnlyContent(caption)
		if !ok || !strings.Contains(text, "<") {
			continue
		}

		frag, err := ParseFragment(text)
		if err != nil || !containsElement(frag.container) {
			continue
		}

		for caption.FirstChild != nil {
			caption.RemoveChild(caption.FirstChild)
		}
		adoptChildren(caption, frag.container)
	}
}

// wrapBareImages wraps every img outside a figure in a new figure element.
func wrapBareImages(f *Fragment) {
	var images []*html.Node
	f.Walk(func(n *html.Node) bool {
		if elementIs(n, atom.Img) && !hasAncestor(n, atom.Figure) {
			images = append(images, n)
		}
		return true
	})

	for _, img := range images {
		figure := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Figure,
			Data:     "figure",
		}

		// A paragraph holding only the image is replaced wholesale, so the
		// figure does not end up nested inside a p.
		target := img
		if parent := img.Parent; elementIs(parent, atom.P) && onlyChildIgnoringSpace(parent, img) {
			target = parent
		}

		target.Parent.InsertBefore(figure, target)
		target.Parent.RemoveChild(target)
		if target != img {
			img.Parent.RemoveChild(img)
		}
		figure.AppendChild(img)

		if alt := attrValue(img, "alt"); alt != "" && captionSafe(alt) {
			caption := &html.Node{
				Type:     html.ElementNode,
				DataAtom: atom.Figcaption,
				Data:     "figcaption",
			}
			caption.AppendChild(&html.Node{Type: html.TextNode, Data: alt})
			figure.AppendChild(caption)
		}
	}
}

// captionSafe reports whether alt text can be carried as a figcaption
// without the repair pass later mistaking it for compiler-escaped markup.
// Alt text that would itself re-parse into elements gets no caption: alt
// stays ordinary text, and normalization stays idempotent across
// render/parse round trips.
func captionSafe(alt string) bool {
	if !strings.Contains(alt, "<") {
		return true
	}
	frag, err := ParseFragment(alt)
	return err == nil && !containsElement(frag.container)
}

// textOnlyContent returns the concatenated text of n's children and whether
// every child is a text node.
func textOnlyContent(n *html.Node) (string, bool) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			return "", false
		}
		sb.WriteString(c.Data)
	}
	return sb.String(), true
}

// containsElement reports whether any descendant of n is an element node.
func containsElement(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || containsElement(c) {
			return true
		}
	}
	return false
}

// adoptChildren moves every child of src under dst, preserving order.
func adoptChildren(dst, src *html.Node) {
	for src.FirstChild != nil {
		c := src.FirstChild
		src.RemoveChild(c)
		dst.AppendChild(c)
	}
}

// onlyChildIgnoringSpace reports whether child is the only child of parent
// apart from whitespace-only text nodes.
func onlyChildIgnoringSpace(parent, child *html.Node) bool {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if c == child {
			continue
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		return false
	}
	return true
}
