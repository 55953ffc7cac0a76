// Package attribution extracts structured photo credits from pasted
// third-party attribution snippets.
package attribution

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// utmQuery is the fixed tracking query appended to credit links that have
// no query string of their own.
const utmQuery = "?utm_content=creditCopyText&utm_medium=referral&utm_source=unsplash"

// Block is the structured credit extracted from a pasted snippet. It lives
// only for the duration of the parse call; nothing retains it.
type Block struct {
	ImageSrc        string
	ImageAlt        string
	Photographer    string
	PhotographerURL string
	SourceName      string
	SourceURL       string
}

// Parse extracts a credit block from a pasted attribution snippet: one img
// plus at least two anchors, the first naming the photographer and the
// second the source. Anything else — plain text, a link-less div, malformed
// markup — returns nil. A nil result means "not an attribution snippet",
// never a failure.
func Parse(snippet string) *Block {
	if strings.TrimSpace(snippet) == "" {
		return nil
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(snippet), context)
	if err != nil {
		return nil
	}

	var img *html.Node
	var anchors []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Img:
				if img == nil {
					img = n
				}
			case atom.A:
				anchors = append(anchors, n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	if img == nil || len(anchors) < 2 {
		return nil
	}

	return &Block{
		ImageSrc:        attr(img, "src"),
		ImageAlt:        attr(img, "alt"),
		Photographer:    strings.TrimSpace(text(anchors[0])),
		PhotographerURL: withTracking(attr(anchors[0], "href")),
		SourceName:      strings.TrimSpace(text(anchors[1])),
		SourceURL:       withTracking(attr(anchors[1], "href")),
	}
}

// withTracking appends the UTM query unless the URL already carries one.
// The first ? wins; a second query string is never appended.
func withTracking(url string) string {
	if url == "" || strings.Contains(url, "?") {
		return url
	}
	return url + utmQuery
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return sb.String()
}
