package pipeline

import "github.com/microcosm-cc/bluemonday"

// HTMLSanitizer abstracts the output sanitization pass.
type HTMLSanitizer interface {
	Sanitize(content string) string
}

// BluemondaySanitizer strips everything the preview surface does not render.
//
// The compiler passes raw HTML through unparsed so authored figure blocks
// survive; this stage is what makes the combined output safe to display.
type BluemondaySanitizer struct {
	policy *bluemonday.Policy
}

// NewBluemondaySanitizer builds a policy covering the markup dialect's
// output: prose, lists, tables, code with chroma classes, headings with
// slug ids, and the figure/img/figcaption contract.
func NewBluemondaySanitizer() *BluemondaySanitizer {
	p := bluemonday.NewPolicy()

	p.AllowStandardAttributes()
	p.AllowStandardURLs()
	// Previews render the author's own links; no rel rewriting.
	p.RequireNoFollowOnLinks(false)

	p.AllowElements(
		"p", "br", "hr", "blockquote",
		"em", "strong", "del", "s", "mark",
		"sup", "sub",
		"pre", "code",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tr", "th", "td",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"figure", "figcaption",
		"a", "img",
	)

	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("class").OnElements("pre", "code", "span", "div")
	p.AllowAttrs("align").OnElements("th", "td")
	// AllowStandardURLs only constrains how URLs are validated; the
	// attributes themselves still need explicit allowances.
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.AllowAttrs("start").OnElements("ol")
	// GFM task-list checkboxes.
	p.AllowAttrs("type", "checked", "disabled").OnElements("input")

	return &BluemondaySanitizer{policy: p}
}

// Sanitize returns the sanitized HTML. It never fails; disallowed markup
// is removed, not escaped.
func (s *BluemondaySanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}
