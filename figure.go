package postkit

import (
	"html/template"
	"strings"
)

// Figure blocks are inserted into the document buffer as raw HTML; the
// compiler passes them through and the normalizer owns their shape from
// there. html/template handles attribute and text escaping.
var (
	creditFigureTmpl = template.Must(template.New("creditFigure").Parse(
		`<figure>
  <img src="{{.ImageSrc}}" alt="{{.ImageAlt}}">
  <figcaption>Photo by <a href="{{.PhotographerURL}}">{{.Photographer}}</a> on <a href="{{.SourceURL}}">{{.SourceName}}</a></figcaption>
</figure>`))

	articleFigureTmpl = template.Must(template.New("articleFigure").Parse(
		`<figure>
  <img src="{{.Src}}" alt="{{.Alt}}">{{if .Caption}}
  <figcaption>{{.Caption}}</figcaption>{{end}}
</figure>`))
)

// FigureMarkdown renders the attribution as the raw figure block the editor
// inserts into the buffer, crediting photographer and source.
func (a *Attribution) FigureMarkdown() string {
	var sb strings.Builder
	// Execute cannot fail on a parsed template with a plain struct.
	_ = creditFigureTmpl.Execute(&sb, a)
	return sb.String()
}

// FigureMarkdown renders the image reference as a raw figure block, with
// the caption as figcaption when present.
func (img ArticleImage) FigureMarkdown() string {
	var sb strings.Builder
	_ = articleFigureTmpl.Execute(&sb, img)
	return sb.String()
}
