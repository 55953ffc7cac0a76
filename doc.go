// Package postkit compiles blog-post markdown to sanitized preview HTML
// and exports posts as a YAML front matter header plus the raw markup body.
//
// # Quick Start
//
// Create an editor, render a preview, and export:
//
//	ed := postkit.New()
//
//	preview, err := ed.Preview(ctx, "# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meta := postkit.NewMetadata(time.Now())
//	meta.Title = "Hello"
//	out, err := ed.Export(meta, "# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(out.Filename, []byte(out.Content), 0644)
//
// # Preview Pipeline
//
// Preview recomputes from the buffer on every call:
//
//  1. Markdown preprocessing (line-ending normalization, blank-line compression)
//  2. Markdown to HTML via Goldmark (tables, definition lists, typographic
//     punctuation, hard line breaks, heading slugs, highlighted fenced code,
//     raw figure passthrough)
//  3. Figure normalization on the parsed HTML tree (escaped figcaption
//     markup re-parsed, bare images wrapped in figures)
//  4. Sanitization via bluemonday
//
// Compilation never fails on malformed markup; anything unparseable
// degrades to literal text so the preview is never blank.
//
// # Attribution Snippets
//
// ParseAttribution extracts photographer and source credits from a pasted
// attribution snippet; a nil result means the paste was not recognized.
// FigureMarkdown renders the credit back as the raw figure block inserted
// into the buffer.
//
// # Sessions
//
// The pipeline is stateless. SessionStore holds per-session buffers and
// metadata records for multi-session deployments; sessions never share
// state.
package postkit
