package postkit

import (
	"fmt"

	"github.com/avasseur/go-postkit/internal/fileutil"
	"github.com/avasseur/go-postkit/internal/frontmatter"
)

// Export is the single-file result of exporting a post: the serialized
// front matter header, a blank line, and the raw markup body.
type Export struct {
	Filename string // derived from the title, e.g. my-post.md
	Content  string
}

// Export validates the metadata and assembles the exported document.
// The buffer is included verbatim; it is never compiled for export.
func (e *Editor) Export(meta Metadata, markdown string) (*Export, error) {
	if meta.Title == "" {
		return nil, ErrEmptyTitle
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	filename, err := fileutil.ExportFilename(meta.Title)
	if err != nil {
		return nil, err
	}

	// Empty tags must serialize as an explicit empty sequence, not a
	// missing key.
	record := meta.clone()
	if record.Tags == nil {
		record.Tags = []string{}
	}

	content, err := frontmatter.ComposeDocument(record, markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeaderSerialize, err)
	}

	return &Export{Filename: filename, Content: content}, nil
}

// ParseDocument splits a previously exported document back into its
// metadata record and raw markup body. Documents without a front matter
// header return empty metadata and the content unchanged.
func ParseDocument(content string) (Metadata, string, error) {
	var meta Metadata
	body, err := frontmatter.Parse(content, &meta)
	if err != nil {
		return Metadata{}, "", err
	}
	return meta, body, nil
}
