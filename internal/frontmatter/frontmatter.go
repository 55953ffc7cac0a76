// Package frontmatter serializes and parses YAML front matter blocks.
// It isolates the YAML dependencies so callers never touch them directly.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	extfm "github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"
)

// Delimiter is the literal marker line above and below the header.
const Delimiter = "---"

// Sentinel errors for front matter operations.
var (
	ErrNilValue = errors.New("frontmatter: nil value")
	ErrMarshal  = errors.New("frontmatter: cannot serialize metadata")
	ErrParse    = errors.New("frontmatter: cannot parse header")
)

// Serialize renders v as a delimited YAML front matter block. Mapping keys
// follow the struct's declared field order, and Unicode is preserved
// literally. The result has no trailing newline after the closing delimiter.
func Serialize(v any) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}

	out, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarshal, err)
	}
	return Delimiter + "\n" + string(out) + Delimiter, nil
}

// ComposeDocument joins a serialized header and the raw markup body into
// the single exported document: header, blank line, body.
func ComposeDocument(v any, body string) (string, error) {
	header, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return header + "\n\n" + body, nil
}

// Parse splits a document into its front matter, decoded into v, and the
// remaining body. Documents without a header leave v untouched and return
// the content unchanged.
func Parse(content string, v any) (body string, err error) {
	rest, err := extfm.Parse(strings.NewReader(content), v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	// The blank separator line after the header belongs to the format,
	// not to the body.
	return strings.TrimPrefix(string(rest), "\n"), nil
}
