// Package fileutil provides file and filename utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrEmptySlug indicates a title that reduces to nothing after slugging.
var ErrEmptySlug = errors.New("title produces an empty filename")

// Quote characters stripped from titles before slugging so that
// `A "Great" Day` becomes a-great-day, not a--great--day.
var quoteChars = strings.NewReplacer(
	`"`, "",
	"'", "",
	"‘", "", // left single curly quote
	"’", "", // right single curly quote
	"“", "", // left double curly quote
	"”", "", // right double curly quote
)

// nonSlugRun matches every run of characters outside [a-z0-9].
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify reduces a post title to its filename stem: lowercase, quotes
// stripped, every run of non-alphanumeric characters collapsed to a single
// hyphen, leading and trailing hyphens trimmed.
func Slugify(title string) string {
	s := quoteChars.Replace(strings.ToLower(title))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ExportFilename derives the export filename from a post title.
// Returns ErrEmptySlug when the title carries no usable characters.
func ExportFilename(title string) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptySlug, title)
	}
	return slug + ".md", nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}
