package postkit

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testMetadata() Metadata {
	meta := NewMetadata(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	meta.Title = "Hi There!"
	meta.Excerpt = "An excerpt"
	meta.SEO.Image.Src = "/img/cover.jpg"
	meta.SEO.Image.Alt = "cover"
	return meta
}

func TestEditor_Export_Format(t *testing.T) {
	t.Parallel()

	ed := New()
	body := "# Title\n\nSome **bold** text."

	out, err := ed.Export(testMetadata(), body)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if out.Filename != "hi-there.md" {
		t.Errorf("Filename = %q, want %q", out.Filename, "hi-there.md")
	}
	if !strings.HasPrefix(out.Content, "---\n") {
		t.Errorf("Content does not open with delimiter:\n%s", out.Content)
	}
	if !strings.HasSuffix(out.Content, "---\n\n"+body) {
		t.Errorf("Content does not end with header delimiter, blank line, body:\n%s", out.Content)
	}
	if !strings.Contains(out.Content, "title: Hi There!") {
		t.Errorf("Content missing title field:\n%s", out.Content)
	}
	if !strings.Contains(out.Content, "publishDate: 2026-08-30") {
		t.Errorf("Content missing publish date:\n%s", out.Content)
	}
	// The body is the raw markup, never compiled HTML.
	if strings.Contains(out.Content, "<h1") {
		t.Errorf("Content contains compiled HTML:\n%s", out.Content)
	}
}

func TestEditor_Export_EmptyTagsExplicit(t *testing.T) {
	t.Parallel()

	ed := New()
	meta := testMetadata()
	meta.Tags = nil

	out, err := ed.Export(meta, "body")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(out.Content, "tags: []") {
		t.Errorf("empty tags not an explicit empty sequence:\n%s", out.Content)
	}
}

func TestEditor_Export_RoundTrip(t *testing.T) {
	t.Parallel()

	ed := New()
	meta := testMetadata()
	if err := meta.AddTag("go"); err != nil {
		t.Fatal(err)
	}
	if err := meta.AddTag("editors"); err != nil {
		t.Fatal(err)
	}
	meta.AppendArticleImage(ArticleImage{
		Src:     "u",
		Alt:     "a",
		Caption: "cap",
		Source:  ImageSource{Name: "Unsplash", URL: "s"},
		Author:  "Jane",
	})
	body := "# Hello\n\nworld"

	out, err := ed.Export(meta, body)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, gotBody, err := ParseDocument(out.Content)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if got.Title != meta.Title || got.Excerpt != meta.Excerpt || got.PublishDate != meta.PublishDate {
		t.Errorf("round trip scalars = %+v, want %+v", got, meta)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "editors" {
		t.Errorf("round trip tags = %v, want %v", got.Tags, meta.Tags)
	}
	if got.SEO.Image.Src != meta.SEO.Image.Src || got.SEO.Image.Alt != meta.SEO.Image.Alt {
		t.Errorf("round trip seo = %+v, want %+v", got.SEO, meta.SEO)
	}
	if len(got.ArticleImages) != 1 || got.ArticleImages[0] != meta.ArticleImages[0] {
		t.Errorf("round trip articleImages = %+v, want %+v", got.ArticleImages, meta.ArticleImages)
	}
	if gotBody != body {
		t.Errorf("round trip body = %q, want %q", gotBody, body)
	}
}

func TestEditor_Export_EmptyTagsRoundTripAsEmptySequence(t *testing.T) {
	t.Parallel()

	ed := New()
	out, err := ed.Export(testMetadata(), "body")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	got, _, err := ParseDocument(out.Content)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if got.Tags == nil {
		t.Error("empty tags round-tripped as a missing key, want empty sequence")
	}
	if len(got.Tags) != 0 {
		t.Errorf("round trip tags = %v, want empty", got.Tags)
	}
}

func TestEditor_Export_Errors(t *testing.T) {
	t.Parallel()

	ed := New()

	tests := []struct {
		name    string
		mutate  func(*Metadata)
		wantErr error
	}{
		{
			name:    "empty title",
			mutate:  func(m *Metadata) { m.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "invalid publish date",
			mutate:  func(m *Metadata) { m.PublishDate = "not-a-date" },
			wantErr: ErrInvalidPublishDate,
		},
		{
			name:    "blank tag",
			mutate:  func(m *Metadata) { m.Tags = []string{"ok", "  "} },
			wantErr: ErrEmptyTag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta := testMetadata()
			tt.mutate(&meta)

			_, err := ed.Export(meta, "body")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDocument_NoHeader(t *testing.T) {
	t.Parallel()

	meta, body, err := ParseDocument("# plain markdown\n")
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if meta.Title != "" {
		t.Errorf("ParseDocument() metadata = %+v, want empty", meta)
	}
	if body != "# plain markdown\n" {
		t.Errorf("ParseDocument() body = %q, want input unchanged", body)
	}
}
