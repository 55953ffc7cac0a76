package postkit

import (
	"fmt"
	"strings"
	"time"

	"github.com/avasseur/go-postkit/internal/attribution"
	"github.com/avasseur/go-postkit/internal/dateutil"
)

// Metadata is the post's front matter record. Field order here is the order
// keys appear in the serialized header; downstream readers expect title
// first, not alphabetical keys.
type Metadata struct {
	Title         string         `yaml:"title"`
	Excerpt       string         `yaml:"excerpt"`
	PublishDate   string         `yaml:"publishDate"`
	Tags          []string       `yaml:"tags"`
	SEO           SEO            `yaml:"seo"`
	ArticleImages []ArticleImage `yaml:"articleImages,omitempty"`
}

// SEO holds search/social metadata.
type SEO struct {
	Image SEOImage `yaml:"image"`
}

// SEOImage is the social preview image reference.
type SEOImage struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// ArticleImage is an image reference recorded on the post. References are
// appended as the author inserts figures; they are never edited or removed.
type ArticleImage struct {
	Src     string      `yaml:"src"`
	Alt     string      `yaml:"alt"`
	Caption string      `yaml:"caption"`
	Source  ImageSource `yaml:"source"`
	Author  string      `yaml:"author,omitempty"`
}

// ImageSource names where an image came from.
type ImageSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// NewMetadata returns a record with empty defaults and the publish date set
// to the given time's calendar date.
func NewMetadata(now time.Time) Metadata {
	return Metadata{
		Tags:        []string{},
		PublishDate: dateutil.Today(now),
	}
}

// Validate checks the record's invariants: a parseable publish date and
// trimmed, non-empty tags.
func (m *Metadata) Validate() error {
	if err := dateutil.Validate(m.PublishDate); err != nil {
		return err
	}
	for _, tag := range m.Tags {
		if strings.TrimSpace(tag) == "" || strings.TrimSpace(tag) != tag {
			return fmt.Errorf("%w: %q", ErrEmptyTag, tag)
		}
	}
	return nil
}

// SetPublishDate updates the publish date, failing fast on anything that is
// not a valid ISO-8601 calendar date.
func (m *Metadata) SetPublishDate(value string) error {
	if err := dateutil.Validate(value); err != nil {
		return err
	}
	m.PublishDate = strings.TrimSpace(value)
	return nil
}

// AddTag appends a tag, trimmed. Duplicates are permitted; insertion order
// is preserved. Empty tags are rejected.
func (m *Metadata) AddTag(tag string) error {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ErrEmptyTag
	}
	m.Tags = append(m.Tags, trimmed)
	return nil
}

// AppendArticleImage records an image reference. Append-only.
func (m *Metadata) AppendArticleImage(img ArticleImage) {
	m.ArticleImages = append(m.ArticleImages, img)
}

// clone returns a deep copy so callers cannot alias internal slices.
func (m Metadata) clone() Metadata {
	out := m
	if m.Tags != nil {
		out.Tags = append([]string(nil), m.Tags...)
	}
	if m.ArticleImages != nil {
		out.ArticleImages = append([]ArticleImage(nil), m.ArticleImages...)
	}
	return out
}

// Attribution is the structured credit parsed from a pasted third-party
// attribution snippet.
type Attribution struct {
	ImageSrc        string
	ImageAlt        string
	Photographer    string
	PhotographerURL string
	SourceName      string
	SourceURL       string
}

// ParseAttribution extracts a credit block from a pasted snippet. It returns
// nil when the snippet is not recognized (no image, or fewer than two
// anchors); that is the expected "user pasted something else" outcome, not
// an error.
func ParseAttribution(snippet string) *Attribution {
	b := attribution.Parse(snippet)
	if b == nil {
		return nil
	}
	return &Attribution{
		ImageSrc:        b.ImageSrc,
		ImageAlt:        b.ImageAlt,
		Photographer:    b.Photographer,
		PhotographerURL: b.PhotographerURL,
		SourceName:      b.SourceName,
		SourceURL:       b.SourceURL,
	}
}

// ArticleImage converts the attribution into the image reference recorded
// on the post's metadata.
func (a *Attribution) ArticleImage(caption string) ArticleImage {
	return ArticleImage{
		Src:     a.ImageSrc,
		Alt:     a.ImageAlt,
		Caption: caption,
		Source: ImageSource{
			Name: a.SourceName,
			URL:  a.SourceURL,
		},
		Author: a.Photographer,
	}
}
