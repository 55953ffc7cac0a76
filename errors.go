package postkit

import (
	"errors"

	"github.com/avasseur/go-postkit/internal/dateutil"
)

// Sentinel errors for library operations.
var (
	ErrEmptyTitle      = errors.New("post title cannot be empty")
	ErrEmptyTag        = errors.New("tags must be non-empty after trimming")
	ErrHeaderSerialize = errors.New("front matter serialization failed")
	ErrPreviewRender   = errors.New("preview rendering failed")
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidPublishDate is returned when a publish date is not a valid
	// ISO-8601 calendar date. Setting a bad date fails fast; it is never
	// silently defaulted.
	ErrInvalidPublishDate = dateutil.ErrInvalidDate
)
