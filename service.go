package postkit

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/avasseur/go-postkit/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.FigureNormalizer     = (*pipeline.TreeNormalizer)(nil)
	_ pipeline.HTMLSanitizer        = (*pipeline.BluemondaySanitizer)(nil)
)

// maxCacheEntries bounds the preview memo before it is reset wholesale.
const maxCacheEntries = 128

// Editor orchestrates the compile-normalize-sanitize pipeline and the
// export step. It holds no document state; every call recomputes from the
// buffer it is given, so one Editor can safely serve many sessions.
type Editor struct {
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	normalizer    pipeline.FigureNormalizer
	sanitizer     pipeline.HTMLSanitizer

	cacheMu sync.Mutex
	cache   map[[sha256.Size]byte]string // nil unless WithPreviewCache
}

// Option configures an Editor.
type Option func(*Editor)

// WithPreviewCache memoizes previews by content hash of the buffer.
// Purely a performance optimization; correctness never depends on it.
func WithPreviewCache() Option {
	return func(e *Editor) {
		e.cache = make(map[[sha256.Size]byte]string)
	}
}

// New creates an Editor with the default pipeline.
func New(opts ...Option) *Editor {
	e := &Editor{
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		normalizer:    &pipeline.TreeNormalizer{},
		sanitizer:     pipeline.NewBluemondaySanitizer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Preview compiles the document buffer to sanitized HTML: markdown
// conversion, figure normalization on the parsed tree, then sanitization.
// It never fails on malformed markup; unparseable constructs degrade to
// literal text. The only error sources are context cancellation and the
// HTML round trip.
func (e *Editor) Preview(ctx context.Context, markdown string) (string, error) {
	if cached, ok := e.cachedPreview(markdown); ok {
		return cached, nil
	}

	content := e.preprocessor.PreprocessMarkdown(ctx, markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	htmlContent, err := e.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, err = e.normalizer.NormalizeHTML(ctx, htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}

	preview := e.sanitizer.Sanitize(htmlContent)
	e.storePreview(markdown, preview)
	return preview, nil
}

func (e *Editor) cachedPreview(markdown string) (string, bool) {
	if e.cache == nil {
		return "", false
	}
	key := sha256.Sum256([]byte(markdown))
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	cached, ok := e.cache[key]
	return cached, ok
}

func (e *Editor) storePreview(markdown, preview string) {
	if e.cache == nil {
		return
	}
	key := sha256.Sum256([]byte(markdown))
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	if len(e.cache) >= maxCacheEntries {
		e.cache = make(map[[sha256.Size]byte]string)
	}
	e.cache[key] = preview
}
