// Package pipeline implements the markup-to-preview pipeline stages:
// markdown preprocessing, markdown-to-HTML conversion via Goldmark,
// figure normalization on the parsed HTML tree, and output sanitization.
//
// Stages are pure with respect to their inputs; the editor service in the
// root package composes them per call.
package pipeline
