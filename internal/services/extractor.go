package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat rejects declared formats other than PDF and DOCX
// before a document reaches the screening core.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// TextExtractor maps raw document bytes plus the declared filename to plain
// text. It is the engine's only external collaborator; a failure here is
// recovered per candidate by scoring on empty text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, filename string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// SupportedFile reports whether the declared filename carries one of the
// two accepted extensions.
func SupportedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx":
		return true
	}
	return false
}

// Extract dispatches on the declared extension. The parse runs in its own
// goroutine so a pathological document cannot hang the batch past the
// caller's deadline.
func (e *textExtractor) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	var parse func([]byte) (string, error)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		parse = extractPDFText
	case ".docx":
		parse = extractDOCXText
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	type extracted struct {
		text string
		err  error
	}

	done := make(chan extracted, 1)
	go func() {
		text, err := parse(data)
		done <- extracted{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", filename, res.err)
		}
		return CleanText(res.text), nil
	}
}

// CleanText trims each line and drops empty ones, collapsing the extractor
// output into compact plain text.
func CleanText(text string) string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
