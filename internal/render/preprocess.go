package render

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged (no WithUnsafe needed) and are
// converted to <mark> tags after HTML generation.
const (
	markStartPlaceholder = ""
	markEndPlaceholder   = ""
)

// Precompiled patterns.
var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for source preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// NotePreprocessor normalizes a note's source before CommonMark conversion.
type NotePreprocessor struct{}

// PreprocessMarkdown normalizes line endings, converts ==text== highlight
// syntax to placeholders, and compresses runs of blank lines.
func (p *NotePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, markStartPlaceholder+"$1"+markEndPlaceholder)
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}

// ConvertMarkPlaceholders converts highlight placeholders to <mark> tags.
// Called after Goldmark HTML conversion; the second half of the ==highlight==
// feature, keeping Goldmark secure (no WithUnsafe).
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, markStartPlaceholder, "<mark>"),
		markEndPlaceholder, "</mark>",
	)
}
