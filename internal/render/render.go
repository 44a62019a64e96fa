// Package render converts a note's Markdown source into an HTML fragment.
// It is the rendering collaborator of the export pipeline: GFM Markdown with
// syntax highlighting, YAML frontmatter, ==highlight== syntax, and wiki
// embeds (![[target]]) emitted as marker spans for the inliner.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrRenderFailed indicates Markdown rendering failed.
var ErrRenderFailed = errors.New("markdown rendering failed")

// DocMeta carries document metadata extracted from YAML frontmatter.
type DocMeta struct {
	Title string
}

// Renderer abstracts Markdown to HTML-fragment conversion.
type Renderer interface {
	Render(ctx context.Context, source, docPath string) (string, DocMeta, error)
}

// MarkdownRenderer renders notes using goldmark (pure Go).
type MarkdownRenderer struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
}

// NewMarkdownRenderer creates a MarkdownRenderer with GFM extensions,
// syntax highlighting, frontmatter support, and wiki embeds.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			meta.Meta,          // YAML frontmatter (stripped from output)
			VaultEmbedExtension(),
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // stylesheet-controlled code colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // notes treat single newlines as breaks
			html.WithXHTML(),
			// WithUnsafe() intentionally NOT used. The ==highlight== feature
			// goes through placeholders converted after Goldmark.
		),
	)
	return &MarkdownRenderer{
		md:           md,
		preprocessor: &NotePreprocessor{},
	}
}

// Render converts Markdown source to an HTML fragment and extracts
// frontmatter metadata. docPath is the note's store-relative path; it is
// accepted for interface symmetry and future per-document context.
// Supports cancellation via goroutine + select since Goldmark doesn't
// take a context.
func (r *MarkdownRenderer) Render(ctx context.Context, source, docPath string) (string, DocMeta, error) {
	if err := ctx.Err(); err != nil {
		return "", DocMeta{}, err
	}

	content := r.preprocessor.PreprocessMarkdown(ctx, source)

	type result struct {
		html string
		meta DocMeta
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		pc := parser.NewContext()
		if err := r.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRenderFailed, err)}
			return
		}
		var dm DocMeta
		if m := meta.Get(pc); m != nil {
			if title, ok := m["title"].(string); ok {
				dm.Title = title
			}
		}
		done <- result{html: ConvertMarkPlaceholders(buf.String()), meta: dm}
	}()

	select {
	case <-ctx.Done():
		return "", DocMeta{}, ctx.Err()
	case res := <-done:
		return res.html, res.meta, res.err
	}
}

// Compile-time interface checks.
var (
	_ Renderer             = (*MarkdownRenderer)(nil)
	_ MarkdownPreprocessor = (*NotePreprocessor)(nil)
)
