package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/render"
)

// ---------------------------------------------------------------------------
// TestMarkdownRenderer_Render - Markdown to HTML fragment conversion
// ---------------------------------------------------------------------------

func TestMarkdownRenderer_Render(t *testing.T) {
	t.Parallel()

	r := render.NewMarkdownRenderer()

	tests := []struct {
		name        string
		source      string
		wantContain []string
		wantAbsent  []string
	}{
		{
			name:        "basic markdown",
			source:      "# Heading\n\nSome **bold** text.",
			wantContain: []string{"<h1", "Heading</h1>", "<strong>bold</strong>"},
		},
		{
			name:        "gfm table",
			source:      "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContain: []string{"<table>", "<td>1</td>"},
		},
		{
			name:        "highlight syntax becomes mark",
			source:      "this is ==important== text",
			wantContain: []string{"<mark>important</mark>"},
		},
		{
			name:   "wiki embed becomes marker span",
			source: "![[attachments/pic.png]]",
			wantContain: []string{
				`class="internal-embed"`,
				`src="attachments/pic.png"`,
			},
			wantAbsent: []string{"![["},
		},
		{
			name:   "wiki embed with alias",
			source: "![[pic.png|My Caption]]",
			wantContain: []string{
				`src="pic.png"`,
				`alt="My Caption"`,
				">My Caption</span>",
			},
		},
		{
			name:        "standard image link preserved",
			source:      "![alt text](https://example.com/a.png)",
			wantContain: []string{`<img src="https://example.com/a.png"`, `alt="alt text"`},
		},
		{
			name:        "crlf normalized",
			source:      "line one\r\nline two",
			wantContain: []string{"line one", "line two"},
			wantAbsent:  []string{"\r"},
		},
		{
			name:        "fenced code highlighted with classes",
			source:      "```go\npackage main\n```",
			wantContain: []string{"<pre", "chroma"},
		},
		{
			name:       "raw html omitted",
			source:     "<script>alert(1)</script>\n",
			wantAbsent: []string{"<script>", "alert(1)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := r.Render(context.Background(), tt.source, "Note.md")
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("output should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarkdownRenderer_Frontmatter - YAML metadata extraction
// ---------------------------------------------------------------------------

func TestMarkdownRenderer_Frontmatter(t *testing.T) {
	t.Parallel()

	r := render.NewMarkdownRenderer()

	t.Run("title extracted and stripped from output", func(t *testing.T) {
		t.Parallel()

		source := "---\ntitle: My Note\ntags: [a, b]\n---\n\n# Body\n"
		got, meta, err := r.Render(context.Background(), source, "Note.md")
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if meta.Title != "My Note" {
			t.Errorf("Title = %q, want %q", meta.Title, "My Note")
		}
		if strings.Contains(got, "tags:") {
			t.Errorf("frontmatter leaked into output:\n%s", got)
		}
	})

	t.Run("no frontmatter yields empty title", func(t *testing.T) {
		t.Parallel()

		_, meta, err := r.Render(context.Background(), "# Just a heading", "Note.md")
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if meta.Title != "" {
			t.Errorf("Title = %q, want empty", meta.Title)
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarkdownRenderer_Cancellation - Context handling
// ---------------------------------------------------------------------------

func TestMarkdownRenderer_Cancellation(t *testing.T) {
	t.Parallel()

	r := render.NewMarkdownRenderer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Render(ctx, "# x", "Note.md")
	if err == nil {
		t.Error("Render() with cancelled context succeeded, want error")
	}
}

// ---------------------------------------------------------------------------
// TestConvertMarkPlaceholders - Placeholder to mark conversion
// ---------------------------------------------------------------------------

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "plain \ue000hot\ue001 text"
	want := "plain <mark>hot</mark> text"
	if got := render.ConvertMarkPlaceholders(in); got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
}
