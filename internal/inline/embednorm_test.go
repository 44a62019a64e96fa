package inline_test

import (
	"testing"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/inline"
)

// ---------------------------------------------------------------------------
// TestNormalizeEmbeds - Embed marker normalization
// ---------------------------------------------------------------------------

func TestNormalizeEmbeds(t *testing.T) {
	t.Parallel()

	t.Run("image marker becomes img with hint", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(`<p><span class="internal-embed" src="attachments/pic.png" alt="pic"></span></p>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}

		if got := inline.NormalizeEmbeds(root); got != 1 {
			t.Fatalf("NormalizeEmbeds() = %d, want 1", got)
		}
		if spans := findAll(root, "span"); len(spans) != 0 {
			t.Errorf("marker span still present after normalization")
		}

		imgs := findAll(root, "img")
		if len(imgs) != 1 {
			t.Fatalf("img count = %d, want 1", len(imgs))
		}
		img := imgs[0]
		if got := attrVal(img, "src"); got != "attachments/pic.png" {
			t.Errorf("src = %q, want %q", got, "attachments/pic.png")
		}
		if got := attrVal(img, "alt"); got != "pic" {
			t.Errorf("alt = %q, want %q", got, "pic")
		}
		if got := attrVal(img, "data-embed"); got != "true" {
			t.Errorf("data-embed = %q, want %q", got, "true")
		}
	})

	t.Run("empty alt falls back to basename", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(`<span class="internal-embed" src="dir/photo.jpg" alt=""></span>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}
		inline.NormalizeEmbeds(root)

		imgs := findAll(root, "img")
		if len(imgs) != 1 {
			t.Fatalf("img count = %d, want 1", len(imgs))
		}
		if got := attrVal(imgs[0], "alt"); got != "photo.jpg" {
			t.Errorf("alt = %q, want basename fallback %q", got, "photo.jpg")
		}
	})

	t.Run("non-image marker untouched", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(`<span class="internal-embed" src="Other Note.md" alt="Other Note"></span>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}

		if got := inline.NormalizeEmbeds(root); got != 0 {
			t.Errorf("NormalizeEmbeds() = %d, want 0", got)
		}
		if spans := findAll(root, "span"); len(spans) != 1 {
			t.Errorf("non-image marker should survive, spans = %d", len(spans))
		}
	})

	t.Run("uppercase extension recognized", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(`<span class="internal-embed" src="Pic.PNG"></span>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}
		if got := inline.NormalizeEmbeds(root); got != 1 {
			t.Errorf("NormalizeEmbeds() = %d, want 1", got)
		}
	})

	t.Run("unrelated spans ignored", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(`<span class="highlight" src="a.png">x</span><span>y</span>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}
		if got := inline.NormalizeEmbeds(root); got != 0 {
			t.Errorf("NormalizeEmbeds() = %d, want 0", got)
		}
	})

	t.Run("multiple markers all converted in place", func(t *testing.T) {
		t.Parallel()

		root, _, err := inline.ParseTree(
			`<p><span class="internal-embed" src="a.png"></span></p>` +
				`<p><span class="internal-embed" src="b.webp"></span></p>` +
				`<p><span class="internal-embed" src="Note.md"></span></p>`)
		if err != nil {
			t.Fatalf("ParseTree() error = %v", err)
		}

		if got := inline.NormalizeEmbeds(root); got != 2 {
			t.Fatalf("NormalizeEmbeds() = %d, want 2", got)
		}
		imgs := findAll(root, "img")
		if len(imgs) != 2 {
			t.Fatalf("img count = %d, want 2", len(imgs))
		}
		if attrVal(imgs[0], "src") != "a.png" || attrVal(imgs[1], "src") != "b.webp" {
			t.Errorf("tree order not preserved: %q, %q",
				attrVal(imgs[0], "src"), attrVal(imgs[1], "src"))
		}
	})
}
