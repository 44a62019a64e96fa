package obsidianpdf

import "fmt"

// Orphan/widow defaults for print pagination.
const (
	defaultOrphans = 2
	defaultWidows  = 2
)

// pageBreaksCSS generates print pagination rules appended to every export:
// headings never sit alone at a page bottom, and paragraphs keep a minimum
// number of lines on each side of a break.
func pageBreaksCSS() string {
	return fmt.Sprintf(`
/* Page breaks: prevent heading alone at page bottom */
h1, h2, h3, h4, h5, h6 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}

/* Page breaks: orphan/widow control */
p, li, dd, dt, blockquote {
  orphans: %d;
  widows: %d;
}

/* Page breaks: keep figures and placeholders whole */
img, .unsupported-embed, pre, table {
  break-inside: avoid;
  page-break-inside: avoid;
}
`, defaultOrphans, defaultWidows)
}
