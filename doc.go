// Package obsidianpdf exports a vault note as a single self-contained HTML
// artifact ready for print-to-PDF through the platform's print dialog.
//
// # Quick Start
//
// Open a vault, create an exporter, and export a note:
//
//	store, err := vault.NewFS("/path/to/vault")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	exp, err := obsidianpdf.NewExporter(store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := exp.Export(ctx, obsidianpdf.Input{NotePath: "Daily/Note.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("written:", result.IndexPath)
//
// The artifact lands in a uniquely named "{Note}-Export" folder inside the
// vault as index.html, with every image inlined as a data URI so the file
// opens offline in any browser.
//
// # Export Pipeline
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Markdown to HTML via Goldmark (GFM, frontmatter, wiki embeds,
//     syntax highlighting)
//  3. Resource inlining: wiki-embed markers normalized to images, every
//     image reference resolved (vault lookup, then network) and rewritten
//     as a base64 data URI; unresolvable references are visibly marked
//  4. Media sanitization: audio/video/iframe replaced with placeholders
//  5. Shell assembly: style, title, and a delayed window.print() trigger
//
// Resources resolve concurrently and independently; a broken image never
// fails an export.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := obsidianpdf.NewExporter(store,
//	    obsidianpdf.WithStyle("default"),
//	    obsidianpdf.WithTimeout(time.Minute),
//	    obsidianpdf.WithoutRemoteResources(),
//	)
package obsidianpdf
