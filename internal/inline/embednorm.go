package inline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// embedMarkerClass marks the non-standard span nodes the renderer emits for
// wiki embeds (![[target]]). Markers carry the vault-relative link target in
// their src attribute.
const embedMarkerClass = "internal-embed"

// embedHintAttr flags an image node that originated from a wiki embed, so
// the locator knows its reference is already a vault link target.
const embedHintAttr = "data-embed"

// imageExtensions is the set of embeddable image extensions.
var imageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
	"svg":  true,
	"webp": true,
	"heic": true,
}

// isImageReference reports whether the reference's extension (substring
// after the last dot, case-insensitive) belongs to the image set.
func isImageReference(ref string) bool {
	i := strings.LastIndex(ref, ".")
	if i < 0 || i == len(ref)-1 {
		return false
	}
	return imageExtensions[strings.ToLower(ref[i+1:])]
}

// NormalizeEmbeds replaces every image embed marker with a standard image
// node at the same tree position. Markers with non-image extensions are left
// untouched; they are not the inliner's concern. Returns the number of
// markers converted.
//
// Must run to completion before resolution starts: resolution iterates over
// the post-normalization node set.
func NormalizeEmbeds(root *html.Node) int {
	var markers []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "span" {
			return
		}
		if !hasClass(n, embedMarkerClass) {
			return
		}
		if ref := attr(n, "src"); ref != "" && isImageReference(ref) {
			markers = append(markers, n)
		}
	})

	for _, marker := range markers {
		ref := attr(marker, "src")
		alt := attr(marker, "alt")
		if alt == "" {
			alt = path.Base(ref)
		}
		img := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Img,
			Data:     "img",
			Attr: []html.Attribute{
				{Key: "src", Val: ref},
				{Key: "alt", Val: alt},
				{Key: embedHintAttr, Val: "true"},
			},
		}
		replaceNode(marker, img)
	}
	return len(markers)
}
