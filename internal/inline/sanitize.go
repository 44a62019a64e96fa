package inline

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlaceholderText is the fixed message shown where audio, video, or
// embedded-frame content was removed.
const PlaceholderText = "media/embed not supported in this export"

// placeholderClass styles the placeholder block (dashed border, muted,
// centered) via the embedded stylesheet.
const placeholderClass = "unsupported-embed"

// SanitizePlaceholders replaces every video, audio, and iframe node with an
// inert placeholder block, unconditionally and without any resolution
// attempt. Returns the number of nodes replaced.
//
// Runs after resource resolution; image lookups never touch these node
// types, so there is no ordering hazard either way.
func SanitizePlaceholders(root *html.Node) int {
	var media []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch n.Data {
		case "video", "audio", "iframe":
			media = append(media, n)
		}
	})

	for _, n := range media {
		placeholder := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Div,
			Data:     "div",
			Attr:     []html.Attribute{{Key: "class", Val: placeholderClass}},
		}
		placeholder.AppendChild(&html.Node{Type: html.TextNode, Data: PlaceholderText})
		replaceNode(n, placeholder)
	}
	return len(media)
}
