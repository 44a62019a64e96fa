package inline

import (
	"encoding/base64"
	"path"
	"strings"
)

// defaultMIMEType is used when no better type can be derived.
const defaultMIMEType = "image/png"

// mimeByExtension maps image file extensions to MIME types.
var mimeByExtension = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"gif":  "image/gif",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
}

// MIMETypeFor derives the MIME type for a file path from its extension.
// Unknown extensions fall back to image/png.
func MIMETypeFor(filePath string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filePath)), ".")
	if mt, ok := mimeByExtension[ext]; ok {
		return mt
	}
	return defaultMIMEType
}

// DataURI encodes bytes and a MIME type as a data URI suitable for use as
// an image src. Base64 keeps the payload byte-exact for any binary content.
func DataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = defaultMIMEType
	}
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mimeType) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURIPrefix)
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}
