package inline

import (
	"net/url"
	"strings"
)

// dataURIPrefix identifies references that are already inlined.
// Nodes carrying one are skipped entirely, which makes the pipeline
// idempotent: re-running it over an exported tree is a no-op.
const dataURIPrefix = "data:"

// IsInlined reports whether a reference is already a data URI.
func IsInlined(ref string) bool {
	return strings.HasPrefix(ref, dataURIPrefix)
}

// LookupKey derives the key used to search the vault for a reference.
//
// Embed-hint references are already vault link targets and pass through
// verbatim. Anything else is treated as a URL-ish string: percent-decode,
// drop the query string, keep the final path segment. A reference embedded
// as a URL still names a resolvable vault file by its basename.
func LookupKey(ref string, embedHint bool) string {
	if embedHint {
		return ref
	}
	decoded, err := url.PathUnescape(ref)
	if err != nil {
		decoded = ref
	}
	if i := strings.Index(decoded, "?"); i >= 0 {
		decoded = decoded[:i]
	}
	if i := strings.LastIndex(decoded, "/"); i >= 0 {
		decoded = decoded[i+1:]
	}
	return decoded
}
