// Package inline implements the resource-inlining pipeline that turns a
// rendered document tree into a self-contained one: wiki-embed markers are
// normalized into image nodes, every image reference is resolved to bytes
// (vault lookup first, network fetch as fallback) and rewritten in place as
// a base64 data URI, unresolvable references are marked visually, and
// non-embeddable media nodes are replaced with inert placeholders.
//
// Resolution of individual resources runs concurrently and failures stay
// local to the failing node; the pipeline never aborts because one image
// could not be fetched.
package inline
