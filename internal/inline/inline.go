package inline

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/vault"
)

// missingAltPrefix prefixes the accessible-text failure marker. The original
// reference is appended so the exported document names what is missing.
const missingAltPrefix = "image missing: "

// missingClass styles failure-marked images (red border) via the embedded
// stylesheet.
const missingClass = "image-missing"

// DefaultConcurrency bounds simultaneous resource resolutions. Typical
// documents carry tens of images; the cap keeps file-handle and socket
// usage bounded for the pathological hundreds-of-images case.
const DefaultConcurrency = 8

// Stats summarizes one inlining run.
type Stats struct {
	Inlined      int // references rewritten to data URIs
	Failed       int // references marked as missing
	Placeholders int // media nodes replaced by placeholders
	Embeds       int // embed markers normalized to image nodes
}

// Inliner resolves every external image reference in a document tree and
// rewrites the tree in place. The zero value is not usable; Store must be
// set. A nil Fetcher disables remote resolution.
type Inliner struct {
	Store       vault.Store
	Fetcher     Fetcher
	Concurrency int          // max concurrent resolutions; <= 0 means unbounded
	Logger      *slog.Logger // nil discards diagnostics
}

// resolved is the transient bytes+type pair produced by exactly one resolver
// strategy and consumed immediately by the encoder.
type resolved struct {
	data     []byte
	mimeType string
}

// Inline runs the full pipeline over the tree: normalize embed markers,
// resolve all image references concurrently, then sanitize media nodes.
//
// Per-resource failures are converted into in-tree markers and never abort
// the run; the tree is always left in a fully processed state.
func (in *Inliner) Inline(ctx context.Context, root *html.Node, notePath string) Stats {
	var stats Stats
	stats.Embeds = NormalizeEmbeds(root)

	nodes := collectImages(root)

	var inlined, failed atomic.Int64
	g := new(errgroup.Group)
	if in.Concurrency > 0 {
		g.SetLimit(in.Concurrency)
	}
	for _, n := range nodes {
		g.Go(func() error {
			if in.resolveNode(ctx, n, notePath) {
				inlined.Add(1)
			} else {
				failed.Add(1)
			}
			// Failures become tree markers, never errors: no node's
			// failure may cancel a sibling's in-flight resolution.
			return nil
		})
	}
	_ = g.Wait()

	stats.Inlined = int(inlined.Load())
	stats.Failed = int(failed.Load())
	stats.Placeholders = SanitizePlaceholders(root)
	return stats
}

// collectImages gathers image nodes eligible for resolution. References
// already in inline form are skipped here, so re-running the pipeline over
// an exported tree mutates nothing.
func collectImages(root *html.Node) []*html.Node {
	var nodes []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		if IsInlined(attr(n, "src")) {
			return
		}
		nodes = append(nodes, n)
	})
	return nodes
}

// resolveNode resolves one image node, mutating only that node.
// Returns true when the reference was inlined, false when it was marked
// as missing.
func (in *Inliner) resolveNode(ctx context.Context, n *html.Node, notePath string) bool {
	ref := attr(n, "src")
	embedHint := attr(n, embedHintAttr) == "true"

	key := LookupKey(ref, embedHint)
	if res, ok := in.resolveLocal(key, notePath); ok {
		in.applyResolved(n, res)
		return true
	}

	// Remote fallback: only for non-embed references that look like URLs.
	if in.Fetcher != nil && !embedHint && strings.HasPrefix(ref, "http") {
		remote, err := in.Fetcher.Fetch(ctx, ref)
		if err == nil {
			in.applyResolved(n, resolved{data: remote.Body, mimeType: remote.ContentType})
			return true
		}
		in.logger().Warn("remote resolution failed", "ref", ref, "error", err)
	}

	in.markMissing(n, ref)
	return false
}

// resolveLocal attempts vault resolution: path-aware link lookup first,
// then a name-only scan over the whole store (exact, case-sensitive,
// first match in store order).
func (in *Inliner) resolveLocal(key, notePath string) (resolved, bool) {
	target, ok := in.Store.ResolveLinkTarget(key, notePath)
	if !ok && key != "" {
		files, err := in.Store.ListAll()
		if err != nil {
			in.logger().Warn("vault listing failed", "error", err)
			return resolved{}, false
		}
		for _, fi := range files {
			if fi.Name == key {
				target, ok = fi.Path, true
				break
			}
		}
	}
	if !ok {
		return resolved{}, false
	}

	data, err := in.Store.ReadBytes(target)
	if err != nil {
		in.logger().Warn("vault read failed", "path", target, "error", err)
		return resolved{}, false
	}
	return resolved{data: data, mimeType: MIMETypeFor(target)}, true
}

// applyResolved overwrites the node's reference with a data URI and strips
// stale hint attributes so downstream renderers cannot prefer a now-invalid
// alternate source.
func (in *Inliner) applyResolved(n *html.Node, res resolved) {
	setAttr(n, "src", DataURI(res.mimeType, res.data))
	removeAttr(n, embedHintAttr)
	removeAttr(n, "srcset")
	removeAttr(n, "data-src")
	removeAttr(n, "loading")
}

// markMissing marks a node whose reference could not be resolved: the
// accessible text names the original reference and the missing class adds
// visible error styling. This is the local, non-fatal failure path.
func (in *Inliner) markMissing(n *html.Node, ref string) {
	setAttr(n, "alt", missingAltPrefix+ref)
	addClass(n, missingClass)
	removeAttr(n, embedHintAttr)
}

func (in *Inliner) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.New(slog.DiscardHandler)
}
