package obsidianpdf

import (
	"log/slog"
	"time"

	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/inline"
)

// Defaults.
const (
	// DefaultTimeout bounds a whole export when the caller's context
	// carries no deadline.
	DefaultTimeout = 2 * time.Minute

	// DefaultPrintDelayMS is the stabilization window between document
	// load and the print dialog, in milliseconds. The delay gives the
	// viewer time to lay out inlined images before pagination.
	DefaultPrintDelayMS = 500

	// DefaultConcurrency caps simultaneous resource resolutions.
	DefaultConcurrency = inline.DefaultConcurrency
)

// Input describes one note to export.
type Input struct {
	// NotePath is the note's vault-relative path. It names the export
	// folder and anchors relative link resolution. Required.
	NotePath string

	// Markdown optionally overrides the note source. When empty, the
	// source is read from the vault at NotePath.
	Markdown string
}

// Result describes a completed export.
type Result struct {
	// Dir is the vault-relative export folder, e.g. "My_Note-Export".
	Dir string

	// IndexPath is the vault-relative path of the written artifact,
	// e.g. "My_Note-Export/index.html".
	IndexPath string

	// HTML is the artifact content (UTF-8).
	HTML []byte

	// Stats summarizes resource inlining.
	Stats inline.Stats
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds Exporter configuration.
type exporterConfig struct {
	timeout       time.Duration
	concurrency   int
	styleInput    string // name, path, or raw CSS
	resolvedStyle string
	assetDir      string
	printDelayMS  int
	printTrigger  bool
	remote        bool
}

// WithTimeout sets the export timeout applied when the caller's context has
// no deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) {
		if d > 0 {
			e.cfg.timeout = d
		}
	}
}

// WithConcurrency caps simultaneous resource resolutions.
// Zero or negative removes the cap.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		e.cfg.concurrency = n
	}
}

// WithStyle sets the document style: a built-in style name, a path to a
// CSS file, or raw CSS content.
func WithStyle(style string) Option {
	return func(e *Exporter) {
		e.cfg.styleInput = style
	}
}

// WithAssetDir loads styles and templates from a directory, falling back
// to the embedded assets for anything missing.
func WithAssetDir(dir string) Option {
	return func(e *Exporter) {
		e.cfg.assetDir = dir
	}
}

// WithoutPrintTrigger omits the on-load print script from the artifact.
func WithoutPrintTrigger() Option {
	return func(e *Exporter) {
		e.cfg.printTrigger = false
	}
}

// WithoutRemoteResources disables network resolution; references that miss
// the vault are marked as missing instead of fetched.
func WithoutRemoteResources() Option {
	return func(e *Exporter) {
		e.cfg.remote = false
	}
}

// WithFetcher injects a custom remote fetcher (e.g., for tests).
func WithFetcher(f inline.Fetcher) Option {
	return func(e *Exporter) {
		e.fetcher = f
	}
}

// WithLogger sets the logger for per-resource diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}
