package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	vault       string
	style       string
	assetDir    string
	config      string
	timeout     time.Duration
	concurrency int
	noRemote    bool
	noPrint     bool
	open        bool
	quiet       bool
	verbose     bool
	version     bool

	notes []string // positional arguments
}

// parseFlags parses command-line arguments. Returns the parsed flags and a
// usage-style error for invalid input.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("obsidian-pdf", flag.ContinueOnError)
	fs.SetOutput(discardWriter{})

	fs.StringVar(&f.vault, "vault", "", "vault root directory")
	fs.StringVar(&f.style, "style", "", "style name, CSS file path, or raw CSS")
	fs.StringVar(&f.assetDir, "assets", "", "directory of style/template overrides")
	fs.StringVar(&f.config, "config", "", "config file path or name")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-note export timeout (e.g. 90s)")
	fs.IntVar(&f.concurrency, "concurrency", 0, "max concurrent resource resolutions")
	fs.BoolVar(&f.noRemote, "no-remote", false, "skip fetching remote images")
	fs.BoolVar(&f.noPrint, "no-print", false, "omit the on-load print trigger")
	fs.BoolVar(&f.open, "open", false, "open the artifact in the browser after export")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress output and prompts")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	f.notes = fs.Args()
	return f, nil
}

// discardWriter silences pflag's own error printing; errors are reported
// once by main.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
