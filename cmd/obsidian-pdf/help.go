package main

import (
	"fmt"
	"io"
)

// usageText is the CLI help output.
const usageText = `obsidian-pdf exports vault notes as self-contained printable HTML.

Usage:
  obsidian-pdf [flags] <note.md> [more-notes.md...]

The artifact is written inside the vault as {Note}-Export/index.html with
every image inlined, ready for print-to-PDF from any browser.

Flags:
      --vault string         vault root directory
      --style string         style name, CSS file path, or raw CSS
      --assets string        directory of style/template overrides
      --config string        config file path or name
      --timeout duration     per-note export timeout (e.g. 90s)
      --concurrency int      max concurrent resource resolutions
      --no-remote            skip fetching remote images
      --no-print             omit the on-load print trigger
      --open                 open the artifact in the browser after export
  -q, --quiet                suppress output and prompts
  -v, --verbose              verbose diagnostics
      --version              print version and exit

Config file (YAML, searched as obsidian-pdf.yaml or
~/.config/obsidian-pdf/<name>.yaml):

  vault:
    path: /path/to/vault
  style:
    name: default
  export:
    remote: true
    openAfter: false
`

// printUsage writes the help text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
