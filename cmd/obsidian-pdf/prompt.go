package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmOpen asks whether to open the exported artifact in the browser.
// Anything other than an explicit yes counts as cancel.
func confirmOpen(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Open in browser? [y/N] ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
