//go:build windows

package main

import "os/exec"

// openWithDefaultApp launches the path with the shell's default handler.
// The process is started and not awaited.
func openWithDefaultApp(path string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
}
