//go:build !windows && !darwin

package main

import "os/exec"

// openWithDefaultApp launches the path with the desktop's default handler.
// The process is started and not awaited.
func openWithDefaultApp(path string) error {
	return exec.Command("xdg-open", path).Start()
}
