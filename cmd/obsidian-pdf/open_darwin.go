//go:build darwin

package main

import "os/exec"

// openWithDefaultApp launches the path with the system default handler.
// The process is started and not awaited.
func openWithDefaultApp(path string) error {
	return exec.Command("open", path).Start()
}
