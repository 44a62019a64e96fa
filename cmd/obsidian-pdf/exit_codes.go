package main

import (
	"errors"
	"os"

	obsidianpdf "github.com/dontloseyourheadsu/obsidian-android-pdf"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/config"
	"github.com/dontloseyourheadsu/obsidian-android-pdf/internal/vault"
)

// Exit codes for the obsidian-pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// Uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, obsidianpdf.ErrNoteRead) ||
		errors.Is(err, obsidianpdf.ErrExportFolder) ||
		errors.Is(err, obsidianpdf.ErrArtifactWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, obsidianpdf.ErrEmptyNotePath) ||
		errors.Is(err, obsidianpdf.ErrStyleNotFound) ||
		errors.Is(err, obsidianpdf.ErrInvalidAssetDir) ||
		errors.Is(err, vault.ErrNotADirectory) ||
		errors.Is(err, vault.ErrPathEscapes) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrVaultRequired) {
		return ExitUsage
	}

	return ExitGeneral
}
