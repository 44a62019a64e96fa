package obsidianpdf

import "errors"

// Sentinel errors for export operations.
var (
	// ErrEmptyNotePath indicates Input.NotePath was not set.
	ErrEmptyNotePath = errors.New("note path cannot be empty")

	// ErrNoteRead indicates the note source could not be read from the vault.
	ErrNoteRead = errors.New("failed to read note")

	// ErrExportFolder indicates the destination folder could not be created.
	ErrExportFolder = errors.New("failed to create export folder")

	// ErrArtifactWrite indicates the final artifact could not be written.
	ErrArtifactWrite = errors.New("failed to write export artifact")

	// ErrInvalidAssetDir indicates the custom asset directory is unusable.
	ErrInvalidAssetDir = errors.New("invalid asset directory")

	// ErrStyleNotFound indicates the requested style could not be loaded.
	ErrStyleNotFound = errors.New("style not found")
)
