// Package vault abstracts the hierarchical note store that an export reads
// resources from and writes its artifact into.
package vault

// FileInfo describes one file in the store.
type FileInfo struct {
	Path      string // store-relative path, forward slashes
	Name      string // base name including extension
	Extension string // lowercase extension without the dot, "" if none
}

// Store is the contract the export pipeline depends on.
// Implementations may be backed by the local filesystem, a sync layer,
// or an in-memory fake in tests.
type Store interface {
	// Exists reports whether a file or folder exists at the given path.
	Exists(path string) (bool, error)

	// CreateFolder creates a folder (and any missing parents).
	CreateFolder(path string) error

	// ReadBytes returns the full content of a file.
	ReadBytes(path string) ([]byte, error)

	// CreateBinaryFile writes data to path, creating parent folders as needed.
	CreateBinaryFile(path string, data []byte) error

	// ListAll returns every file in the store in the store's own ordering.
	ListAll() ([]FileInfo, error)

	// ResolveLinkTarget resolves a link path the way a note links to a file:
	// relative to the linking note's folder first, then store-root relative,
	// then the first path-suffix match in listing order. Returns the resolved
	// store-relative path and whether a match was found.
	ResolveLinkTarget(linkpath, fromPath string) (string, bool)
}
