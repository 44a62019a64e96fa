package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Sentinel errors for vault operations.
var (
	ErrNotADirectory = errors.New("vault: root is not a directory")
	ErrPathEscapes   = errors.New("vault: path escapes vault root")
	ErrAbsolutePath  = errors.New("vault: absolute paths not allowed")
)

// FS implements Store backed by the local file system.
type FS struct {
	root string // absolute path to the vault directory
}

// NewFS creates an FS store rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("vault: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute path of the vault directory.
func (f *FS) Root() string {
	return f.root
}

// AbsPath resolves a store-relative path to an absolute filesystem path.
// Rejects paths that escape the vault root.
func (f *FS) AbsPath(rel string) (string, error) {
	return f.safePath(rel)
}

// safePath resolves a relative path against the vault root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: %s", ErrAbsolutePath, rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("vault: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, rel)
	}
	return abs, nil
}

// Exists reports whether a file or folder exists at the given path.
func (f *FS) Exists(rel string) (bool, error) {
	abs, err := f.safePath(rel)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("vault: stat: %w", err)
	}
	return true, nil
}

// CreateFolder creates a folder and any missing parents.
func (f *FS) CreateFolder(rel string) error {
	abs, err := f.safePath(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("vault: create folder: %w", err)
	}
	return nil
}

// ReadBytes returns the raw bytes of a vault file.
func (f *FS) ReadBytes(rel string) ([]byte, error) {
	abs, err := f.safePath(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs) // #nosec G304 -- path is confined to the vault root
	if err != nil {
		return nil, fmt.Errorf("vault: read: %w", err)
	}
	return data, nil
}

// CreateBinaryFile writes data to a vault file, creating parent folders.
func (f *FS) CreateBinaryFile(rel string, data []byte) error {
	abs, err := f.safePath(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("vault: create parent folder: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("vault: write: %w", err)
	}
	return nil
}

// ListAll walks the vault and returns metadata for every regular file.
// Ordering follows filepath.WalkDir (lexical); link-ambiguity resolution
// inherits this ordering.
func (f *FS) ListAll() ([]FileInfo, error) {
	var out []FileInfo
	err := filepath.WalkDir(f.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(f.root, p)
		if err != nil {
			return err
		}
		out = append(out, fileInfoFor(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: list: %w", err)
	}
	return out, nil
}

// ResolveLinkTarget resolves a link path against the store.
// Resolution order: exact path relative to the linking note's folder,
// exact store-root-relative path, then the first file whose path ends with
// the link path (listing order). The first match wins.
func (f *FS) ResolveLinkTarget(linkpath, fromPath string) (string, bool) {
	linkpath = path.Clean(strings.TrimSpace(linkpath))
	if linkpath == "" || linkpath == "." || strings.HasPrefix(linkpath, "..") {
		return "", false
	}

	// Relative to the linking note's folder.
	if dir := path.Dir(fromPath); dir != "." && dir != "/" {
		candidate := path.Join(dir, linkpath)
		if f.isFile(candidate) {
			return candidate, true
		}
	}

	// Store-root relative.
	if f.isFile(linkpath) {
		return linkpath, true
	}

	// First path-suffix match anywhere in the store.
	files, err := f.ListAll()
	if err != nil {
		return "", false
	}
	for _, fi := range files {
		if fi.Path == linkpath || strings.HasSuffix(fi.Path, "/"+linkpath) {
			return fi.Path, true
		}
	}
	return "", false
}

// isFile reports whether rel names an existing regular file.
func (f *FS) isFile(rel string) bool {
	abs, err := f.safePath(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

// fileInfoFor builds a FileInfo from a slash-separated relative path.
func fileInfoFor(rel string) FileInfo {
	name := path.Base(rel)
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 && i < len(name)-1 {
		ext = strings.ToLower(name[i+1:])
	}
	return FileInfo{Path: rel, Name: name, Extension: ext}
}

// Compile-time interface check.
var _ Store = (*FS)(nil)
