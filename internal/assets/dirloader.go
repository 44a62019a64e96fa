package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader loads assets from a user-supplied directory laid out as:
//
//	<base>/styles/<name>.css
//	<base>/templates/<name>.html
//
// Missing assets fall back to the embedded set, so a user directory only
// needs to carry overrides.
type DirLoader struct {
	base     string
	fallback Loader
}

// NewDirLoader creates a DirLoader rooted at base.
// The directory must exist.
func NewDirLoader(base string) (*DirLoader, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBasePath, base)
	}
	return &DirLoader{base: abs, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads a CSS style from the directory, falling back to the
// embedded assets.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(d.base, "styles", name+".css")) // #nosec G304 -- name validated above
	if err != nil {
		return d.fallback.LoadStyle(name)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template from the directory, falling back to
// the embedded assets.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(d.base, "templates", name+".html")) // #nosec G304 -- name validated above
	if err != nil {
		return d.fallback.LoadTemplate(name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*DirLoader)(nil)
