// Package assets provides the CSS styles and HTML shell templates embedded
// in the binary, plus a directory-backed loader for user overrides.
package assets

import (
	"fmt"
	"strings"
)

// DefaultStyleName names the built-in document stylesheet.
const DefaultStyleName = "default"

// ShellTemplateName names the HTML document shell template.
const ShellTemplateName = "shell"

// Loader defines the contract for loading CSS styles and HTML templates.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Rejects empty names and names containing path separators, dots, or
// traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
