// Package fileutil provides file, path, and export-folder naming helpers.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// exportDirSuffix is appended to the sanitized note name to form the
// export folder name.
const exportDirSuffix = "-Export"

// maxDirProbes bounds linear probing for a unique folder name.
const maxDirProbes = 10000

// SanitizeBaseName replaces every character outside [A-Za-z0-9] with '_'.
// Keeps export folder names safe on any filesystem the vault may sync to.
func SanitizeBaseName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ExportDirName builds the base export folder name for a note base name:
// "{sanitized}-Export".
func ExportDirName(noteBase string) string {
	return SanitizeBaseName(noteBase) + exportDirSuffix
}

// UniqueDir returns the first non-existing folder name starting from base,
// probing "base", "base-1", "base-2", ... with the smallest positive n.
// exists reports whether a path is taken; its errors abort the probe.
func UniqueDir(base string, exists func(string) (bool, error)) (string, error) {
	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for n := 1; n <= maxDirProbes; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no unique folder name near %q after %d probes", base, maxDirProbes)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name: any string containing a path separator.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsCSS returns true if the string looks like raw CSS content rather than
// a style name or path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// BaseNameNoExt returns the final path segment without its extension.
func BaseNameNoExt(p string) string {
	base := p
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
