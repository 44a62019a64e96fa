// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted as "\n  hint: <text>" for appending to
// error messages.
package hints

import "strings"

// ForVaultNotFound returns a hint for a missing or invalid vault root.
func ForVaultNotFound() string {
	return format("pass --vault /path/to/vault or set vault.path in the config")
}

// ForConfigNotFound returns hints for config file lookup failures.
// Suggests --config and creating a user config when one of the searched
// paths lives under the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/obsidian-pdf") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForTimeout returns a hint about slow exports.
func ForTimeout() string {
	return format("for notes with many remote images, raise --timeout or pass --no-remote")
}

// format renders a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
