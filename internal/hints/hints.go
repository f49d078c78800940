// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForInputMissing returns hints for a missing input directory.
// The pages are produced by makeinfo, which this tool does not run.
func ForInputMissing(dir string) string {
	return formatHints([]string{
		"generate the HTML manual first (makeinfo --html -o " + dir + " c.texi)",
		"or point --input at an existing directory",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/cbeautify/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/cbeautify") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMode returns the hint printed when no mode flag is given.
func ForMode() string {
	return format("run 'cbeautify --html --css' to do both")
}

// ForAssetPath returns hints for an invalid custom asset directory.
func ForAssetPath() string {
	return format("the directory must exist and may contain styles/, templates/ and icons/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
