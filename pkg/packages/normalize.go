package packages

import (
	"path/filepath"
	"strings"
)

// NormalizeName removes trailing slashes left by shell completion of
// directory names.
func NormalizeName(name string) string {
	return strings.TrimRight(name, "/"+string(filepath.Separator))
}

// NormalizeNames applies NormalizeName to every name.
func NormalizeNames(names []string) []string {
	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = NormalizeName(name)
	}
	return normalized
}

// validName reports whether name denotes a directory directly under the
// package root.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/"+string(filepath.Separator))
}
