// Package shared provides common utility functions used across multiple
// packages in the ros-pip-setup codebase.
package shared

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// NormalizePipName lowercases a Python package name and replaces
// underscores and dots with hyphens, following PEP 503 normalization.
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	replacer := strings.NewReplacer("_", "-", ".", "-")
	return replacer.Replace(lower)
}

// ShellQuote quotes value for a POSIX shell. Values that cannot be
// represented (e.g. containing NUL) are returned unchanged.
func ShellQuote(value string) string {
	quoted, err := syntax.Quote(value, syntax.LangPOSIX)
	if err != nil {
		return value
	}
	return quoted
}

// ShellJoin renders argv as a single copy-pasteable command line.
func ShellJoin(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, ShellQuote(arg))
	}
	return strings.Join(quoted, " ")
}
