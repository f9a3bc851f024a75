// Package shared provides common utility functions used across multiple
// packages in the mofprune codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// TrimmedValues trims each value and drops the empty ones. It returns nil
// when nothing is left.
func TrimmedValues(values []string) []string {
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value != "" {
			out = append(out, value)
		}
	}
	return out
}

// CleanDir cleans a directory path, keeping blank input empty instead of
// turning it into ".".
func CleanDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return ""
	}
	return filepath.Clean(strings.TrimSpace(dir))
}
