package core

import (
	"fmt"
	"strings"

	"mofprune/internal/types"
)

// IncludePrefix returns the schema directory in the form that is stripped
// from required file paths.
func IncludePrefix(schemaDir string) string {
	if schemaDir == "" || strings.HasSuffix(schemaDir, "/") {
		return schemaDir
	}
	return schemaDir + "/"
}

// StripIncludePrefix removes the first occurrence of prefix from path.
func StripIncludePrefix(path string, prefix string) string {
	if prefix == "" {
		return path
	}
	return strings.Replace(path, prefix, "", 1)
}

// IncludeDirectives renders one line per required file. Paths are made
// relative to schemaDir before rendering.
func IncludeDirectives(paths []string, schemaDir string, format types.IncludeFormat) []string {
	prefix := IncludePrefix(schemaDir)
	lines := make([]string, 0, len(paths))
	for _, path := range paths {
		relative := StripIncludePrefix(path, prefix)
		switch format {
		case types.IncludeFormatPaths:
			lines = append(lines, relative)
		default:
			lines = append(lines, fmt.Sprintf("#pragma include (\"%s\")", relative))
		}
	}
	return lines
}

func NormalizeIncludeFormat(value string) (types.IncludeFormat, bool) {
	switch types.IncludeFormat(value) {
	case "", types.IncludeFormatPragma:
		return types.IncludeFormatPragma, true
	case types.IncludeFormatPaths:
		return types.IncludeFormatPaths, true
	default:
		return types.IncludeFormatPragma, false
	}
}
