package core

import (
	"regexp"

	"mofprune/internal/types"
)

// classDeclaration matches `class <Name> [: <Base>] {`. Matches inside
// comments or string literals are not filtered out.
var classDeclaration = regexp.MustCompile(`class\s+(\S+)\s*(?::\s*(\S+)\s*)?\{`)

// ParseMofContent extracts class declarations and external base class
// references from MOF source text.
func ParseMofContent(path string, content string, mode types.ForwardRefMode) types.MofFile {
	file := types.MofFile{Path: path}
	dependent := map[string]struct{}{}
	defined := map[string]struct{}{}

	for _, match := range classDeclaration.FindAllStringSubmatch(content, -1) {
		class, base := match[1], match[2]
		file.Declarations = append(file.Declarations, types.ClassDeclaration{Name: class, Base: base})
		if base != "" {
			_, seen := dependent[base]
			_, local := defined[base]
			if !seen && !local {
				dependent[base] = struct{}{}
				file.DependentClasses = append(file.DependentClasses, base)
			}
		}
		defined[class] = struct{}{}
		file.DefinedClasses = append(file.DefinedClasses, class)
	}

	if mode == types.ForwardRefResolve && len(file.DependentClasses) > 0 {
		external := file.DependentClasses[:0]
		for _, base := range file.DependentClasses {
			if _, local := defined[base]; local {
				continue
			}
			external = append(external, base)
		}
		file.DependentClasses = external
	}
	if len(file.DependentClasses) == 0 {
		file.DependentClasses = nil
	}
	return file
}

// NormalizeForwardRefMode parses a configured mode. Empty means ordered;
// the bool is false for values it does not recognise.
func NormalizeForwardRefMode(value string) (types.ForwardRefMode, bool) {
	switch types.ForwardRefMode(value) {
	case "", types.ForwardRefOrdered:
		return types.ForwardRefOrdered, true
	case types.ForwardRefResolve:
		return types.ForwardRefResolve, true
	default:
		return types.ForwardRefOrdered, false
	}
}
