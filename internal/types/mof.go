package types

// MofFile is the class information extracted from one MOF file.
//
// DefinedClasses keeps declaration order and is not deduplicated.
// DependentClasses holds base classes referenced by declarations in the
// file that are not defined by the file itself, in first-seen order.
// Declarations keeps every matched declaration with its base, if any.
type MofFile struct {
	Path             string
	DefinedClasses   []string
	DependentClasses []string
	Declarations     []ClassDeclaration
}

// ClassDeclaration is a single `class Name [: Base] {` match.
type ClassDeclaration struct {
	Name string
	Base string
}

// WalkResult is the outcome of a dependency walk.
type WalkResult struct {
	// Required lists the files needed by the roots, in discovery order.
	Required []MofFile
	// Unresolved lists referenced classes no indexed file defines.
	Unresolved []string
}

// RequiredPaths returns the paths of the required files in order.
func (r WalkResult) RequiredPaths() []string {
	paths := make([]string, 0, len(r.Required))
	for _, file := range r.Required {
		paths = append(paths, file.Path)
	}
	return paths
}
