package types

// ForwardRefMode controls how a base class that is declared later in the
// same file is treated while parsing.
type ForwardRefMode string

const (
	// ForwardRefOrdered checks a base class only against classes declared
	// before it, so a later local declaration is still reported as a
	// dependency.
	ForwardRefOrdered ForwardRefMode = "ordered"
	// ForwardRefResolve drops every dependency the file declares anywhere.
	ForwardRefResolve ForwardRefMode = "resolve"
)

type IncludeFormat string

const (
	IncludeFormatPragma IncludeFormat = "pragma"
	IncludeFormatPaths  IncludeFormat = "paths"
)
