package ports

// IncludeOutputPort emits rendered include lines. An empty path means
// standard output.
type IncludeOutputPort interface {
	WriteLines(path string, lines []string) error
}
