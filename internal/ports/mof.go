package ports

import (
	"context"

	"mofprune/internal/types"
)

// MofParserPort turns a MOF file path into its class information.
// A file that cannot be read yields an empty MofFile, never an error.
type MofParserPort interface {
	Parse(path string) types.MofFile
}

// MofScannerPort discovers MOF files below a schema directory.
type MofScannerPort interface {
	FindMofFiles(root string) ([]string, error)
}

// MofRepositoryPort looks up the file that defines a class.
type MofRepositoryPort interface {
	// FileDefiningClass returns (file, true) on hit and (zero, false) when
	// no indexed file defines the class.
	FileDefiningClass(class string) (types.MofFile, bool)

	// AllMofFiles returns every indexed file in scan order.
	AllMofFiles() []types.MofFile
}

// MofRepositoryLoaderPort scans and parses a schema directory.
type MofRepositoryLoaderPort interface {
	Load(ctx context.Context, root string) ([]types.MofFile, error)
}
