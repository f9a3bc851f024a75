package ports

import (
	"context"

	"mofprune/internal/types"
)

// GraphExporterPort stores a class inheritance graph in an external
// graph database.
type GraphExporterPort interface {
	Clean(ctx context.Context) error
	Export(ctx context.Context, graph types.ClassGraph) error
	Close(ctx context.Context) error
}

// GraphExporterFactory opens an exporter for the given connection.
type GraphExporterFactory func(ctx context.Context, uri string, user string, password string) (GraphExporterPort, error)
