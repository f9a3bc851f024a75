package app

import (
	"bytes"
	"context"

	"mofprune/internal/adapters"
	"mofprune/internal/ports"
	"mofprune/internal/types"
)

func newTestService(stdout *bytes.Buffer) Service {
	service := NewService()
	service.Output = adapters.IncludeOutputAdapter{Stdout: stdout}
	return service
}

type fakeGraphExporter struct {
	cleaned bool
	graphs  []types.ClassGraph
	closed  bool
}

func (f *fakeGraphExporter) Clean(ctx context.Context) error {
	f.cleaned = true
	return nil
}

func (f *fakeGraphExporter) Export(ctx context.Context, graph types.ClassGraph) error {
	f.graphs = append(f.graphs, graph)
	return nil
}

func (f *fakeGraphExporter) Close(ctx context.Context) error {
	f.closed = true
	return nil
}

func fakeExporterFactory(exporter *fakeGraphExporter) ports.GraphExporterFactory {
	return func(ctx context.Context, uri string, user string, password string) (ports.GraphExporterPort, error) {
		return exporter, nil
	}
}
