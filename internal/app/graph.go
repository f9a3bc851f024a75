package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mofprune/internal/core"
)

// GraphExport loads the schema and writes its class inheritance graph to
// Neo4j.
func (s Service) GraphExport(ctx context.Context, req GraphExportRequest) (GraphExportResult, error) {
	uri := strings.TrimSpace(req.URI)
	if uri == "" {
		return GraphExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("neo4j uri is required")
	}
	parser, err := s.parser(req.ForwardRefs)
	if err != nil {
		return GraphExportResult{}, err
	}
	files, _, err := s.loadSchema(ctx, req.SchemaDir, req.ClassIndex, parser, req.Workers)
	if err != nil {
		return GraphExportResult{}, err
	}
	graph := core.BuildClassGraph(core.NewMofRepository(files))

	exporter, err := s.GraphExporter(ctx, uri, strings.TrimSpace(req.User), req.Password)
	if err != nil {
		return GraphExportResult{}, err
	}
	defer func() {
		if err := exporter.Close(ctx); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("failed to close neo4j driver")
		}
	}()

	if req.Clean {
		if err := exporter.Clean(ctx); err != nil {
			return GraphExportResult{}, err
		}
	}
	if err := exporter.Export(ctx, graph); err != nil {
		return GraphExportResult{}, err
	}
	return GraphExportResult{
		FileCount:  len(graph.Files),
		ClassCount: len(graph.Nodes),
		EdgeCount:  len(graph.Edges),
	}, nil
}
