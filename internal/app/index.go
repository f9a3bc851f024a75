package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"mofprune/internal/core"
)

func (s Service) Index(ctx context.Context, req IndexRequest) (IndexResult, error) {
	if strings.TrimSpace(req.SchemaDir) == "" {
		return IndexResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cim schema dir is required")
	}
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return IndexResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	parser, err := s.parser(req.ForwardRefs)
	if err != nil {
		return IndexResult{}, err
	}
	files, schemaDir, err := s.loadSchema(ctx, req.SchemaDir, "", parser, req.Workers)
	if err != nil {
		return IndexResult{}, err
	}
	assert.NotEmpty(ctx, schemaDir, "schema dir must be set after load")

	index := core.BuildClassIndex(schemaDir, files)
	if err := s.IndexWriter.Write(output, index); err != nil {
		return IndexResult{}, err
	}
	return IndexResult{
		OutputPath: output,
		FileCount:  len(files),
		ClassCount: core.NewMofRepository(files).ClassCount(),
	}, nil
}
