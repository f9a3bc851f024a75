package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mofprune/internal/core"
	"mofprune/internal/shared"
	"mofprune/internal/types"
)

const defaultIncludeName = "schema-includes.mof"

// Prune computes the schema files the roots depend on and writes them as
// include directives.
func (s Service) Prune(ctx context.Context, req PruneRequest) (PruneResult, error) {
	roots := shared.TrimmedValues(req.Roots)
	if len(roots) == 0 {
		return PruneResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one root mof file is required")
	}
	format, ok := core.NormalizeIncludeFormat(req.Format)
	if !ok {
		return PruneResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported include format: " + req.Format)
	}
	parser, err := s.parser(req.ForwardRefs)
	if err != nil {
		return PruneResult{}, err
	}
	files, schemaDir, err := s.loadSchema(ctx, req.SchemaDir, req.ClassIndex, parser, req.Workers)
	if err != nil {
		return PruneResult{}, err
	}
	repository := core.NewMofRepository(files)

	rootFiles := make([]types.MofFile, 0, len(roots))
	for _, root := range roots {
		rootFiles = append(rootFiles, parser.Parse(root))
	}
	walk := core.NewDependencyWalker(repository).Walk(ctx, rootFiles)
	for _, class := range walk.Unresolved {
		log.Ctx(ctx).Warn().Str("class", class).Msg("no schema file defines class")
	}

	required := walk.RequiredPaths()
	lines := core.IncludeDirectives(required, schemaDir, format)
	result := PruneResult{
		Required:   required,
		Lines:      lines,
		Unresolved: walk.Unresolved,
		OutputPath: strings.TrimSpace(req.Output),
	}

	if stageDir := strings.TrimSpace(req.StageDir); stageDir != "" {
		staged, err := s.Staging.StageFiles(schemaDir, required, stageDir)
		if err != nil {
			return PruneResult{}, err
		}
		includeName := strings.TrimSpace(req.IncludeName)
		if includeName == "" {
			includeName = defaultIncludeName
		}
		result.Staged = staged
		result.IncludePath = filepath.Join(stageDir, includeName)
		if err := s.Output.WriteLines(result.IncludePath, lines); err != nil {
			return PruneResult{}, err
		}
	}

	if err := s.Output.WriteLines(result.OutputPath, lines); err != nil {
		return PruneResult{}, err
	}
	log.Ctx(ctx).Info().
		Int("roots", len(rootFiles)).
		Int("schema_files", len(files)).
		Int("required", len(required)).
		Msg("prune complete")
	return result, nil
}
