package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mofprune/internal/adapters"
	"mofprune/internal/core"
	"mofprune/internal/ports"
	"mofprune/internal/shared"
	"mofprune/internal/types"
)

type Service struct {
	Parsers       func(mode types.ForwardRefMode) ports.MofParserPort
	Scanner       ports.MofScannerPort
	IndexReader   ports.ClassIndexReaderPort
	IndexWriter   ports.ClassIndexWriterPort
	Output        ports.IncludeOutputPort
	Staging       ports.StagingPort
	GraphExporter ports.GraphExporterFactory
}

func NewService() Service {
	index := adapters.NewClassIndexFileAdapter()
	return Service{
		Parsers: func(mode types.ForwardRefMode) ports.MofParserPort {
			return adapters.NewMofFileAdapter(mode)
		},
		Scanner:       adapters.NewMofScannerAdapter(),
		IndexReader:   index,
		IndexWriter:   index,
		Output:        adapters.NewIncludeOutputAdapter(),
		Staging:       adapters.NewStagingAdapter(),
		GraphExporter: adapters.NewNeo4jGraphAdapter,
	}
}

func (s Service) parser(forwardRefs string) (ports.MofParserPort, error) {
	mode, ok := core.NormalizeForwardRefMode(forwardRefs)
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported forward reference mode: " + forwardRefs)
	}
	return s.Parsers(mode), nil
}

func (s Service) loader(parser ports.MofParserPort, workers int) ports.MofRepositoryLoaderPort {
	return adapters.NewMofRepositoryLoaderAdapter(s.Scanner, parser, workers)
}

// loadSchema returns the parsed schema files and the cleaned schema
// directory, either by scanning schemaDir or by reading a class index.
// An index supplies the schema directory when schemaDir is empty, and
// its relative file paths resolve against whichever directory is used.
func (s Service) loadSchema(ctx context.Context, schemaDir string, classIndex string, parser ports.MofParserPort, workers int) ([]types.MofFile, string, error) {
	schemaDir = strings.TrimSpace(schemaDir)
	classIndex = strings.TrimSpace(classIndex)
	if classIndex != "" {
		index, err := s.IndexReader.Read(classIndex)
		if err != nil {
			return nil, "", err
		}
		if schemaDir == "" {
			schemaDir = index.SchemaDir
		}
		schemaDir = shared.CleanDir(schemaDir)
		return core.FilesFromClassIndex(index, schemaDir), schemaDir, nil
	}
	if schemaDir == "" {
		return nil, "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cim schema dir or class index is required")
	}
	schemaDir = shared.CleanDir(schemaDir)
	files, err := s.loader(parser, workers).Load(ctx, schemaDir)
	if err != nil {
		return nil, "", err
	}
	return files, schemaDir, nil
}
