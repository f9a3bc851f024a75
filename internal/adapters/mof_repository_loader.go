package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"mofprune/internal/ports"
	"mofprune/internal/types"
)

const defaultParseWorkers = 8

// MofRepositoryLoaderAdapter scans a schema directory and parses every
// file on a bounded worker pool. Results keep scan order.
type MofRepositoryLoaderAdapter struct {
	Scanner ports.MofScannerPort
	Parser  ports.MofParserPort
	Workers int
}

func NewMofRepositoryLoaderAdapter(scanner ports.MofScannerPort, parser ports.MofParserPort, workers int) MofRepositoryLoaderAdapter {
	return MofRepositoryLoaderAdapter{
		Scanner: scanner,
		Parser:  parser,
		Workers: workers,
	}
}

func (a MofRepositoryLoaderAdapter) Load(ctx context.Context, root string) ([]types.MofFile, error) {
	paths, err := a.Scanner.FindMofFiles(root)
	if err != nil {
		return nil, err
	}
	workers := a.Workers
	if workers <= 0 {
		workers = defaultParseWorkers
	}

	files := make([]types.MofFile, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			files[i] = a.Parser.Parse(path)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("schema directory load interrupted").
			WithCause(err)
	}

	log.Ctx(ctx).Debug().
		Str("root", root).
		Int("files", len(files)).
		Int("workers", workers).
		Msg("schema directory loaded")
	return files, nil
}

var _ ports.MofRepositoryLoaderPort = MofRepositoryLoaderAdapter{}
