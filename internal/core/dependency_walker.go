package core

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"mofprune/internal/ports"
	"mofprune/internal/types"
)

// DependencyWalker computes which repository files the root files need
// to resolve their base classes.
type DependencyWalker struct {
	Repository ports.MofRepositoryPort
}

func NewDependencyWalker(repository ports.MofRepositoryPort) DependencyWalker {
	return DependencyWalker{Repository: repository}
}

// Walk follows base class references breadth first. Classes no file
// defines are skipped. Root files are never part of the result and each
// file is expanded at most once, so reference cycles terminate.
func (w DependencyWalker) Walk(ctx context.Context, roots []types.MofFile) types.WalkResult {
	rootPaths := map[string]struct{}{}
	var queue []string
	queued := map[string]struct{}{}
	for _, root := range roots {
		rootPaths[pathKey(root.Path)] = struct{}{}
		for _, class := range root.DependentClasses {
			if _, ok := queued[class]; ok {
				continue
			}
			queued[class] = struct{}{}
			queue = append(queue, class)
		}
	}

	var result types.WalkResult
	added := map[string]struct{}{}
	unresolved := map[string]struct{}{}
	for len(queue) > 0 {
		class := queue[0]
		queue = queue[1:]

		file, ok := w.Repository.FileDefiningClass(class)
		if !ok {
			if _, seen := unresolved[class]; !seen {
				unresolved[class] = struct{}{}
				result.Unresolved = append(result.Unresolved, class)
			}
			continue
		}
		key := pathKey(file.Path)
		if _, isRoot := rootPaths[key]; isRoot {
			continue
		}
		if _, done := added[key]; done {
			continue
		}
		added[key] = struct{}{}
		result.Required = append(result.Required, file)
		queue = append(queue, file.DependentClasses...)
	}

	log.Ctx(ctx).Debug().
		Int("roots", len(roots)).
		Int("required", len(result.Required)).
		Int("unresolved", len(result.Unresolved)).
		Msg("dependency walk complete")
	return result
}

// pathKey identifies a file independent of how its path is spelled.
func pathKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
