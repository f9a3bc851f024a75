package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"mofprune/internal/shared"
	"mofprune/internal/types"
)

// Inspect parses the given files on their own. Missing files come back
// with empty class lists.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	paths := shared.TrimmedValues(req.Files)
	if len(paths) == 0 {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one mof file is required")
	}
	parser, err := s.parser(req.ForwardRefs)
	if err != nil {
		return InspectResult{}, err
	}
	files := make([]types.MofFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, parser.Parse(path))
	}
	return InspectResult{Files: files}, nil
}
