package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"mofprune/internal/ports"
	"mofprune/internal/types"
)

// ClassIndexFileAdapter persists a parsed schema directory as YAML.
type ClassIndexFileAdapter struct{}

func NewClassIndexFileAdapter() ClassIndexFileAdapter {
	return ClassIndexFileAdapter{}
}

func (a ClassIndexFileAdapter) Write(path string, index types.ClassIndexFile) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := yaml.Marshal(index)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal class index").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create class index directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write class index").
			WithCause(err)
	}
	return nil
}

func (a ClassIndexFileAdapter) Read(path string) (types.ClassIndexFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ClassIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("class index file not found").
			WithCause(err)
	}
	var index types.ClassIndexFile
	if err := yaml.Unmarshal(data, &index); err != nil {
		return types.ClassIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid class index format").
			WithCause(err)
	}
	for i, entry := range index.Files {
		if strings.TrimSpace(entry.Path) == "" {
			return types.ClassIndexFile{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("class index entry %d has empty path", i))
		}
	}
	return index, nil
}

var (
	_ ports.ClassIndexWriterPort = ClassIndexFileAdapter{}
	_ ports.ClassIndexReaderPort = ClassIndexFileAdapter{}
)
