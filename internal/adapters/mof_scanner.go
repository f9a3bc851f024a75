package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"mofprune/internal/ports"
)

const mofSuffix = ".mof"

type MofScannerAdapter struct{}

func NewMofScannerAdapter() MofScannerAdapter {
	return MofScannerAdapter{}
}

// FindMofFiles returns every *.mof file below root in lexical walk order.
// Returned paths are built with filepath.Join and therefore cleaned. A
// root that does not exist or is not a directory holds no files.
func (a MofScannerAdapter) FindMofFiles(root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema directory is empty")
	}
	info, err := os.Stat(root)
	if err != nil {
		event := log.Warn().Str("root", root)
		if !errors.Is(err, fs.ErrNotExist) {
			event = event.Err(err)
		}
		event.Msg("schema directory not readable, repository is empty")
		return nil, nil
	}
	if !info.IsDir() {
		log.Warn().Str("root", root).Msg("schema directory is not a directory, repository is empty")
		return nil, nil
	}

	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable schema path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && shouldSkipSchemaDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), mofSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, nil
}

func shouldSkipSchemaDir(name string) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	default:
		return false
	}
}

var _ ports.MofScannerPort = MofScannerAdapter{}
