package adapters

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"mofprune/internal/core"
	"mofprune/internal/ports"
	"mofprune/internal/types"
)

const defaultParseCacheSize = 4096

type parseKey struct {
	path string
	mode types.ForwardRefMode
}

// MofFileAdapter reads MOF files from disk and memoizes the parse result
// per path, so a root file that also lives in the schema directory is
// only read once.
type MofFileAdapter struct {
	Mode  types.ForwardRefMode
	cache *lru.Cache[parseKey, types.MofFile]
}

func NewMofFileAdapter(mode types.ForwardRefMode) MofFileAdapter {
	cache, err := lru.New[parseKey, types.MofFile](defaultParseCacheSize)
	if err != nil {
		log.Warn().Err(err).Msg("parse cache disabled")
		cache = nil
	}
	return MofFileAdapter{Mode: mode, cache: cache}
}

func (a MofFileAdapter) Parse(path string) types.MofFile {
	key := parseKey{path: path, mode: a.Mode}
	if a.cache != nil {
		if cached, ok := a.cache.Get(key); ok {
			return cached
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("mof file unreadable, treating as empty")
		return types.MofFile{Path: path}
	}
	file := core.ParseMofContent(path, string(content), a.Mode)
	if a.cache != nil {
		a.cache.Add(key, file)
	}
	return file
}

var _ ports.MofParserPort = MofFileAdapter{}
