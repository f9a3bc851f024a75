package core

import (
	"path/filepath"
	"strings"

	"mofprune/internal/types"
)

// BuildClassIndex converts parsed files into their persisted form. File
// paths are stored relative to schemaDir so the index stays valid when
// the schema tree is reached through a different path.
func BuildClassIndex(schemaDir string, files []types.MofFile) types.ClassIndexFile {
	index := types.ClassIndexFile{SchemaDir: absDir(schemaDir)}
	for _, file := range files {
		entry := types.ClassIndexEntry{
			Path:    indexedPath(schemaDir, file.Path),
			Depends: append([]string(nil), file.DependentClasses...),
		}
		for _, decl := range file.Declarations {
			entry.Classes = append(entry.Classes, types.ClassIndexClass{Name: decl.Name, Base: decl.Base})
		}
		index.Files = append(index.Files, entry)
	}
	return index
}

// FilesFromClassIndex rebuilds parsed files from a persisted index.
// Relative entry paths are joined to schemaDir, or to the index's own
// schema_dir when schemaDir is empty.
func FilesFromClassIndex(index types.ClassIndexFile, schemaDir string) []types.MofFile {
	if strings.TrimSpace(schemaDir) == "" {
		schemaDir = index.SchemaDir
	}
	files := make([]types.MofFile, 0, len(index.Files))
	for _, entry := range index.Files {
		path := filepath.FromSlash(entry.Path)
		if !filepath.IsAbs(path) && schemaDir != "" {
			path = filepath.Join(schemaDir, path)
		}
		file := types.MofFile{
			Path:             path,
			DependentClasses: append([]string(nil), entry.Depends...),
		}
		for _, class := range entry.Classes {
			file.DefinedClasses = append(file.DefinedClasses, class.Name)
			file.Declarations = append(file.Declarations, types.ClassDeclaration{Name: class.Name, Base: class.Base})
		}
		files = append(files, file)
	}
	return files
}

func absDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return ""
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return abs
}

// indexedPath is path relative to schemaDir in slash form, or path
// unchanged when it lies outside schemaDir.
func indexedPath(schemaDir string, path string) string {
	if strings.TrimSpace(schemaDir) == "" {
		return path
	}
	rel, err := filepath.Rel(absDir(schemaDir), pathKey(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
