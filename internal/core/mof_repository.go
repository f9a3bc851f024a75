package core

import (
	"mofprune/internal/ports"
	"mofprune/internal/types"
)

// MofRepository maps class names to the file that defines them. It is
// read-only once built.
type MofRepository struct {
	files       []types.MofFile
	classToFile map[string]int
}

// NewMofRepository indexes files in the given order. A class defined by
// more than one file resolves to the last of them.
func NewMofRepository(files []types.MofFile) MofRepository {
	repo := MofRepository{
		files:       append([]types.MofFile(nil), files...),
		classToFile: make(map[string]int),
	}
	for i, file := range repo.files {
		for _, class := range file.DefinedClasses {
			repo.classToFile[class] = i
		}
	}
	return repo
}

func (r MofRepository) FileDefiningClass(class string) (types.MofFile, bool) {
	idx, ok := r.classToFile[class]
	if !ok {
		return types.MofFile{}, false
	}
	return r.files[idx], true
}

func (r MofRepository) AllMofFiles() []types.MofFile {
	return append([]types.MofFile(nil), r.files...)
}

// ClassCount returns the number of distinct indexed class names.
func (r MofRepository) ClassCount() int {
	return len(r.classToFile)
}

// ClassToFile returns a copy of the class name to file path mapping.
func (r MofRepository) ClassToFile() map[string]string {
	mapping := make(map[string]string, len(r.classToFile))
	for class, idx := range r.classToFile {
		mapping[class] = r.files[idx].Path
	}
	return mapping
}

var _ ports.MofRepositoryPort = MofRepository{}
