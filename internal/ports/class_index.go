package ports

import "mofprune/internal/types"

type ClassIndexWriterPort interface {
	Write(path string, index types.ClassIndexFile) error
}

type ClassIndexReaderPort interface {
	Read(path string) (types.ClassIndexFile, error)
}
