package adapters

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mofprune/internal/ports"
)

type StagingAdapter struct{}

func NewStagingAdapter() StagingAdapter {
	return StagingAdapter{}
}

// StageFiles copies files into stageDir under their path relative to
// schemaDir and returns the destination paths. Files outside schemaDir
// are staged under their base name.
func (a StagingAdapter) StageFiles(schemaDir string, files []string, stageDir string) ([]string, error) {
	if strings.TrimSpace(stageDir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("stage directory is empty")
	}
	if err := os.MkdirAll(stageDir, 0o750); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create stage directory").
			WithCause(err)
	}
	staged := make([]string, 0, len(files))
	for _, src := range files {
		destPath := filepath.Join(stageDir, stagedRelativePath(schemaDir, src))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create stage subdirectory").
				WithCause(err)
		}
		if err := copySchemaFile(src, destPath); err != nil {
			return nil, err
		}
		staged = append(staged, destPath)
	}
	return staged, nil
}

func stagedRelativePath(schemaDir string, path string) string {
	if strings.TrimSpace(schemaDir) != "" {
		rel, err := filepath.Rel(schemaDir, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return rel
		}
	}
	return filepath.Base(path)
}

func copySchemaFile(srcPath string, destPath string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open schema file").
			WithCause(err)
	}
	defer srcFile.Close()
	destFile, err := os.Create(destPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create staged schema file").
			WithCause(err)
	}
	return writeStagedFile(destFile, srcFile)
}

// writeStagedFile copies src into dst and closes dst. A failed close is
// reported since it can hide a short write.
func writeStagedFile(dst io.WriteCloser, src io.Reader) error {
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy schema file").
			WithCause(err)
	}
	if err := dst.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close staged schema file").
			WithCause(err)
	}
	return nil
}

var _ ports.StagingPort = StagingAdapter{}
