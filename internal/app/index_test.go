package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofprune/internal/adapters"
)

func TestIndexApp(t *testing.T) {
	schemaDir, _ := sampleSchema(t)
	output := filepath.Join(t.TempDir(), "class-index.yaml")
	var stdout bytes.Buffer

	result, err := newTestService(&stdout).Index(t.Context(), IndexRequest{
		SchemaDir: schemaDir,
		Output:    output,
	})
	require.NoError(t, err)
	assert.Equal(t, output, result.OutputPath)
	assert.Equal(t, 2, result.FileCount)
	assert.Equal(t, 2, result.ClassCount)

	index, err := adapters.NewClassIndexFileAdapter().Read(output)
	require.NoError(t, err)
	assert.Equal(t, schemaDir, index.SchemaDir)
	require.Len(t, index.Files, 2)
	assert.Equal(t, "BaseClass.mof", index.Files[0].Path)
	assert.Equal(t, []string{"BaseClass"}, index.Files[1].Depends)
}

func TestIndexIsIdempotent(t *testing.T) {
	schemaDir, _ := sampleSchema(t)
	dir := t.TempDir()
	var stdout bytes.Buffer
	service := newTestService(&stdout)

	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	_, err := service.Index(t.Context(), IndexRequest{SchemaDir: schemaDir, Output: first})
	require.NoError(t, err)
	_, err = service.Index(t.Context(), IndexRequest{SchemaDir: schemaDir, Output: second})
	require.NoError(t, err)

	reader := adapters.NewClassIndexFileAdapter()
	a, err := reader.Read(first)
	require.NoError(t, err)
	b, err := reader.Read(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIndexRequiresOutput(t *testing.T) {
	schemaDir, _ := sampleSchema(t)
	var stdout bytes.Buffer
	_, err := newTestService(&stdout).Index(t.Context(), IndexRequest{SchemaDir: schemaDir})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
