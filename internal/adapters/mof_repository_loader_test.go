package adapters

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofprune/internal/types"
)

func TestMofRepositoryLoaderAdapter_LoadKeepsScanOrder(t *testing.T) {
	root := t.TempDir()
	writeMof(t, filepath.Join(root, "a", "Alpha.mof"), "class Alpha : Base {}")
	writeMof(t, filepath.Join(root, "b", "Beta.mof"), "class Beta {}")
	writeMof(t, filepath.Join(root, "Base.mof"), "class Base {}")

	loader := NewMofRepositoryLoaderAdapter(NewMofScannerAdapter(), NewMofFileAdapter(types.ForwardRefOrdered), 2)
	files, err := loader.Load(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(root, "Base.mof"), files[0].Path)
	assert.Equal(t, filepath.Join(root, "a", "Alpha.mof"), files[1].Path)
	assert.Equal(t, []string{"Base"}, files[1].DependentClasses)
	assert.Equal(t, filepath.Join(root, "b", "Beta.mof"), files[2].Path)
}

func TestMofRepositoryLoaderAdapter_DefaultWorkers(t *testing.T) {
	root := t.TempDir()
	writeMof(t, filepath.Join(root, "One.mof"), "class One {}")

	loader := NewMofRepositoryLoaderAdapter(NewMofScannerAdapter(), NewMofFileAdapter(types.ForwardRefOrdered), 0)
	files, err := loader.Load(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{"One"}, files[0].DefinedClasses)
}

func TestMofRepositoryLoaderAdapter_MissingRootIsEmpty(t *testing.T) {
	loader := NewMofRepositoryLoaderAdapter(NewMofScannerAdapter(), NewMofFileAdapter(types.ForwardRefOrdered), 1)
	files, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestMofRepositoryLoaderAdapter_ScanErrorPropagates(t *testing.T) {
	loader := NewMofRepositoryLoaderAdapter(NewMofScannerAdapter(), NewMofFileAdapter(types.ForwardRefOrdered), 1)
	_, err := loader.Load(context.Background(), " ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestMofRepositoryLoaderAdapter_CanceledContext(t *testing.T) {
	root := t.TempDir()
	writeMof(t, filepath.Join(root, "One.mof"), "class One {}")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewMofRepositoryLoaderAdapter(NewMofScannerAdapter(), NewMofFileAdapter(types.ForwardRefOrdered), 1)
	_, err := loader.Load(ctx, root)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
