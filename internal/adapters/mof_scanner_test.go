package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func givenRepositoryStructure(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		writeMof(t, filepath.Join(root, name), "class Class1 {\n}")
	}
}

func TestMofScannerAdapter_FindsRecursively(t *testing.T) {
	root := t.TempDir()
	givenRepositoryStructure(t, root, "File1.mof", "directory1/File2.mof", "directory2/File3.mof")

	paths, err := NewMofScannerAdapter().FindMofFiles(root)
	require.NoError(t, err)
	want := []string{
		filepath.Join(root, "File1.mof"),
		filepath.Join(root, "directory1", "File2.mof"),
		filepath.Join(root, "directory2", "File3.mof"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestMofScannerAdapter_IgnoresNonMofFiles(t *testing.T) {
	root := t.TempDir()
	givenRepositoryStructure(t, root, "File1.mof", "directory1/File2.mof", "directory2/File3.notmof", "File4.MOF")

	paths, err := NewMofScannerAdapter().FindMofFiles(root)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestMofScannerAdapter_SkipsVCSDirs(t *testing.T) {
	root := t.TempDir()
	givenRepositoryStructure(t, root, ".git/objects/Stale.mof", "Real.mof")

	paths, err := NewMofScannerAdapter().FindMofFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Real.mof")}, paths)
}

func TestMofScannerAdapter_EmptyDirReturnsNil(t *testing.T) {
	paths, err := NewMofScannerAdapter().FindMofFiles(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestMofScannerAdapter_EmptyRootErrors(t *testing.T) {
	_, err := NewMofScannerAdapter().FindMofFiles("")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestMofScannerAdapter_MissingRootIsEmpty(t *testing.T) {
	paths, err := NewMofScannerAdapter().FindMofFiles(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMofScannerAdapter_FileRootIsEmpty(t *testing.T) {
	path := writeMof(t, filepath.Join(t.TempDir(), "Single.mof"), "class A {}")
	paths, err := NewMofScannerAdapter().FindMofFiles(path)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMofScannerAdapter_IsIdempotent(t *testing.T) {
	root := t.TempDir()
	givenRepositoryStructure(t, root, "b/B.mof", "a/A.mof", "C.mof")
	scanner := NewMofScannerAdapter()

	first, err := scanner.FindMofFiles(root)
	require.NoError(t, err)
	second, err := scanner.FindMofFiles(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
