package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofprune/internal/types"
)

func TestClassIndexFileAdapter_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "class-index.yaml")
	index := types.ClassIndexFile{
		SchemaDir: "/srv/cim/repository",
		Files: []types.ClassIndexEntry{
			{
				Path:    "Core/CIM_ManagedElement.mof",
				Classes: []types.ClassIndexClass{{Name: "CIM_ManagedElement"}},
			},
			{
				Path:    "Core/CIM_LogicalElement.mof",
				Classes: []types.ClassIndexClass{{Name: "CIM_LogicalElement", Base: "CIM_ManagedElement"}},
				Depends: []string{"CIM_ManagedElement"},
			},
		},
	}

	adapter := NewClassIndexFileAdapter()
	require.NoError(t, adapter.Write(path, index))

	got, err := adapter.Read(path)
	require.NoError(t, err)
	if diff := cmp.Diff(index, got); diff != "" {
		t.Fatalf("unexpected index (-want +got):\n%s", diff)
	}
}

func TestClassIndexFileAdapter_WriteRequiresPath(t *testing.T) {
	err := NewClassIndexFileAdapter().Write(" ", types.ClassIndexFile{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestClassIndexFileAdapter_ReadMissing(t *testing.T) {
	_, err := NewClassIndexFileAdapter().Read(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestClassIndexFileAdapter_ReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("files: [unterminated"), 0644))

	_, err := NewClassIndexFileAdapter().Read(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestClassIndexFileAdapter_ReadRejectsEmptyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.yaml")
	content := "schema_dir: repository\nfiles:\n  - path: \"\"\n    classes:\n      - name: CIM_Foo\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewClassIndexFileAdapter().Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0 has empty path")
}
