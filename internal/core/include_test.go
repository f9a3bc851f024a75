package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"mofprune/internal/types"
)

func TestIncludeDirectives(t *testing.T) {
	tests := []struct {
		name      string
		schemaDir string
		paths     []string
		format    types.IncludeFormat
		want      []string
	}{
		{
			name:      "schema dir without trailing slash",
			schemaDir: "/opt/dmtf/cimv2171",
			paths:     []string{"/opt/dmtf/cimv2171/Core/CIM_ManagedElement.mof"},
			format:    types.IncludeFormatPragma,
			want:      []string{`#pragma include ("Core/CIM_ManagedElement.mof")`},
		},
		{
			name:      "schema dir with trailing slash",
			schemaDir: "/opt/dmtf/cimv2171/",
			paths:     []string{"/opt/dmtf/cimv2171/Core/CIM_ManagedElement.mof"},
			format:    types.IncludeFormatPragma,
			want:      []string{`#pragma include ("Core/CIM_ManagedElement.mof")`},
		},
		{
			name:      "path outside schema dir is kept",
			schemaDir: "/opt/dmtf/cimv2171",
			paths:     []string{"/elsewhere/Extra.mof"},
			format:    types.IncludeFormatPragma,
			want:      []string{`#pragma include ("/elsewhere/Extra.mof")`},
		},
		{
			name:      "only the first occurrence is stripped",
			schemaDir: "s",
			paths:     []string{"s/a/s/b.mof"},
			format:    types.IncludeFormatPaths,
			want:      []string{"a/s/b.mof"},
		},
		{
			name:      "paths format keeps order",
			schemaDir: "./repository",
			paths:     []string{"./repository/B.mof", "./repository/A.mof"},
			format:    types.IncludeFormatPaths,
			want:      []string{"B.mof", "A.mof"},
		},
		{
			name:      "no paths",
			schemaDir: "./repository",
			paths:     nil,
			format:    types.IncludeFormatPragma,
			want:      []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IncludeDirectives(tt.paths, tt.schemaDir, tt.format)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected directives (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIncludePrefix(t *testing.T) {
	assert.Equal(t, "", IncludePrefix(""))
	assert.Equal(t, "dir/", IncludePrefix("dir"))
	assert.Equal(t, "dir/", IncludePrefix("dir/"))
	assert.Equal(t, "path", StripIncludePrefix("path", ""))
}

func TestNormalizeIncludeFormat(t *testing.T) {
	format, ok := NormalizeIncludeFormat("")
	assert.True(t, ok)
	assert.Equal(t, types.IncludeFormatPragma, format)

	format, ok = NormalizeIncludeFormat("paths")
	assert.True(t, ok)
	assert.Equal(t, types.IncludeFormatPaths, format)

	_, ok = NormalizeIncludeFormat("json")
	assert.False(t, ok)
}
