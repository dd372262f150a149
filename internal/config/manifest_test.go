package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `package: mockclient
output: futures_gen.go
kinds:
  - name: bool
  - name: const_char_ptr
    type: string
  - name: error_ptr
    type: "*ClientError"
    release: releaseClientError
operations:
  - name: ping
    returns: bool
    params:
      - kind: const_char_ptr
        name: msg
  - name: cursor_next
    returns: bool
    call: AdvanceCursor
    params:
      - kind: error_ptr
        name: err
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "futuregen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "mockclient", m.Package)
	assert.Equal(t, DefaultRuntimeImport, m.Runtime, "runtime default not applied")
	require.Len(t, m.Kinds, 3)
	assert.Equal(t, "releaseClientError", m.Kinds[2].Release)
	require.Len(t, m.Operations, 2)
	assert.Equal(t, "AdvanceCursor", m.Operations[1].Call)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"missing package", "kinds:\n  - name: bool\n"},
		{"bad package ident", "package: \"9lives\"\nkinds:\n  - name: bool\n"},
		{"no kinds", "package: p\n"},
		{"unnamed kind", "package: p\nkinds:\n  - type: bool\n"},
		{"op without returns", "package: p\nkinds:\n  - name: bool\noperations:\n  - name: ping\n"},
		{"param without name", "package: p\nkinds:\n  - name: bool\noperations:\n  - name: ping\n    returns: bool\n    params:\n      - kind: bool\n"},
		{"not yaml", "{{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.manifest))
			assert.Error(t, err)
		})
	}
}

func TestManifest_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "futuregen.yaml")

	m := Default()
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "futuregen.yaml", loaded.Source)

	loaded.Source = ""
	assert.Equal(t, m, loaded)
}

func TestManifest_BuildRegistry(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	reg, err := m.BuildRegistry()
	require.NoError(t, err)
	assert.True(t, reg.Frozen())
	assert.Equal(t, 3, reg.Len())

	k, ok := reg.Resolve("const_char_ptr")
	require.True(t, ok)
	assert.Equal(t, "string", k.Type())
}

func TestManifest_BuildRegistry_DuplicateKind(t *testing.T) {
	m := &Manifest{
		Package: "p",
		Kinds:   []KindDecl{{Name: "bool"}, {Name: "bool"}},
	}
	m.ApplyDefaults()

	_, err := m.BuildRegistry()
	assert.ErrorContains(t, err, "duplicate kind")
}

func TestManifest_Descriptors(t *testing.T) {
	m, err := Load(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	ops := m.Descriptors()
	require.Len(t, ops, 2)
	assert.Equal(t, "ping", ops[0].Name)
	assert.Equal(t, "bool", ops[0].Returns)
	require.Len(t, ops[0].Params, 1)
	assert.Equal(t, "msg", ops[0].Params[0].Name)
	assert.Equal(t, "AdvanceCursor", ops[1].Call)
}
