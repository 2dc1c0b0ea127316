package io_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	errs "github.com/matzehuels/graphstab/pkg/errors"
	gio "github.com/matzehuels/graphstab/pkg/io"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

var triangle = adjacency.Matrix{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}

func TestReadMatrix(t *testing.T) {
	tests := []struct {
		name     string
		format   gio.Format
		input    string
		wantName string
	}{
		{"json object", gio.FormatJSON, `{"name":"tri","matrix":[[0,1,1],[1,0,1],[1,1,0]]}`, "tri"},
		{"json bare array", gio.FormatJSON, "  [[0,1,1],[1,0,1],[1,1,0]]\n", ""},
		{"toml", gio.FormatTOML, "name = \"tri\"\nmatrix = [[0,1,1],[1,0,1],[1,1,0]]\n", "tri"},
		{"toml floats", gio.FormatTOML, "matrix = [[0.0,1.0,1.0],[1.0,0.0,1.0],[1.0,1.0,0.0]]\n", ""},
		{"yaml flow", gio.FormatYAML, "name: tri\nmatrix: [[0,1,1],[1,0,1],[1,1,0]]\n", "tri"},
		{"yaml block", gio.FormatYAML, "matrix:\n  - [0, 1, 1]\n  - [1, 0, 1]\n  - [1, 1, 0]\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := gio.ReadMatrix(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, g.Name)
			assert.Equal(t, triangle, g.Matrix)
		})
	}
}

func TestReadMatrix_Empty(t *testing.T) {
	g, err := gio.ReadMatrix(strings.NewReader(`{"matrix":[]}`), gio.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Matrix.Size())
}

func TestReadMatrix_Errors(t *testing.T) {
	tests := []struct {
		name     string
		format   gio.Format
		input    string
		wantCode errs.Code
	}{
		{"malformed json", gio.FormatJSON, `{"matrix":`, errs.ErrCodeInvalidFormat},
		{"missing matrix", gio.FormatJSON, `{"name":"x"}`, errs.ErrCodeInvalidFormat},
		{"non-numeric entry", gio.FormatJSON, `[[0,"a"],[1,0]]`, errs.ErrCodeInvalidFormat},
		{"ragged", gio.FormatJSON, `[[0,1],[1]]`, errs.ErrCodeInvalidShape},
		{"bad toml", gio.FormatTOML, "matrix = [[0,1]", errs.ErrCodeInvalidFormat},
		{"bad yaml", gio.FormatYAML, "matrix: [[0,1],\n", errs.ErrCodeInvalidFormat},
		{"unknown format", gio.Format("csv"), "0,1", errs.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gio.ReadMatrix(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errs.GetCode(err))
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &gio.Graph{Name: "weighted", Matrix: adjacency.Matrix{{0, 2.5, 0}, {2.5, 0, -1}, {0, -1, 0}}}

	for _, ext := range []string{".json", ".toml", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "graph"+ext)
			require.NoError(t, gio.ExportFile(in, path))

			out, err := gio.ImportFile(path)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestImportFile_NameFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	require.NoError(t, os.WriteFile(path, []byte(`[[0,1],[1,0]]`), 0o644))

	g, err := gio.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, "square", g.Name)
}

func TestImportFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := gio.ImportFile(filepath.Join(dir, "missing.json"))
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound))

	_, err = gio.ImportFile(filepath.Join(dir, "graph.csv"))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))

	_, err = gio.ImportFile("")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidPath))
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]gio.Format{
		"a.json":    gio.FormatJSON,
		"a.JSON":    gio.FormatJSON,
		"a.toml":    gio.FormatTOML,
		"b.yaml":    gio.FormatYAML,
		"dir/c.yml": gio.FormatYAML,
	} {
		got, err := gio.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}

func TestGeneratorsRoundTrip(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(triangle)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gio.WriteGenerators(&buf, gens))
	assert.JSONEq(t, `{"qubits":3,"generators":["XZZ","ZXZ","ZZX"]}`, buf.String())

	back, err := gio.ReadGenerators(&buf)
	require.NoError(t, err)
	assert.Equal(t, gens, back)
}

func TestReadGenerators_CountMismatch(t *testing.T) {
	_, err := gio.ReadGenerators(strings.NewReader(`{"qubits":2,"generators":["XZ"]}`))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}

func TestGroupRoundTrip(t *testing.T) {
	gens, err := stabilizer.DeriveGenerators(adjacency.New(1))
	require.NoError(t, err)
	g, err := stabilizer.EnumerateGroup(context.Background(), gens, stabilizer.EnumerateOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gio.WriteGroup(&buf, g))
	assert.JSONEq(t, `{
		"qubits": 1,
		"generators": ["X"],
		"elements": [
			{"pauli": "I", "phase": "+1", "value": [1, 0]},
			{"pauli": "X", "phase": "+1", "value": [1, 0]}
		]
	}`, buf.String())

	back, err := gio.ReadGroup(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Elements(), back.Elements())
}

func TestReadGroup_Malformed(t *testing.T) {
	_, err := gio.ReadGroup(strings.NewReader(`{"qubits":`))
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
}

func TestImportFile_Examples(t *testing.T) {
	tests := []struct {
		file   string
		name   string
		qubits int
		edges  int
	}{
		{"triangle.json", "triangle", 3, 3},
		{"ring6.toml", "ring6", 6, 6},
		{"star5.yaml", "star5", 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			g, err := gio.ImportFile(filepath.Join("..", "..", "examples", tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.name, g.Name)
			assert.Equal(t, tt.qubits, g.Matrix.Size())
			assert.Len(t, g.Matrix.Edges(), tt.edges)
			assert.NoError(t, g.Matrix.ValidateStrict())
		})
	}
}
