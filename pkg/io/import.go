package io

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// Graph is a named adjacency matrix as stored in a matrix file.
type Graph struct {
	Name   string           `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Matrix adjacency.Matrix `json:"matrix" toml:"matrix" yaml:"matrix"`
}

// ReadMatrix decodes a graph from r in the given format.
//
// ReadMatrix returns an INVALID_FORMAT error if the input cannot be decoded
// or has no matrix, and an INVALID_SHAPE error if the matrix is not square.
// ReadMatrix does not close r.
func ReadMatrix(r io.Reader, format Format) (*Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var g Graph
	switch format {
	case FormatJSON:
		err = decodeJSON(data, &g)
	case FormatTOML:
		err = toml.Unmarshal(data, &g)
	case FormatYAML:
		err = yaml.Unmarshal(data, &g)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown matrix format %q", format)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode %s", format)
	}

	if g.Matrix == nil {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "decode %s: no matrix", format)
	}
	if err := g.Matrix.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// decodeJSON accepts either an object with a "matrix" field or a bare array
// of rows.
func decodeJSON(data []byte, g *Graph) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var m adjacency.Matrix
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		g.Matrix = m
		return nil
	}
	return json.Unmarshal(trimmed, g)
}

// ImportFile reads the matrix file at path, picking the decoder from the
// file extension. A graph without a name is named after the file.
func ImportFile(path string) (*Graph, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "matrix file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadMatrix(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return g, nil
}
