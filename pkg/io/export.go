package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pauli"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// WriteMatrix encodes g in the given format and writes it to w.
// The output can be re-read with [ReadMatrix].
func WriteMatrix(g *Graph, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, g)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(g); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown matrix format %q", format)
}

// ExportFile writes g to path, picking the encoder from the file extension.
func ExportFile(g *Graph, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteMatrix(g, f, format)
}

type generatorsDoc struct {
	Qubits     int      `json:"qubits"`
	Generators []string `json:"generators"`
}

// WriteGenerators writes generators as {"qubits": N, "generators": [...]}.
func WriteGenerators(w io.Writer, gens []pauli.String) error {
	return writeJSON(w, generatorsDoc{
		Qubits:     len(gens),
		Generators: stabilizer.FormatGenerators(gens),
	})
}

// ReadGenerators decodes the [WriteGenerators] format.
func ReadGenerators(r io.Reader) ([]pauli.String, error) {
	var doc generatorsDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode generators")
	}
	if len(doc.Generators) != doc.Qubits {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "%d generators for %d qubits", len(doc.Generators), doc.Qubits)
	}
	return stabilizer.ParseGenerators(doc.Generators)
}

// WriteGroup writes g with its generators and sorted elements.
func WriteGroup(w io.Writer, g *stabilizer.Group) error {
	return writeJSON(w, g)
}

// ReadGroup decodes the [WriteGroup] format.
func ReadGroup(r io.Reader) (*stabilizer.Group, error) {
	var g stabilizer.Group
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		if errs.GetCode(err) != "" {
			return nil, err
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode group")
	}
	return &g, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
