package io

import (
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// Format is a matrix file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath returns the encoding implied by path's extension.
func FormatFromPath(path string) (Format, error) {
	if err := errs.ValidateMatrixFilename(path); err != nil {
		return "", err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatJSON, nil
	}
}
