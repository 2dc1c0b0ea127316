package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxQubitsCeiling is the largest qubit count any caller may request.
// A 30-qubit group already holds 2^30 elements.
const MaxQubitsCeiling = 30

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// matrixExtensions lists the file extensions accepted for adjacency matrices.
var matrixExtensions = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateMatrixFilename checks that filename has a supported matrix extension.
func ValidateMatrixFilename(filename string) error {
	if err := ValidatePath(filename); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !matrixExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported matrix file extension %q (must be .json, .toml, .yaml or .yml)", ext)
	}
	return nil
}

// ValidateMaxQubits checks a configured qubit bound.
func ValidateMaxQubits(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "max qubits cannot be negative: %d", n)
	}
	if n > MaxQubitsCeiling {
		return New(ErrCodeInvalidInput, "max qubits %d exceeds ceiling %d", n, MaxQubitsCeiling)
	}
	return nil
}

// ValidateWorkers checks a worker count.
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "workers cannot be negative: %d", n)
	}
	return nil
}
