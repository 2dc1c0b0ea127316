package adjacency

import "errors"

var (
	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("adjacency: matrix is not square")

	// ErrAsymmetry is returned by strict validation when (i,j) and (j,i)
	// disagree on whether an edge exists.
	ErrAsymmetry = errors.New("adjacency: matrix is not symmetric")

	// ErrNonZeroDiagonal is returned by strict validation when a qubit has a
	// self-loop.
	ErrNonZeroDiagonal = errors.New("adjacency: diagonal not zero")

	// ErrOutOfRange is returned when an edge references a qubit outside 0..N-1.
	ErrOutOfRange = errors.New("adjacency: qubit index out of range")
)
