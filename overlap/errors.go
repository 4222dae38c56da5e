package overlap

import "errors"

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("overlap: input sequences must be non-empty")

	// ErrLengthMismatch indicates the Square variant received sequences of different lengths.
	ErrLengthMismatch = errors.New("overlap: square variant requires equal-length sequences")

	// ErrInvalidStartCoordinate indicates a diagonal scan started off the grid edge or out of bounds.
	ErrInvalidStartCoordinate = errors.New("overlap: start coordinate must lie on a grid edge")

	// ErrIndexOutOfRange indicates a diagonal index outside 0..T-1.
	ErrIndexOutOfRange = errors.New("overlap: diagonal index out of range")

	// ErrBadOptions indicates nonsensical options (negative or non-finite tolerance,
	// zero cutoff divisor, negative worker count, unknown variant).
	ErrBadOptions = errors.New("overlap: invalid options")
)
