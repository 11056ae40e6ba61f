package core

import "errors"

// Error taxonomy shared by every package. Callers wrap these with context and
// test with errors.Is.
var (
	// ErrOutOfBounds reports a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidSize reports a grid dimension below one cell.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrFormat reports malformed file content.
	ErrFormat = errors.New("malformed image data")
	// ErrIO reports a file that could not be read or written.
	ErrIO = errors.New("image file i/o failed")
	// ErrConfig reports invalid command line arguments.
	ErrConfig = errors.New("invalid configuration")
)
