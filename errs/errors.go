// Package errs defines the sentinel errors shared across the asciigrid
// packages.
//
// Errors fall into four families matching the failure modes of the
// reader: header errors (fatal to construction), out-of-bounds queries,
// data parse errors, and underlying stream I/O errors. Callers match
// them with errors.Is; packages wrap them with fmt.Errorf("%w", ...) to
// attach context such as the offending key, row, or column.
package errs

import (
	"errors"
	"fmt"
)

// ErrHeader is the common ancestor of all header parsing and validation
// errors. Every header-family sentinel below wraps it, so
// errors.Is(err, ErrHeader) matches any of them. Construction of a
// reader fails with an error in this family; no partial reader is ever
// produced.
var ErrHeader = errors.New("invalid raster header")

var (
	// ErrMissingHeaderField indicates a required header key was not found
	// before the data section began.
	ErrMissingHeaderField = fmt.Errorf("%w: missing required field", ErrHeader)

	// ErrDuplicateHeaderField indicates the same header key appeared twice.
	ErrDuplicateHeaderField = fmt.Errorf("%w: duplicate field", ErrHeader)

	// ErrInvalidHeaderValue indicates a header value failed numeric parsing.
	ErrInvalidHeaderValue = fmt.Errorf("%w: invalid value", ErrHeader)

	// ErrCornerTypeMismatch indicates the x and y lower-left keys disagree
	// on corner vs. center registration.
	ErrCornerTypeMismatch = fmt.Errorf("%w: corner type mismatch between x and y fields", ErrHeader)

	// ErrNonPositiveCellSize indicates CELLSIZE was zero or negative.
	ErrNonPositiveCellSize = fmt.Errorf("%w: cell size must be greater than zero", ErrHeader)

	// ErrNonPositiveDimension indicates NCOLS or NROWS was zero.
	ErrNonPositiveDimension = fmt.Errorf("%w: grid dimensions must be greater than zero", ErrHeader)
)

// ErrOutOfBounds indicates a row/column index or x/y coordinate outside
// the grid's valid domain. Recoverable: the reader remains usable.
var ErrOutOfBounds = errors.New("query out of raster bounds")

// ErrParse is the common ancestor of data-section parse errors. Every
// parse-family sentinel below wraps it. Parse errors are recoverable
// per call and never corrupt reader state.
var ErrParse = errors.New("invalid raster data")

var (
	// ErrInvalidToken indicates a data token is not a valid numeric literal.
	ErrInvalidToken = fmt.Errorf("%w: token is not a number", ErrParse)

	// ErrShortRow indicates a data row ended before the requested column.
	ErrShortRow = fmt.Errorf("%w: row has too few columns", ErrParse)

	// ErrShortGrid indicates the data section ended before the declared
	// number of rows was read.
	ErrShortGrid = fmt.Errorf("%w: data section has too few rows", ErrParse)
)
