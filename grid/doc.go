// Package grid implements a lazy, random-access reader for ESRI ASCII
// raster grids.
//
// An ESRI ASCII grid is a plain-text format: a short key/value header
// describing the grid geometry, followed by nrows lines of ncols
// whitespace-separated numeric cell values in row-major order, starting
// from the northern (top) edge. Files are frequently much larger than
// memory, so the reader never loads the grid wholesale. Instead it
// keeps a lazily grown table of row byte offsets and answers each query
// with a seek plus a short in-row token scan.
//
// # Access Patterns
//
//   - GetIndex(row, col): value of one cell by index
//   - Get(x, y): value of the cell containing a planar coordinate
//   - GetInterpolate(x, y): bilinear blend at an arbitrary coordinate
//   - All(): one-pass row-major iteration over every cell
//
// The first access to a far row pays a linear scan from the nearest
// known row offset; repeated or nearby accesses are then cheap. For
// workloads dominated by scattered random access, BuildIndex performs
// one upfront pass that records every row offset, making all later
// lookups O(1) seeks.
//
// # Ownership and Concurrency
//
// A Reader exclusively owns its underlying stream and seek position.
// It is NOT thread-safe: concurrent calls on one Reader must be
// serialized by the caller. Coordinates are assumed to be in the grid's
// native planar units; no reprojection is performed.
package grid
