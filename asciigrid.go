// Package asciigrid reads ESRI ASCII raster grids (Arc ASCII / .asc
// files) of arbitrary size with amortized O(1) random access.
//
// The format is a plain-text header followed by nrows lines of ncols
// whitespace-separated numeric values, row-major from the northern
// edge:
//
//	ncols         6
//	nrows         4
//	xllcorner     0.0
//	yllcorner     0.0
//	cellsize      50.0
//	NODATA_value  -9999
//	-9999 1.0 2.0 3.0 4.0 5.0
//	...
//
// # Basic Usage
//
// Opening a raster and reading values:
//
//	reader, err := asciigrid.Open("elevation.asc")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()
//
//	// By cell index (row 0 = top edge).
//	v, err := reader.GetIndex(3, 3)
//
//	// By planar coordinate.
//	v, err = reader.Get(390003.0, 344003.0)
//
//	// Bilinear interpolation at an arbitrary coordinate.
//	v, err = reader.GetInterpolate(390001.5, 344002.25)
//
// Full-grid traversal streams the file once without building the index:
//
//	for cell, err := range reader.All() {
//	    if err != nil {
//	        return err
//	    }
//	    use(cell.Row, cell.Col, cell.Value)
//	}
//
// # Compressed Rasters
//
// Open recognizes gzip, zstd, s2 and lz4 files by extension
// (elevation.asc.gz and friends). Compressed streams are not seekable,
// so Open inflates them into memory and serves random access from the
// buffer; plain files are always read lazily from disk.
//
// # Package Structure
//
// This package provides convenient wrappers over the grid package,
// which holds the reader itself. Multi-file mosaics live in tileset;
// shared enum types in format; sentinel errors in errs.
package asciigrid

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/asciigrid/compress"
	"github.com/arloliu/asciigrid/format"
	"github.com/arloliu/asciigrid/grid"
)

// Open opens the raster file at path and constructs a reader for it.
//
// Compression is detected from the filename extension via
// format.DetectCompression. Uncompressed files are read lazily and the
// returned reader owns the file handle (closed by reader.Close).
// Compressed files are fully inflated into memory first.
func Open(path string, opts ...grid.Option) (*grid.Reader, error) {
	ct := format.DetectCompression(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}

	if ct == format.CompressionNone {
		reader, err := grid.NewReader(f, opts...)
		if err != nil {
			f.Close()
			return nil, err
		}

		return reader, nil
	}

	defer f.Close()

	src, err := inflate(f, ct)
	if err != nil {
		return nil, fmt.Errorf("inflate %s raster: %w", ct, err)
	}

	return grid.NewReader(src, opts...)
}

// OpenFile constructs a reader over an already opened, uncompressed
// raster file. The reader takes ownership of f.
func OpenFile(f *os.File, opts ...grid.Option) (*grid.Reader, error) {
	return grid.NewReader(f, opts...)
}

// NewReader constructs a reader from any seekable byte stream holding
// an uncompressed raster. See grid.NewReader.
func NewReader(src io.ReadSeeker, opts ...grid.Option) (*grid.Reader, error) {
	return grid.NewReader(src, opts...)
}

// inflate decompresses r into a seekable in-memory buffer.
func inflate(r io.Reader, ct format.CompressionType) (*bytes.Reader, error) {
	dec, err := compress.NewDecompressor(ct)
	if err != nil {
		return nil, err
	}

	zr, err := dec.WrapReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}
