package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/asciigrid/format"
)

// Decompressor wraps a compressed byte stream with a decompressing
// reader.
//
// Raster files are often distributed compressed (for example SRTM and
// other elevation tiles ship as .asc.gz). The decompressed stream is
// consumed sequentially; compressed inputs are therefore suitable for
// one-pass iteration, or for random access only after buffering the
// decompressed bytes (see the root package's Open).
type Decompressor interface {
	// WrapReader returns a reader yielding the decompressed bytes of r.
	//
	// Closing the returned reader releases decompressor resources; it
	// does not close r.
	WrapReader(r io.Reader) (io.ReadCloser, error)
}

// NewDecompressor creates a Decompressor for the given compression type.
//
// Returns an error for unknown compression types.
func NewDecompressor(ct format.CompressionType) (Decompressor, error) {
	switch ct {
	case format.CompressionNone:
		return NewNoOpDecompressor(), nil
	case format.CompressionGzip:
		return NewGzipDecompressor(), nil
	case format.CompressionZstd:
		return NewZstdDecompressor(), nil
	case format.CompressionS2:
		return NewS2Decompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Decompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %v", ct)
	}
}

// nopReadCloser adapts a plain io.Reader returned by codecs that have
// no resources to release.
type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }
