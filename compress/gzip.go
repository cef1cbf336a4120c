package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipDecompressor struct{}

var _ Decompressor = (*GzipDecompressor)(nil)

// NewGzipDecompressor creates a new gzip decompressor.
func NewGzipDecompressor() GzipDecompressor {
	return GzipDecompressor{}
}

// WrapReader returns a reader yielding the gzip-decompressed bytes of r.
//
// Returns an error if r does not begin with a valid gzip header.
func (GzipDecompressor) WrapReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}

	return zr, nil
}
