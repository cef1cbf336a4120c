//go:build !cgo

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new pure-Go Zstandard decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// WrapReader returns a reader yielding the zstd-decompressed bytes of r.
func (ZstdDecompressor) WrapReader(r io.Reader) (io.ReadCloser, error) {
	// Raster streams are consumed by a single goroutine, so decoder
	// concurrency buys nothing here.
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return &zstdReadCloser{dec: dec}, nil
}

// zstdReadCloser adapts zstd.Decoder's error-less Close.
type zstdReadCloser struct {
	dec *zstd.Decoder
}

func (z *zstdReadCloser) Read(p []byte) (int, error) {
	return z.dec.Read(p)
}

func (z *zstdReadCloser) Close() error {
	z.dec.Close()
	return nil
}
