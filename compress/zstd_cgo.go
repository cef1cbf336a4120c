//go:build cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstandard decompressor backed by
// the cgo libzstd bindings.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// WrapReader returns a reader yielding the zstd-decompressed bytes of r.
func (ZstdDecompressor) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReadCloser{zr: gozstd.NewReader(r)}, nil
}

// gozstdReadCloser releases the cgo reader's native resources on Close.
type gozstdReadCloser struct {
	zr *gozstd.Reader
}

func (g *gozstdReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gozstdReadCloser) Close() error {
	g.zr.Release()
	return nil
}
