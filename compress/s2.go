package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

type S2Decompressor struct{}

var _ Decompressor = (*S2Decompressor)(nil)

// NewS2Decompressor creates a new S2 decompressor.
func NewS2Decompressor() S2Decompressor {
	return S2Decompressor{}
}

// WrapReader returns a reader yielding the S2-decompressed bytes of r.
func (S2Decompressor) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return nopReadCloser{s2.NewReader(r)}, nil
}
