package compress

import "io"

// NoOpDecompressor passes the underlying stream through unchanged.
//
// It exists so uncompressed rasters flow through the same code path as
// compressed ones, which keeps the opening logic in the root package
// free of special cases.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a new passthrough decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// WrapReader returns r unchanged behind a no-op Close.
func (NoOpDecompressor) WrapReader(r io.Reader) (io.ReadCloser, error) {
	return nopReadCloser{r}, nil
}
