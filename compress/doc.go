// Package compress provides streaming decompression for compressed
// ASCII raster files.
//
// Supported algorithms:
//   - Gzip: the most common distribution format for .asc tiles
//   - Zstd: cgo builds use valyala/gozstd, pure-Go builds use
//     klauspost/compress/zstd (selected by build tag)
//   - S2: klauspost/compress/s2
//   - LZ4: pierrec/lz4
//   - NoOp: passthrough for uncompressed input
//
// All decompressors expose the same Decompressor interface: wrap an
// io.Reader of compressed bytes and read plaintext out. The wrappers
// never close the underlying reader; callers keep ownership of the
// source stream.
package compress
