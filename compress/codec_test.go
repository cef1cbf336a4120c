package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/asciigrid/format"
)

const samplePayload = "ncols 3\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 1\n1 2 3\n4 5 6\n"

func TestNewDecompressor(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		dec, err := NewDecompressor(ct)
		require.NoError(t, err, "type %v", ct)
		require.NotNil(t, dec)
	}

	_, err := NewDecompressor(format.CompressionType(0xff))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestGzipDecompressor_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	requireWrapYields(t, NewGzipDecompressor(), &buf, samplePayload)
}

func TestGzipDecompressor_InvalidHeader(t *testing.T) {
	_, err := NewGzipDecompressor().WrapReader(strings.NewReader("not gzip"))
	require.Error(t, err)
}

func TestZstdDecompressor_RoundTrip(t *testing.T) {
	// The pure-Go encoder produces standard zstd frames, readable by
	// both the cgo and the pure decompressor.
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	requireWrapYields(t, NewZstdDecompressor(), &buf, samplePayload)
}

func TestS2Decompressor_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sw := s2.NewWriter(&buf)
	_, err := sw.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, sw.Close())

	requireWrapYields(t, NewS2Decompressor(), &buf, samplePayload)
}

func TestLZ4Decompressor_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	lw := lz4.NewWriter(&buf)
	_, err := lw.Write([]byte(samplePayload))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	requireWrapYields(t, NewLZ4Decompressor(), &buf, samplePayload)
}

func TestNoOpDecompressor_Passthrough(t *testing.T) {
	requireWrapYields(t, NewNoOpDecompressor(), strings.NewReader(samplePayload), samplePayload)
}

func requireWrapYields(t *testing.T, dec Decompressor, src io.Reader, want string) {
	t.Helper()

	r, err := dec.WrapReader(src)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, want, string(got))
	require.NoError(t, r.Close())
}
