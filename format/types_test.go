package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCornerTypeString(t *testing.T) {
	require.Equal(t, "Corner", CornerLL.String())
	require.Equal(t, "Center", CenterLL.String())
	require.Equal(t, "Unknown", CornerType(0).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"dem.asc", CompressionNone},
		{"dem.txt", CompressionNone},
		{"dem", CompressionNone},
		{"dem.asc.gz", CompressionGzip},
		{"DEM.ASC.GZ", CompressionGzip},
		{"dem.asc.gzip", CompressionGzip},
		{"dem.asc.zst", CompressionZstd},
		{"dem.asc.zstd", CompressionZstd},
		{"dem.asc.s2", CompressionS2},
		{"dem.asc.lz4", CompressionLZ4},
		{"/data/tiles/n47e008.asc.gz", CompressionGzip},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DetectCompression(tt.path), "path %q", tt.path)
	}
}
