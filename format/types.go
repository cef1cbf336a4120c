// Package format defines small shared enum types used across the
// asciigrid packages.
package format

import (
	"path/filepath"
	"strings"
)

type (
	CornerType      uint8
	CompressionType uint8
)

const (
	CornerLL CornerType = 0x1 // CornerLL anchors xll/yll at the lower-left cell corner.
	CenterLL CornerType = 0x2 // CenterLL anchors xll/yll at the lower-left cell center.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed raster.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

func (c CornerType) String() string {
	switch c {
	case CornerLL:
		return "Corner"
	case CenterLL:
		return "Center"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// DetectCompression infers the compression type of a raster file from
// its filename extension. Unrecognized extensions, including the plain
// .asc extension, map to CompressionNone.
func DetectCompression(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
