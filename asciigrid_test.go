package asciigrid

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/asciigrid/errs"
	"github.com/arloliu/asciigrid/grid"
)

const sampleGrid = `ncols         6
nrows         4
xllcorner     0.0
yllcorner     0.0
cellsize      50.0
NODATA_value  -9999
-9999 2 3 4 5 6
7 8 9 10 11 12
13 14 15 16 17 18
19 20 21 22 23 24
`

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestOpen(t *testing.T) {
	path := writeTempFile(t, "dem.asc", []byte(sampleGrid))

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	require.Equal(t, 6, reader.Header().NumCols())
	require.Equal(t, 4, reader.Header().NumRows())

	v, err := reader.GetIndex(0, 0)
	require.NoError(t, err)
	require.Equal(t, -9999.0, v)

	v, err = reader.Get(275, 25)
	require.NoError(t, err)
	require.Equal(t, 24.0, v)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.asc"))
	require.Error(t, err)
}

func TestOpen_HeaderError(t *testing.T) {
	path := writeTempFile(t, "broken.asc", []byte("ncols 2\n1 2\n"))

	_, err := Open(path)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrHeader)
}

func TestOpen_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleGrid))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := writeTempFile(t, "dem.asc.gz", buf.Bytes())

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	requireSameCells(t, reader)
}

func TestOpen_Zstd(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(sampleGrid))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	path := writeTempFile(t, "dem.asc.zst", buf.Bytes())

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	requireSameCells(t, reader)
}

func TestOpen_LZ4(t *testing.T) {
	var buf bytes.Buffer
	lw := lz4.NewWriter(&buf)
	_, err := lw.Write([]byte(sampleGrid))
	require.NoError(t, err)
	require.NoError(t, lw.Close())

	path := writeTempFile(t, "dem.asc.lz4", buf.Bytes())

	reader, err := Open(path)
	require.NoError(t, err)
	defer reader.Close()

	requireSameCells(t, reader)
}

func TestOpenFile(t *testing.T) {
	path := writeTempFile(t, "dem.asc", []byte(sampleGrid))

	f, err := os.Open(path)
	require.NoError(t, err)

	reader, err := OpenFile(f)
	require.NoError(t, err)

	v, err := reader.GetIndex(1, 1)
	require.NoError(t, err)
	require.Equal(t, 8.0, v)

	// Close releases the file handle the reader took over.
	require.NoError(t, reader.Close())
}

func TestNewReader(t *testing.T) {
	reader, err := NewReader(strings.NewReader(sampleGrid), grid.WithEagerIndex())
	require.NoError(t, err)

	require.Equal(t, 4, reader.IndexedRows())

	v, err := reader.GetIndex(2, 2)
	require.NoError(t, err)
	require.Equal(t, 15.0, v)
}

// requireSameCells checks a reader opened from a compressed copy
// against a plain reader over the same grid, cell for cell.
func requireSameCells(t *testing.T, reader *grid.Reader) {
	t.Helper()

	plain, err := NewReader(strings.NewReader(sampleGrid))
	require.NoError(t, err)

	for row := 0; row < 4; row++ {
		for col := 0; col < 6; col++ {
			want, err := plain.GetIndex(row, col)
			require.NoError(t, err)

			got, err := reader.GetIndex(row, col)
			require.NoError(t, err)
			require.Equal(t, want, got, "cell (%d, %d)", row, col)
		}
	}
}
