package pool

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetScanReader(t *testing.T) {
	br := GetScanReader(strings.NewReader("hello world"))
	require.NotNil(t, br)

	data, err := io.ReadAll(br)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(data))

	PutScanReader(br)
}

func TestScanReaderReuse(t *testing.T) {
	first := GetScanReader(strings.NewReader("first"))
	b, err := first.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte('f'), b)
	PutScanReader(first)

	// A reader obtained after Put must read its new source cleanly,
	// with no residue from the previous one.
	second := GetScanReader(strings.NewReader("second"))
	data, err := io.ReadAll(second)
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
	PutScanReader(second)
}

func TestPutScanReaderNil(t *testing.T) {
	require.NotPanics(t, func() { PutScanReader(nil) })
}
