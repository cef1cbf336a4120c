package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderFamily(t *testing.T) {
	family := []error{
		ErrMissingHeaderField,
		ErrDuplicateHeaderField,
		ErrInvalidHeaderValue,
		ErrCornerTypeMismatch,
		ErrNonPositiveCellSize,
		ErrNonPositiveDimension,
	}
	for _, err := range family {
		require.ErrorIs(t, err, ErrHeader)
		require.NotErrorIs(t, err, ErrParse)
	}
}

func TestParseFamily(t *testing.T) {
	family := []error{ErrInvalidToken, ErrShortRow, ErrShortGrid}
	for _, err := range family {
		require.ErrorIs(t, err, ErrParse)
		require.NotErrorIs(t, err, ErrHeader)
	}
}

func TestWrappedContextSurvivesMatching(t *testing.T) {
	err := fmt.Errorf("row 7: %w", ErrShortRow)

	require.ErrorIs(t, err, ErrShortRow)
	require.ErrorIs(t, err, ErrParse)
	require.True(t, errors.Is(err, ErrParse))
	require.NotErrorIs(t, err, ErrOutOfBounds)
}
