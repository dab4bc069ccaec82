package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dicol/errs"
)

func TestValidateThreadCount(t *testing.T) {
	require.NoError(t, ValidateThreadCount(1, 4))
	require.NoError(t, ValidateThreadCount(4, 4))
	require.ErrorIs(t, ValidateThreadCount(0, 4), errs.ErrInvalidThreadCount)
	require.ErrorIs(t, ValidateThreadCount(5, 4), errs.ErrInvalidThreadCount)
	require.ErrorIs(t, ValidateThreadCount(-2, 4), errs.ErrInvalidThreadCount)
}

func TestPromptThreadCount(t *testing.T) {
	var out bytes.Buffer

	n, err := PromptThreadCount(strings.NewReader("abc\n0\n9\n\n3\n"), &out, 4)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.Equal(t, 5, strings.Count(out.String(), "Enter the number of threads (1-4): "))
	require.Equal(t, 3, strings.Count(out.String(), "Invalid input."))
}

func TestPromptThreadCount_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer

	n, err := PromptThreadCount(strings.NewReader("2"), &out, 4)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestPromptThreadCount_EOF(t *testing.T) {
	var out bytes.Buffer

	_, err := PromptThreadCount(strings.NewReader("7\n"), &out, 4)
	require.ErrorIs(t, err, errs.ErrIOFailure)
}
