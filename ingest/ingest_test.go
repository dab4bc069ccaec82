package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dicol/errs"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"cat", "cat"},
		{"New York, NY!", "New York NY"},
		{"a\tb", "a\tb"},
		{"héllo", "hllo"},
		{"--", ""},
		{"", ""},
		{"R2-D2", "R2D2"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestReadColumn(t *testing.T) {
	rows, err := ReadColumn(strings.NewReader("cat\ndog!\r\n\ncar"))
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog", "", "car"}, rows)

	rows, err = ReadColumn(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestReadColumn_Errors(t *testing.T) {
	_, err := ReadColumn(failingReader{})
	require.ErrorIs(t, err, errs.ErrIOFailure)

	long := strings.Repeat("a", MaxLineSize+1)
	_, err = ReadColumn(strings.NewReader(long))
	require.ErrorIs(t, err, errs.ErrIOFailure)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\ndog\ncat\ncar\ndog\n"), 0o600))

	rows, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog", "cat", "car", "dog"}, rows)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, errs.ErrIOFailure)
}
