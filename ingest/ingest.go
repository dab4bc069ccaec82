// Package ingest reads a raw text column from a line-oriented source.
//
// Every line becomes one row. Lines are sanitized so that only ASCII letters,
// digits and whitespace remain; all other bytes, including every byte of a
// multi-byte UTF-8 sequence, are dropped.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/dicol/errs"
)

// MaxLineSize is the longest line ReadColumn accepts.
const MaxLineSize = 16 * 1024 * 1024

// Sanitize keeps the ASCII letters, digits and whitespace bytes of line.
func Sanitize(line string) string {
	keep := 0
	for i := 0; i < len(line); i++ {
		if allowed(line[i]) {
			keep++
		}
	}

	if keep == len(line) {
		return line
	}

	out := make([]byte, 0, keep)
	for i := 0; i < len(line); i++ {
		if allowed(line[i]) {
			out = append(out, line[i])
		}
	}

	return string(out)
}

func allowed(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == ' ', c == '\t', c == '\n', c == '\v', c == '\f', c == '\r':
		return true
	default:
		return false
	}
}

// ReadColumn reads one sanitized row per line of r.
//
// Line terminators ("\n" or "\r\n") are removed. Empty lines are kept as
// empty rows. Lines longer than MaxLineSize fail with errs.ErrIOFailure.
func ReadColumn(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var rows []string
	for scanner.Scan() {
		rows = append(rows, Sanitize(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}

	return rows, nil
}

// ReadFile reads the raw column stored at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIOFailure, err)
	}
	defer f.Close()

	rows, err := ReadColumn(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
