package query

import (
	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/internal/simd"
)

// FindExact returns the rows of col whose value equals literal.
//
// The literal is resolved to its code through dict; an unknown literal returns
// an empty Result without scanning. The scan compares eight codes per step.
func FindExact(dict *column.Dictionary, col column.Encoded, literal string) Result {
	code, ok := dict.Code(literal)
	if !ok {
		return Result{}
	}

	return Result{rows: simd.ScanEqual(col, code, nil)}
}

// FindExactScalar is FindExact with a one-row-at-a-time comparison loop.
func FindExactScalar(dict *column.Dictionary, col column.Encoded, literal string) Result {
	code, ok := dict.Code(literal)
	if !ok {
		return Result{}
	}

	var rows []uint32
	for i, c := range col {
		if c == code {
			rows = append(rows, uint32(i)) //nolint: gosec
		}
	}

	return Result{rows: rows}
}
