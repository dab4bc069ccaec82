package query

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/arloliu/dicol/column"
	"github.com/arloliu/dicol/internal/simd"
)

// FindPrefix returns the rows of col whose value starts with prefix.
//
// Matching is byte-wise and case sensitive; the empty prefix matches every
// row. The candidate codes are resolved from dict first, then the column is
// scanned eight codes per step:
//   - no candidate: empty Result, no scan
//   - every key is a candidate: every row, no scan
//   - up to simd.MaxAnyTargets candidates: one lane comparison per candidate
//   - more candidates: a membership bitmap over the code space
func FindPrefix(dict *column.Dictionary, col column.Encoded, prefix string) Result {
	candidates := dict.MatchPrefix(prefix)

	switch {
	case len(candidates) == 0:
		return Result{}
	case len(candidates) == dict.Len():
		return Result{rows: allRows(len(col))}
	case len(candidates) <= simd.MaxAnyTargets:
		return Result{rows: simd.ScanAny(col, candidates, nil)}
	}

	members := bitset.New(uint(dict.Len()))
	for _, code := range candidates {
		members.Set(uint(code))
	}

	return Result{rows: simd.ScanMember(col, members, nil)}
}

func allRows(n int) []uint32 {
	if n == 0 {
		return nil
	}

	rows := make([]uint32, n)
	for i := range rows {
		rows[i] = uint32(i) //nolint: gosec
	}

	return rows
}
