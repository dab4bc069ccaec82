// Package query answers exact-match and prefix-match queries over a
// dictionary-encoded column.
//
// Both query kinds first resolve the predicate against the dictionary and then
// scan the encoded column with the 8-lane kernels of internal/simd. Matching
// row ids are returned in strictly ascending order.
//
// An absent literal, or a prefix no key starts with, yields an empty Result
// without scanning the column. It is not an error.
//
// The package also keeps the non-vectorized paths (FindExactScalar, ScanRaw,
// ScanRawPrefix) for cross-checking and for timing comparisons.
package query
