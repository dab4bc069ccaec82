// Package simd provides the lane-parallel scan kernels behind dicol's queries.
//
// Every kernel compares an encoded column against one or more codes eight
// 32-bit lanes at a time, producing an 8-bit lane mask per block, and appends
// the positions of the set lanes in ascending order. A scalar loop handles the
// final len(codes)%8 rows.
//
// # Kernels
//
//   - swar: two lanes per 64-bit word, compared with a carry-free zero-lane
//     test (SIMD within a register). Selected on 64-bit platforms.
//   - generic: one lane per comparison. Used elsewhere and as the reference.
//
// CPU features are detected with golang.org/x/sys/cpu and reported by
// Features. Set DICOL_SIMD=generic (or swar) to override the selection.
//
// # Operations
//
//   - ScanEqual: rows holding one code
//   - ScanAny: rows holding any of up to MaxAnyTargets codes (OR of lane masks)
//   - ScanMember: rows whose code is in a bitset
package simd
