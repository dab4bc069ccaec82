package simd

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

const (
	// Lanes is the number of codes compared per step.
	Lanes = 8
	// MaxAnyTargets is the largest target set ScanAny is meant for; larger sets
	// should go through ScanMember.
	MaxAnyTargets = 8
)

// kernels is a dispatch table of one kernel family.
type kernels struct {
	equalMask8 func(block []uint32, target uint32) uint8
	anyMask8   func(block []uint32, targets []uint32) uint8
}

var (
	genericKernels = kernels{equalMask8: equalMask8Generic, anyMask8: anyMask8Generic}
	swarKernels    = kernels{equalMask8: equalMask8SWAR, anyMask8: anyMask8SWAR}

	impl = genericKernels
)

// ScanEqual appends to dst, in ascending order, every i with codes[i] == target.
func ScanEqual(codes []uint32, target uint32, dst []uint32) []uint32 {
	n := len(codes)
	eq := impl.equalMask8

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		if mask := eq(codes[i:i+Lanes], target); mask != 0 {
			dst = appendLanes(dst, uint32(i), mask) //nolint: gosec
		}
	}

	for ; i < n; i++ {
		if codes[i] == target {
			dst = append(dst, uint32(i)) //nolint: gosec
		}
	}

	return dst
}

// ScanAny appends to dst, in ascending order, every i where codes[i] equals
// any of targets. Each block's lane mask is the OR of the per-target masks.
func ScanAny(codes []uint32, targets []uint32, dst []uint32) []uint32 {
	switch len(targets) {
	case 0:
		return dst
	case 1:
		return ScanEqual(codes, targets[0], dst)
	}

	n := len(codes)
	anyMask := impl.anyMask8

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		if mask := anyMask(codes[i:i+Lanes], targets); mask != 0 {
			dst = appendLanes(dst, uint32(i), mask) //nolint: gosec
		}
	}

	for ; i < n; i++ {
		c := codes[i]
		for _, t := range targets {
			if c == t {
				dst = append(dst, uint32(i)) //nolint: gosec
				break
			}
		}
	}

	return dst
}

// ScanMember appends to dst, in ascending order, every i whose code is set in members.
func ScanMember(codes []uint32, members *bitset.BitSet, dst []uint32) []uint32 {
	if members == nil || members.None() {
		return dst
	}

	n := len(codes)

	i := 0
	for ; i+Lanes <= n; i += Lanes {
		b := codes[i : i+Lanes : i+Lanes]
		mask := bit(members.Test(uint(b[0]))) |
			bit(members.Test(uint(b[1])))<<1 |
			bit(members.Test(uint(b[2])))<<2 |
			bit(members.Test(uint(b[3])))<<3 |
			bit(members.Test(uint(b[4])))<<4 |
			bit(members.Test(uint(b[5])))<<5 |
			bit(members.Test(uint(b[6])))<<6 |
			bit(members.Test(uint(b[7])))<<7
		if mask != 0 {
			dst = appendLanes(dst, uint32(i), mask) //nolint: gosec
		}
	}

	for ; i < n; i++ {
		if members.Test(uint(codes[i])) {
			dst = append(dst, uint32(i)) //nolint: gosec
		}
	}

	return dst
}

// appendLanes appends base+lane for each set bit of mask, lowest lane first.
func appendLanes(dst []uint32, base uint32, mask uint8) []uint32 {
	for mask != 0 {
		dst = append(dst, base+uint32(bits.TrailingZeros8(mask)))
		mask &= mask - 1
	}

	return dst
}

// bit converts a bool to 0 or 1 without branching.
func bit(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}
