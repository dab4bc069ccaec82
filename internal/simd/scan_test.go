package simd

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

var allKernels = []Kernel{Generic, SWAR}

func forEachKernel(t *testing.T, fn func(t *testing.T)) {
	t.Helper()

	for _, k := range allKernels {
		t.Run(k.String(), func(t *testing.T) {
			restore := useKernel(k)
			defer restore()

			require.Equal(t, k, ActiveKernel())
			fn(t)
		})
	}
}

func bruteEqual(codes []uint32, target uint32) []uint32 {
	var out []uint32
	for i, c := range codes {
		if c == target {
			out = append(out, uint32(i)) //nolint: gosec
		}
	}

	return out
}

func bruteAny(codes []uint32, targets []uint32) []uint32 {
	set := make(map[uint32]struct{}, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}

	var out []uint32
	for i, c := range codes {
		if _, ok := set[c]; ok {
			out = append(out, uint32(i)) //nolint: gosec
		}
	}

	return out
}

func randomCodes(seed uint64, n, distinct int) []uint32 {
	rng := rand.New(rand.NewPCG(seed, 99))
	codes := make([]uint32, n)
	for i := range codes {
		codes[i] = uint32(rng.IntN(distinct)) //nolint: gosec
	}

	return codes
}

func TestEqualMask8Kernels(t *testing.T) {
	forEachKernel(t, func(t *testing.T) {
		eq := impl.equalMask8

		block := []uint32{5, 1, 5, 5, 0, 0x80000005, 5, 7}
		require.Equal(t, uint8(0b0100_1101), eq(block, 5))
		require.Equal(t, uint8(0b0001_0000), eq(block, 0))
		require.Equal(t, uint8(0b0010_0000), eq(block, 0x80000005))
		require.Equal(t, uint8(0), eq(block, 42))

		all := []uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32,
			math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32}
		require.Equal(t, uint8(0xFF), eq(all, math.MaxUint32))
		require.Equal(t, uint8(0), eq(all, math.MaxUint32-1))
	})
}

func TestZeroLanes(t *testing.T) {
	tests := []struct {
		lo, hi uint32
		want   uint8
	}{
		{0, 0, 0b11},
		{1, 0, 0b10},
		{0, 1, 0b01},
		{0x80000000, 0, 0b10},
		{0, 0x80000000, 0b01},
		{0x7FFFFFFF, 0xFFFFFFFF, 0b00},
		{0xFFFFFFFF, 0, 0b10},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, laneBits(zeroLanes(pair(tt.lo, tt.hi))), "lo=%#x hi=%#x", tt.lo, tt.hi)
	}
}

func TestScanEqual_MatchesBruteForce(t *testing.T) {
	forEachKernel(t, func(t *testing.T) {
		// lengths around the 8-lane boundary exercise the scalar tail
		for n := 0; n <= 33; n++ {
			codes := randomCodes(uint64(n), n, 3)
			for target := uint32(0); target < 4; target++ {
				got := ScanEqual(codes, target, nil)
				require.Equal(t, bruteEqual(codes, target), got, "n=%d target=%d", n, target)
			}
		}

		codes := randomCodes(7, 10_003, 50)
		require.Equal(t, bruteEqual(codes, 17), ScanEqual(codes, 17, nil))
	})
}

func TestScanEqual_HighBitCodes(t *testing.T) {
	forEachKernel(t, func(t *testing.T) {
		codes := []uint32{0x80000000, 0, 0x80000000, 0xFFFFFFFF, 0x7FFFFFFF, 0, 1, 0x80000000, 0}
		require.Equal(t, []uint32{0, 2, 7}, ScanEqual(codes, 0x80000000, nil))
		require.Equal(t, []uint32{1, 5, 8}, ScanEqual(codes, 0, nil))
		require.Equal(t, []uint32{3}, ScanEqual(codes, 0xFFFFFFFF, nil))
	})
}

func TestScanEqual_AppendsToDst(t *testing.T) {
	dst := []uint32{100}
	got := ScanEqual([]uint32{1, 2, 1}, 1, dst)
	require.Equal(t, []uint32{100, 0, 2}, got)
}

func TestScanAny_MatchesBruteForce(t *testing.T) {
	forEachKernel(t, func(t *testing.T) {
		targetSets := [][]uint32{
			nil,
			{3},
			{0, 2},
			{1, 4, 9},
			{0, 1, 2, 3, 4, 5, 6, 7},
			{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			{0x80000001, 1},
		}

		for n := 0; n <= 25; n++ {
			codes := randomCodes(uint64(n)+100, n, 12)
			for _, targets := range targetSets {
				require.Equal(t, bruteAny(codes, targets), ScanAny(codes, targets, nil), "n=%d targets=%v", n, targets)
			}
		}
	})
}

func TestScanMember_MatchesBruteForce(t *testing.T) {
	members := bitset.New(64)
	targets := []uint32{1, 5, 9, 13, 17, 21, 25, 29, 33, 40}
	for _, c := range targets {
		members.Set(uint(c))
	}

	for n := 0; n <= 41; n++ {
		codes := randomCodes(uint64(n)+500, n, 100)
		require.Equal(t, bruteAny(codes, targets), ScanMember(codes, members, nil), "n=%d", n)
	}
}

func TestScanMember_EmptySet(t *testing.T) {
	codes := []uint32{0, 1, 2}
	require.Empty(t, ScanMember(codes, nil, nil))
	require.Empty(t, ScanMember(codes, bitset.New(8), nil))
}

func TestParseKernel(t *testing.T) {
	k, ok := ParseKernel(" SWAR ")
	require.True(t, ok)
	require.Equal(t, SWAR, k)

	k, ok = ParseKernel("generic")
	require.True(t, ok)
	require.Equal(t, Generic, k)

	_, ok = ParseKernel("avx1024")
	require.False(t, ok)

	require.Equal(t, "unknown", Kernel(9).String())
}

func TestFeatures(t *testing.T) {
	require.NotEmpty(t, Features())
}
