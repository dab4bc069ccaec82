package simd

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
)

func BenchmarkScanEqual(b *testing.B) {
	codes := randomCodes(1, 1<<20, 16)
	dst := make([]uint32, 0, len(codes))

	for _, k := range allKernels {
		b.Run(k.String(), func(b *testing.B) {
			restore := useKernel(k)
			defer restore()

			b.SetBytes(int64(len(codes) * 4))
			for b.Loop() {
				dst = ScanEqual(codes, 3, dst[:0])
			}
		})
	}
}

func BenchmarkScanAny(b *testing.B) {
	codes := randomCodes(2, 1<<20, 64)
	targets := []uint32{1, 7, 13, 22}
	dst := make([]uint32, 0, len(codes))

	for _, k := range allKernels {
		b.Run(k.String(), func(b *testing.B) {
			restore := useKernel(k)
			defer restore()

			b.SetBytes(int64(len(codes) * 4))
			for b.Loop() {
				dst = ScanAny(codes, targets, dst[:0])
			}
		})
	}
}

func BenchmarkScanMember(b *testing.B) {
	codes := randomCodes(3, 1<<20, 1024)
	members := bitset.New(1024)
	for c := uint(0); c < 1024; c += 7 {
		members.Set(c)
	}
	dst := make([]uint32, 0, len(codes))

	b.SetBytes(int64(len(codes) * 4))
	for b.Loop() {
		dst = ScanMember(codes, members, dst[:0])
	}
}
