package simd

// Two 32-bit lanes share one 64-bit word: lane 0 in the low half, lane 1 in the high half.
const (
	laneLow = 0x7FFFFFFF7FFFFFFF
)

// broadcast repeats v in both lanes.
func broadcast(v uint32) uint64 {
	return uint64(v) | uint64(v)<<32
}

// pair packs two consecutive codes into one word.
func pair(lo, hi uint32) uint64 {
	return uint64(lo) | uint64(hi)<<32
}

// zeroLanes sets the top bit of each lane of x that is zero and clears every other bit.
//
// Adding 0x7FFFFFFF to the low 31 bits of a lane sets its top bit iff those
// bits are non-zero and never carries into the next lane.
func zeroLanes(x uint64) uint64 {
	t := (x & laneLow) + laneLow
	return ^(t | x | laneLow)
}

// laneBits moves the two lane flags of zeroLanes output to bits 0 and 1.
func laneBits(z uint64) uint8 {
	return uint8((z>>31)&1 | (z>>62)&2)
}

func equalMask8SWAR(block []uint32, target uint32) uint8 {
	b := block[:Lanes:Lanes]
	t := broadcast(target)

	return laneBits(zeroLanes(pair(b[0], b[1])^t)) |
		laneBits(zeroLanes(pair(b[2], b[3])^t))<<2 |
		laneBits(zeroLanes(pair(b[4], b[5])^t))<<4 |
		laneBits(zeroLanes(pair(b[6], b[7])^t))<<6
}

func anyMask8SWAR(block []uint32, targets []uint32) uint8 {
	b := block[:Lanes:Lanes]
	p0, p1, p2, p3 := pair(b[0], b[1]), pair(b[2], b[3]), pair(b[4], b[5]), pair(b[6], b[7])

	var z0, z1, z2, z3 uint64
	for _, target := range targets {
		t := broadcast(target)
		z0 |= zeroLanes(p0 ^ t)
		z1 |= zeroLanes(p1 ^ t)
		z2 |= zeroLanes(p2 ^ t)
		z3 |= zeroLanes(p3 ^ t)
	}

	return laneBits(z0) | laneBits(z1)<<2 | laneBits(z2)<<4 | laneBits(z3)<<6
}
