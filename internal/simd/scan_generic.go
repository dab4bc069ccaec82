package simd

func equalMask8Generic(block []uint32, target uint32) uint8 {
	b := block[:Lanes:Lanes]

	return bit(b[0] == target) |
		bit(b[1] == target)<<1 |
		bit(b[2] == target)<<2 |
		bit(b[3] == target)<<3 |
		bit(b[4] == target)<<4 |
		bit(b[5] == target)<<5 |
		bit(b[6] == target)<<6 |
		bit(b[7] == target)<<7
}

func anyMask8Generic(block []uint32, targets []uint32) uint8 {
	var mask uint8
	for _, t := range targets {
		mask |= equalMask8Generic(block, t)
	}

	return mask
}
