package bitscan

import "math/bits"

// Intrinsic implements Scanner using math/bits, which the compiler replaces
// with single instructions on most targets.
type Intrinsic struct{}

func (Intrinsic) Fls32(x uint32) int {
	if x == 0 {
		zeroInput("fls")
	}
	return 31 - bits.LeadingZeros32(x)
}

func (Intrinsic) Ffs32(x uint32) int {
	if x == 0 {
		zeroInput("ffs")
	}
	return bits.TrailingZeros32(x)
}

func (Intrinsic) Popcount32(x uint32) int { return bits.OnesCount32(x) }

func (Intrinsic) Fls64(x uint64) int {
	if x == 0 {
		zeroInput("fls")
	}
	return 63 - bits.LeadingZeros64(x)
}

func (Intrinsic) Ffs64(x uint64) int {
	if x == 0 {
		zeroInput("ffs")
	}
	return bits.TrailingZeros64(x)
}

func (Intrinsic) Popcount64(x uint64) int { return bits.OnesCount64(x) }
