package bitscan

// Portable implements Scanner without relying on compiler intrinsics.
type Portable struct{}

// Bit positions for the De Bruijn multiply-and-lookup, see
// http://graphics.stanford.edu/~seander/bithacks.html#IntegerLogDeBruijn
// and #ZerosOnRightMultLookup.
const (
	flsDeBruijn32 = 0x07C4ACDD
	ffsDeBruijn32 = 0x077CB531
)

var flsDeBruijn32Tab = [32]uint8{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

var ffsDeBruijn32Tab = [32]uint8{
	0, 1, 28, 2, 29, 14, 24, 3, 30, 22, 20, 15, 25, 17, 4, 8,
	31, 27, 13, 23, 21, 19, 16, 7, 26, 12, 18, 6, 11, 5, 10, 9,
}

func (Portable) Fls32(x uint32) int {
	if x == 0 {
		zeroInput("fls")
	}

	// Smear the highest bit down so x becomes 2^(n+1)-1:
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16

	return int(flsDeBruijn32Tab[(x*flsDeBruijn32)>>27])
}

func (Portable) Ffs32(x uint32) int {
	if x == 0 {
		zeroInput("ffs")
	}
	// x & -x isolates the lowest set bit.
	return int(ffsDeBruijn32Tab[((x&-x)*ffsDeBruijn32)>>27])
}

func (Portable) Popcount32(x uint32) int {
	x = x - ((x >> 1) & 0x55555555)
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F
	return int((x * 0x01010101) >> 24)
}

func (p Portable) Fls64(x uint64) int {
	if hi := uint32(x >> 32); hi != 0 {
		return p.Fls32(hi) + 32
	}
	return p.Fls32(uint32(x))
}

func (p Portable) Ffs64(x uint64) int {
	if lo := uint32(x); lo != 0 {
		return p.Ffs32(lo)
	}
	return p.Ffs32(uint32(x>>32)) + 32
}

func (Portable) Popcount64(x uint64) int {
	x = x - ((x >> 1) & 0x5555555555555555)
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F0F0F0F0F
	return int((x * 0x0101010101010101) >> 56)
}
