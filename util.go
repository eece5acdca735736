package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// LargerU128 returns the larger of a and b.
func LargerU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b
	}
	return a
}

// SmallerU128 returns the smaller of a and b.
func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
