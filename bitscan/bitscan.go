/*
Package bitscan provides find-last-set (Fls), find-first-set (Ffs) and
population count operations for 32- and 64-bit words.

Two strategies implement the same Scanner interface: Intrinsic, which uses
math/bits (lowered by the compiler to LZCNT/TZCNT/POPCNT/CLZ where the
target has them), and Portable, which uses De Bruijn multiply-and-lookup
and SWAR bit counting. Default is picked at build time; pass
'-tags num_portable' to force the portable strategy.

Fls and Ffs panic if passed zero. Use the *Safe variants if zero is a
valid input; they return -1 instead.
*/
package bitscan

// Scanner is implemented by each bit scanning strategy.
type Scanner interface {
	Fls32(x uint32) int
	Ffs32(x uint32) int
	Popcount32(x uint32) int
	Fls64(x uint64) int
	Ffs64(x uint64) int
	Popcount64(x uint64) int
}

var (
	_ Scanner = Portable{}
	_ Scanner = Intrinsic{}
	_ Scanner = Default{}
)

// Fls32 returns the index of the highest set bit in x. It panics if x == 0.
func Fls32(x uint32) int { return Default{}.Fls32(x) }

// Ffs32 returns the index of the lowest set bit in x. It panics if x == 0.
func Ffs32(x uint32) int { return Default{}.Ffs32(x) }

// Popcount32 returns the number of set bits in x.
func Popcount32(x uint32) int { return Default{}.Popcount32(x) }

// Fls64 returns the index of the highest set bit in x. It panics if x == 0.
func Fls64(x uint64) int { return Default{}.Fls64(x) }

// Ffs64 returns the index of the lowest set bit in x. It panics if x == 0.
func Ffs64(x uint64) int { return Default{}.Ffs64(x) }

// Popcount64 returns the number of set bits in x.
func Popcount64(x uint64) int { return Default{}.Popcount64(x) }

func Fls32Safe(x uint32) int {
	if x == 0 {
		return -1
	}
	return Fls32(x)
}

func Ffs32Safe(x uint32) int {
	if x == 0 {
		return -1
	}
	return Ffs32(x)
}

func Fls64Safe(x uint64) int {
	if x == 0 {
		return -1
	}
	return Fls64(x)
}

func Ffs64Safe(x uint64) int {
	if x == 0 {
		return -1
	}
	return Ffs64(x)
}

func zeroInput(op string) {
	panic("bitscan: " + op + " of zero")
}
