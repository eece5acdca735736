package num

import (
	"math/bits"
)

// intrinsicBackend leans on math/bits, whose Add64, Sub64, Mul64 and Div64
// the compiler lowers to add-with-carry, widening multiply and the
// hardware 128-by-64 divide. This is as close as Go gets to a native
// 128-bit scalar.
type intrinsicBackend struct{}

func (intrinsicBackend) name() string { return "intrinsic" }

func (intrinsicBackend) add(u, n U128) (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (intrinsicBackend) add64(u U128, n uint64) (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + c
	return v
}

func (intrinsicBackend) sub(u, n U128) (v U128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (intrinsicBackend) sub64(u U128, n uint64) (v U128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - b
	return v
}

func (intrinsicBackend) mul(u, n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

func (intrinsicBackend) mul64(u U128, n uint64) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n)
	v.hi += u.hi * n
	return v
}

func (intrinsicBackend) mulFull(u, n U128) (hi, lo U128) {
	var c uint64
	hi.hi, hi.lo = bits.Mul64(u.hi, n.hi)
	lo.hi, lo.lo = bits.Mul64(u.lo, n.lo)

	h, l := bits.Mul64(u.hi, n.lo)
	lo.hi, c = bits.Add64(lo.hi, l, 0)
	hi.lo, c = bits.Add64(hi.lo, h, c)
	hi.hi += c

	h, l = bits.Mul64(u.lo, n.hi)
	lo.hi, c = bits.Add64(lo.hi, l, 0)
	hi.lo, c = bits.Add64(hi.lo, h, c)
	hi.hi += c

	return hi, lo
}

func (b intrinsicBackend) quoRem64(u U128, by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(errDivByZero)
	}
	if u.hi < by {
		q.lo, r = bits.Div64(u.hi, u.lo, by)
	} else {
		q.hi, r = bits.Div64(0, u.hi, by)
		q.lo, r = bits.Div64(r, u.lo, by)
	}
	return q, r
}

// quoRem uses the normalised-estimate method from Hacker's Delight 9-4
// (divlu), with bits.Div64 standing in for the hand-rolled 128-by-64 step.
func (b intrinsicBackend) quoRem(u, by U128) (q, r U128) {
	if by.hi == 0 {
		var r64 uint64
		q, r64 = b.quoRem64(u, by.lo)
		return q, U128{lo: r64}
	}

	n := uint(bits.LeadingZeros64(by.hi))
	v1 := b.lsh(by, n)
	u1 := b.rsh(u, 1)

	// u1.hi < 2^63 <= v1.hi, so Div64 cannot overflow here.
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}

	q = U128{lo: tq}
	r = b.sub(u, b.mul64(by, tq))
	if !b.lessThan(r, by) {
		q = b.add64(q, 1)
		r = b.sub(r, by)
	}
	return q, r
}

// Shifts by 64 or more yield 0 for Go's unsigned shift operators, which
// lets both word shifts be written without branching on n.
func (intrinsicBackend) lsh(u U128, n uint) U128 {
	return U128{
		hi: u.hi<<n | u.lo<<(n-64) | u.lo>>(64-n),
		lo: u.lo << n,
	}
}

func (intrinsicBackend) rsh(u U128, n uint) U128 {
	return U128{
		hi: u.hi >> n,
		lo: u.lo>>n | u.hi>>(n-64) | u.hi<<(64-n),
	}
}

func (intrinsicBackend) cmp(u, n U128) int {
	if u == n {
		return 0
	}
	_, b := bits.Sub64(u.lo, n.lo, 0)
	_, b = bits.Sub64(u.hi, n.hi, b)
	if b != 0 {
		return -1
	}
	return 1
}

func (intrinsicBackend) lessThan(u, n U128) bool {
	_, b := bits.Sub64(u.lo, n.lo, 0)
	_, b = bits.Sub64(u.hi, n.hi, b)
	return b != 0
}
