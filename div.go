package num

import (
	"github.com/shabbyrobe/go-num128/bitscan"
)

// divmod128 is the portable division engine: a handful of O(1) shortcuts,
// then restoring binary long division one dividend bit at a time. It never
// relies on a hardware divide wider than the machine's native word.
func divmod128(u, by U128) (q, r U128) {
	if by.hi == 0 {
		var r64 uint64
		q, r64 = divmod128by64(u, by.lo)
		return q, U128{lo: r64}
	}

	if u == by {
		return One, Zero
	} else if u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo) {
		return Zero, u
	}

	// by.hi != 0 and u > by, so u.hi != 0 too.
	var ps bitscan.Portable
	for i := ps.Fls64(u.hi) + 64; i >= 0; i-- {
		// {{{ r = r.Lsh(1) | u.Bit(i)
		r.hi = (r.hi << 1) | (r.lo >> 63)
		r.lo = (r.lo << 1) | bitAt(u, uint(i))
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = portableBackend{}.sub(r, by)
			if i >= 64 {
				q.hi |= 1 << uint(i-64)
			} else {
				q.lo |= 1 << uint(i)
			}
		}
	}
	return q, r
}

// divmod128by64 is divmod128 for a divisor that fits in a single word. The
// remainder can never exceed the divisor's width, so once a bit has been
// shifted out the top of the remainder word the compare can be skipped.
func divmod128by64(u U128, by uint64) (q U128, r uint64) {
	switch {
	case by == 0:
		panic(errDivByZero)
	case by == 1:
		return u, 0
	case by == 2:
		return U128{hi: u.hi >> 1, lo: (u.lo >> 1) | (u.hi << 63)}, u.lo & 1
	case u.hi == 0 && u.lo == by:
		return One, 0
	case u.hi == 0 && u.lo < by:
		return Zero, u.lo
	}

	var top int
	if u.hi != 0 {
		top = bitscan.Portable{}.Fls64(u.hi) + 64
	} else {
		top = bitscan.Portable{}.Fls64(u.lo)
	}

	for i := top; i >= 0; i-- {
		carry := r >> 63
		r = (r << 1) | bitAt(u, uint(i))

		// A set carry means the true remainder is 2^64 + r >= by; the
		// wrapped subtraction still yields the right 64-bit result.
		if carry != 0 || r >= by {
			r -= by
			if i >= 64 {
				q.hi |= 1 << uint(i-64)
			} else {
				q.lo |= 1 << uint(i)
			}
		}
	}
	return q, r
}

func bitAt(u U128, i uint) uint64 {
	if i >= 64 {
		return (u.hi >> (i - 64)) & 1
	}
	return (u.lo >> i) & 1
}
