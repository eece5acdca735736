package num

// portableBackend composes every operation from plain 64-bit word
// arithmetic: explicit carries, 32-bit partial products and bit-serial
// division. It is selected with '-tags num_portable'.
type portableBackend struct{}

func (portableBackend) name() string { return "portable" }

func (portableBackend) add(u, n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if v.lo < u.lo { // carry
		v.hi++
	}
	return v
}

func (portableBackend) add64(u U128, n uint64) (v U128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if v.lo < u.lo {
		v.hi++
	}
	return v
}

func (portableBackend) sub(u, n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if v.lo > u.lo { // borrow
		v.hi--
	}
	return v
}

func (portableBackend) sub64(u U128, n uint64) (v U128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if v.lo > u.lo {
		v.hi--
	}
	return v
}

func (portableBackend) mul(u, n U128) (v U128) {
	// hi*hi lands entirely above bit 127, so only the two cross terms
	// contribute to the high word.
	v.hi, v.lo = mul64to128(u.lo, n.lo)
	v.hi += u.lo*n.hi + u.hi*n.lo
	return v
}

func (portableBackend) mul64(u U128, n uint64) (v U128) {
	v.hi, v.lo = mul64to128(u.lo, n)
	v.hi += u.hi * n
	return v
}

// mulFull sums the four 64x64 partial products of a schoolbook multiply,
// propagating carries by hand.
func (b portableBackend) mulFull(u, n U128) (hi, lo U128) {
	hi.hi, hi.lo = mul64to128(u.hi, n.hi)
	lo.hi, lo.lo = mul64to128(u.lo, n.lo)

	var t U128
	t.hi, t.lo = mul64to128(u.hi, n.lo)
	lo.hi += t.lo
	if lo.hi < t.lo { // if lo.hi overflowed
		hi = b.add64(hi, 1)
	}
	hi = b.add64(hi, t.hi)

	t.hi, t.lo = mul64to128(u.lo, n.hi)
	lo.hi += t.lo
	if lo.hi < t.lo {
		hi = b.add64(hi, 1)
	}
	hi = b.add64(hi, t.hi)

	return hi, lo
}

func (portableBackend) quoRem(u, by U128) (q, r U128) {
	return divmod128(u, by)
}

func (portableBackend) quoRem64(u U128, by uint64) (q U128, r uint64) {
	return divmod128by64(u, by)
}

func (portableBackend) lsh(u U128, n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (portableBackend) rsh(u U128, n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

func (portableBackend) cmp(u, n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (portableBackend) lessThan(u, n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

// mul64to128 multiplies u and v using four 32x32->64 partial products.
// Adapted from Warren, Hacker's Delight, p. 132.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}
