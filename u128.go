package num

import (
	"encoding/binary"

	"github.com/shabbyrobe/go-num128/bitscan"
)

// U128 is an unsigned 128-bit integer. The zero value is 0. U128 is a plain
// comparable value, so == works and it can be used as a map key.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromParts is U128FromRaw with the words in low, high order.
func U128FromParts(lo, hi uint64) U128 { return U128{hi: hi, lo: lo} }

// U128FromHigh creates a U128 with hi as the upper 64 bits and zero as the
// lower 64.
func U128FromHigh(hi uint64) U128 { return U128{hi: hi} }

// U128Bitmask returns a U128 with only the given bit set. It panics if
// bit >= 128.
func U128Bitmask(bit uint) U128 {
	if bit >= 128 {
		panic(errBitRange)
	}
	if bit >= 64 {
		return U128{hi: 1 << (bit - 64)}
	}
	return U128{lo: 1 << bit}
}

// U128FromBytes creates a U128 from 16 little-endian bytes; b[0] is the
// least significant.
func U128FromBytes(b [16]byte) U128 {
	return U128{
		lo: binary.LittleEndian.Uint64(b[0:8]),
		hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

const (
	errShiftRange = "num: shift amount out of range"
	errBitRange   = "num: bit index out of range"
)

func (u U128) IsZero() bool    { return u.hi|u.lo == 0 }
func (u U128) IsNotZero() bool { return u.hi|u.lo != 0 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) Hi() uint64 { return u.hi }
func (u U128) Lo() uint64 { return u.lo }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() U128 { return activeBackend{}.add64(u, 1) }
func (u U128) Dec() U128 { return activeBackend{}.sub64(u, 1) }

func (u U128) Add(n U128) U128     { return activeBackend{}.add(u, n) }
func (u U128) Add64(n uint64) U128 { return activeBackend{}.add64(u, n) }
func (u U128) Sub(n U128) U128     { return activeBackend{}.sub(u, n) }
func (u U128) Sub64(n uint64) U128 { return activeBackend{}.sub64(u, n) }
func (u U128) Mul(n U128) U128     { return activeBackend{}.mul(u, n) }
func (u U128) Mul64(n uint64) U128 { return activeBackend{}.mul64(u, n) }

// MulFull returns the full 256-bit product of u and n, which never
// overflows, as a pair of 128-bit halves.
func (u U128) MulFull(n U128) (hi, lo U128) { return activeBackend{}.mulFull(u, n) }

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
//
// Quo computes the remainder as well, then throws it away.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// For unsigned values this is the same as Euclidean division, so DivMod is
// an alias.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi|by.lo == 0 {
		panic(errDivByZero)
	}
	return activeBackend{}.quoRem(u, by)
}

// DivMod is QuoRem.
func (u U128) DivMod(by U128) (q, r U128) { return u.QuoRem(by) }

// QuoRem64 is QuoRem with a 64-bit divisor, which lets it skip the full
// 128-bit division and return a 64-bit remainder.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(errDivByZero)
	}
	return activeBackend{}.quoRem64(u, by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) Cmp(n U128) int { return activeBackend{}.cmp(u, n) }

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return activeBackend{}.lessThan(n, u)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !activeBackend{}.lessThan(u, n)
}

func (u U128) LessThan(n U128) bool {
	return activeBackend{}.lessThan(u, n)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !activeBackend{}.lessThan(n, u)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh returns u << n. It panics if n >= 128.
func (u U128) Lsh(n uint) U128 {
	if n >= 128 {
		panic(errShiftRange)
	}
	return activeBackend{}.lsh(u, n)
}

// Rsh returns u >> n. It panics if n >= 128.
func (u U128) Rsh(n uint) U128 {
	if n >= 128 {
		panic(errShiftRange)
	}
	return activeBackend{}.rsh(u, n)
}

// Lsh128 is Lsh with the shift amount given as a U128.
func (u U128) Lsh128(n U128) U128 {
	if n.hi != 0 || n.lo >= 128 {
		panic(errShiftRange)
	}
	return activeBackend{}.lsh(u, uint(n.lo))
}

// Rsh128 is Rsh with the shift amount given as a U128.
func (u U128) Rsh128(n U128) U128 {
	if n.hi != 0 || n.lo >= 128 {
		panic(errShiftRange)
	}
	return activeBackend{}.rsh(u, uint(n.lo))
}

// Bit returns the value of the i'th bit of u, 0 or 1. It panics if i >= 128.
func (u U128) Bit(i uint) uint {
	if i >= 128 {
		panic(errBitRange)
	}
	return uint(bitAt(u, i))
}

// IsBitSet reports whether the i'th bit of u is 1.
func (u U128) IsBitSet(i uint) bool { return u.Bit(i) == 1 }

// SetBit returns u with the i'th bit set to b, which must be 0 or 1, in
// the manner of big.Int.SetBit.
func (u U128) SetBit(i uint, b uint) U128 {
	if i >= 128 {
		panic(errBitRange)
	}
	switch b {
	case 0:
		return u.AndNot(U128Bitmask(i))
	case 1:
		return u.Or(U128Bitmask(i))
	default:
		panic("num: set bit is not 0 or 1")
	}
}

// Fls returns the index of the highest set bit. It panics if u is zero; see
// FlsSafe.
func (u U128) Fls() int {
	if u.hi != 0 {
		return bitscan.Fls64(u.hi) + 64
	} else if u.lo != 0 {
		return bitscan.Fls64(u.lo)
	}
	panic("num: Fls of zero")
}

// Ffs returns the index of the lowest set bit. It panics if u is zero; see
// FfsSafe.
func (u U128) Ffs() int {
	if u.lo != 0 {
		return bitscan.Ffs64(u.lo)
	} else if u.hi != 0 {
		return bitscan.Ffs64(u.hi) + 64
	}
	panic("num: Ffs of zero")
}

// FlsSafe is Fls, but returns -1 if u is zero.
func (u U128) FlsSafe() int {
	if u.hi|u.lo == 0 {
		return -1
	}
	return u.Fls()
}

// FfsSafe is Ffs, but returns -1 if u is zero.
func (u U128) FfsSafe() int {
	if u.hi|u.lo == 0 {
		return -1
	}
	return u.Ffs()
}

// Popcount returns the number of set bits in u.
func (u U128) Popcount() int {
	return bitscan.Popcount64(u.hi) + bitscan.Popcount64(u.lo)
}

// LeadingZeros returns the number of leading zero bits in u; the result is
// 128 for u == 0.
func (u U128) LeadingZeros() uint {
	return uint(127 - u.FlsSafe())
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 128 for u == 0.
func (u U128) TrailingZeros() uint {
	if u.hi|u.lo == 0 {
		return 128
	}
	return uint(u.Ffs())
}

// BitLen returns the minimum number of bits required to represent u; the
// result is 0 for u == 0.
func (u U128) BitLen() int {
	return u.FlsSafe() + 1
}

// Bytes returns u as 16 little-endian bytes.
func (u U128) Bytes() (out [16]byte) {
	binary.LittleEndian.PutUint64(out[0:8], u.lo)
	binary.LittleEndian.PutUint64(out[8:16], u.hi)
	return out
}

// PutBytes writes u into the first 16 bytes of b in little-endian order. It
// panics if len(b) < 16.
func (u U128) PutBytes(b []byte) {
	_ = b[15] // bounds check hint to compiler; see golang.org/issue/14808
	binary.LittleEndian.PutUint64(b[0:8], u.lo)
	binary.LittleEndian.PutUint64(b[8:16], u.hi)
}
