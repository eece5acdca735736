package num

import (
	"strconv"
)

const (
	minBase = 2
	maxBase = 36
)

type baseInfo struct {
	// ScanU128 overflows if value > maxQuo, or value == maxQuo and
	// digit > maxRem.
	maxQuo U128
	maxRem uint64

	// chunk is the largest power of the base that fits in a uint64, and
	// chunkDigits its exponent; PutU128 peels off chunkDigits digits per
	// 128-bit division.
	chunk       uint64
	chunkDigits int
}

var bases [maxBase + 1]baseInfo

func init() {
	for b := uint64(minBase); b <= maxBase; b++ {
		info := &bases[b]
		info.maxQuo, info.maxRem = MaxU128.QuoRem64(b)

		info.chunk, info.chunkDigits = b, 1
		for info.chunk <= maxUint64/b {
			info.chunk *= b
			info.chunkDigits++
		}
	}
}

func checkBase(base int) {
	if base < minBase || base > maxBase {
		panic("num: base " + strconv.Itoa(base) + " out of range [2, 36]")
	}
}

// digitVal returns the value of c as a base 36 digit, or maxBase if c is
// not a digit at all.
func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return maxBase
}

// ScanU128 reads as many base digits from the start of s as it can, and
// returns the value and the number of bytes consumed. Scanning stops at the
// first byte that is not a valid digit, so a NUL-terminated buffer scans the
// same as its Go string prefix. Digits are case-insensitive. ScanU128
// panics if base is not in the range [2, 36].
//
// If s does not begin with a digit, n is 0 and err wraps ErrInvalidArgument.
//
// If the digits do not fit in a U128, ScanU128 still consumes them all and
// err wraps ErrOverflow. out is Zero in that case, unless the package was
// built with '-tags num_clamp', in which case it is MaxU128.
func ScanU128(s string, base int) (out U128, n int, err error) {
	return scanU128("ScanU128", s, base)
}

// ScanU128Bytes is ScanU128 for a byte slice.
func ScanU128Bytes(b []byte, base int) (out U128, n int, err error) {
	return scanU128("ScanU128Bytes", b, base)
}

func scanU128[T ~string | ~[]byte](fn string, s T, base int) (out U128, n int, err error) {
	checkBase(base)

	info := &bases[base]
	ub := uint64(base)
	overflowed := false

	for ; n < len(s); n++ {
		d := digitVal(s[n])
		if d >= base {
			break
		}
		if overflowed {
			continue
		}
		if info.maxQuo.LessThan(out) || (out == info.maxQuo && uint64(d) > info.maxRem) {
			overflowed = true
			continue
		}
		out = out.Mul64(ub).Add64(uint64(d))
	}

	if n == 0 {
		return Zero, 0, invalidArg(fn, string(s))
	}
	if overflowed {
		if clampOverflow {
			return MaxU128, n, overflow(fn, string(s)[:n])
		}
		return Zero, n, overflow(fn, string(s)[:n])
	}
	return out, n, nil
}

// ParseU128 interprets the whole of s in the given base and returns the
// value. Unlike ScanU128, trailing bytes that are not digits are an error.
//
// If base is 0, the base is implied by the string's prefix: "0x" or "0X"
// for 16, "0o" or "0O" for 8, "0b" or "0B" for 2, and 10 otherwise. No
// other prefix or sign is accepted.
func ParseU128(s string, base int) (U128, error) {
	const fn = "ParseU128"

	digits := s
	if base == 0 {
		base = 10
		if len(s) > 2 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				base, digits = 16, s[2:]
			case 'o', 'O':
				base, digits = 8, s[2:]
			case 'b', 'B':
				base, digits = 2, s[2:]
			}
		}
	}

	out, n, err := scanU128(fn, digits, base)
	if err != nil {
		if nerr, ok := err.(*NumError); ok {
			nerr.Input = s
		}
		return out, err
	}
	if n != len(digits) {
		return Zero, invalidArg(fn, s)
	}
	return out, nil
}

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	const fn = "U128FromString"

	out, n, err := scanU128(fn, s, 10)
	if n == 0 || n != len(s) {
		return Zero, false, invalidArg(fn, s)
	} else if err != nil {
		return MaxU128, false, nil
	}
	return out, true, nil
}

// MustU128FromString is U128FromString, but panics if the string is not a
// valid decimal U128, including on overflow. It is meant for initialising
// package-level values and tests.
func MustU128FromString(s string) U128 {
	out, accurate, err := U128FromString(s)
	if err != nil {
		panic(err)
	} else if !accurate {
		panic(overflow("MustU128FromString", s))
	}
	return out
}
