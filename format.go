package num

import (
	"fmt"
	"strconv"
)

const (
	digitsUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitsLower = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// maxDigits is the length of MaxU128 in base 2, the longest any U128 can
// format to.
const maxDigits = 128

// DigitCount returns the number of digits needed to print u in the given
// base. Zero has one digit. DigitCount panics if base is not in the range
// [2, 36].
func (u U128) DigitCount(base int) int {
	checkBase(base)

	b := uint64(base)
	b2 := b * b
	b3 := b2 * b
	b4 := b3 * b

	n := 0
	for u.hi != 0 || u.lo >= b4 {
		u, _ = u.QuoRem64(b4)
		n += 4
	}

	switch {
	case u.lo < b:
		return n + 1
	case u.lo < b2:
		return n + 2
	case u.lo < b3:
		return n + 3
	}
	return n + 4
}

// PutU128 writes u in the given base into the start of dst and returns the
// number of bytes written. If dst is too short to hold every digit, nothing
// is written and err wraps ErrOverflow. PutU128 panics if base is not in the
// range [2, 36].
func PutU128(dst []byte, u U128, base int, lower bool) (n int, err error) {
	return putU128("PutU128", dst, 0, u, base, lower)
}

// PutU128Width is PutU128, but left-pads the output with '0' to at least
// width bytes. Values with more digits than width are written in full.
func PutU128Width(dst []byte, width int, u U128, base int, lower bool) (n int, err error) {
	return putU128("PutU128Width", dst, width, u, base, lower)
}

func putU128(fn string, dst []byte, width int, u U128, base int, lower bool) (n int, err error) {
	n = u.DigitCount(base)
	if width > n {
		n = width
	}
	if len(dst) < n {
		return 0, overflow(fn, "")
	}

	table := digitsUpper
	if lower {
		table = digitsLower
	}

	b := uint64(base)
	info := &bases[base]
	i := n

	for u.hi != 0 {
		var r uint64
		u, r = u.QuoRem64(info.chunk)
		for j := 0; j < info.chunkDigits; j++ {
			i--
			dst[i] = table[r%b]
			r /= b
		}
	}

	for lo := u.lo; ; {
		i--
		dst[i] = table[lo%b]
		lo /= b
		if lo == 0 {
			break
		}
	}

	for i > 0 {
		i--
		dst[i] = '0'
	}
	return n, nil
}

// AppendU128 appends u in the given base to dst and returns the extended
// buffer.
func AppendU128(dst []byte, u U128, base int, lower bool) []byte {
	var buf [maxDigits]byte
	n, _ := PutU128(buf[:], u, base, lower)
	return append(dst, buf[:n]...)
}

// Text returns u in the given base, using lower-case letters for digits
// above 9, in the manner of strconv.FormatUint.
func (u U128) Text(base int) string {
	if u.hi == 0 {
		checkBase(base)
		return strconv.FormatUint(u.lo, base)
	}
	var buf [maxDigits]byte
	n, _ := PutU128(buf[:], u, base, true)
	return string(buf[:n])
}

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.Text(10)
}

// Format implements fmt.Formatter. Verbs and flags behave as they do for
// Go's built-in unsigned integers: 'b', 'o', 'O', 'd', 'x', 'X' and 'v',
// with '#', '+', ' ', '-' and '0' flags, width and precision. 's' is the
// same as 'd', and 'q' prints the decimal value in double quotes.
func (u U128) Format(s fmt.State, c rune) {
	var (
		base  int
		lower = true
	)

	switch c {
	case 'b':
		base = 2
	case 'o', 'O':
		base = 8
	case 'd', 's', 'q':
		base = 10
	case 'v':
		base = 10
		if s.Flag('#') { // Go syntax, as for uint64
			base = 16
		}
	case 'x':
		base = 16
	case 'X':
		base = 16
		lower = false
	default:
		fmt.Fprintf(s, "%%!%c(num.U128=%s)", c, u.String())
		return
	}

	// fmt.State keeps width and precision from earlier verbs when they are
	// not set for this one.
	width, hasWidth := s.Width()
	if !hasWidth {
		width = 0
	}
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = 0
	}
	minus := s.Flag('-')

	// A precision of 0 and a value of 0 prints nothing but padding.
	if hasPrec && prec == 0 && u.IsZero() {
		writeRepeat(s, ' ', width)
		return
	}

	// '+' with 'v' asks for struct field names, not a sign.
	var sign string
	if s.Flag('+') && c != 'v' {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	var buf [maxDigits]byte
	n, _ := PutU128(buf[:], u, base, lower)
	digits := buf[:n]

	// Extra leading zeros come from the precision, or from the '0' flag,
	// which counts the sign but not the prefix towards the width.
	if !hasPrec && s.Flag('0') && hasWidth && !minus && c != 'q' {
		prec = width
		if sign != "" {
			prec--
		}
	}
	zeros := 0
	if prec > len(digits) {
		zeros = prec - len(digits)
	}

	var prefix string
	if s.Flag('#') {
		switch c {
		case 'b':
			prefix = "0b"
		case 'o', 'O':
			// A leading zero is already an octal prefix.
			if zeros == 0 && digits[0] != '0' {
				prefix = "0"
			}
		case 'x', 'v':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if c == 'O' {
		prefix = "0o" + prefix
	}

	quote := ""
	if c == 'q' {
		quote = `"`
	}

	pad := width - (len(quote)*2 + len(sign) + len(prefix) + zeros + len(digits))
	if !minus {
		writeRepeat(s, ' ', pad)
	}
	s.Write([]byte(quote))
	s.Write([]byte(sign))
	s.Write([]byte(prefix))
	writeRepeat(s, '0', zeros)
	s.Write(digits)
	s.Write([]byte(quote))
	if minus {
		writeRepeat(s, ' ', pad)
	}
}

func writeRepeat(s fmt.State, c byte, n int) {
	if n <= 0 {
		return
	}
	var pad [16]byte
	for i := range pad {
		pad[i] = c
	}
	for n > 0 {
		chunk := n
		if chunk > len(pad) {
			chunk = len(pad)
		}
		s.Write(pad[:chunk])
		n -= chunk
	}
}
