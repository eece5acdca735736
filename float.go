package num

import (
	"math"
	"strconv"
)

const (
	f64MantBits = 52
	f64Bias     = 1023
	f32MantBits = 23
	f32Bias     = 127
)

// AsFloat64 returns the float64 nearest to u, ties to even.
func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		// Go's uint64 to float64 conversion already rounds to nearest even.
		return float64(u.lo)
	}
	return u.Float64Mode(ToNearestEven)
}

// AsFloat32 returns the float32 nearest to u, ties to even. Values that
// round up past math.MaxFloat32 return math.MaxFloat32, not +Inf.
func (u U128) AsFloat32() float32 {
	return u.Float32Mode(ToNearestEven)
}

// Float64Mode converts u to a float64 using the given rounding mode. Every
// U128 is in range for a float64, so the result is always finite.
func (u U128) Float64Mode(mode RoundingMode) float64 {
	checkRoundingMode(mode)
	if u.IsZero() {
		return 0
	}

	// Normalise so the most significant set bit is bit 127. The top 53 bits
	// of the high word are then the mantissa (implicit bit included), bit
	// 10 is the round bit and everything below it is sticky.
	exp := u.Fls()
	n := u.Lsh(uint(127 - exp))

	mant := n.hi >> 11
	round := n.hi&(1<<10) != 0
	sticky := n.hi&(1<<10-1) != 0 || n.lo != 0

	if roundUp(mode, mant, round, sticky) {
		mant++
		if mant == 1<<(f64MantBits+1) {
			mant >>= 1
			exp++
		}
	}

	return math.Float64frombits(uint64(exp+f64Bias)<<f64MantBits | mant&(1<<f64MantBits-1))
}

// Float32Mode converts u to a float32 using the given rounding mode. A
// result that would exceed math.MaxFloat32 is clamped to math.MaxFloat32
// rather than becoming +Inf; the only values affected are those that round
// up to 2^128.
func (u U128) Float32Mode(mode RoundingMode) float32 {
	checkRoundingMode(mode)
	if u.IsZero() {
		return 0
	}

	exp := u.Fls()
	n := u.Lsh(uint(127 - exp))

	mant := n.hi >> 40
	round := n.hi&(1<<39) != 0
	sticky := n.hi&(1<<39-1) != 0 || n.lo != 0

	if roundUp(mode, mant, round, sticky) {
		mant++
		if mant == 1<<(f32MantBits+1) {
			mant >>= 1
			exp++
		}
	}

	if exp+f32Bias >= 0xFF {
		return math.MaxFloat32
	}
	return math.Float32frombits(uint32(exp+f32Bias)<<f32MantBits | uint32(mant)&(1<<f32MantBits-1))
}

func checkRoundingMode(mode RoundingMode) {
	if mode > ToPositiveInf {
		panic("num: invalid rounding mode " + mode.String())
	}
}

func roundUp(mode RoundingMode, mant uint64, round, sticky bool) bool {
	switch mode {
	case ToNearestEven:
		// Above half, or exactly half and the mantissa is odd.
		return round && (sticky || mant&1 != 0)
	case ToPositiveInf:
		return round || sticky
	case ToZero, ToNegativeInf:
		return false
	default:
		panic("num: invalid rounding mode " + mode.String())
	}
}

// U128FromFloat64 creates a U128 from a float64. Any fractional portion is
// truncated towards zero, so -1 < f < 0 gives 0.
//
// NaN, ±Inf and values <= -1 return an error wrapping ErrInvalidArgument.
// Values >= 2^128 return MaxU128 and an error wrapping ErrOverflow.
func U128FromFloat64(f float64) (U128, error) {
	const fn = "U128FromFloat64"
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= -1 {
		return Zero, invalidArg(fn, strconv.FormatFloat(f, 'g', -1, 64))
	} else if f < 0 {
		return Zero, nil
	}
	out, ok := truncFloat64(f)
	if !ok {
		return MaxU128, overflow(fn, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return out, nil
}

// U128FromFloat32 is U128FromFloat64 for a float32. Every finite float32
// is below 2^128, so it never overflows.
func U128FromFloat32(f float32) (U128, error) {
	const fn = "U128FromFloat32"
	f64 := float64(f)
	if math.IsNaN(f64) || math.IsInf(f64, 0) || f <= -1 {
		return Zero, invalidArg(fn, strconv.FormatFloat(f64, 'g', -1, 32))
	} else if f < 0 {
		return Zero, nil
	}
	return truncFloat32(f), nil
}

// MustU128FromFloat64 creates a U128 from a float64 without reporting range
// errors. The fraction is truncated towards zero and values >= 2^128
// saturate to MaxU128.
//
// Negative values wrap: a float whose truncated magnitude v is non-zero
// gives MaxU128 - v, so -2.5 gives MaxU128 - 2.
//
// It panics if f is NaN or ±Inf.
func MustU128FromFloat64(f float64) U128 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("num: float is not finite")
	}
	if f < 0 {
		v, _ := truncFloat64(-f)
		if v.IsZero() {
			return Zero
		}
		return MaxU128.Sub(v)
	}
	v, _ := truncFloat64(f)
	return v
}

// MustU128FromFloat32 is MustU128FromFloat64 for a float32.
func MustU128FromFloat32(f float32) U128 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		panic("num: float is not finite")
	}
	if f < 0 {
		v := truncFloat32(-f)
		if v.IsZero() {
			return Zero
		}
		return MaxU128.Sub(v)
	}
	return truncFloat32(f)
}

// truncFloat64 returns the integer part of a finite, non-negative f. If f
// >= 2^128, it returns MaxU128 and false.
func truncFloat64(f float64) (out U128, ok bool) {
	b := math.Float64bits(f)
	exp := int(b>>f64MantBits) & 0x7FF
	if exp == 0 { // zero or subnormal, both < 1
		return Zero, true
	}

	// f == mant * 2^e
	mant := b&(1<<f64MantBits-1) | 1<<f64MantBits
	e := exp - f64Bias - f64MantBits

	switch {
	case e <= -(f64MantBits + 1):
		return Zero, true
	case e < 0:
		return U128{lo: mant >> uint(-e)}, true
	case e > 127-f64MantBits:
		return MaxU128, false
	default:
		return U128{lo: mant}.Lsh(uint(e)), true
	}
}

func truncFloat32(f float32) U128 {
	b := math.Float32bits(f)
	exp := int(b>>f32MantBits) & 0xFF
	if exp == 0 {
		return Zero
	}

	mant := uint64(b&(1<<f32MantBits-1) | 1<<f32MantBits)
	e := exp - f32Bias - f32MantBits

	switch {
	case e <= -(f32MantBits + 1):
		return Zero
	case e < 0:
		return U128{lo: mant >> uint(-e)}
	default:
		// The largest finite float32 exponent puts the top mantissa bit at
		// 127, so this never overflows.
		return U128{lo: mant}.Lsh(uint(e))
	}
}
