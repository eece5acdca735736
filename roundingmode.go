package num

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=RoundingMode

// RoundingMode selects how Float32Mode and Float64Mode round a U128 that has
// more significant bits than the float's mantissa can hold.
//
// U128 is never negative, so ToZero and ToNegativeInf both truncate and
// produce identical results.
type RoundingMode byte

const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
)

// ParseRoundingMode accepts a RoundingMode's String() or one of the short
// names "even", "zero", "down" and "up", case-insensitively.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(s) {
	case "tonearesteven", "even", "nearest":
		return ToNearestEven, nil
	case "tozero", "zero", "trunc":
		return ToZero, nil
	case "tonegativeinf", "down", "floor":
		return ToNegativeInf, nil
	case "topositiveinf", "up", "ceil":
		return ToPositiveInf, nil
	}
	return 0, fmt.Errorf("num: unknown rounding mode %q", s)
}
