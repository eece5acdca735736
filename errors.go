package num

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is returned for malformed input, such as a string
	// with no valid digits or a NaN/Inf passed to a checked float conversion.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when a value does not fit in a U128, or when a
	// destination buffer is too small to hold the formatted value.
	ErrOverflow = errors.New("value out of range")
)

// NumError records a failed conversion. Use errors.Is with
// ErrInvalidArgument or ErrOverflow to check the reason.
type NumError struct {
	Func  string // the failing function, i.e. "ScanU128"
	Input string // the input, if any
	Err   error  // the reason the conversion failed
}

func (e *NumError) Error() string {
	if e.Input == "" {
		return "num." + e.Func + ": " + e.Err.Error()
	}
	return "num." + e.Func + ": parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func invalidArg(fn, input string) *NumError {
	return &NumError{Func: fn, Input: input, Err: ErrInvalidArgument}
}

func overflow(fn, input string) *NumError {
	return &NumError{Func: fn, Input: input, Err: ErrOverflow}
}
