/*
Package num provides an unsigned 128-bit integer type, U128, that behaves
the same on every platform Go supports.

U128 is a value type; all operations return new values. Arithmetic wraps
modulo 2^128, like Go's own unsigned integers.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

U128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128FromParts(lo, hi uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromHigh(hi uint64) U128
	U128Bitmask(bit uint) U128
	U128FromBytes(b [16]byte) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromFloat32(f float32) (U128, error)
	U128FromFloat64(f float64) (U128, error)
	ParseU128(s string, base int) (U128, error)
	ScanU128(s string, base int) (out U128, n int, err error)

Backends

Two implementations of the arithmetic primitives are always compiled in.
The default uses math/bits, which the compiler turns into add-with-carry,
widening multiply and 128-by-64 divide instructions. The portable backend,
selected with '-tags num_portable', composes everything from plain 64-bit
operations and bit-serial long division. Both produce identical results;
BackendName reports which one is in use.

Errors

Passing an argument a function cannot accept (a zero divisor, for example)
is a bug in the caller and panics. Bad input data is reported as an error
wrapping ErrInvalidArgument or ErrOverflow; use errors.Is to tell them
apart.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- driver.Valuer
	- sql.Scanner

*/
package num
