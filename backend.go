package num

// backend is the set of primitive operations every U128 arithmetic
// implementation provides. activeBackend, chosen by build tag, is the only
// one the exported methods ever call; the other is still compiled so the
// two can be checked against each other.
//
// Preconditions (division by zero, shift out of range) are checked by the
// exported methods before they get here, except where noted.
type backend interface {
	name() string

	add(u, n U128) U128
	add64(u U128, n uint64) U128
	sub(u, n U128) U128
	sub64(u U128, n uint64) U128
	mul(u, n U128) U128
	mul64(u U128, n uint64) U128

	// mulFull returns the full 256-bit product as two 128-bit halves.
	mulFull(u, n U128) (hi, lo U128)

	// quoRem and quoRem64 panic if the divisor is zero.
	quoRem(u, by U128) (q, r U128)
	quoRem64(u U128, by uint64) (q U128, r uint64)

	lsh(u U128, n uint) U128
	rsh(u U128, n uint) U128

	cmp(u, n U128) int
	lessThan(u, n U128) bool
}

var (
	_ backend = portableBackend{}
	_ backend = intrinsicBackend{}
)

// BackendName reports which arithmetic backend was selected at build time.
func BackendName() string { return activeBackend{}.name() }

const errDivByZero = "num: division by zero"
