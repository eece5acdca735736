package num

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)

// Zero, One and MaxU128 must not be modified.
var (
	Zero    = U128{}
	One     = U128{lo: 1}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
)
