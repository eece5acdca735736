package num

import (
	"math/big"
)

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative values give Zero, also with
// accurate set to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		for i, w := range words {
			if i == 0 {
				out.lo = uint64(w)
			} else {
				out.hi = uint64(w)
			}
		}

	case 32:
		for i, w := range words {
			switch i {
			case 0:
				out.lo |= uint64(w)
			case 1:
				out.lo |= uint64(w) << 32
			case 2:
				out.hi |= uint64(w)
			case 3:
				out.hi |= uint64(w) << 32
			}
		}

	default:
		panic("num: unsupported bit size")
	}

	return out, true
}

// IntoBigInt sets b to u, reusing b's storage where it can.
func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsBigFloat returns u as an exact big.Float, with 128 bits of precision.
func (u U128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetPrec(128).SetInt(u.AsBigInt())
}
