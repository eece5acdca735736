package num

import (
	"fmt"
	"math"
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBigIntResult   *big.Int
	BenchBoolResult     bool
	BenchFloatResult    float64
	BenchIntResult      int
	BenchStringResult   string
	BenchU128Result     U128
	BenchUint64Result   uint64
)

func BenchmarkU128Add(b *testing.B) {
	u := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Add(u)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	u := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Mul(u)
	}
}

func BenchmarkU128Cmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		u := U128From64(maxUint64)
		n := U128From64(maxUint64)
		for i := 0; i < b.N; i++ {
			BenchIntResult = u.Cmp(n)
		}
	})
}

func BenchmarkU128Lsh(b *testing.B) {
	for _, tc := range []struct {
		in U128
		sh uint
	}{
		{u64(maxUint64), 1},
		{u64(maxUint64), 8},
		{u64(maxUint64), 64},
		{u64(maxUint64), 127},
		{MaxU128, 1},
		{MaxU128, 8},
		{MaxU128, 64},
		{MaxU128, 127},
	} {
		b.Run(fmt.Sprintf("%s<<%d", tc.in, tc.sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result = tc.in.Lsh(tc.sh)
			}
		})
	}
}

var benchQuoCases = []struct {
	dividend U128
	divisor  U128
}{
	// Divisor of 1:
	{MaxU128, u64(1)},

	// Power of 2 divisor:
	{MaxU128, u64(2)},

	// Both operands fit in 64 bits:
	{u64(maxUint64), u64(1)},

	// 64-bit divisor, 128-bit dividend:
	{u128s("0x123456789012345678901234567890"), u128s("0xFF00000")},

	// 128-bit divisor with a long run of trailing zeros:
	{u128s("0x123456789012345678901234567890"), u128s("0xFF0000000000000000000")},

	// 128-bit divisor close to the dividend:
	{u128s("0x12345678901234567890123456789012"), u128s("0x10000000000000000000000000000001")},

	// Equal operands:
	{u128s("0x1234567890123456"), u128s("0x1234567890123456")},
}

func BenchmarkU128Quo(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run("", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result = bc.dividend.Quo(bc.divisor)
			}
		})
	}
}

func BenchmarkU128QuoRem(b *testing.B) {
	for _, bc := range benchQuoCases {
		b.Run("", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = bc.dividend.QuoRem(bc.divisor)
			}
		})
	}
}

// The portable backend's division is bit-serial, so its cost follows the
// dividend's bit length; the intrinsic backend's should stay flat.
func BenchmarkBackendQuoRem(b *testing.B) {
	for _, be := range allBackends {
		for idx, bc := range benchQuoCases {
			b.Run(fmt.Sprintf("%s/%d", be.name(), idx), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchU128Result, _ = be.quoRem(bc.dividend, bc.divisor)
				}
			})
		}
	}
}

func BenchmarkBackendQuoRem64(b *testing.B) {
	u := u128s("0x98765432109876543210987654321098")
	for _, be := range allBackends {
		b.Run(be.name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, BenchUint64Result = be.quoRem64(u, 1e19)
			}
		})
	}
}

func BenchmarkBackendMul(b *testing.B) {
	u := u128s("0xfedcba9876543210fedcba9876543210")
	n := u128s("0x123456789abcdef")
	for _, be := range allBackends {
		b.Run(be.name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result = be.mul(u, n)
			}
		})
	}
}

func BenchmarkBackendMulFull(b *testing.B) {
	for _, be := range allBackends {
		b.Run(be.name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = be.mulFull(MaxU128, MaxU128)
			}
		})
	}
}

func BenchmarkBackendAdd(b *testing.B) {
	u := U128FromRaw(1, maxUint64)
	for _, be := range allBackends {
		b.Run(be.name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result = be.add(u, u)
			}
		})
	}
}

func BenchmarkBackendRsh(b *testing.B) {
	for _, be := range allBackends {
		for _, sh := range []uint{1, 63, 64, 127} {
			b.Run(fmt.Sprintf("%s/%d", be.name(), sh), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					BenchU128Result = be.rsh(MaxU128, sh)
				}
			})
		}
	}
}

func BenchmarkU128QuoRemTZ(b *testing.B) {
	// Divisors with a growing number of leading zeros; a sudden jump from
	// one case to the next points at the normalisation step.
	for zeros := 0; zeros < 31; zeros++ {
		b.Run("", func(b *testing.B) {
			bs := "0b"
			for j := 0; j < 128; j++ {
				if j >= zeros {
					bs += "1"
				} else {
					bs += "0"
				}
			}

			da := u128s("0x98765432109876543210987654321098")
			db := u128s(bs)

			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = da.QuoRem(db)
			}
		})
	}
}

func BenchmarkU128AsBigFloat(b *testing.B) {
	n := u128s("36893488147419103230")
	for i := 0; i < b.N; i++ {
		BenchBigFloatResult = n.AsBigFloat()
	}
}

func BenchmarkU128AsFloat(b *testing.B) {
	for _, n := range []U128{u128s("36893488147419103230"), u64(maxUint64)} {
		b.Run(n.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchFloatResult = n.AsFloat64()
			}
		})
	}
}

func BenchmarkU128AsFloat32(b *testing.B) {
	n := u128s("36893488147419103230")
	for i := 0; i < b.N; i++ {
		BenchFloatResult = float64(n.AsFloat32())
	}
}

func BenchmarkU128FromFloat(b *testing.B) {
	for _, pow := range []float64{1, 63, 64, 65, 127, 128} {
		b.Run(fmt.Sprintf("pow%d", int(pow)), func(b *testing.B) {
			f := math.Pow(2, pow)
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = U128FromFloat64(f)
			}
		})
	}
}

func BenchmarkU128FromBigInt(b *testing.B) {
	for _, bi := range []*big.Int{
		bigs("0"),
		bigs("0xfedcba98"),
		bigs("0xfedcba9876543210"),
		bigs("0xfedcba9876543210fedcba98"),
		bigs("0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = U128FromBigInt(bi)
			}
		})
	}
}

func BenchmarkU128AsBigInt(b *testing.B) {
	u := U128{lo: 0xFEDCBA9876543210, hi: 0xFEDCBA9876543210}
	BenchBigIntResult = new(big.Int)

	for i := uint(0); i < 128; i += 32 {
		v := u.Rsh(128 - i - 1)
		b.Run(fmt.Sprintf("%x,%x", v.hi, v.lo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult = v.AsBigInt()
			}
		})
	}
}

func BenchmarkU128IntoBigInt(b *testing.B) {
	u := U128{lo: 0xFEDCBA9876543210, hi: 0xFEDCBA9876543210}
	BenchBigIntResult = new(big.Int)

	for i := uint(0); i < 128; i += 32 {
		v := u.Rsh(128 - i - 1)
		b.Run(fmt.Sprintf("%x,%x", v.hi, v.lo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v.IntoBigInt(BenchBigIntResult)
			}
		})
	}
}

func BenchmarkU128LessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b U128
	}{
		{u64(1), u64(1)},
		{u64(2), u64(1)},
		{u64(1), u64(2)},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkU128String(b *testing.B) {
	for _, bi := range []U128{
		u128s("0"),
		u128s("0xfedcba98"),
		u128s("0xfedcba9876543210"),
		u128s("0xfedcba9876543210fedcba98"),
		u128s("0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi.AsBigInt()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bi.String()
			}
		})
	}
}

func BenchmarkU128Text(b *testing.B) {
	u := u128s("0xfedcba9876543210fedcba9876543210")
	for _, base := range []int{2, 7, 10, 16, 36} {
		b.Run(fmt.Sprint(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.Text(base)
			}
		})
	}
}

func BenchmarkScanU128(b *testing.B) {
	for _, s := range []string{
		"0",
		"18446744073709551615",
		"340282366920938463463374607431768211455",
	} {
		b.Run(s, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _, _ = ScanU128(s, 10)
			}
		})
	}
}

func BenchmarkPutU128(b *testing.B) {
	var buf [maxDigits]byte
	for i := 0; i < b.N; i++ {
		BenchIntResult, _ = PutU128(buf[:], MaxU128, 10, true)
	}
}

var BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkUint64Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBoolResult = BenchUint641 == BenchUint642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(&dest, &max)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		BenchIntResult = v1.Cmp(&v2)
	}
}
