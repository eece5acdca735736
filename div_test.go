package num

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestDivmod128Trivial(t *testing.T) {
	for idx, tc := range []struct {
		u, by, q, r U128
	}{
		{u: MaxU128, by: One, q: MaxU128, r: Zero},
		{u: MaxU128, by: u64(2), q: MaxU128.Rsh(1), r: One},
		{u: U128FromHigh(1), by: u64(2), q: u64(1 << 63), r: Zero},
		{u: U128FromRaw(5, 5), by: U128FromRaw(5, 5), q: One, r: Zero},
		{u: U128FromRaw(5, 4), by: U128FromRaw(5, 5), q: Zero, r: U128FromRaw(5, 4)},
		{u: u64(4), by: u64(5), q: Zero, r: u64(4)},
		{u: Zero, by: u64(7), q: Zero, r: Zero},
		{u: Zero, by: MaxU128, q: Zero, r: Zero},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s", idx, tc.u, tc.by), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := divmod128(tc.u, tc.by)
			tt.MustEqual(tc.q, q)
			tt.MustEqual(tc.r, r)
		})
	}
}

func TestDivmod128by64RemainderCarry(t *testing.T) {
	// Divisors with the top bit set make the shifted remainder overflow a
	// word before it is compared.
	for _, by := range []uint64{1<<63 + 1, maxUint64, maxUint64 - 2, 1<<63 | 1<<62} {
		for _, u := range []U128{MaxU128, U128FromRaw(1<<63, 12345), U128FromRaw(by-1, maxUint64)} {
			t.Run(fmt.Sprintf("%s÷%d", u, by), func(t *testing.T) {
				tt := assert.WrapTB(t)
				q, r := divmod128by64(u, by)

				ub := u.AsBigInt()
				bb := new(big.Int).SetUint64(by)
				qb, rb := new(big.Int).QuoRem(ub, bb, new(big.Int))
				tt.MustEqual(qb.String(), q.String())
				tt.MustEqual(rb.Uint64(), r)
			})
		}
	}
}

func TestDivmod128Random(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 2000; i++ {
		ub, bb := randomBigU128(nil), randomBigU128(nil)
		if bb.Sign() == 0 {
			continue
		}
		u, by := accU128FromBigInt(ub), accU128FromBigInt(bb)

		q, r := divmod128(u, by)
		qb, rb := new(big.Int).QuoRem(ub, bb, new(big.Int))
		tt.MustEqual(qb.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(rb.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestBitAt(t *testing.T) {
	tt := assert.WrapTB(t)
	u := U128FromRaw(1<<3, 1<<60)
	tt.MustEqual(uint64(1), bitAt(u, 60))
	tt.MustEqual(uint64(1), bitAt(u, 67))
	tt.MustEqual(uint64(0), bitAt(u, 66))
	tt.MustEqual(uint64(0), bitAt(u, 0))
}
