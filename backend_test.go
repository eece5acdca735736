package num

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var backendEdgeValues = []U128{
	Zero,
	One,
	u64(2),
	u64(3),
	u64(1 << 32),
	u64(1<<32 - 1),
	u64(1 << 63),
	u64(maxUint64 - 1),
	u64(maxUint64),
	U128FromHigh(1),
	U128FromRaw(1, maxUint64),
	U128FromRaw(1<<63, 0),
	U128FromRaw(1<<63, 1),
	U128FromRaw(maxUint64, 0),
	MaxU128.Dec(),
	MaxU128,
}

func TestBackendsAgreeOnEdges(t *testing.T) {
	p, n := portableBackend{}, intrinsicBackend{}

	for _, a := range backendEdgeValues {
		for _, b := range backendEdgeValues {
			t.Run(fmt.Sprintf("%#x,%#x", a, b), func(t *testing.T) {
				tt := assert.WrapTB(t)
				tt.MustEqual(p.add(a, b), n.add(a, b))
				tt.MustEqual(p.sub(a, b), n.sub(a, b))
				tt.MustEqual(p.mul(a, b), n.mul(a, b))
				tt.MustEqual(p.add64(a, b.lo), n.add64(a, b.lo))
				tt.MustEqual(p.sub64(a, b.lo), n.sub64(a, b.lo))
				tt.MustEqual(p.mul64(a, b.lo), n.mul64(a, b.lo))
				tt.MustEqual(p.cmp(a, b), n.cmp(a, b))
				tt.MustEqual(p.lessThan(a, b), n.lessThan(a, b))

				ph, pl := p.mulFull(a, b)
				nh, nl := n.mulFull(a, b)
				tt.MustEqual(ph, nh)
				tt.MustEqual(pl, nl)

				if b.IsNotZero() {
					pq, pr := p.quoRem(a, b)
					nq, nr := n.quoRem(a, b)
					tt.MustEqual(pq, nq)
					tt.MustEqual(pr, nr)
					tt.MustEqual(a, p.add(p.mul(pq, b), pr))
				}
				if b.lo != 0 {
					pq, pr := p.quoRem64(a, b.lo)
					nq, nr := n.quoRem64(a, b.lo)
					tt.MustEqual(pq, nq)
					tt.MustEqual(pr, nr)
				}
			})
		}
	}
}

func TestBackendShifts(t *testing.T) {
	for _, be := range allBackends {
		t.Run(be.name(), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for _, u := range backendEdgeValues {
				for n := uint(0); n < 128; n++ {
					ub := u.AsBigInt()
					lb := ub.Lsh(ub, n)
					lb.And(lb, maxBigU128)
					tt.MustEqual(lb.String(), be.lsh(u, n).String(), "%#x << %d", u, n)

					rb := u.AsBigInt()
					rb.Rsh(rb, n)
					tt.MustEqual(rb.String(), be.rsh(u, n).String(), "%#x >> %d", u, n)
				}
			}
		})
	}
}

func TestBackendQuoRemByZero(t *testing.T) {
	for _, be := range allBackends {
		be := be
		t.Run(be.name(), func(t *testing.T) {
			mustPanic(t, "num: division by zero", func() { be.quoRem64(One, 0) })
			mustPanic(t, "num: division by zero", func() { be.quoRem(One, Zero) })
		})
	}
}

func TestBackendName(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("portable", portableBackend{}.name())
	tt.MustEqual("intrinsic", intrinsicBackend{}.name())
	tt.MustAssert(BackendName() == "portable" || BackendName() == "intrinsic")
}

func TestMul64To128(t *testing.T) {
	for _, tc := range []struct {
		u, v   uint64
		hi, lo uint64
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 1},
		{maxUint64, 2, 1, maxUint64 - 1},
		{maxUint64, maxUint64, maxUint64 - 1, 1},
		{1 << 32, 1 << 32, 1, 0},
	} {
		t.Run(fmt.Sprintf("%d*%d", tc.u, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			hi, lo := mul64to128(tc.u, tc.v)
			tt.MustEqual(tc.hi, hi)
			tt.MustEqual(tc.lo, lo)
		})
	}
}
