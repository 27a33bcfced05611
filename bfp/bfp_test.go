package bfp

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

type lcg uint64

func (r *lcg) next() uint32 {
	*r = *r*6364136223846793005 + 1442695040888963407
	return uint32(*r >> 32)
}

func (r *lcg) s32(mag int32) int32 {
	return int32(r.next()) % mag
}

func valuesS32(v *S32) []float64 {
	out := make([]float64, v.Length)
	for i := 0; i < v.Length; i++ {
		out[i] = math.Ldexp(float64(v.Data[i]), int(v.Exp))
	}
	return out
}

func TestAddExponents(t *testing.T) {
	b := InitS32([]int32{1, 1, 1, 1}, 0, true)
	c := InitS32([]int32{2, 2, 2, 2}, 1, true)
	a := AllocS32(4)
	defer a.Dealloc()

	a.Add(&b, &c)

	for i, v := range valuesS32(&a) {
		tassert.InDelta(t, 5.0, v, math.Ldexp(1, int(a.Exp)), "element %d", i)
	}
	tassert.Equal(t, vect.Headroom(a.Data[:4]), a.HR, "reported headroom must match a scan")
}

func TestOverflowAvoidingAdd(t *testing.T) {
	b := InitS16([]int16{math.MaxInt16}, 0, true)
	c := InitS16([]int16{math.MaxInt16}, 0, true)
	a := AllocS16(1)
	defer a.Dealloc()

	a.Add(&b, &c)

	require.Equal(t, int16(math.MaxInt16), a.Data[0])
	require.Equal(t, vpu.Exponent(1), a.Exp, "sum must move to exponent 1, not saturate at 0")
}

func TestSymmetricAbs(t *testing.T) {
	b := InitS16([]int16{math.MinInt16, 1, -3, 5}, 0, true)
	a := AllocS16(4)
	defer a.Dealloc()

	a.Abs(&b)

	tassert.Equal(t, []int16{math.MaxInt16, 1, 3, 5}, a.Data[:4])
	tassert.Equal(t, vpu.Exponent(0), a.Exp)
}

func TestUseExponentIdempotent(t *testing.T) {
	r := lcg(5)
	data := make([]int32, 16)
	for i := range data {
		data[i] = r.s32(1 << 26)
	}
	x := InitS32(data, -20, true)

	before := make([]int32, 16)
	copy(before, x.Data)
	hr := x.HR

	x.UseExponent(x.Exp)

	tassert.Equal(t, before, x.Data[:16])
	tassert.Equal(t, hr, x.HR)
	tassert.Equal(t, vpu.Exponent(-20), x.Exp)
}

func TestUseExponentRenormalizes(t *testing.T) {
	x := InitS32([]int32{1 << 20}, 0, true)
	x.UseExponent(4)
	tassert.Equal(t, int32(1<<16), x.Data[0])
	tassert.Equal(t, vpu.Exponent(4), x.Exp)
}

func TestHeadroomReportedMatchesScan(t *testing.T) {
	r := lcg(8)
	n := 24
	bd := make([]int32, n)
	cd := make([]int32, n)
	for i := range bd {
		bd[i] = r.s32(1 << 29)
		cd[i] = r.s32(1 << 24)
	}
	b := InitS32(bd, -30, true)
	c := InitS32(cd, -25, true)
	a := AllocS32(n)
	defer a.Dealloc()

	a.Mul(&b, &c)
	tassert.Equal(t, vect.Headroom(a.Data[:n]), a.HR, "after Mul")

	a.Add(&b, &c)
	tassert.Equal(t, vect.Headroom(a.Data[:n]), a.HR, "after Add")

	a.Sub(&b, &c)
	tassert.Equal(t, vect.Headroom(a.Data[:n]), a.HR, "after Sub")
}

func TestMulAccuracy(t *testing.T) {
	r := lcg(21)
	n := 32
	bd := make([]int32, n)
	cd := make([]int32, n)
	for i := range bd {
		bd[i] = r.s32(1 << 30)
		cd[i] = r.s32(1 << 30)
	}
	b := InitS32(bd, -31, true)
	c := InitS32(cd, -33, true)
	a := AllocS32(n)
	defer a.Dealloc()

	bv := valuesS32(&b)
	cv := valuesS32(&c)
	a.Mul(&b, &c)

	eps := 3 * math.Ldexp(1, int(a.Exp))
	for i, v := range valuesS32(&a) {
		tassert.InDelta(t, bv[i]*cv[i], v, eps, "element %d", i)
	}
}

func TestSumHomogeneity(t *testing.T) {
	r := lcg(33)
	n := 20
	data := make([]int32, n)
	for i := range data {
		data[i] = r.s32(1 << 24)
	}
	x := InitS32(data, -26, true)
	sum := x.Sum().Float64()

	doubled := AllocS32(n)
	defer doubled.Dealloc()
	doubled.Shl(&x, 1)

	tassert.InDelta(t, 2*sum, doubled.Sum().Float64(), math.Abs(sum)*1e-9)
}

func TestPermutationInvariance(t *testing.T) {
	data := []int32{7, -3, 100, 55, -80, 13, 0, 21}
	perm := []int32{21, 0, 13, -80, 55, 100, -3, 7}

	x := InitS32(data, -10, true)
	y := InitS32(perm, -10, true)

	tassert.Equal(t, x.Sum().Float64(), y.Sum().Float64())
	tassert.Equal(t, x.Max().Float64(), y.Max().Float64())
	tassert.Equal(t, x.Min().Float64(), y.Min().Float64())
	tassert.Equal(t, x.Energy().Float64(), y.Energy().Float64())
}

func TestMeanEnergyRMS(t *testing.T) {
	x := InitS32([]int32{3 << 20, 3 << 20, 3 << 20, 3 << 20}, -20, true)

	tassert.InDelta(t, 3.0, x.Mean().Float64(), 1e-6)
	tassert.InDelta(t, 36.0, x.Energy().Float64(), 1e-4)
	tassert.InDelta(t, 3.0, x.RMS().Float64(), 1e-5)
}

func TestDotMatchesIdeal(t *testing.T) {
	b := InitS32([]int32{1 << 20, 2 << 20, 3 << 20}, -20, true)
	c := InitS32([]int32{4 << 20, 5 << 20, 6 << 20}, -20, true)

	got := b.Dot(&c).Float64()
	tassert.InDelta(t, 1*4+2*5+3*6, got, 1e-4)
}

func TestAllocDealloc(t *testing.T) {
	v := AllocS32(8)
	require.Equal(t, 8, v.Length)
	require.Equal(t, FlagOwned, v.Flags&FlagOwned)

	v.Dealloc()
	tassert.Zero(t, v.Length)
	tassert.Nil(t, v.Data)

	bad := AllocS32(0)
	tassert.Zero(t, bad.Length, "failed alloc reports zero length")
	bad.Dealloc() // no-op

	borrowed := InitS32(make([]int32, 4), 0, false)
	borrowed.Dealloc()
	tassert.Equal(t, 4, borrowed.Length, "borrowed buffers are never released")
}

func TestComplexAllocAlignment(t *testing.T) {
	v := AllocComplexS16(5)
	defer v.Dealloc()
	require.Equal(t, 5, v.Length)
	tassert.Len(t, v.Real, 5)
	tassert.Len(t, v.Imag, 5)
}

func TestDepthConversionRoundTrip(t *testing.T) {
	b := InitS16([]int16{1000, -2000, 3000, 32000}, -15, true)
	w := AllocS32(4)
	defer w.Dealloc()
	w.FromS16(&b)

	for i, v := range valuesS32(&w) {
		want := math.Ldexp(float64(b.Data[i]), -15)
		tassert.InDelta(t, want, v, 1e-9, "widen %d", i)
	}

	back := AllocS16(4)
	defer back.Dealloc()
	back.FromS32(&w)
	for i := range b.Data {
		want := math.Ldexp(float64(b.Data[i]), -15)
		got := math.Ldexp(float64(back.Data[i]), int(back.Exp))
		tassert.InDelta(t, want, got, math.Ldexp(1, int(back.Exp)), "narrow %d", i)
	}
}

func TestScaleAndAddScalar(t *testing.T) {
	b := InitS32([]int32{1 << 20, 2 << 20}, -20, true)
	a := AllocS32(2)
	defer a.Dealloc()

	a.Scale(&b, vpu.FloatS32{Mant: 3 << 28, Exp: -30})
	got := valuesS32(&a)
	tassert.InDelta(t, 0.75, got[0], 1e-6)
	tassert.InDelta(t, 1.5, got[1], 1e-6)

	a.AddScalar(&b, vpu.FloatS32{Mant: 1 << 28, Exp: -28})
	got = valuesS32(&a)
	tassert.InDelta(t, 2.0, got[0], 1e-6)
	tassert.InDelta(t, 3.0, got[1], 1e-6)
}

func TestMaccTracksIdeal(t *testing.T) {
	acc := InitS32([]int32{1 << 26, 1 << 26}, -26, true)
	b := InitS32([]int32{1 << 26, 2 << 26}, -26, true)
	c := InitS32([]int32{3 << 26, 1 << 26}, -26, true)

	acc.Macc(&b, &c)

	got := valuesS32(&acc)
	eps := 4 * math.Ldexp(1, int(acc.Exp))
	tassert.InDelta(t, 1+1*3, got[0], eps)
	tassert.InDelta(t, 1+2*1, got[1], eps)

	acc.Nmacc(&b, &c)
	got = valuesS32(&acc)
	eps = 4 * math.Ldexp(1, int(acc.Exp))
	tassert.InDelta(t, 4-3, got[0], eps)
	tassert.InDelta(t, 3-2, got[1], eps)
}

func TestClipSetsBounds(t *testing.T) {
	b := InitS32([]int32{-100 << 20, 100 << 20, 5 << 20}, -20, true)
	a := AllocS32(3)
	defer a.Dealloc()

	a.Clip(&b, -10<<20, 10<<20, -20)
	got := valuesS32(&a)
	tassert.InDelta(t, -10, got[0], 1e-3)
	tassert.InDelta(t, 10, got[1], 1e-3)
	tassert.InDelta(t, 5, got[2], 1e-3)
}

func TestSqrtInverseVectors(t *testing.T) {
	b := InitS32([]int32{1 << 20, 4 << 20, 9 << 20, 16 << 20}, -20, true)
	a := AllocS32(4)
	defer a.Dealloc()

	a.Sqrt(&b)
	for i, want := range []float64{1, 2, 3, 4} {
		tassert.InDelta(t, want, valuesS32(&a)[i], 1e-5, "sqrt %d", i)
	}

	a.Inverse(&b)
	for i, want := range []float64{1, 0.25, 1.0 / 9, 1.0 / 16} {
		tassert.InDelta(t, want, valuesS32(&a)[i], 1e-6, "inverse %d", i)
	}
}
