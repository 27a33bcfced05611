package vect

import (
	"math"
	"testing"

	"github.com/ajroetker/go-bfp/vpu"
)

// lcg is a small deterministic generator for test vectors.
type lcg uint64

func (r *lcg) next() uint32 {
	*r = *r*6364136223846793005 + 1442695040888963407
	return uint32(*r >> 32)
}

func (r *lcg) s32(mag int32) int32 {
	return int32(r.next()) % mag
}

func TestHeadroomMatchesScan(t *testing.T) {
	r := lcg(1)
	for trial := 0; trial < 20; trial++ {
		n := 1 + int(r.next()%70)
		b := make([]int32, n)
		want := vpu.Headroom(31)
		for i := range b {
			b[i] = r.s32(1 << 28)
			if hr := vpu.HRS32(b[i]); hr < want {
				want = hr
			}
		}
		if got := Headroom(b); got != want {
			t.Errorf("Headroom: got %d, want %d (n=%d)", got, want, n)
		}
		if got := headroomS32Ref(b); got != want {
			t.Errorf("headroomS32Ref: got %d, want %d", got, want)
		}
		if got := headroomS32Unrolled(b); got != want {
			t.Errorf("headroomS32Unrolled: got %d, want %d", got, want)
		}
	}
}

func TestS32AddNeverWraps(t *testing.T) {
	a := make([]int32, 1)
	hr := S32Add(a, []int32{vpu.MaxS32}, []int32{vpu.MaxS32}, 0, 0)
	if a[0] != vpu.MaxS32 {
		t.Errorf("MAX + MAX must saturate to MAX, got %d", a[0])
	}
	if hr != 0 {
		t.Errorf("saturated sum headroom: got %d", hr)
	}
}

func TestAbsSymmetric(t *testing.T) {
	in := []int16{math.MinInt16, 1, -3, 5}
	out := make([]int16, 4)
	Abs(out, in)
	want := []int16{math.MaxInt16, 1, 3, 5}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Abs[%d]: got %d, want %d", i, out[i], want[i])
		}
	}
}

func TestRect(t *testing.T) {
	in := []int32{-5, 0, 7, math.MinInt32}
	out := make([]int32, 4)
	Rect(out, in)
	want := []int32{0, 0, 7, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Rect[%d]: got %d, want %d", i, out[i], want[i])
		}
	}
}

func TestArgMaxArgMinTieBreak(t *testing.T) {
	b := []int32{5, 5, 1, 5, 1}
	if got := ArgMax(b); got != 0 {
		t.Errorf("ArgMax tie: got %d, want 0", got)
	}
	if got := ArgMin(b); got != 2 {
		t.Errorf("ArgMin tie: got %d, want 2", got)
	}
}

func TestClip(t *testing.T) {
	in := []int32{-100, -10, 0, 10, 100}
	out := make([]int32, 5)
	Clip(out, in, -20, 20, 0)
	want := []int32{-20, -10, 0, 10, 20}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Clip[%d]: got %d, want %d", i, out[i], want[i])
		}
	}
}

func TestS32MulQ30(t *testing.T) {
	half := int32(1 << 29) // 0.5 in Q2.30
	a := make([]int32, 1)
	S32Mul(a, []int32{half}, []int32{half}, 0, 0)
	if a[0] != 1<<28 {
		t.Errorf("0.5 * 0.5 in Q30: got %#x, want %#x", a[0], 1<<28)
	}
}

func TestS32DotLanes(t *testing.T) {
	n := 16
	b := make([]int32, n)
	c := make([]int32, n)
	for i := range b {
		b[i] = 1 << 30
		c[i] = 1 << 30
	}
	got := S32Dot(b, c, 0, 0)
	if want := int64(n) << 30; got != want {
		t.Errorf("dot of Q30 ones: got %d, want %d", got, want)
	}
}

func TestS32SumAndAbsSum(t *testing.T) {
	b := []int32{5, -3, 7, -9, 11, 2, -2, 1, 4}
	if got := S32Sum(b); got != 16 {
		t.Errorf("S32Sum: got %d, want 16", got)
	}
	if got := S32AbsSum(b); got != 44 {
		t.Errorf("S32AbsSum: got %d, want 44", got)
	}
}

func TestZipUnzipRoundTrip(t *testing.T) {
	r := lcg(7)
	n := 32
	a := make([]int32, n)
	b := make([]int32, n)
	for i := range a {
		a[i] = r.s32(1 << 30)
		b[i] = r.s32(1 << 30)
	}
	z := make([]vpu.ComplexS32, n)
	S32Zip(z, a, b, 0, 0)
	a2 := make([]int32, n)
	b2 := make([]int32, n)
	S32Unzip(a2, b2, z)
	for i := range a {
		if a2[i] != a[i] || b2[i] != b[i] {
			t.Fatalf("zip/unzip mismatch at %d", i)
		}
	}
}

func TestSplitAccsRoundTrip(t *testing.T) {
	r := lcg(9)
	n := 40
	b := make([]int32, n)
	for i := range b {
		b[i] = r.s32(1 << 30)
	}
	accs := make([]SplitAccS32, (n+SplitAccChunkSize-1)/SplitAccChunkSize)
	S32SplitAccs(accs, b, n)
	out := make([]int32, n)
	S32MergeAccs(out, accs, n)
	for i := range b {
		if out[i] != b[i] {
			t.Fatalf("split/merge mismatch at %d: %d != %d", i, out[i], b[i])
		}
	}
}

func TestS16Accumulate(t *testing.T) {
	b := make([]int16, 16)
	for i := range b {
		b[i] = int16(i + 1)
	}
	accs := make([]SplitAccS32, 1)
	ctrl := S16Accumulate(accs, b, 0, CtrlWordInit())
	for i := range b {
		if got := accs[0].Get(i); got != int32(i+1) {
			t.Errorf("acc[%d]: got %d, want %d", i, got, i+1)
		}
	}
	if got := ctrl.Headroom(); got != vpu.HRS32(16) {
		t.Errorf("ctrl headroom: got %d, want %d", got, vpu.HRS32(16))
	}
}

func TestConvolveValid(t *testing.T) {
	filter := []int32{1 << 28, 1 << 29, 1 << 28} // 0.25, 0.5, 0.25
	in := []int32{0, 0, 4 << 20, 0, 0}
	out := make([]int32, 3)
	S32ConvolveValid(out, in, filter)
	want := []int32{1 << 20, 2 << 20, 1 << 20}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("convolve valid[%d]: got %d, want %d", i, out[i], want[i])
		}
	}
}

func TestConvolveSamePadding(t *testing.T) {
	filter := []int32{1 << 28, 1 << 29, 1 << 28}
	in := []int32{1 << 20, 1 << 20, 1 << 20, 1 << 20}

	out := make([]int32, 4)
	S32ConvolveSame(out, in, filter, PadModeZero)
	if out[0] != 3<<18 || out[3] != 3<<18 {
		t.Errorf("zero padding edges: got %d, %d, want %d", out[0], out[3], 3<<18)
	}
	if out[1] != 1<<20 || out[2] != 1<<20 {
		t.Errorf("interior: got %d, %d, want %d", out[1], out[2], 1<<20)
	}

	S32ConvolveSame(out, in, filter, PadModeExtend)
	for i := range out {
		if out[i] != 1<<20 {
			t.Errorf("extend padding[%d]: got %d, want %d", i, out[i], 1<<20)
		}
	}

	S32ConvolveSame(out, in, filter, PadModeReflect)
	for i := range out {
		if out[i] != 1<<20 {
			t.Errorf("reflect padding[%d]: got %d, want %d", i, out[i], 1<<20)
		}
	}
}

func TestAddPrepare(t *testing.T) {
	aExp, bShr, cShr := S32AddPrepare(0, 1, 30, 29)
	// b is worth at most 2^1 and c at most 2^3; one carry bit on top of the
	// larger minimal exponent.
	if aExp != vpu.Exponent(-27) {
		t.Errorf("aExp: got %d, want -27", aExp)
	}
	if int(bShr) != int(aExp)-0 || int(cShr) != int(aExp)-1 {
		t.Errorf("shifts: got %d, %d", bShr, cShr)
	}
}

func TestMulPrepareWorstCase(t *testing.T) {
	// With no headroom anywhere, two full-scale Q30 operands need a total
	// shift of 2 to keep the product inside the symmetric range.
	aExp, bShr, cShr := S32MulPrepare(-30, -30, 0, 0)
	if int(bShr)+int(cShr) != 2 {
		t.Errorf("total shift: got %d, want 2", int(bShr)+int(cShr))
	}
	if aExp != vpu.Exponent(-30-30+2+30) {
		t.Errorf("aExp: got %d", aExp)
	}

	a := make([]int32, 1)
	hr := S32Mul(a, []int32{-vpu.MaxS32}, []int32{-vpu.MaxS32}, bShr, cShr)
	if hr != 1 {
		t.Errorf("worst-case product headroom: got %d, want 1", hr)
	}
}

func TestComplexMulPrepareWorstCase(t *testing.T) {
	aExp, bShr, cShr := ComplexS32MulPrepare(-31, -31, 0, 0)
	if int(bShr)+int(cShr) != 2 {
		t.Errorf("total shift: got %d, want 2", int(bShr)+int(cShr))
	}
	if aExp != vpu.Exponent(-31-31+2+30) {
		t.Errorf("aExp: got %d", aExp)
	}

	// The most extreme mantissa combination lands the imaginary part
	// exactly on the saturation bound; it must clamp there, never wrap.
	a := make([]vpu.ComplexS32, 1)
	b := []vpu.ComplexS32{{Re: vpu.MinS32, Im: vpu.MinS32}}
	c := []vpu.ComplexS32{{Re: vpu.MinS32, Im: vpu.MinS32}}
	ComplexS32Mul(a, b, c, bShr, cShr)
	if a[0].Im != vpu.MaxS32 {
		t.Errorf("worst-case imaginary part: got %d, want %d", a[0].Im, vpu.MaxS32)
	}
}

func TestComplexS32MulValue(t *testing.T) {
	// (1 + j) * (0 + j) = -1 + j in Q30.
	one := int32(1 << 30)
	a := make([]vpu.ComplexS32, 1)
	b := []vpu.ComplexS32{{Re: one >> 1, Im: one >> 1}}
	c := []vpu.ComplexS32{{Re: 0, Im: one >> 1}}
	ComplexS32Mul(a, b, c, 0, 0)
	if a[0].Re != -(1<<28) || a[0].Im != 1<<28 {
		t.Errorf("(0.5+0.5j)*(0.5j): got (%d, %d)", a[0].Re, a[0].Im)
	}

	ComplexS32ConjMul(a, b, c, 0, 0)
	if a[0].Re != 1<<28 || a[0].Im != -(1<<28) {
		t.Errorf("(0.5+0.5j)*conj(0.5j): got (%d, %d)", a[0].Re, a[0].Im)
	}
}

func TestShlShr(t *testing.T) {
	b := []int32{1 << 20, -(1 << 20)}
	a := make([]int32, 2)
	hr := Shl(a, b, 4)
	if a[0] != 1<<24 || a[1] != -(1<<24) {
		t.Errorf("Shl: got %v", a)
	}
	if hr != vpu.HRS32(1<<24) {
		t.Errorf("Shl headroom: got %d", hr)
	}
	Shr(a, a, 4)
	if a[0] != 1<<20 || a[1] != -(1<<20) {
		t.Errorf("Shr: got %v", a)
	}
}

func TestMaxMinElementwise(t *testing.T) {
	b := []int32{1, 5, -3}
	c := []int32{2, 4, -7}
	a := make([]int32, 3)
	MaxElementwise(a, b, c, 0, 0)
	for i, want := range []int32{2, 5, -3} {
		if a[i] != want {
			t.Errorf("MaxElementwise[%d]: got %d, want %d", i, a[i], want)
		}
	}
	MinElementwise(a, b, c, 0, 0)
	for i, want := range []int32{1, 4, -7} {
		if a[i] != want {
			t.Errorf("MinElementwise[%d]: got %d, want %d", i, a[i], want)
		}
	}
}

func TestS32SqrtKernel(t *testing.T) {
	aExp, bShr := S32SqrtPrepare(-30, 1)
	b := []int32{1 << 30} // 1.0 in Q2.30
	a := make([]int32, 1)
	S32Sqrt(a, b, bShr, vpu.SqrtMaxDepth)
	got := math.Ldexp(float64(a[0]), int(aExp))
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("sqrt(1.0): got %g", got)
	}
}

func TestS32InverseKernel(t *testing.T) {
	b := []int32{1 << 20, 3 << 20, -(5 << 20)}
	aExp, scale := S32InversePrepare(b, -20)
	a := make([]int32, 3)
	S32Inverse(a, b, scale)
	for i, v := range []float64{1.0, 3.0, -5.0} {
		got := math.Ldexp(float64(a[i]), int(aExp))
		if math.Abs(got-1/v) > 1e-6*math.Abs(1/v) {
			t.Errorf("inverse of %g: got %g", v, got)
		}
	}
}

func TestS16MulSat(t *testing.T) {
	aExp, sat := S16MulPrepare(0, 0, 0, 0)
	a := make([]int16, 1)
	S16Mul(a, []int16{math.MinInt16}, []int16{math.MinInt16}, sat)
	// (-2^15)^2 = 2^30; the prepared shift of 16 puts the exact value at
	// mantissa 2^14 with exponent 16.
	if a[0] != 1<<14 {
		t.Errorf("(-2^15)^2 with prepare shift: got %d, want %d", a[0], 1<<14)
	}
	if aExp != vpu.Exponent(16) {
		t.Errorf("aExp: got %d, want 16", aExp)
	}
}

func TestF32Conversions(t *testing.T) {
	b := []float32{0.5, -0.25, 0.125, 0}
	exp := F32MaxExponent(b)
	a := make([]int32, len(b))
	F32ToS32(a, b, exp)
	back := make([]float32, len(b))
	S32ToF32(back, a, exp)
	for i := range b {
		if math.Abs(float64(back[i]-b[i])) > 1e-7 {
			t.Errorf("f32 round trip[%d]: got %g, want %g", i, back[i], b[i])
		}
	}
}
