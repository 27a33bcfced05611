package bfp

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-bfp/vpu"
)

func TestMonoFFTRoundTrip(t *testing.T) {
	r := lcg(41)
	const n = 128

	x := AllocS32(n)
	defer x.Dealloc()
	for i := 0; i < n; i++ {
		x.Data[i] = r.s32(1 << 29)
	}
	x.Exp = -31
	x.Headroom()

	orig := make([]float64, n)
	copy(orig, valuesS32(&x))

	X := FFTForwardMono(&x)
	xr := FFTInverseMono(X)

	tol := 20 * math.Ldexp(1, -31)
	for i := 0; i < n; i++ {
		got := math.Ldexp(float64(xr.Data[i]), int(xr.Exp))
		require.InDelta(t, orig[i], got, tol, "sample %d", i)
	}
}

func TestComplexFFTRoundTrip(t *testing.T) {
	r := lcg(43)
	const n = 64

	x := AllocComplexS32(n)
	defer x.Dealloc()
	origRe := make([]float64, n)
	origIm := make([]float64, n)
	for i := 0; i < n; i++ {
		x.Data[i] = vpu.ComplexS32{Re: r.s32(1 << 29), Im: r.s32(1 << 29)}
		origRe[i] = math.Ldexp(float64(x.Data[i].Re), -31)
		origIm[i] = math.Ldexp(float64(x.Data[i].Im), -31)
	}
	x.Exp = -31
	x.Headroom()

	FFTForwardComplex(&x)
	FFTInverseComplex(&x)

	tol := 32 * math.Ldexp(1, -31)
	for i := 0; i < n; i++ {
		require.InDelta(t, origRe[i], math.Ldexp(float64(x.Data[i].Re), int(x.Exp)), tol, "re %d", i)
		require.InDelta(t, origIm[i], math.Ldexp(float64(x.Data[i].Im), int(x.Exp)), tol, "im %d", i)
	}
}

func TestStereoFFTRoundTrip(t *testing.T) {
	r := lcg(47)
	const n = 64

	a := AllocS32(n)
	b := AllocS32(n)
	defer a.Dealloc()
	defer b.Dealloc()
	for i := 0; i < n; i++ {
		a.Data[i] = r.s32(1 << 29)
		b.Data[i] = r.s32(1 << 29)
	}
	a.Exp, b.Exp = -31, -31
	a.Headroom()
	b.Headroom()

	origA := make([]float64, n)
	origB := make([]float64, n)
	copy(origA, valuesS32(&a))
	copy(origB, valuesS32(&b))

	scratch := make([]vpu.ComplexS32, n)
	aFFT, bFFT := FFTForwardStereo(&a, &b, scratch)
	ar, br := FFTInverseStereo(aFFT, bFFT, scratch)

	tol := 32 * math.Ldexp(1, -31)
	for i := 0; i < n; i++ {
		require.InDelta(t, origA[i], math.Ldexp(float64(ar.Data[i]), int(ar.Exp)), tol, "channel A sample %d", i)
		require.InDelta(t, origB[i], math.Ldexp(float64(br.Data[i]), int(br.Exp)), tol, "channel B sample %d", i)
	}
}

func TestFFTPackUnpack(t *testing.T) {
	r := lcg(53)
	const n = 32

	x := AllocS32(n)
	defer x.Dealloc()
	for i := 0; i < n; i++ {
		x.Data[i] = r.s32(1 << 28)
	}
	x.Exp = -31
	x.Headroom()

	X := FFTForwardMono(&x)
	packedDC := X.Data[0]

	FFTUnpackMono(X)
	require.Equal(t, n/2+1, X.Length)
	tassert.Equal(t, int32(0), X.Data[0].Im, "unpacked DC must be purely real")
	tassert.Equal(t, int32(0), X.Data[n/2].Im, "unpacked Nyquist must be purely real")
	tassert.Equal(t, packedDC.Im, X.Data[n/2].Re, "Nyquist moves out of the DC imaginary slot")

	FFTPackMono(X)
	require.Equal(t, n/2, X.Length)
	tassert.Equal(t, packedDC, X.Data[0])
}

func TestGradientConstraintMono(t *testing.T) {
	r := lcg(59)
	const n = 64
	const frameAdvance = 16

	x := AllocS32(n)
	defer x.Dealloc()
	for i := 0; i < n; i++ {
		x.Data[i] = r.s32(1 << 29)
	}
	x.Exp = -31
	x.Headroom()

	X := FFTForwardMono(&x)
	X.GradientConstraintMono(frameAdvance)
	xr := FFTInverseMono(X)

	// Samples at and past the frame advance must be suppressed to the
	// arithmetic noise floor.
	for i := frameAdvance; i < n; i++ {
		if d := xr.Data[i]; d < -64 || d > 64 {
			t.Errorf("sample %d not suppressed: mantissa %d", i, d)
		}
	}
}

func TestGradientConstraintPreservesHead(t *testing.T) {
	r := lcg(61)
	const n = 64
	const frameAdvance = 32

	x := AllocS32(n)
	defer x.Dealloc()
	for i := 0; i < n; i++ {
		x.Data[i] = r.s32(1 << 29)
	}
	x.Exp = -31
	x.Headroom()
	orig := make([]float64, n)
	copy(orig, valuesS32(&x))

	X := FFTForwardMono(&x)
	X.GradientConstraintMono(frameAdvance)
	xr := FFTInverseMono(X)

	tol := 64 * math.Ldexp(1, -31)
	for i := 0; i < frameAdvance; i++ {
		got := math.Ldexp(float64(xr.Data[i]), int(xr.Exp))
		tassert.InDelta(t, orig[i], got, tol, "head sample %d", i)
	}
}

func TestGradientConstraintStereoFastPath(t *testing.T) {
	r := lcg(67)
	const n = 64 // time-domain length per channel
	const frameAdvance = 16

	// Build two packed spectra in one contiguous buffer so the merged
	// transform path is taken.
	comb := make([]vpu.ComplexS32, n)

	a := AllocS32(n)
	b := AllocS32(n)
	defer a.Dealloc()
	defer b.Dealloc()
	for i := 0; i < n; i++ {
		a.Data[i] = r.s32(1 << 29)
		b.Data[i] = r.s32(1 << 29)
	}
	a.Exp, b.Exp = -31, -31
	a.Headroom()
	b.Headroom()

	aFFT := FFTForwardMono(&a)
	bFFT := FFTForwardMono(&b)

	// Bring both spectra to one exponent before sharing a buffer.
	common := max(aFFT.Exp-vpu.Exponent(aFFT.HR), bFFT.Exp-vpu.Exponent(bFFT.HR)) + 2
	aFFT.UseExponent(common)
	bFFT.UseExponent(common)

	copy(comb[:n/2], aFFT.Data[:n/2])
	copy(comb[n/2:], bFFT.Data[:n/2])
	X1 := InitComplexS32(comb[:n/2], common, true)
	X2 := InitComplexS32(comb[n/2:], common, true)

	GradientConstraintStereo(&X1, &X2, frameAdvance)

	for ch, X := range []*ComplexS32{&X1, &X2} {
		spec := AllocComplexS32(n / 2)
		copy(spec.Data, X.Data[:n/2])
		spec.Exp = X.Exp
		spec.Headroom()

		xr := FFTInverseMono(&spec)
		for i := frameAdvance; i < n; i++ {
			if d := xr.Data[i]; d < -96 || d > 96 {
				t.Errorf("channel %d sample %d not suppressed: mantissa %d", ch, i, d)
			}
		}
	}
}

func TestComplexOpsValueLevel(t *testing.T) {
	b := AllocComplexS32(4)
	c := AllocComplexS32(4)
	a := AllocComplexS32(4)
	defer b.Dealloc()
	defer c.Dealloc()
	defer a.Dealloc()

	for i := 0; i < 4; i++ {
		b.Data[i] = vpu.ComplexS32{Re: int32(i+1) << 26, Im: -(int32(i) << 26)}
		c.Data[i] = vpu.ComplexS32{Re: 1 << 26, Im: 1 << 26}
	}
	b.Exp, c.Exp = -26, -26
	b.Headroom()
	c.Headroom()

	a.Mul(&b, &c)
	for i := 0; i < 4; i++ {
		wantRe := float64(i+1) + float64(i) // (x - yi)(1 + i) = (x + y) + (x - y)i
		wantIm := float64(i+1) - float64(i)
		gotRe := math.Ldexp(float64(a.Data[i].Re), int(a.Exp))
		gotIm := math.Ldexp(float64(a.Data[i].Im), int(a.Exp))
		eps := 4 * math.Ldexp(1, int(a.Exp))
		tassert.InDelta(t, wantRe, gotRe, eps, "re %d", i)
		tassert.InDelta(t, wantIm, gotIm, eps, "im %d", i)
	}

	// |1+i|^2 = 2.
	sq := AllocS32(4)
	defer sq.Dealloc()
	sq.SquaredMag(&c)
	for i := 0; i < 4; i++ {
		tassert.InDelta(t, 2.0, math.Ldexp(float64(sq.Data[i]), int(sq.Exp)), 1e-6)
	}

	mag := AllocS32(4)
	defer mag.Dealloc()
	mag.Mag(&c)
	for i := 0; i < 4; i++ {
		tassert.InDelta(t, math.Sqrt2, math.Ldexp(float64(mag.Data[i]), int(mag.Exp)), 1e-4)
	}
}

func TestComplexMakeAndParts(t *testing.T) {
	re := InitS32([]int32{1 << 20, 2 << 20}, -20, true)
	im := InitS32([]int32{3 << 20, 4 << 20}, -20, true)

	z := AllocComplexS32(2)
	defer z.Dealloc()
	z.Make(&re, &im)

	outRe := AllocS32(2)
	outIm := AllocS32(2)
	defer outRe.Dealloc()
	defer outIm.Dealloc()
	outRe.RealPart(&z)
	outIm.ImagPart(&z)

	for i := 0; i < 2; i++ {
		tassert.InDelta(t, float64(i+1), math.Ldexp(float64(outRe.Data[i]), int(outRe.Exp)), 1e-6)
		tassert.InDelta(t, float64(i+3), math.Ldexp(float64(outIm.Data[i]), int(outIm.Exp)), 1e-6)
	}
}

func TestConvolveWrappers(t *testing.T) {
	sig := InitS32([]int32{0, 0, 4 << 20, 0, 0, 0}, -20, true)
	filter := []int32{1 << 28, 1 << 29, 1 << 28}

	valid := AllocS32(4)
	defer valid.Dealloc()
	valid.ConvolveValid(&sig, filter)
	tassert.Equal(t, vpu.Exponent(-20), valid.Exp)
	tassert.Equal(t, []int32{1 << 20, 2 << 20, 1 << 20, 0}, valid.Data[:4])

	same := AllocS32(6)
	defer same.Dealloc()
	same.ConvolveSame(&sig, filter, 0)
	tassert.Equal(t, 6, same.Length)
	tassert.Equal(t, int32(2<<20), same.Data[2])
}
