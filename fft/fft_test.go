package fft

import (
	"math"
	"math/cmplx"
	"testing"

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

func randomComplex(r *lcg, n int, mag int32) []vpu.ComplexS32 {
	x := make([]vpu.ComplexS32, n)
	for i := range x {
		x[i] = vpu.ComplexS32{Re: r.s32(mag), Im: r.s32(mag)}
	}
	return x
}

func toComplex128(x []vpu.ComplexS32, exp vpu.Exponent) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(
			math.Ldexp(float64(v.Re), int(exp)),
			math.Ldexp(float64(v.Im), int(exp)))
	}
	return out
}

// referenceDFT computes X[k] = sum_n x[n] e^(-2*pi*i*n*k/N) directly.
func referenceDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			ang := -2 * math.Pi * float64(j) * float64(k) / float64(n)
			acc += x[j] * cmplx.Exp(complex(0, ang))
		}
		out[k] = acc
	}
	return out
}

func TestTwiddleTableLayout(t *testing.T) {
	// The first stage holds the 8th roots of unity W(8)^0..3.
	want := []vpu.ComplexS32{
		{Re: 1 << 30, Im: 0},
		{Re: 759250125, Im: -759250125},
		{Re: 0, Im: -(1 << 30)},
		{Re: -759250125, Im: -759250125},
	}
	for i, w := range want {
		if ditLUT[i] != w {
			t.Errorf("ditLUT[%d]: got %v, want %v", i, ditLUT[i], w)
		}
	}
	// The DIF table ends with the same stage.
	base := MaxFFTLen - 8
	for i, w := range want {
		if difLUT[base+i] != w {
			t.Errorf("difLUT[%d]: got %v, want %v", base+i, difLUT[base+i], w)
		}
	}
}

func TestIndexBitReversalInvolution(t *testing.T) {
	r := lcg(3)
	x := randomComplex(&r, 64, 1<<29)
	orig := make([]vpu.ComplexS32, 64)
	copy(orig, x)
	IndexBitReversal(x)
	IndexBitReversal(x)
	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("bit reversal not an involution at %d", i)
		}
	}
}

func TestDitForwardMatchesDFT(t *testing.T) {
	r := lcg(11)
	for _, n := range []int{4, 8, 16, 64, 256} {
		x := randomComplex(&r, n, 1<<28)
		exp := vpu.Exponent(-31)
		hr := vect.ComplexS32Headroom(x)

		ref := referenceDFT(toComplex128(x, exp))

		IndexBitReversal(x)
		DitForward(x, &hr, &exp)

		tol := 256 * math.Ldexp(1, int(exp))
		for k := range x {
			got := complex(
				math.Ldexp(float64(x[k].Re), int(exp)),
				math.Ldexp(float64(x[k].Im), int(exp)))
			if cmplx.Abs(got-ref[k]) > tol {
				t.Errorf("N=%d bin %d: got %v, want %v (tol %g)", n, k, got, ref[k], tol)
			}
		}
	}
}

func TestDifMatchesDit(t *testing.T) {
	r := lcg(13)
	for _, n := range []int{4, 16, 128} {
		x := randomComplex(&r, n, 1<<28)

		dit := make([]vpu.ComplexS32, n)
		copy(dit, x)
		ditExp := vpu.Exponent(0)
		ditHR := vect.ComplexS32Headroom(dit)
		IndexBitReversal(dit)
		DitForward(dit, &ditHR, &ditExp)

		dif := make([]vpu.ComplexS32, n)
		copy(dif, x)
		difExp := vpu.Exponent(0)
		difHR := vect.ComplexS32Headroom(dif)
		DifForward(dif, &difHR, &difExp)
		IndexBitReversal(dif)

		tol := 64 * math.Ldexp(1, int(max(ditExp, difExp)))
		for k := range x {
			a := complex(
				math.Ldexp(float64(dit[k].Re), int(ditExp)),
				math.Ldexp(float64(dit[k].Im), int(ditExp)))
			b := complex(
				math.Ldexp(float64(dif[k].Re), int(difExp)),
				math.Ldexp(float64(dif[k].Im), int(difExp)))
			if cmplx.Abs(a-b) > tol {
				t.Errorf("N=%d bin %d: DIT %v vs DIF %v", n, k, a, b)
			}
		}
	}
}

func TestDitInverseRoundTrip(t *testing.T) {
	r := lcg(17)
	for _, n := range []int{4, 16, 64} {
		x := randomComplex(&r, n, 1<<28)
		orig := toComplex128(x, -31)

		exp := vpu.Exponent(-31)
		hr := vect.ComplexS32Headroom(x)
		IndexBitReversal(x)
		DitForward(x, &hr, &exp)

		IndexBitReversal(x)
		DitInverse(x, &hr, &exp)

		tol := 64 * math.Ldexp(1, -31)
		for i := range x {
			got := complex(
				math.Ldexp(float64(x[i].Re), int(exp)),
				math.Ldexp(float64(x[i].Im), int(exp)))
			if cmplx.Abs(got-orig[i]) > tol {
				t.Errorf("N=%d sample %d: got %v, want %v", n, i, got, orig[i])
			}
		}
	}
}

func TestSpectraSplitMergeRoundTrip(t *testing.T) {
	r := lcg(19)
	n := 64
	x := randomComplex(&r, n, 1<<28)
	orig := make([]vpu.ComplexS32, n)
	copy(orig, x)

	SpectraSplit(x)
	SpectraMerge(x)

	// Split halves the mantissas with truncating shifts; merge restores the
	// scale exactly up to those dropped bits.
	for i := range x {
		if dRe := x[i].Re - orig[i].Re; dRe < -4 || dRe > 4 {
			t.Errorf("re[%d]: got %d, want %d", i, x[i].Re, orig[i].Re)
		}
		if dIm := x[i].Im - orig[i].Im; dIm < -4 || dIm > 4 {
			t.Errorf("im[%d]: got %d, want %d", i, x[i].Im, orig[i].Im)
		}
	}
}

func TestLength4FastPath(t *testing.T) {
	// A 4-point transform takes only the butterfly pass; check it against
	// the reference DFT exactly like the longer lengths.
	x := []vpu.ComplexS32{
		{Re: 1 << 28, Im: 0},
		{Re: -(1 << 27), Im: 1 << 26},
		{Re: 1 << 25, Im: -(1 << 28)},
		{Re: 0, Im: 1 << 27},
	}
	ref := referenceDFT(toComplex128(x, -31))

	exp := vpu.Exponent(-31)
	hr := vect.ComplexS32Headroom(x)
	IndexBitReversal(x)
	DitForward(x, &hr, &exp)

	tol := 8 * math.Ldexp(1, int(exp))
	for k := range x {
		got := complex(
			math.Ldexp(float64(x[k].Re), int(exp)),
			math.Ldexp(float64(x[k].Im), int(exp)))
		if cmplx.Abs(got-ref[k]) > tol {
			t.Errorf("bin %d: got %v, want %v", k, got, ref[k])
		}
	}
}

func TestMaxLengthExhaustsTwiddles(t *testing.T) {
	// At the maximum length the DIT transform consumes the entire table.
	consumed := 0
	for b := 4; b <= MaxFFTLen/2; b <<= 1 {
		consumed += b
	}
	if consumed != len(ditLUT) {
		t.Errorf("stage sizes sum to %d, table holds %d", consumed, len(ditLUT))
	}

	r := lcg(23)
	x := randomComplex(&r, MaxFFTLen, 1<<27)
	exp := vpu.Exponent(-31)
	hr := vect.ComplexS32Headroom(x)
	IndexBitReversal(x)
	DitForward(x, &hr, &exp) // must not read past the table
}

func TestF32RoundTrip(t *testing.T) {
	r := lcg(29)
	n := 64
	x := make([]float32, n)
	orig := make([]float64, n)
	for i := range x {
		x[i] = float32(r.s32(1<<20)) / (1 << 20)
		orig[i] = float64(x[i])
	}

	X := F32Forward(x)
	got := F32Inverse(X)

	for i := range got {
		if math.Abs(float64(got[i])-orig[i]) > 1e-4 {
			t.Errorf("sample %d: got %g, want %g", i, got[i], orig[i])
		}
	}
}

func TestMonoAdjustRealSpectrum(t *testing.T) {
	// Transforming a real signal through the half-length complex FFT plus
	// MonoAdjust must match the reference DFT of the real signal.
	r := lcg(31)
	n := 64
	re := make([]float64, n)
	x := make([]vpu.ComplexS32, n/2)
	for i := 0; i < n/2; i++ {
		a := r.s32(1 << 28)
		b := r.s32(1 << 28)
		x[i] = vpu.ComplexS32{Re: a, Im: b}
		re[2*i] = math.Ldexp(float64(a), -31)
		re[2*i+1] = math.Ldexp(float64(b), -31)
	}
	full := make([]complex128, n)
	for i, v := range re {
		full[i] = complex(v, 0)
	}
	ref := referenceDFT(full)

	exp := vpu.Exponent(-31)
	hr := vect.ComplexS32Headroom(x)
	IndexBitReversal(x)
	DitForward(x, &hr, &exp)
	MonoAdjust(x, n, false)

	tol := 256 * math.Ldexp(1, int(exp))
	for k := 1; k < n/2; k++ {
		got := complex(
			math.Ldexp(float64(x[k].Re), int(exp)),
			math.Ldexp(float64(x[k].Im), int(exp)))
		if cmplx.Abs(got-ref[k]) > tol {
			t.Errorf("bin %d: got %v, want %v", k, got, ref[k])
		}
	}

	// Packed DC and Nyquist.
	dc := math.Ldexp(float64(x[0].Re), int(exp))
	ny := math.Ldexp(float64(x[0].Im), int(exp))
	if math.Abs(dc-real(ref[0])) > tol {
		t.Errorf("DC: got %g, want %g", dc, real(ref[0]))
	}
	if math.Abs(ny-real(ref[n/2])) > tol {
		t.Errorf("Nyquist: got %g, want %g", ny, real(ref[n/2]))
	}
}
