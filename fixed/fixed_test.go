package fixed

import (
	"math"
	"testing"

	"github.com/ajroetker/go-bfp/vpu"
)

func TestQConversions(t *testing.T) {
	if got := Q30(1.0); got != 1<<30 {
		t.Errorf("Q30(1.0): got %#x", got)
	}
	if got := Q24(1.2); got != 20132659 {
		t.Errorf("Q24(1.2): got %d, want 20132659", got)
	}
	if got := Q31(-0.5); got != -(1 << 30) {
		t.Errorf("Q31(-0.5): got %d", got)
	}
	if got := F24(Q24(3.25)); math.Abs(got-3.25) > 1e-6 {
		t.Errorf("F24/Q24 round trip: got %g", got)
	}
	if got := F30(Q30(-1.75)); math.Abs(got+1.75) > 1e-8 {
		t.Errorf("F30/Q30 round trip: got %g", got)
	}
}

func TestQ24SinSweep(t *testing.T) {
	// Full Q8.24 range; spec-level bound of 10000 ULP at Q2.30.
	var worst int64
	for theta := int64(math.MinInt32); theta <= math.MaxInt32; theta += 1 << 16 {
		got := int64(Q24Sin(int32(theta)))
		want := int64(Q30(math.Sin(float64(theta) / (1 << 24))))
		d := got - want
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
		if d > 10000 {
			t.Fatalf("sin(%d * 2^-24): got %d, want %d (diff %d)", theta, got, want, d)
		}
	}
	t.Logf("worst sin error: %d ULP at Q2.30", worst)
}

func TestQ24CosSweep(t *testing.T) {
	for theta := int64(math.MinInt32); theta <= math.MaxInt32; theta += 1 << 16 {
		got := int64(Q24Cos(int32(theta)))
		want := int64(Q30(math.Cos(float64(theta) / (1 << 24))))
		d := got - want
		if d < 0 {
			d = -d
		}
		if d > 10000 {
			t.Fatalf("cos(%d * 2^-24): got %d, want %d (diff %d)", theta, got, want, d)
		}
	}
}

func TestQ24Tan(t *testing.T) {
	for theta := -1.2; theta <= 1.2; theta += 0.003 {
		q := Q24(theta)
		res := Q24Tan(q)
		got := res.Float64()
		want := math.Tan(float64(q) / (1 << 24))
		tol := 1e-4 * (1 + want*want)
		if math.Abs(got-want) > tol {
			t.Errorf("tan(%g): got %g, want %g", theta, got, want)
		}
	}
}

func TestSbradSinEndpoints(t *testing.T) {
	if got := SbradSin(0); got != 0 {
		t.Errorf("sin(0): got %d", got)
	}
	// sbrad 1.0 (saturated) is pi/2.
	got := SbradSin(vpu.MaxS32)
	if d := got - (1 << 30); d < -16 || d > 16 {
		t.Errorf("sin(pi/2): got %d, want about %d", got, 1<<30)
	}
	// Odd symmetry up to the truncating final shift.
	if d := SbradSin(1<<29) + SbradSin(-(1<<29)); d < -1 || d > 1 {
		t.Errorf("sin must be odd, residual %d", d)
	}
}

func TestFloatS32Exp(t *testing.T) {
	for x := -20.0; x <= 20.0; x += 0.37 {
		in := vpu.F64ToFloatS32(x)
		got := FloatS32Exp(in).Float64()
		want := math.Exp(in.Float64())
		if math.Abs(got-want) > 1e-5*want {
			t.Errorf("exp(%g): got %g, want %g", x, got, want)
		}
	}
}

func TestQ30ExpSmallChunk(t *testing.T) {
	in := make([]int32, ChunkSize)
	out := make([]int32, ChunkSize)
	xs := []float64{-0.5, -0.3, -0.1, 0, 0.1, 0.25, 0.4, 0.5}
	for i, x := range xs {
		in[i] = Q30(x)
	}
	ChunkQ30ExpSmall(out, in)
	for i, x := range xs {
		got := F30(out[i])
		if math.Abs(got-math.Exp(x)) > 1e-7 {
			t.Errorf("exp(%g): got %g", x, got)
		}
	}
}

func TestLogFamilies(t *testing.T) {
	mants := []int32{1 << 20, 3 << 20, 1 << 28, 0x7FFFFFFF, 12345}
	exp := vpu.Exponent(-24)

	out := make([]int32, len(mants))
	S32Log(out, mants, exp)
	for i, m := range mants {
		want := math.Log(math.Ldexp(float64(m), int(exp)))
		if got := F24(out[i]); math.Abs(got-want) > 1e-4 {
			t.Errorf("ln(%d * 2^%d): got %g, want %g", m, exp, got, want)
		}
	}

	S32Log2(out, mants, exp)
	for i, m := range mants {
		want := math.Log2(math.Ldexp(float64(m), int(exp)))
		if got := F24(out[i]); math.Abs(got-want) > 1e-4 {
			t.Errorf("log2: got %g, want %g", got, want)
		}
	}

	S32Log10(out, mants, exp)
	for i, m := range mants {
		want := math.Log10(math.Ldexp(float64(m), int(exp)))
		if got := F24(out[i]); math.Abs(got-want) > 1e-4 {
			t.Errorf("log10: got %g, want %g", got, want)
		}
	}
}

func TestFloatS32Log(t *testing.T) {
	vals := []float64{0.001, 0.5, 1, 2.5, 1000, 1e6}
	in := make([]vpu.FloatS32, len(vals))
	for i, v := range vals {
		in[i] = vpu.F64ToFloatS32(v)
	}
	out := make([]int32, len(vals))
	FloatS32Log(out, in)
	for i, v := range vals {
		if got := F24(out[i]); math.Abs(got-math.Log(v)) > 1e-4 {
			t.Errorf("ln(%g): got %g, want %g", v, got, math.Log(v))
		}
	}
}

func TestQ24Logistic(t *testing.T) {
	for x := -8.0; x <= 8.0; x += 0.01 {
		q := Q24(x)
		got := F24(Q24Logistic(q))
		want := 1 / (1 + math.Exp(-float64(q)/(1<<24)))
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("logistic(%g): got %g, want %g", x, got, want)
		}
	}
}

func TestLogisticSymmetry(t *testing.T) {
	for _, x := range []int32{Q24(0.5), Q24(1.0), Q24(2.0), Q24(5.0)} {
		p := Q24Logistic(x)
		n := Q24Logistic(-x)
		if d := int64(p) + int64(n) - int64(Q24(1.0)); d < -4 || d > 4 {
			t.Errorf("logistic(%d) + logistic(-%d) != 1: off by %d", x, x, d)
		}
	}
}

func TestS32OddPowers(t *testing.T) {
	var out [4]int32
	S32OddPowers(out[:], Q24(0.5), 4, 24)
	want := []float64{0.5, 0.125, 0.03125, 0.0078125}
	for i, w := range want {
		if got := F24(out[i]); math.Abs(got-w) > 1e-6 {
			t.Errorf("odd power %d: got %g, want %g", i, got, w)
		}
	}
}

func TestChunkS32Dot(t *testing.T) {
	b := []int32{Q24(1.0), Q24(2.0), 0, 0, 0, 0, 0, 0}
	c := []int32{Q30(0.5), Q30(0.25), 0, 0, 0, 0, 0, 0}
	got := F24(ChunkS32Dot(b, c))
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("chunk dot: got %g, want 1.0", got)
	}
}
