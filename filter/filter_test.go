package filter

import (
	"testing"

	"github.com/ajroetker/go-bfp/vpu"
)

func q30(f float64) int32 {
	if f >= 0 {
		return int32(f*(1<<30) + 0.5)
	}
	return -int32(-f*(1<<30) + 0.5)
}

func TestFIRS32ImpulseResponse(t *testing.T) {
	coef := []int32{q30(1.0), q30(0.5), q30(0.25)}
	state := make([]int32, len(coef))
	f := InitFIRS32(state, coef, 0)

	want := []int32{1 << 20, 1 << 19, 1 << 18, 0, 0}
	in := []int32{1 << 20, 0, 0, 0, 0}
	for i := range in {
		if got := f.Run(in[i]); got != want[i] {
			t.Errorf("impulse response[%d]: got %d, want %d", i, got, want[i])
		}
	}
}

func TestFIRS32MovingAverage(t *testing.T) {
	const taps = 8
	coef := make([]int32, taps)
	for i := range coef {
		coef[i] = q30(1.0 / taps)
	}
	state := make([]int32, taps)
	f := InitFIRS32(state, coef, 0)

	var out int32
	for i := 0; i < 4*taps; i++ {
		out = f.Run(1 << 23)
	}
	// After the history fills, the average of a constant is the constant.
	if diff := out - 1<<23; diff < -taps || diff > taps {
		t.Errorf("moving average settled at %d, want about %d", out, 1<<23)
	}
}

func TestFIRS32AddSampleOnly(t *testing.T) {
	coef := []int32{q30(1.0), q30(1.0)}
	state := make([]int32, 2)
	f := InitFIRS32(state, coef, 0)

	f.AddSample(1 << 20)
	if got := f.Run(0); got != 1<<20 {
		t.Errorf("pre-pushed sample at tap 1: got %d, want %d", got, 1<<20)
	}
}

func TestFIRS32FinalShift(t *testing.T) {
	coef := []int32{q30(1.0)}
	state := make([]int32, 1)
	f := InitFIRS32(state, coef, 4)

	if got := f.Run(1 << 20); got != 1<<16 {
		t.Errorf("output shift: got %d, want %d", got, 1<<16)
	}
}

func TestFIRS16(t *testing.T) {
	// Four equal taps summing to 2^15; shift 15 makes it an exact average
	// of four samples scaled by one.
	coef := []int16{8192, 8192, 8192, 8192}
	state := make([]int16, 4)
	f := InitFIRS16(state, coef, 15)

	var out int16
	for i := 0; i < 8; i++ {
		out = f.Run(1000)
	}
	if out != 1000 {
		t.Errorf("constant input: got %d, want 1000", out)
	}
}

func TestBiquadIdentity(t *testing.T) {
	f := InitBiquadS32([]BiquadSectionCoef{{q30(1.0), 0, 0, 0, 0}})
	for _, in := range []int32{1 << 20, -(1 << 21), 12345} {
		if got := f.Run(in); got != in {
			t.Errorf("identity biquad: got %d, want %d", got, in)
		}
	}
}

func TestBiquadOnePoleDecay(t *testing.T) {
	// y[n] = x[n] + 0.5*y[n-1]: an impulse decays by halves, exactly
	// representable at every step.
	f := InitBiquadS32([]BiquadSectionCoef{{q30(1.0), 0, 0, q30(0.5), 0}})

	want := []int32{1 << 20, 1 << 19, 1 << 18, 1 << 17}
	in := []int32{1 << 20, 0, 0, 0}
	for i := range in {
		if got := f.Run(in[i]); got != want[i] {
			t.Errorf("decay[%d]: got %d, want %d", i, got, want[i])
		}
	}
}

func TestBiquadCascadeWithinStruct(t *testing.T) {
	// Two identity sections back to back.
	f := InitBiquadS32([]BiquadSectionCoef{
		{q30(1.0), 0, 0, 0, 0},
		{q30(1.0), 0, 0, 0, 0},
	})
	if got := f.Run(1 << 20); got != 1<<20 {
		t.Errorf("two identity sections: got %d", got)
	}
}

func TestRunBiquadsChain(t *testing.T) {
	a := InitBiquadS32([]BiquadSectionCoef{{q30(0.5), 0, 0, 0, 0}})
	b := InitBiquadS32([]BiquadSectionCoef{{q30(0.5), 0, 0, 0, 0}})
	if got := RunBiquads([]*BiquadS32{a, b}, 1<<20); got != 1<<18 {
		t.Errorf("chained gain 0.25: got %d, want %d", got, 1<<18)
	}
}

func TestFIRS32Saturation(t *testing.T) {
	coef := []int32{q30(1.0), q30(1.0), q30(1.0), q30(1.0)}
	state := make([]int32, 4)
	f := InitFIRS32(state, coef, 0)

	var out int32
	for i := 0; i < 4; i++ {
		out = f.Run(vpu.MaxS32)
	}
	if out != vpu.MaxS32 {
		t.Errorf("overdriven filter must saturate symmetrically, got %d", out)
	}
}
