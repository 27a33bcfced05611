package vpu

import (
	"math"
	"testing"
)

func TestHRS32(t *testing.T) {
	cases := []struct {
		x    int32
		want Headroom
	}{
		{0, 31},
		{-1, 31},
		{1, 30},
		{-2, 30},
		{2, 29},
		{0x3FFFFFFF, 1},
		{0x40000000, 0},
		{0x7FFFFFFF, 0},
		{-0x80000000, 0},
	}
	for _, c := range cases {
		if got := HRS32(c.x); got != c.want {
			t.Errorf("HRS32(%#x): got %d, want %d", c.x, got, c.want)
		}
	}
}

func TestHRS16(t *testing.T) {
	cases := []struct {
		x    int16
		want Headroom
	}{
		{0, 15},
		{-1, 15},
		{1, 14},
		{0x7FFF, 0},
		{-0x8000, 0},
	}
	for _, c := range cases {
		if got := HRS16(c.x); got != c.want {
			t.Errorf("HRS16(%#x): got %d, want %d", c.x, got, c.want)
		}
	}
}

func TestAshrS32Rounding(t *testing.T) {
	cases := []struct {
		x    int32
		shr  int
		want int32
	}{
		{-1, 1, -1}, // negative values shift arithmetically
		{1, 1, 1},   // 0.5 rounds away from zero
		{3, 1, 2},
		{5, 2, 1},
		{6, 2, 2},
		{-3, 1, -2},
		{100, 0, 100},
		{7, 64, 0},
		{-7, 64, -1},
	}
	for _, c := range cases {
		if got := AshrS32(c.x, c.shr); got != c.want {
			t.Errorf("AshrS32(%d, %d): got %d, want %d", c.x, c.shr, got, c.want)
		}
	}
}

func TestAshrS32LeftSaturates(t *testing.T) {
	if got := AshrS32(0x40000000, -2); got != MaxS32 {
		t.Errorf("left shift should saturate high: got %#x", got)
	}
	if got := AshrS32(-0x40000000, -2); got != MinS32 {
		t.Errorf("left shift should saturate low symmetrically: got %#x", got)
	}
	if got := AshrS32(3, -1); got != 6 {
		t.Errorf("small left shift: got %d, want 6", got)
	}
}

func TestSymmetricSaturation(t *testing.T) {
	if got := SatS32(int64(math.MinInt32)); got != MinS32 {
		t.Errorf("SatS32(MinInt32): got %d, want %d", got, MinS32)
	}
	if got := AbsS32(math.MinInt32); got != MaxS32 {
		t.Errorf("AbsS32(MinInt32): got %d, want %d", got, MaxS32)
	}
	if got := AbsS16(math.MinInt16); got != MaxS16 {
		t.Errorf("AbsS16(MinInt16): got %d, want %d", got, MaxS16)
	}
}

func TestBitrev(t *testing.T) {
	// 0x22 reverses to 0x44 over 8 bits and 0x88 over 9 bits.
	if got := Bitrev(0x22, 8); got != 0x44 {
		t.Errorf("Bitrev(0x22, 8): got %#x, want 0x44", got)
	}
	if got := Bitrev(0x22, 9); got != 0x88 {
		t.Errorf("Bitrev(0x22, 9): got %#x, want 0x88", got)
	}
	for i := uint32(0); i < 64; i++ {
		if got := Bitrev(Bitrev(i, 6), 6); got != i {
			t.Errorf("Bitrev is not an involution at %d: %d", i, got)
		}
	}
}

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{{1, 0}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {1024, 10}}
	for _, c := range cases {
		if got := CeilLog2(c.n); got != c.want {
			t.Errorf("CeilLog2(%d): got %d, want %d", c.n, got, c.want)
		}
	}
}

func TestS32Sqrt(t *testing.T) {
	cases := []float64{4.0, 2.0, 1.0, 0.25, 10.0, 1e-6, 123456.0}
	for _, v := range cases {
		f := F64ToFloatS32(v)
		m, e := S32Sqrt(f.Mant, f.Exp, SqrtMaxDepth)
		got := math.Ldexp(float64(m), int(e))
		want := math.Sqrt(v)
		if math.Abs(got-want) > 1e-6*want {
			t.Errorf("S32Sqrt(%g): got %g, want %g", v, got, want)
		}
	}
}

func TestS32Inverse(t *testing.T) {
	for _, b := range []int32{1, 3, 7, 1000, -5, 1 << 20, -(1 << 28)} {
		m, e := S32Inverse(b)
		got := math.Ldexp(float64(m), int(e))
		want := 1.0 / float64(b)
		if math.Abs(got-want) > math.Abs(want)*1e-8 {
			t.Errorf("S32Inverse(%d): got %g, want %g", b, got, want)
		}
	}
}

func TestS32MulScalar(t *testing.T) {
	m, e := S32Mul(1<<30, 1<<30, -30, -30)
	got := math.Ldexp(float64(m), int(e))
	if math.Abs(got-1.0) > 1e-8 {
		t.Errorf("1.0 * 1.0: got %g", got)
	}
}

func TestFloatS32Arithmetic(t *testing.T) {
	vals := []float64{1.5, -2.25, 1e-3, 100.0, -7.5}
	for _, a := range vals {
		for _, b := range vals {
			fa, fb := F64ToFloatS32(a), F64ToFloatS32(b)

			if got := fa.Add(fb).Float64(); math.Abs(got-(a+b)) > 1e-6*(math.Abs(a)+math.Abs(b)) {
				t.Errorf("%g + %g: got %g", a, b, got)
			}
			if got := fa.Sub(fb).Float64(); math.Abs(got-(a-b)) > 1e-6*(math.Abs(a)+math.Abs(b)) {
				t.Errorf("%g - %g: got %g", a, b, got)
			}
			if got := fa.Mul(fb).Float64(); math.Abs(got-a*b) > 1e-6*math.Abs(a*b) {
				t.Errorf("%g * %g: got %g", a, b, got)
			}
			if got := fa.Div(fb).Float64(); math.Abs(got-a/b) > 1e-6*math.Abs(a/b) {
				t.Errorf("%g / %g: got %g", a, b, got)
			}
			if got := fa.Gt(fb); got != (a > b) {
				t.Errorf("%g > %g: got %v", a, b, got)
			}
		}
	}
}

func TestFloatS64Narrowing(t *testing.T) {
	x := FloatS64{Mant: 1 << 40, Exp: -40}
	got := x.ToFloatS32()
	if math.Abs(got.Float64()-1.0) > 1e-9 {
		t.Errorf("narrowing 1.0: got %g", got.Float64())
	}
}

func TestS32ToS16RoundTrip(t *testing.T) {
	m16, e := S32ToS16(0x12345678, 0)
	back := int32(m16) << uint(int(e))
	if diff := int32(0x12345678) - back; diff < 0 || diff >= 1<<uint(int(e)) {
		t.Errorf("S32ToS16: %#x << %d loses more than the shifted bits", m16, e)
	}
	if HRS16(m16) != 0 {
		t.Errorf("S32ToS16 should leave no headroom, got %d", HRS16(m16))
	}
	m32, e32 := S16ToS32(0x1234, 0, true)
	if HRS32(m32) != 0 || math.Ldexp(float64(m32), int(e32)) != float64(0x1234) {
		t.Errorf("S16ToS32 normalized: got %#x exp %d", m32, e32)
	}
}
