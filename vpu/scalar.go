// Copyright 2025 go-bfp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vpu

import "math"

// Scalar mantissa/exponent helpers. Each returns a result mantissa along
// with the exponent that makes mant * 2^exp the represented value.

// S64ToS32 narrows a 64-bit mantissa to 32 bits, adjusting the exponent.
func S64ToS32(b int64, bExp Exponent) (int32, Exponent) {
	shr := max(0, 32-int(HRS64(b)))
	return int32(b >> uint(shr)), bExp + Exponent(shr)
}

// S32ToS16 narrows a 32-bit mantissa to 16 bits, adjusting the exponent.
func S32ToS16(b int32, bExp Exponent) (int16, Exponent) {
	shr := max(0, 16-int(HRS32(b)))
	return int16(b >> uint(shr)), bExp + Exponent(shr)
}

// S16ToS32 widens a 16-bit mantissa to 32 bits. When removeHR is true the
// result is left-normalized so the new mantissa has no headroom.
func S16ToS32(b int16, bExp Exponent, removeHR bool) (int32, Exponent) {
	shl := 0
	if removeHR {
		shl = 16 + int(HRS16(b))
	}
	return int32(b) << uint(shl), bExp - Exponent(shl)
}

// S16Mul multiplies two 16-bit mantissas, choosing the output exponent that
// keeps the result in range with minimal headroom.
func S16Mul(b, c int16, bExp, cExp Exponent) (int16, Exponent) {
	sat := max(0, 16-int(HRS16(b)+HRS16(c)))
	p := int64(b) * int64(c)
	return SatRoundShrS16(p, sat), bExp + cExp + Exponent(sat)
}

// S32Mul multiplies two 32-bit mantissas, choosing the output exponent that
// keeps the result in range with minimal headroom.
func S32Mul(b, c int32, bExp, cExp Exponent) (int32, Exponent) {
	bShr := 1 - int(HRS32(b))
	cShr := 1 - int(HRS32(c))
	bb := AshrS32(b, bShr)
	cc := AshrS32(c, cShr)
	p := RoundShr(int64(bb)*int64(cc), 30)
	return SatS32(p), bExp + cExp + Exponent(bShr+cShr+30)
}

// S16Inverse computes 2^scale / b with scale chosen to maximize precision.
func S16Inverse(b int16) (int16, Exponent) {
	scale := 2*14 - int(HRS16(b))
	dividend := int32(1) << uint(scale)
	return int16(dividend / int32(b)), Exponent(-scale)
}

// S32Inverse computes 2^scale / b with scale chosen to maximize precision.
func S32Inverse(b int32) (int32, Exponent) {
	scale := 2*30 - int(HRS32(b))
	dividend := int64(1) << uint(scale)
	return int32(dividend / int64(b)), Exponent(-scale)
}

// SqrtMaxDepth is the number of result bits computed by S32Sqrt when full
// precision is requested.
const SqrtMaxDepth = 31

// S32Sqrt computes the square root of b * 2^bExp by restoring binary square
// root, producing up to depth bits of the 31-bit result mantissa. Inputs
// must be non-negative; depth values outside [1, SqrtMaxDepth] are clamped.
func S32Sqrt(b int32, bExp Exponent, depth int) (int32, Exponent) {
	if b <= 0 {
		return 0, bExp
	}
	if depth < 1 {
		depth = 1
	}
	if depth > SqrtMaxDepth {
		depth = SqrtMaxDepth
	}

	// Normalize so the working exponent is even and the mantissa keeps at
	// most one bit of headroom.
	shl := int(HRS32(b)) - 1
	e := int(bExp) - shl
	if e&1 != 0 {
		shl--
		e++
	}
	var m int64
	if shl >= 0 {
		m = int64(b) << uint(shl)
	} else {
		m = int64(b) >> uint(-shl)
	}

	x := uint64(m) << 30
	var y uint64
	for bit := 30; bit > 30-depth; bit-- {
		t := y | (1 << uint(bit))
		if t*t <= x {
			y = t
		}
	}
	return int32(y), Exponent(e/2 - 15)
}

// F32Unpack splits a float32 into a 32-bit mantissa and exponent.
func F32Unpack(x float32) (int32, Exponent) {
	f, e := math.Frexp(float64(x))
	return int32(math.Round(float64(math.MaxInt32) * f)), Exponent(e - 31)
}

// F32UnpackS16 splits a float32 into a 16-bit mantissa and exponent.
func F32UnpackS16(x float32) (int16, Exponent) {
	m32, e := F32Unpack(x)
	return S32ToS16(m32, e)
}

// F64ToFloatS32 converts a float64 to its FloatS32 representation.
func F64ToFloatS32(x float64) FloatS32 {
	f, e := math.Frexp(x)
	return FloatS32{Mant: int32(math.Round(float64(math.MaxInt32) * f)), Exp: Exponent(e - 31)}
}
