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

package bfp

import (
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// SqrtDepthS32 is the number of square-root result bits computed by
// (*S32).Sqrt.
const SqrtDepthS32 = vpu.SqrtMaxDepth

// Headroom recomputes the vector's headroom from its mantissas and stores
// and returns it.
func (a *S32) Headroom() vpu.Headroom {
	assert(a.Length != 0, "bfp: zero length")
	a.HR = vect.Headroom(a.Data[:a.Length])
	return a.HR
}

// UseExponent renormalizes a in place so its exponent equals exp.
func (a *S32) UseExponent(exp vpu.Exponent) {
	assert(a.Length != 0, "bfp: zero length")
	delta := vpu.RightShift(exp - a.Exp)
	if delta == 0 {
		return
	}
	a.HR = vect.Shr(a.Data[:a.Length], a.Data[:a.Length], delta)
	a.Exp = exp
}

// Shl left-shifts the mantissas of b by shl bits, saturating; the exponent
// is unchanged, so the represented values scale by 2^shl.
func (a *S32) Shl(b *S32, shl vpu.LeftShift) {
	assert(a.Length == b.Length && b.Length != 0, "bfp: length mismatch")
	a.Length = b.Length
	a.Exp = b.Exp
	a.HR = vect.Shl(a.Data[:b.Length], b.Data[:b.Length], shl)
}

// Add computes a = b + c.
func (a *S32) Add(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32AddPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S32Add(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// AddScalar computes a = b + c.
func (a *S32) AddScalar(b *S32, c vpu.FloatS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32AddScalarPrepare(b.Exp, c.Exp, b.HR, vpu.HRS32(c.Mant))
	cc := vpu.AshrS32(c.Mant, int(cShr))
	a.Exp = aExp
	a.HR = vect.S32AddScalar(a.Data[:b.Length], b.Data[:b.Length], cc, bShr)
}

// Sub computes a = b - c.
func (a *S32) Sub(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32SubPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S32Sub(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// Mul computes a = b * c element-wise.
func (a *S32) Mul(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32MulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S32Mul(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// Scale computes a = b * c for a scalar c.
func (a *S32) Scale(b *S32, c vpu.FloatS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32ScalePrepare(b.Exp, c.Exp, b.HR, vpu.HRS32(c.Mant))
	a.Exp = aExp
	a.HR = vect.S32Scale(a.Data[:b.Length], b.Data[:b.Length], c.Mant, bShr, cShr)
}

// Macc accumulates b * c into a.
func (a *S32) Macc(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.S32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.S32Macc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// Nmacc subtracts b * c from a.
func (a *S32) Nmacc(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.S32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.S32Nmacc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// Abs computes a = |b| with symmetric saturation.
func (a *S32) Abs(b *S32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.Abs(a.Data[:b.Length], b.Data[:b.Length])
}

// Rect computes a = max(b, 0).
func (a *S32) Rect(b *S32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.Rect(a.Data[:b.Length], b.Data[:b.Length])
}

// Clip clamps b to [lower, upper] * 2^boundExp.
func (a *S32) Clip(b *S32, lower, upper int32, boundExp vpu.Exponent) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	assert(lower <= upper, "bfp: clip bounds reversed")

	aExp, bShr, lo, hi := vect.S32ClipPrepare(b.Exp, boundExp, b.HR, lower, upper)

	switch {
	case hi == vpu.MinS32:
		// The upper bound is below every element of b.
		a.Exp = boundExp
		a.HR = vpu.HRS32(upper)
		vect.Set(a.Data[:b.Length], upper)
	case lo == vpu.MaxS32:
		// The lower bound is above every element of b.
		a.Exp = boundExp
		a.HR = vpu.HRS32(lower)
		vect.Set(a.Data[:b.Length], lower)
	case lo == hi:
		a.Exp = aExp
		a.HR = vpu.HRS32(hi)
		vect.Set(a.Data[:b.Length], hi)
	default:
		a.Exp = aExp
		a.HR = vect.Clip(a.Data[:b.Length], b.Data[:b.Length], lo, hi, bShr)
	}
}

// Sqrt computes the element-wise square root of b.
func (a *S32) Sqrt(b *S32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr := vect.S32SqrtPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.S32Sqrt(a.Data[:b.Length], b.Data[:b.Length], bShr, SqrtDepthS32)
}

// Inverse computes the element-wise reciprocal of b.
func (a *S32) Inverse(b *S32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, scale := vect.S32InversePrepare(b.Data[:b.Length], b.Exp)
	a.Exp = aExp
	a.HR = vect.S32Inverse(a.Data[:b.Length], b.Data[:b.Length], scale)
}

// Sum returns the sum of b's elements.
func (b *S32) Sum() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS64{Mant: vect.S32Sum(b.Data[:b.Length]), Exp: b.Exp}
}

// AbsSum returns the sum of the absolute values of b's elements.
func (b *S32) AbsSum() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS64{Mant: vect.S32AbsSum(b.Data[:b.Length]), Exp: b.Exp}
}

// Dot returns the inner product of b and c.
func (b *S32) Dot(c *S32) vpu.FloatS64 {
	assert(b.Length == c.Length && b.Length != 0, "bfp: length mismatch")
	var res vpu.FloatS64
	aExp, bShr, cShr := vect.S32DotPrepare(b.Exp, c.Exp, b.HR, c.HR, b.Length)
	res.Exp = aExp
	res.Mant = vect.S32Dot(b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
	return res
}

// Mean returns the arithmetic mean of b's elements.
func (b *S32) Mean() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")

	sum := vect.S32Sum(b.Data[:b.Length])
	hr := vpu.HRS64(sum)
	sum <<= uint(hr)
	mean := sum / int64(b.Length)
	shr := max(0, 32-int(vpu.HRS64(mean)))
	if shr > 0 {
		mean += int64(1) << uint(shr-1)
	}
	return vpu.FloatS32{
		Mant: int32(mean >> uint(shr)),
		Exp:  b.Exp - vpu.Exponent(hr) + vpu.Exponent(shr),
	}
}

// Energy returns the sum of squares of b's elements.
func (b *S32) Energy() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	var res vpu.FloatS64
	aExp, bShr := vect.S32EnergyPrepare(b.Exp, b.HR, b.Length)
	res.Exp = aExp
	res.Mant = vect.S32Energy(b.Data[:b.Length], bShr)
	return res
}

// RMS returns the root of the mean of the squares of b's elements.
func (b *S32) RMS() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")

	energy := b.Energy()
	e32, exp := vpu.S64ToS32(energy.Mant, energy.Exp)
	lenInv, lenInvExp := vpu.S32Inverse(int32(b.Length))
	meanEnergy, meanExp := vpu.S32Mul(e32, lenInv, exp, lenInvExp)

	var res vpu.FloatS32
	res.Mant, res.Exp = vpu.S32Sqrt(meanEnergy, meanExp, SqrtDepthS32)
	return res
}

// Max returns the maximum element of b.
func (b *S32) Max() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: vect.Max(b.Data[:b.Length]), Exp: b.Exp}
}

// Min returns the minimum element of b.
func (b *S32) Min() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: vect.Min(b.Data[:b.Length]), Exp: b.Exp}
}

// ArgMax returns the index of b's maximum element.
func (b *S32) ArgMax() int {
	assert(b.Length != 0, "bfp: zero length")
	return vect.ArgMax(b.Data[:b.Length])
}

// ArgMin returns the index of b's minimum element.
func (b *S32) ArgMin() int {
	assert(b.Length != 0, "bfp: zero length")
	return vect.ArgMin(b.Data[:b.Length])
}

// MaxElementwise computes a[k] = max(b[k], c[k]).
func (a *S32) MaxElementwise(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 1)
	a.Exp = aExp
	a.HR = vect.MaxElementwise(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// MinElementwise computes a[k] = min(b[k], c[k]).
func (a *S32) MinElementwise(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 1)
	a.Exp = aExp
	a.HR = vect.MinElementwise(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// FromS16 widens b into a. The 8-bit mantissa shift keeps the quantization
// noise floor of later 32-bit operations below the 16-bit inputs'.
func (a *S32) FromS16(b *S16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp - 8
	a.HR = vect.S16ToS32(a.Data[:b.Length], b.Data[:b.Length])
}

// FromS32 narrows b into a, dropping mantissa bits below the 16-bit result.
func (a *S16) FromS32(b *S32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	bShr := vpu.RightShift(16 - int(b.HR))
	a.Exp = b.Exp + vpu.Exponent(bShr)
	a.HR = 0
	vect.S32ToS16(a.Data[:b.Length], b.Data[:b.Length], bShr)
}

// ConvolveValid convolves b with a short Q2.30 filter, producing only fully
// overlapped outputs. The tap count must be odd and at most
// vect.MaxConvolveTaps; a.Length must be b.Length - len(filterQ30) + 1.
func (a *S32) ConvolveValid(b *S32, filterQ30 []int32) {
	taps := len(filterQ30)
	assert(b.Length >= taps, "bfp: signal shorter than filter")
	assert(a.Length == b.Length-(taps-1), "bfp: bad output length")
	assert(taps > 0 && taps <= vect.MaxConvolveTaps && taps&1 == 1, "bfp: bad tap count")

	a.HR = vect.S32ConvolveValid(a.Data[:a.Length], b.Data[:b.Length], filterQ30)
	a.Exp = b.Exp
}

// ConvolveSame convolves b with a short Q2.30 filter, padding the signal
// ends according to mode so the output has b's length.
func (a *S32) ConvolveSame(b *S32, filterQ30 []int32, mode vect.PadMode) {
	taps := len(filterQ30)
	assert(b.Length >= taps, "bfp: signal shorter than filter")
	assert(a.Length == b.Length, "bfp: length mismatch")
	assert(taps > 0 && taps <= vect.MaxConvolveTaps && taps&1 == 1, "bfp: bad tap count")

	a.HR = vect.S32ConvolveSame(a.Data[:a.Length], b.Data[:b.Length], filterQ30, mode)
	a.Exp = b.Exp
}
