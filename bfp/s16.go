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

// SqrtDepthS16 is the number of square-root result bits computed by
// (*S16).Sqrt.
const SqrtDepthS16 = 15

// Headroom recomputes the vector's headroom from its mantissas and stores
// and returns it.
func (a *S16) Headroom() vpu.Headroom {
	assert(a.Length != 0, "bfp: zero length")
	a.HR = vect.Headroom(a.Data[:a.Length])
	return a.HR
}

// UseExponent renormalizes a in place so its exponent equals exp.
func (a *S16) UseExponent(exp vpu.Exponent) {
	assert(a.Length != 0, "bfp: zero length")
	delta := vpu.RightShift(exp - a.Exp)
	if delta == 0 {
		return
	}
	a.HR = vect.Shr(a.Data[:a.Length], a.Data[:a.Length], delta)
	a.Exp = exp
}

// Shl left-shifts the mantissas of b by shl bits, saturating.
func (a *S16) Shl(b *S16, shl vpu.LeftShift) {
	assert(a.Length == b.Length && b.Length != 0, "bfp: length mismatch")
	a.Length = b.Length
	a.Exp = b.Exp
	a.HR = vect.Shl(a.Data[:b.Length], b.Data[:b.Length], shl)
}

// Add computes a = b + c.
func (a *S16) Add(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16AddPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S16Add(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// AddScalar computes a = b + c. The scalar is supplied as a 16-bit mantissa
// with its own exponent.
func (a *S16) AddScalar(b *S16, mant int16, exp vpu.Exponent) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16AddScalarPrepare(b.Exp, exp, b.HR, vpu.HRS16(mant))
	cc := vpu.AshrS16(mant, int(cShr))
	a.Exp = aExp
	a.HR = vect.S16AddScalar(a.Data[:b.Length], b.Data[:b.Length], cc, bShr)
}

// Sub computes a = b - c.
func (a *S16) Sub(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16SubPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S16Sub(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// Mul computes a = b * c element-wise.
func (a *S16) Mul(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.S16MulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.S16Mul(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], sat)
}

// Scale computes a = b * c for a scalar c.
func (a *S16) Scale(b *S16, mant int16, exp vpu.Exponent) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.S16ScalePrepare(b.Exp, exp, b.HR, vpu.HRS16(mant))
	a.Exp = aExp
	a.HR = vect.S16Scale(a.Data[:b.Length], b.Data[:b.Length], mant, sat)
}

// Macc accumulates b * c into a.
func (a *S16) Macc(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.S16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.S16Macc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, sat)
}

// Nmacc subtracts b * c from a.
func (a *S16) Nmacc(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.S16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.S16Nmacc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, sat)
}

// Abs computes a = |b| with symmetric saturation.
func (a *S16) Abs(b *S16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.Abs(a.Data[:b.Length], b.Data[:b.Length])
}

// Rect computes a = max(b, 0).
func (a *S16) Rect(b *S16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.Rect(a.Data[:b.Length], b.Data[:b.Length])
}

// Clip clamps b to [lower, upper] * 2^boundExp.
func (a *S16) Clip(b *S16, lower, upper int16, boundExp vpu.Exponent) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	assert(lower <= upper, "bfp: clip bounds reversed")

	aExp, bShr, lo, hi := vect.S16ClipPrepare(b.Exp, boundExp, b.HR, lower, upper)

	switch {
	case hi == vpu.MinS16:
		a.Exp = boundExp
		a.HR = vpu.HRS16(upper)
		vect.Set(a.Data[:b.Length], upper)
	case lo == vpu.MaxS16:
		a.Exp = boundExp
		a.HR = vpu.HRS16(lower)
		vect.Set(a.Data[:b.Length], lower)
	case lo == hi:
		a.Exp = aExp
		a.HR = vpu.HRS16(hi)
		vect.Set(a.Data[:b.Length], hi)
	default:
		a.Exp = aExp
		a.HR = vect.Clip(a.Data[:b.Length], b.Data[:b.Length], lo, hi, bShr)
	}
}

// Sqrt computes the element-wise square root of b.
func (a *S16) Sqrt(b *S16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr := vect.S16SqrtPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.S16Sqrt(a.Data[:b.Length], b.Data[:b.Length], bShr, SqrtDepthS16)
}

// Inverse computes the element-wise reciprocal of b.
func (a *S16) Inverse(b *S16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, scale := vect.S16InversePrepare(b.Data[:b.Length], b.Exp)
	a.Exp = aExp
	a.HR = vect.S16Inverse(a.Data[:b.Length], b.Data[:b.Length], scale)
}

// Sum returns the sum of b's elements.
func (b *S16) Sum() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: vect.S16Sum(b.Data[:b.Length]), Exp: b.Exp}
}

// AbsSum returns the sum of the absolute values of b's elements.
func (b *S16) AbsSum() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: vect.S16AbsSum(b.Data[:b.Length]), Exp: b.Exp}
}

// Dot returns the inner product of b and c.
func (b *S16) Dot(c *S16) vpu.FloatS64 {
	assert(b.Length == c.Length && b.Length != 0, "bfp: length mismatch")
	return vpu.FloatS64{
		Mant: vect.S16Dot(b.Data[:b.Length], c.Data[:b.Length]),
		Exp:  b.Exp + c.Exp,
	}
}

// Mean returns the arithmetic mean of b's elements.
func (b *S16) Mean() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")

	sum := int64(vect.S16Sum(b.Data[:b.Length]))
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
func (b *S16) Energy() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS64{
		Mant: vect.S16Dot(b.Data[:b.Length], b.Data[:b.Length]),
		Exp:  2 * b.Exp,
	}
}

// RMS returns the root of the mean of the squares of b's elements.
func (b *S16) RMS() vpu.FloatS32 {
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
func (b *S16) Max() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: int32(vect.Max(b.Data[:b.Length])), Exp: b.Exp}
}

// Min returns the minimum element of b.
func (b *S16) Min() vpu.FloatS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatS32{Mant: int32(vect.Min(b.Data[:b.Length])), Exp: b.Exp}
}

// ArgMax returns the index of b's maximum element.
func (b *S16) ArgMax() int {
	assert(b.Length != 0, "bfp: zero length")
	return vect.ArgMax(b.Data[:b.Length])
}

// ArgMin returns the index of b's minimum element.
func (b *S16) ArgMin() int {
	assert(b.Length != 0, "bfp: zero length")
	return vect.ArgMin(b.Data[:b.Length])
}

// MaxElementwise computes a[k] = max(b[k], c[k]).
func (a *S16) MaxElementwise(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 1)
	a.Exp = aExp
	a.HR = vect.MaxElementwise(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// MinElementwise computes a[k] = min(b[k], c[k]).
func (a *S16) MinElementwise(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 1)
	a.Exp = aExp
	a.HR = vect.MinElementwise(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// Accumulate adds b into the split accumulators, which carry the exponent
// accExp. Returns the updated control word; saturation is possible when the
// accumulators run out of headroom, so callers monitor ctrl.Headroom and
// re-scale as needed.
func (b *S16) Accumulate(accs []vect.SplitAccS32, accExp vpu.Exponent, ctrl vect.CtrlWord) vect.CtrlWord {
	assert(b.Length != 0, "bfp: zero length")
	bShr := vpu.RightShift(accExp - b.Exp)
	return vect.S16Accumulate(accs, b.Data[:b.Length], bShr, ctrl)
}
