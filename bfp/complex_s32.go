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

// Headroom recomputes the vector's headroom from its mantissas and stores
// and returns it.
func (a *ComplexS32) Headroom() vpu.Headroom {
	assert(a.Length != 0, "bfp: zero length")
	a.HR = vect.ComplexS32Headroom(a.Data[:a.Length])
	return a.HR
}

// UseExponent renormalizes a in place so its exponent equals exp.
func (a *ComplexS32) UseExponent(exp vpu.Exponent) {
	assert(a.Length != 0, "bfp: zero length")
	delta := vpu.RightShift(exp - a.Exp)
	if delta == 0 {
		return
	}
	a.HR = vect.ComplexS32Shr(a.Data[:a.Length], a.Data[:a.Length], delta)
	a.Exp = exp
}

// Shl left-shifts the mantissas of b by shl bits, saturating.
func (a *ComplexS32) Shl(b *ComplexS32, shl vpu.LeftShift) {
	assert(a.Length == b.Length && b.Length != 0, "bfp: length mismatch")
	a.Length = b.Length
	a.Exp = b.Exp
	a.HR = vect.ComplexS32Shl(a.Data[:b.Length], b.Data[:b.Length], shl)
}

// Add computes a = b + c.
func (a *ComplexS32) Add(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32AddPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32Add(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// AddScalar computes a = b + c.
func (a *ComplexS32) AddScalar(b *ComplexS32, c vpu.FloatComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32AddScalarPrepare(b.Exp, c.Exp, b.HR, vpu.HRC32(c.Mant))
	cc := vpu.ComplexS32{
		Re: vpu.AshrS32(c.Mant.Re, int(cShr)),
		Im: vpu.AshrS32(c.Mant.Im, int(cShr)),
	}
	a.Exp = aExp
	a.HR = vect.ComplexS32AddScalar(a.Data[:b.Length], b.Data[:b.Length], cc, bShr)
}

// Sub computes a = b - c.
func (a *ComplexS32) Sub(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S32SubPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32Sub(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// Mul computes a = b * c element-wise.
func (a *ComplexS32) Mul(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.ComplexS32MulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32Mul(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// ConjMul computes a = b * conj(c) element-wise.
func (a *ComplexS32) ConjMul(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.ComplexS32ConjMulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32ConjMul(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// RealMul computes a = b * c element-wise for a real vector c.
func (a *ComplexS32) RealMul(b *ComplexS32, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.ComplexS32RealMulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32RealMul(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// RealScale computes a = b * c for a real scalar c.
func (a *ComplexS32) RealScale(b *ComplexS32, c vpu.FloatS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.ComplexS32RealMulPrepare(b.Exp, c.Exp, b.HR, vpu.HRS32(c.Mant))
	a.Exp = aExp
	a.HR = vect.ComplexS32RealScale(a.Data[:b.Length], b.Data[:b.Length], c.Mant, bShr, cShr)
}

// Scale computes a = b * c for a complex scalar c.
func (a *ComplexS32) Scale(b *ComplexS32, c vpu.FloatComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.ComplexS32ScalePrepare(b.Exp, c.Exp, b.HR, vpu.HRC32(c.Mant))
	cc := vpu.ComplexS32{
		Re: vpu.AshrS32(c.Mant.Re, int(cShr)),
		Im: vpu.AshrS32(c.Mant.Im, int(cShr)),
	}
	a.Exp = aExp
	a.HR = vect.ComplexS32Scale(a.Data[:b.Length], b.Data[:b.Length], cc, bShr, 0)
}

// Macc accumulates b * c into a.
func (a *ComplexS32) Macc(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.ComplexS32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS32Macc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// Nmacc subtracts b * c from a.
func (a *ComplexS32) Nmacc(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.ComplexS32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS32Nmacc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// ConjMacc accumulates b * conj(c) into a.
func (a *ComplexS32) ConjMacc(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.ComplexS32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS32ConjMacc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// ConjNmacc subtracts b * conj(c) from a.
func (a *ComplexS32) ConjNmacc(b, c *ComplexS32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, bShr, cShr := vect.ComplexS32MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS32ConjNmacc(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], accShr, bShr, cShr)
}

// SquaredMag computes a[k] = |b[k]|^2 into a real vector.
func (a *S32) SquaredMag(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr := vect.ComplexS32SquaredMagPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32SquaredMag(a.Data[:b.Length], b.Data[:b.Length], bShr)
}

// Mag computes a[k] = |b[k]| into a real vector.
func (a *S32) Mag(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr := vect.ComplexS32MagPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS32Mag(a.Data[:b.Length], b.Data[:b.Length], bShr)
}

// Conjugate computes a = conj(b).
func (a *ComplexS32) Conjugate(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.ComplexS32Conjugate(a.Data[:b.Length], b.Data[:b.Length])
}

// Sum returns the sum of b's elements.
func (b *ComplexS32) Sum() vpu.FloatComplexS64 {
	assert(b.Length != 0, "bfp: zero length")
	aExp, bShr := vect.ComplexS32SumPrepare(b.Exp, b.HR, b.Length)
	return vpu.FloatComplexS64{
		Mant: vect.ComplexS32Sum(b.Data[:b.Length], bShr),
		Exp:  aExp,
	}
}

// Energy returns the sum of the squared magnitudes of b's elements.
func (b *ComplexS32) Energy() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	packed := realView(b.Data[:b.Length])
	aExp, bShr := vect.S32EnergyPrepare(b.Exp, b.HR, 2*b.Length)
	return vpu.FloatS64{Mant: vect.S32Energy(packed, bShr), Exp: aExp}
}

// Make assembles a from the real and imaginary vectors b and c.
func (a *ComplexS32) Make(b, c *S32) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 0)
	a.Exp = aExp
	a.HR = vect.ComplexS32Make(a.Data[:b.Length], b.Data[:b.Length], c.Data[:b.Length], bShr, cShr)
}

// RealPart extracts the real parts of b.
func (a *S32) RealPart(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.ComplexS32RealPart(a.Data[:b.Length], b.Data[:b.Length])
}

// ImagPart extracts the imaginary parts of b.
func (a *S32) ImagPart(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.ComplexS32ImagPart(a.Data[:b.Length], b.Data[:b.Length])
}

// FromComplexS16 widens b into a.
func (a *ComplexS32) FromComplexS16(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	a.HR = vect.ComplexS16ToComplexS32(a.Data[:b.Length], b.Real[:b.Length], b.Imag[:b.Length])
}

// FromComplexS32 narrows b into a.
func (a *ComplexS16) FromComplexS32(b *ComplexS32) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	bShr := vpu.RightShift(16 - int(b.HR))
	a.Exp = b.Exp + vpu.Exponent(bShr)
	a.HR = 0
	vect.ComplexS32ToComplexS16(a.Real[:b.Length], a.Imag[:b.Length], b.Data[:b.Length], bShr)
}
