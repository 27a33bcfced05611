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

// Headroom recomputes the vector's headroom from both parts and stores and
// returns it.
func (a *ComplexS16) Headroom() vpu.Headroom {
	assert(a.Length != 0, "bfp: zero length")
	a.HR = vect.ComplexS16Headroom(a.Real[:a.Length], a.Imag[:a.Length])
	return a.HR
}

// UseExponent renormalizes a in place so its exponent equals exp.
func (a *ComplexS16) UseExponent(exp vpu.Exponent) {
	assert(a.Length != 0, "bfp: zero length")
	delta := vpu.RightShift(exp - a.Exp)
	if delta == 0 {
		return
	}
	a.HR = vect.ComplexS16Shr(a.Real[:a.Length], a.Imag[:a.Length], a.Real[:a.Length], a.Imag[:a.Length], delta)
	a.Exp = exp
}

// Shl left-shifts the mantissas of b by shl bits, saturating.
func (a *ComplexS16) Shl(b *ComplexS16, shl vpu.LeftShift) {
	assert(a.Length == b.Length && b.Length != 0, "bfp: length mismatch")
	a.Length = b.Length
	a.Exp = b.Exp
	a.HR = vect.ComplexS16Shl(a.Real[:b.Length], a.Imag[:b.Length], b.Real[:b.Length], b.Imag[:b.Length], shl)
}

// Add computes a = b + c.
func (a *ComplexS16) Add(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16AddPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16Add(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], bShr, cShr)
}

// AddScalar computes a = b + c.
func (a *ComplexS16) AddScalar(b *ComplexS16, c vpu.FloatComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16AddScalarPrepare(b.Exp, c.Exp, b.HR, vpu.HRC16(c.Mant))
	cc := vpu.ComplexS16{
		Re: vpu.AshrS16(c.Mant.Re, int(cShr)),
		Im: vpu.AshrS16(c.Mant.Im, int(cShr)),
	}
	a.Exp = aExp
	a.HR = vect.ComplexS16AddScalar(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length], cc, bShr)
}

// Sub computes a = b - c.
func (a *ComplexS16) Sub(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.S16SubPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16Sub(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], bShr, cShr)
}

// Mul computes a = b * c element-wise.
func (a *ComplexS16) Mul(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16MulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16Mul(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], sat)
}

// ConjMul computes a = b * conj(c) element-wise.
func (a *ComplexS16) ConjMul(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16MulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16ConjMul(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], sat)
}

// RealMul computes a = b * c element-wise for a real vector c.
func (a *ComplexS16) RealMul(b *ComplexS16, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16RealMulPrepare(b.Exp, c.Exp, b.HR, c.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16RealMul(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Data[:b.Length], sat)
}

// RealScale computes a = b * c for a real scalar c.
func (a *ComplexS16) RealScale(b *ComplexS16, mant int16, exp vpu.Exponent) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16RealMulPrepare(b.Exp, exp, b.HR, vpu.HRS16(mant))
	a.Exp = aExp
	a.HR = vect.ComplexS16RealScale(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length], mant, sat)
}

// Scale computes a = b * c for a complex scalar c.
func (a *ComplexS16) Scale(b *ComplexS16, c vpu.FloatComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16MulPrepare(b.Exp, c.Exp, b.HR, vpu.HRC16(c.Mant))
	a.Exp = aExp
	a.HR = vect.ComplexS16Scale(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length], c.Mant, sat)
}

// Macc accumulates b * c into a.
func (a *ComplexS16) Macc(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.ComplexS16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS16Macc(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], accShr, sat)
}

// Nmacc subtracts b * c from a.
func (a *ComplexS16) Nmacc(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.ComplexS16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS16Nmacc(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], accShr, sat)
}

// ConjMacc accumulates b * conj(c) into a.
func (a *ComplexS16) ConjMacc(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.ComplexS16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS16ConjMacc(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], accShr, sat)
}

// ConjNmacc subtracts b * conj(c) from a.
func (a *ComplexS16) ConjNmacc(b, c *ComplexS16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	newExp, accShr, sat := vect.ComplexS16MaccPrepare(a.Exp, b.Exp, c.Exp, a.HR, b.HR, c.HR)
	a.Exp = newExp
	a.HR = vect.ComplexS16ConjNmacc(
		a.Real[:b.Length], a.Imag[:b.Length],
		b.Real[:b.Length], b.Imag[:b.Length],
		c.Real[:b.Length], c.Imag[:b.Length], accShr, sat)
}

// SquaredMag computes a[k] = |b[k]|^2 into a real vector.
func (a *S16) SquaredMag(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, sat := vect.ComplexS16SquaredMagPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16SquaredMag(a.Data[:b.Length], b.Real[:b.Length], b.Imag[:b.Length], sat)
}

// Mag computes a[k] = |b[k]| into a real vector.
func (a *S16) Mag(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr := vect.ComplexS16MagPrepare(b.Exp, b.HR)
	a.Exp = aExp
	a.HR = vect.ComplexS16Mag(a.Data[:b.Length], b.Real[:b.Length], b.Imag[:b.Length], bShr)
}

// Conjugate computes a = conj(b).
func (a *ComplexS16) Conjugate(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	copy(a.Real[:b.Length], b.Real[:b.Length])
	for i := 0; i < b.Length; i++ {
		a.Imag[i] = vpu.SatS16(-int64(b.Imag[i]))
	}
	a.HR = vect.ComplexS16Headroom(a.Real[:b.Length], a.Imag[:b.Length])
}

// Sum returns the sum of b's elements.
func (b *ComplexS16) Sum() vpu.FloatComplexS32 {
	assert(b.Length != 0, "bfp: zero length")
	return vpu.FloatComplexS32{
		Mant: vect.ComplexS16Sum(b.Real[:b.Length], b.Imag[:b.Length]),
		Exp:  b.Exp,
	}
}

// Energy returns the sum of the squared magnitudes of b's elements.
func (b *ComplexS16) Energy() vpu.FloatS64 {
	assert(b.Length != 0, "bfp: zero length")
	re := vect.S16Dot(b.Real[:b.Length], b.Real[:b.Length])
	im := vect.S16Dot(b.Imag[:b.Length], b.Imag[:b.Length])
	return vpu.FloatS64{Mant: re + im, Exp: 2 * b.Exp}
}

// Make assembles a from the real and imaginary vectors b and c.
func (a *ComplexS16) Make(b, c *S16) {
	assert(b.Length == c.Length && b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	aExp, bShr, cShr := vect.TwoVecPrepare(b.Exp, c.Exp, b.HR, c.HR, 0)
	a.Exp = aExp
	hrRe := vect.Shr(a.Real[:b.Length], b.Data[:b.Length], bShr)
	hrIm := vect.Shr(a.Imag[:b.Length], c.Data[:b.Length], cShr)
	a.HR = min(hrRe, hrIm)
}

// RealPart extracts the real parts of b.
func (a *S16) RealPart(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	copy(a.Data[:b.Length], b.Real[:b.Length])
	a.HR = vect.Headroom(a.Data[:b.Length])
}

// ImagPart extracts the imaginary parts of b.
func (a *S16) ImagPart(b *ComplexS16) {
	assert(b.Length == a.Length && b.Length != 0, "bfp: length mismatch")
	a.Exp = b.Exp
	copy(a.Data[:b.Length], b.Imag[:b.Length])
	a.HR = vect.Headroom(a.Data[:b.Length])
}
