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

package vect

import "github.com/ajroetker/go-bfp/vpu"

// Prepare functions for the complex kernels. The complex products need one
// extra shift bit relative to their real counterparts because the real and
// imaginary parts are each a sum of two products.

// ComplexS16MulPrepare derives the output shift for ComplexS16Mul. With both
// operands at the most negative mantissa, the imaginary part reaches
// 2^(31 - total_hr), so the product shift is 16 - total_hr.
func ComplexS16MulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, sat vpu.RightShift) {
	s := max(0, 16-int(bHr+cHr))
	return bExp + cExp + vpu.Exponent(s), vpu.RightShift(s)
}

// ComplexS16RealMulPrepare derives the output shift for ComplexS16RealMul.
// Only a single product feeds each part, so one less bit is reserved.
func ComplexS16RealMulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, sat vpu.RightShift) {
	s := max(0, 15-int(bHr+cHr))
	return bExp + cExp + vpu.Exponent(s), vpu.RightShift(s)
}

// ComplexS16SquaredMagPrepare derives the output shift for
// ComplexS16SquaredMag: the worst case re = im = -2^15 >> b_hr must land on
// the 16-bit bound, giving sat = 16 - 2*b_hr.
func ComplexS16SquaredMagPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, sat vpu.RightShift) {
	s := max(0, 16-2*int(bHr))
	return 2*bExp + vpu.Exponent(s), vpu.RightShift(s)
}

// ComplexS16MagPrepare normalizes the input to one bit of headroom; the
// magnitude of the shifted mantissas carries the shifted exponent directly.
func ComplexS16MagPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, bShr vpu.RightShift) {
	s := 1 - int(bHr)
	return bExp + vpu.Exponent(s), vpu.RightShift(s)
}

// ComplexS16MaccPrepare derives the shifts for ComplexS16Macc. Compared to
// S16MaccPrepare the product shift reserves one extra bit for the complex
// cross-term sum.
func ComplexS16MaccPrepare(accExp, bExp, cExp vpu.Exponent, accHr, bHr, cHr vpu.Headroom) (newAccExp vpu.Exponent, accShr, sat vpu.RightShift) {
	bcHr := bHr + cHr
	s := 17 - int(bcHr)

	bcExp := bExp + cExp - vpu.Exponent(bcHr) + 17
	tmpExp := accExp - vpu.Exponent(accHr) + 1

	newAccExp = max(bcExp, tmpExp)
	accShr = vpu.RightShift(newAccExp - accExp)
	s += int(newAccExp - bcExp)
	return newAccExp, accShr, vpu.RightShift(s)
}

// ComplexS32MulPrepare derives the output exponent and shifts for
// ComplexS32Mul. The worst case imaginary part is 2^(33 - total_hr -
// total_shr - 30 + 30); landing it on 2^31 requires a total shift of
// 2 - total_hr.
func ComplexS32MulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	totalHr := bHr + cHr
	totalShr := 2 - int(totalHr)

	var b int
	if totalShr < 0 {
		b = max(totalShr, -int(bHr))
	} else if bHr <= cHr {
		b = totalShr - (totalShr >> 1)
	} else {
		b = totalShr >> 1
	}
	c := totalShr - b

	aExp = bExp + cExp + vpu.Exponent(b+c+30)
	return aExp, vpu.RightShift(b), vpu.RightShift(c)
}

// ComplexS32ConjMulPrepare matches ComplexS32MulPrepare; conjugation does
// not change the worst case.
func ComplexS32ConjMulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return ComplexS32MulPrepare(bExp, cExp, bHr, cHr)
}

// ComplexS32RealMulPrepare derives the output exponent and shifts for
// ComplexS32RealMul. The headroom is stripped from both operands and a
// single remaining bit is spent on whichever operand can absorb it without
// loss.
func ComplexS32RealMulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	remaining := 1

	b := -int(bHr)
	c := -int(cHr)

	if bHr > 0 {
		b++
		remaining--
	}
	c += remaining

	aExp = bExp + cExp + vpu.Exponent(b+c+30)
	return aExp, vpu.RightShift(b), vpu.RightShift(c)
}

// ComplexS32ScalePrepare derives the output exponent and shifts for
// ComplexS32Scale. The vector absorbs the whole shift unless that would
// exceed its headroom, in which case the rest falls on the scalar.
func ComplexS32ScalePrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	totalHr := bHr + cHr
	b := 2 - int(totalHr)
	c := 0

	if b < -int(bHr) {
		c = b + int(bHr)
		b = -int(bHr)
	}

	aExp = bExp + cExp + 30 + vpu.Exponent(b+c)
	return aExp, vpu.RightShift(b), vpu.RightShift(c)
}

// ComplexS32SquaredMagPrepare derives the shift for ComplexS32SquaredMag:
// b_shr = 1 - b_hr lands the worst case re = im = -2^31 >> b_hr on the
// 32-bit bound.
func ComplexS32SquaredMagPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, bShr vpu.RightShift) {
	s := 1 - int(bHr)
	return 2*(bExp+vpu.Exponent(s)) + 30, vpu.RightShift(s)
}

// ComplexS32MagPrepare leaves one bit of headroom so mantissas near
// (1 + j) * MAX can rotate onto the real axis without leaving the range.
func ComplexS32MagPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, bShr vpu.RightShift) {
	s := 1 - int(bHr)
	return bExp + vpu.Exponent(s), vpu.RightShift(s)
}

// ComplexS32MaccPrepare derives the shifts for ComplexS32Macc. The product
// path keeps one bit of headroom for the accumulate; the b operand takes one
// shift bit and the c operand two.
func ComplexS32MaccPrepare(accExp, bExp, cExp vpu.Exponent, accHr, bHr, cHr vpu.Headroom) (newAccExp vpu.Exponent, accShr, bShr, cShr vpu.RightShift) {
	b := 1 - int(bHr)
	c := 2 - int(cHr)

	pExp := bExp + cExp - vpu.Exponent(bHr+cHr) + 33
	dExp := accExp - vpu.Exponent(accHr) + 1

	newAccExp = max(pExp, dExp)
	accShr = vpu.RightShift(newAccExp - accExp)

	pShr := int(newAccExp - pExp)
	b += pShr >> 1
	c += pShr - (pShr >> 1)
	return newAccExp, accShr, vpu.RightShift(b), vpu.RightShift(c)
}

// ComplexS32SumPrepare derives the shift for ComplexS32Sum: summing 2^N
// elements needs N bits of headroom in the 40-bit accumulator, of which
// 8 + b_hr are already available.
func ComplexS32SumPrepare(bExp vpu.Exponent, bHr vpu.Headroom, length int) (aExp vpu.Exponent, bShr vpu.RightShift) {
	accHr := 8 + int(bHr)
	cl2 := vpu.CeilLog2(uint32(length))
	s := max(0, cl2-accHr)
	return bExp + vpu.Exponent(s), vpu.RightShift(s)
}
