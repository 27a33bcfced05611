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

// Prepare functions for the real kernels. Each derives, from input exponents
// and headrooms alone, the output exponent and operand shifts under which
// the worst-case input mantissas land just inside the symmetric range.

// addSubPrepare chooses the exponent for a sum or difference: the smallest
// exponent at which both operands are representable, plus one carry bit.
func addSubPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	bMin := bExp - vpu.Exponent(bHr)
	cMin := cExp - vpu.Exponent(cHr)
	aExp = max(bMin, cMin) + 1
	return aExp, vpu.RightShift(aExp - bExp), vpu.RightShift(aExp - cExp)
}

// S32AddPrepare derives the output exponent and shifts for S32Add.
func S32AddPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// S32SubPrepare derives the output exponent and shifts for S32Sub.
func S32SubPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// S16AddPrepare derives the output exponent and shifts for S16Add.
func S16AddPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// S16SubPrepare derives the output exponent and shifts for S16Sub.
func S16SubPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// TwoVecPrepare chooses a common exponent for two operands that must be
// compared or combined without a carry bit, keeping at least minHr bits of
// headroom on each shifted operand.
func TwoVecPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom, minHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	bMin := bExp - vpu.Exponent(bHr)
	cMin := cExp - vpu.Exponent(cHr)
	aExp = max(bMin, cMin) + vpu.Exponent(minHr)
	return aExp, vpu.RightShift(aExp - bExp), vpu.RightShift(aExp - cExp)
}

// S32MulPrepare derives the output exponent and shifts for S32Mul. The total
// shift 2 - (b_hr + c_hr) may be negative, in which case the operands are
// left-shifted; the split mirrors the complex multiply so an operand is
// never shifted left past its own headroom.
func S32MulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
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

// S32ScalePrepare derives the output exponent and shifts for S32Scale. The
// scalar's headroom is supplied by the caller.
func S32ScalePrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return S32MulPrepare(bExp, cExp, bHr, cHr)
}

// S16MulPrepare derives the single output shift for S16Mul.
func S16MulPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, sat vpu.RightShift) {
	s := max(0, 16-int(bHr+cHr))
	return bExp + cExp + vpu.Exponent(s), vpu.RightShift(s)
}

// S16ScalePrepare derives the single output shift for S16Scale.
func S16ScalePrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, sat vpu.RightShift) {
	return S16MulPrepare(bExp, cExp, bHr, cHr)
}

// S32MaccPrepare derives the accumulator and operand shifts for S32Macc.
// The product path is normalized to one bit of headroom; the output exponent
// is whichever of the product exponent and the accumulator's one-headroom
// exponent is greater.
func S32MaccPrepare(accExp, bExp, cExp vpu.Exponent, accHr, bHr, cHr vpu.Headroom) (newAccExp vpu.Exponent, accShr, bShr, cShr vpu.RightShift) {
	b := 1 - int(bHr)
	c := 1 - int(cHr)

	pExp := bExp + cExp + vpu.Exponent(b+c+30)
	dExp := accExp - vpu.Exponent(accHr) + 1

	newAccExp = max(pExp, dExp)
	accShr = vpu.RightShift(newAccExp - accExp)

	pShr := int(newAccExp - pExp)
	b += pShr >> 1
	c += pShr - (pShr >> 1)
	return newAccExp, accShr, vpu.RightShift(b), vpu.RightShift(c)
}

// S16MaccPrepare derives the accumulator shift and product shift for
// S16Macc.
func S16MaccPrepare(accExp, bExp, cExp vpu.Exponent, accHr, bHr, cHr vpu.Headroom) (newAccExp vpu.Exponent, accShr, sat vpu.RightShift) {
	bcHr := bHr + cHr
	s := 16 - int(bcHr)

	bcExp := bExp + cExp - vpu.Exponent(bcHr) + 16
	tmpExp := accExp - vpu.Exponent(accHr) + 1

	newAccExp = max(bcExp, tmpExp)
	accShr = vpu.RightShift(newAccExp - accExp)
	s += int(newAccExp - bcExp)
	return newAccExp, accShr, vpu.RightShift(s)
}

// S32AddScalarPrepare derives the output exponent and shifts for
// S32AddScalar; cShr is the shift the caller applies to the scalar mantissa
// before passing it to the kernel.
func S32AddScalarPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// S16AddScalarPrepare derives the output exponent and shifts for
// S16AddScalar.
func S16AddScalarPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	return addSubPrepare(bExp, cExp, bHr, cHr)
}

// S32DotPrepare derives the output exponent and shifts for S32Dot. The total
// shift keeps the worst-case lane partial (length/8 products of
// 2^(32 - total_hr - total_shr)) inside the 40-bit accumulator bound.
func S32DotPrepare(bExp, cExp vpu.Exponent, bHr, cHr vpu.Headroom, length int) (aExp vpu.Exponent, bShr, cShr vpu.RightShift) {
	totalHr := int(bHr + cHr)
	linfo := vpu.CeilLog2(uint32(length))

	totalShr := max(-totalHr, linfo-totalHr-9)

	var b int
	if totalShr >= 0 {
		if bHr <= cHr {
			b = totalShr - (totalShr >> 1)
		} else {
			b = totalShr >> 1
		}
	} else {
		b = max(totalShr, -int(bHr))
	}
	c := totalShr - b

	aExp = bExp + cExp + vpu.Exponent(b+c+30)
	return aExp, vpu.RightShift(b), vpu.RightShift(c)
}

// S32EnergyPrepare derives the output exponent and shift for S32Energy.
func S32EnergyPrepare(bExp vpu.Exponent, bHr vpu.Headroom, length int) (aExp vpu.Exponent, bShr vpu.RightShift) {
	linfo := vpu.CeilLog2(uint32(length))
	s := max(-int(bHr), (linfo-9)/2-int(bHr))
	return 2*(bExp+vpu.Exponent(s)) + 30, vpu.RightShift(s)
}

// S32SumPrepare derives the output exponent and shift for summing a 32-bit
// vector through the 40-bit lanes: 2^ceil(log2 N) terms need the lanes'
// eight spare bits plus the input headroom.
func S32SumPrepare(bExp vpu.Exponent, bHr vpu.Headroom, length int) (aExp vpu.Exponent, bShr vpu.RightShift) {
	accHr := 8 + int(bHr)
	cl2 := vpu.CeilLog2(uint32(length))
	s := max(0, cl2-accHr)
	return bExp + vpu.Exponent(s), vpu.RightShift(s)
}

// S32SqrtPrepare normalizes the input to at most one bit of headroom and an
// even working exponent, and returns the square root's exponent.
func S32SqrtPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, bShr vpu.RightShift) {
	s := 1 - int(bHr)
	e := int(bExp) + s
	if e&1 != 0 {
		s++
		e++
	}
	return vpu.Exponent(e/2 - 15), vpu.RightShift(s)
}

// S16SqrtPrepare is the 16-bit analog of S32SqrtPrepare.
func S16SqrtPrepare(bExp vpu.Exponent, bHr vpu.Headroom) (aExp vpu.Exponent, bShr vpu.RightShift) {
	s := 1 - int(bHr)
	e := int(bExp) + s
	if e&1 != 0 {
		s++
		e++
	}
	return vpu.Exponent(e/2 - 7), vpu.RightShift(s)
}

// S32InversePrepare scans b for its smallest-magnitude element and chooses
// the largest scale whose quotients still fit 32 bits.
func S32InversePrepare(b []int32, bExp vpu.Exponent) (aExp vpu.Exponent, scale int) {
	minAbs := vpu.AbsS32(b[0])
	for _, x := range b[1:] {
		if a := vpu.AbsS32(x); a < minAbs {
			minAbs = a
		}
	}
	hr := vpu.HRS32(minAbs)
	scale = 2*30 - int(hr)
	return -vpu.Exponent(scale) - bExp, scale
}

// S16InversePrepare is the 16-bit analog of S32InversePrepare.
func S16InversePrepare(b []int16, bExp vpu.Exponent) (aExp vpu.Exponent, scale int) {
	minAbs := vpu.AbsS16(b[0])
	for _, x := range b[1:] {
		if a := vpu.AbsS16(x); a < minAbs {
			minAbs = a
		}
	}
	hr := vpu.HRS16(minAbs)
	scale = 2*14 - int(hr)
	return -vpu.Exponent(scale) - bExp, scale
}

// S32ClipPrepare chooses the output exponent for Clip and re-expresses the
// bounds at that exponent. A bound that saturates while shifting pins to the
// symmetric limit; the wrapper detects the pinned cases.
func S32ClipPrepare(bExp, boundExp vpu.Exponent, bHr vpu.Headroom, lower, upper int32) (aExp vpu.Exponent, bShr vpu.RightShift, lo, hi int32) {
	boundHr := min(vpu.HRS32(lower), vpu.HRS32(upper))
	bMin := bExp - vpu.Exponent(bHr)
	boundMin := boundExp - vpu.Exponent(boundHr)
	aExp = max(bMin, boundMin)
	bShr = vpu.RightShift(aExp - bExp)

	boundShr := int(aExp - boundExp)
	lo = vpu.AshrS32(lower, boundShr)
	hi = vpu.AshrS32(upper, boundShr)
	return aExp, bShr, lo, hi
}

// S16ClipPrepare is the 16-bit analog of S32ClipPrepare.
func S16ClipPrepare(bExp, boundExp vpu.Exponent, bHr vpu.Headroom, lower, upper int16) (aExp vpu.Exponent, bShr vpu.RightShift, lo, hi int16) {
	boundHr := min(vpu.HRS16(lower), vpu.HRS16(upper))
	bMin := bExp - vpu.Exponent(bHr)
	boundMin := boundExp - vpu.Exponent(boundHr)
	aExp = max(bMin, boundMin)
	bShr = vpu.RightShift(aExp - bExp)

	boundShr := int(aExp - boundExp)
	lo = vpu.AshrS16(lower, boundShr)
	hi = vpu.AshrS16(upper, boundShr)
	return aExp, bShr, lo, hi
}
