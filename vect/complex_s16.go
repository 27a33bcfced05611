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

// Complex 16-bit kernels. The real and imaginary parts live in separate
// buffers, so the element-wise operations delegate to the real 16-bit
// kernels part by part where they can and take the minimum headroom.

// ComplexS16Headroom returns the minimum headroom across both parts.
func ComplexS16Headroom(bRe, bIm []int16) vpu.Headroom {
	return min(Headroom(bRe), Headroom(bIm))
}

// ComplexS16Set fills both parts with the given value.
func ComplexS16Set(aRe, aIm []int16, re, im int16) {
	Set(aRe, re)
	Set(aIm, im)
}

// ComplexS16Shr shifts both parts right by shr bits and returns the headroom
// of the result.
func ComplexS16Shr(aRe, aIm, bRe, bIm []int16, shr vpu.RightShift) vpu.Headroom {
	hrRe := Shr(aRe, bRe, shr)
	hrIm := Shr(aIm, bIm, shr)
	return min(hrRe, hrIm)
}

// ComplexS16Shl shifts both parts left by shl bits with saturation and
// returns the headroom of the result.
func ComplexS16Shl(aRe, aIm, bRe, bIm []int16, shl vpu.LeftShift) vpu.Headroom {
	return ComplexS16Shr(aRe, aIm, bRe, bIm, vpu.RightShift(-shl))
}

// ComplexS16Add adds the shifted operands and returns the headroom of the
// result.
func ComplexS16Add(aRe, aIm, bRe, bIm, cRe, cIm []int16, bShr, cShr vpu.RightShift) vpu.Headroom {
	hrRe := S16Add(aRe, bRe, cRe, bShr, cShr)
	hrIm := S16Add(aIm, bIm, cIm, bShr, cShr)
	return min(hrRe, hrIm)
}

// ComplexS16Sub subtracts the shifted operands and returns the headroom of
// the result.
func ComplexS16Sub(aRe, aIm, bRe, bIm, cRe, cIm []int16, bShr, cShr vpu.RightShift) vpu.Headroom {
	hrRe := S16Sub(aRe, bRe, cRe, bShr, cShr)
	hrIm := S16Sub(aIm, bIm, cIm, bShr, cShr)
	return min(hrRe, hrIm)
}

// ComplexS16AddScalar computes a[k] = (b[k] >> bShr) + c and returns the
// headroom of the result.
func ComplexS16AddScalar(aRe, aIm, bRe, bIm []int16, c vpu.ComplexS16, bShr vpu.RightShift) vpu.Headroom {
	hrRe := S16AddScalar(aRe, bRe, c.Re, bShr)
	hrIm := S16AddScalar(aIm, bIm, c.Im, bShr)
	return min(hrRe, hrIm)
}

func cmul16Parts(bRe, bIm, cRe, cIm int16, sat int, conj bool) (int16, int16) {
	reRe := int64(bRe) * int64(cRe)
	imIm := int64(bIm) * int64(cIm)
	reIm := int64(bRe) * int64(cIm)
	imRe := int64(bIm) * int64(cRe)
	if conj {
		return vpu.SatRoundShrS16(reRe+imIm, sat), vpu.SatRoundShrS16(imRe-reIm, sat)
	}
	return vpu.SatRoundShrS16(reRe-imIm, sat), vpu.SatRoundShrS16(reIm+imRe, sat)
}

// ComplexS16Mul multiplies the operands element-wise, shifting the 32-bit
// products down sat bits, and returns the headroom of the result.
func ComplexS16Mul(aRe, aIm, bRe, bIm, cRe, cIm []int16, sat vpu.RightShift) vpu.Headroom {
	for i := range bRe {
		re, im := cmul16Parts(bRe[i], bIm[i], cRe[i], cIm[i], int(sat), false)
		aRe[i] = re
		aIm[i] = im
	}
	return ComplexS16Headroom(aRe[:len(bRe)], aIm[:len(bRe)])
}

// ComplexS16ConjMul multiplies b by the conjugate of c element-wise and
// returns the headroom of the result.
func ComplexS16ConjMul(aRe, aIm, bRe, bIm, cRe, cIm []int16, sat vpu.RightShift) vpu.Headroom {
	for i := range bRe {
		re, im := cmul16Parts(bRe[i], bIm[i], cRe[i], cIm[i], int(sat), true)
		aRe[i] = re
		aIm[i] = im
	}
	return ComplexS16Headroom(aRe[:len(bRe)], aIm[:len(bRe)])
}

// ComplexS16RealMul multiplies each complex element of b by the real element
// c[k] and returns the headroom of the result.
func ComplexS16RealMul(aRe, aIm, bRe, bIm, c []int16, sat vpu.RightShift) vpu.Headroom {
	hrRe := S16Mul(aRe, bRe, c, sat)
	hrIm := S16Mul(aIm, bIm, c, sat)
	return min(hrRe, hrIm)
}

// ComplexS16RealScale multiplies each element of b by the real scalar c and
// returns the headroom of the result.
func ComplexS16RealScale(aRe, aIm, bRe, bIm []int16, c int16, sat vpu.RightShift) vpu.Headroom {
	hrRe := S16Scale(aRe, bRe, c, sat)
	hrIm := S16Scale(aIm, bIm, c, sat)
	return min(hrRe, hrIm)
}

// ComplexS16Scale multiplies each element of b by the complex scalar c and
// returns the headroom of the result.
func ComplexS16Scale(aRe, aIm, bRe, bIm []int16, c vpu.ComplexS16, sat vpu.RightShift) vpu.Headroom {
	for i := range bRe {
		re, im := cmul16Parts(bRe[i], bIm[i], c.Re, c.Im, int(sat), false)
		aRe[i] = re
		aIm[i] = im
	}
	return ComplexS16Headroom(aRe[:len(bRe)], aIm[:len(bRe)])
}

func complexS16MaccCore(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, sat vpu.RightShift, conj, negate bool) vpu.Headroom {
	for i := range bRe {
		re, im := cmul16Parts(bRe[i], bIm[i], cRe[i], cIm[i], int(sat), conj)
		ar := int64(vpu.AshrS16(accRe[i], int(accShr)))
		ai := int64(vpu.AshrS16(accIm[i], int(accShr)))
		if negate {
			accRe[i] = vpu.SatS16(ar - int64(re))
			accIm[i] = vpu.SatS16(ai - int64(im))
		} else {
			accRe[i] = vpu.SatS16(ar + int64(re))
			accIm[i] = vpu.SatS16(ai + int64(im))
		}
	}
	return ComplexS16Headroom(accRe[:len(bRe)], accIm[:len(bRe)])
}

// ComplexS16Macc accumulates b*c into acc and returns the headroom of the
// result.
func ComplexS16Macc(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	return complexS16MaccCore(accRe, accIm, bRe, bIm, cRe, cIm, accShr, sat, false, false)
}

// ComplexS16Nmacc subtracts b*c from acc and returns the headroom of the
// result.
func ComplexS16Nmacc(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	return complexS16MaccCore(accRe, accIm, bRe, bIm, cRe, cIm, accShr, sat, false, true)
}

// ComplexS16ConjMacc accumulates b*conj(c) into acc and returns the headroom
// of the result.
func ComplexS16ConjMacc(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	return complexS16MaccCore(accRe, accIm, bRe, bIm, cRe, cIm, accShr, sat, true, false)
}

// ComplexS16ConjNmacc subtracts b*conj(c) from acc and returns the headroom
// of the result.
func ComplexS16ConjNmacc(accRe, accIm, bRe, bIm, cRe, cIm []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	return complexS16MaccCore(accRe, accIm, bRe, bIm, cRe, cIm, accShr, sat, true, true)
}

// ComplexS16SquaredMag computes a[k] = (re^2 + im^2) >> sat and returns the
// headroom of the result.
func ComplexS16SquaredMag(a []int16, bRe, bIm []int16, sat vpu.RightShift) vpu.Headroom {
	for i := range bRe {
		re2 := int64(bRe[i]) * int64(bRe[i])
		im2 := int64(bIm[i]) * int64(bIm[i])
		a[i] = vpu.SatRoundShrS16(re2+im2, int(sat))
	}
	return Headroom(a[:len(bRe)])
}

// ComplexS16Mag computes the element-wise magnitude of the shifted input
// with a 15-bit result mantissa.
func ComplexS16Mag(a []int16, bRe, bIm []int16, bShr vpu.RightShift) vpu.Headroom {
	for i := range bRe {
		re := int64(vpu.AshrS16(bRe[i], int(bShr)))
		im := int64(vpu.AshrS16(bIm[i], int(bShr)))
		sq := uint64(re*re + im*im)
		var y uint64
		for bit := 15; bit >= 0; bit-- {
			t := y | (1 << uint(bit))
			if t*t <= sq {
				y = t
			}
		}
		a[i] = int16(vpu.SatS16(int64(y)))
	}
	return Headroom(a[:len(bRe)])
}

// ComplexS16Sum returns the 32-bit sums of both parts.
func ComplexS16Sum(bRe, bIm []int16) vpu.ComplexS32 {
	return vpu.ComplexS32{Re: S16Sum(bRe), Im: S16Sum(bIm)}
}
