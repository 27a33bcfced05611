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

// Complex 32-bit kernels. Multiplication is (ac - bd) + (ad + bc)j with each
// 64-bit product rounded down 30 bits before the saturating combine, so both
// parts see the same rounding as the real kernels.

func ashrC32(x vpu.ComplexS32, shr int) vpu.ComplexS32 {
	return vpu.ComplexS32{Re: vpu.AshrS32(x.Re, shr), Im: vpu.AshrS32(x.Im, shr)}
}

// ComplexS32Headroom returns the minimum headroom across the real and
// imaginary parts of all elements.
func ComplexS32Headroom(b []vpu.ComplexS32) vpu.Headroom {
	var acc int32
	for _, x := range b {
		acc |= x.Re ^ (x.Re >> 31)
		acc |= x.Im ^ (x.Im >> 31)
	}
	return vpu.HRS32(acc | (acc >> 31))
}

// ComplexS32Set fills a with the value re + j*im.
func ComplexS32Set(a []vpu.ComplexS32, re, im int32) {
	for i := range a {
		a[i] = vpu.ComplexS32{Re: re, Im: im}
	}
}

// ComplexS32Shr shifts each element right by shr bits (left for negative
// shr) and returns the headroom of the result.
func ComplexS32Shr(a, b []vpu.ComplexS32, shr vpu.RightShift) vpu.Headroom {
	for i := range b {
		a[i] = ashrC32(b[i], int(shr))
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32Shl shifts each element left by shl bits with saturation and
// returns the headroom of the result.
func ComplexS32Shl(a, b []vpu.ComplexS32, shl vpu.LeftShift) vpu.Headroom {
	return ComplexS32Shr(a, b, vpu.RightShift(-shl))
}

// ComplexS32Add adds the shifted operands and returns the headroom of the
// result.
func ComplexS32Add(a, b, c []vpu.ComplexS32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := ashrC32(c[i], int(cShr))
		a[i] = vpu.ComplexS32{
			Re: vpu.SatS32(int64(bb.Re) + int64(cc.Re)),
			Im: vpu.SatS32(int64(bb.Im) + int64(cc.Im)),
		}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32Sub subtracts the shifted operands and returns the headroom of
// the result.
func ComplexS32Sub(a, b, c []vpu.ComplexS32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := ashrC32(c[i], int(cShr))
		a[i] = vpu.ComplexS32{
			Re: vpu.SatS32(int64(bb.Re) - int64(cc.Re)),
			Im: vpu.SatS32(int64(bb.Im) - int64(cc.Im)),
		}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32AddScalar computes a[k] = (b[k] >> bShr) + c and returns the
// headroom of the result. The scalar must already be shifted to the output
// exponent.
func ComplexS32AddScalar(a, b []vpu.ComplexS32, c vpu.ComplexS32, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		a[i] = vpu.ComplexS32{
			Re: vpu.SatS32(int64(bb.Re) + int64(c.Re)),
			Im: vpu.SatS32(int64(bb.Im) + int64(c.Im)),
		}
	}
	return ComplexS32Headroom(a[:len(b)])
}

func cmulParts(b, c vpu.ComplexS32, conj bool) (int32, int32) {
	reRe := vpu.RoundShr(int64(b.Re)*int64(c.Re), 30)
	imIm := vpu.RoundShr(int64(b.Im)*int64(c.Im), 30)
	reIm := vpu.RoundShr(int64(b.Re)*int64(c.Im), 30)
	imRe := vpu.RoundShr(int64(b.Im)*int64(c.Re), 30)
	if conj {
		return vpu.SatS32(reRe + imIm), vpu.SatS32(imRe - reIm)
	}
	return vpu.SatS32(reRe - imIm), vpu.SatS32(reIm + imRe)
}

// ComplexS32Mul multiplies the shifted operands element-wise and returns the
// headroom of the result.
func ComplexS32Mul(a, b, c []vpu.ComplexS32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := ashrC32(c[i], int(cShr))
		re, im := cmulParts(bb, cc, false)
		a[i] = vpu.ComplexS32{Re: re, Im: im}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32ConjMul multiplies b by the conjugate of c element-wise and
// returns the headroom of the result.
func ComplexS32ConjMul(a, b, c []vpu.ComplexS32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := ashrC32(c[i], int(cShr))
		re, im := cmulParts(bb, cc, true)
		a[i] = vpu.ComplexS32{Re: re, Im: im}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32RealMul multiplies each complex element of b by the
// corresponding real element of c and returns the headroom of the result.
func ComplexS32RealMul(a, b []vpu.ComplexS32, c []int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := int64(vpu.AshrS32(c[i], int(cShr)))
		a[i] = vpu.ComplexS32{
			Re: vpu.SatRoundShrS32(int64(bb.Re)*cc, 30),
			Im: vpu.SatRoundShrS32(int64(bb.Im)*cc, 30),
		}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32RealScale multiplies each element of b by the real scalar c and
// returns the headroom of the result.
func ComplexS32RealScale(a, b []vpu.ComplexS32, c int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	cc := int64(vpu.AshrS32(c, int(cShr)))
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		a[i] = vpu.ComplexS32{
			Re: vpu.SatRoundShrS32(int64(bb.Re)*cc, 30),
			Im: vpu.SatRoundShrS32(int64(bb.Im)*cc, 30),
		}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32Scale multiplies each element of b by the complex scalar c and
// returns the headroom of the result.
func ComplexS32Scale(a, b []vpu.ComplexS32, c vpu.ComplexS32, bShr, cShr vpu.RightShift) vpu.Headroom {
	cc := ashrC32(c, int(cShr))
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		re, im := cmulParts(bb, cc, false)
		a[i] = vpu.ComplexS32{Re: re, Im: im}
	}
	return ComplexS32Headroom(a[:len(b)])
}

func complexS32MaccCore(acc, b, c []vpu.ComplexS32, accShr, bShr, cShr vpu.RightShift, conj, negate bool) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		cc := ashrC32(c[i], int(cShr))
		re, im := cmulParts(bb, cc, conj)
		aa := ashrC32(acc[i], int(accShr))
		if negate {
			acc[i] = vpu.ComplexS32{
				Re: vpu.SatS32(int64(aa.Re) - int64(re)),
				Im: vpu.SatS32(int64(aa.Im) - int64(im)),
			}
		} else {
			acc[i] = vpu.ComplexS32{
				Re: vpu.SatS32(int64(aa.Re) + int64(re)),
				Im: vpu.SatS32(int64(aa.Im) + int64(im)),
			}
		}
	}
	return ComplexS32Headroom(acc[:len(b)])
}

// ComplexS32Macc accumulates b*c into acc and returns the headroom of the
// result.
func ComplexS32Macc(acc, b, c []vpu.ComplexS32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	return complexS32MaccCore(acc, b, c, accShr, bShr, cShr, false, false)
}

// ComplexS32Nmacc subtracts b*c from acc and returns the headroom of the
// result.
func ComplexS32Nmacc(acc, b, c []vpu.ComplexS32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	return complexS32MaccCore(acc, b, c, accShr, bShr, cShr, false, true)
}

// ComplexS32ConjMacc accumulates b*conj(c) into acc and returns the headroom
// of the result.
func ComplexS32ConjMacc(acc, b, c []vpu.ComplexS32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	return complexS32MaccCore(acc, b, c, accShr, bShr, cShr, true, false)
}

// ComplexS32ConjNmacc subtracts b*conj(c) from acc and returns the headroom
// of the result.
func ComplexS32ConjNmacc(acc, b, c []vpu.ComplexS32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	return complexS32MaccCore(acc, b, c, accShr, bShr, cShr, true, true)
}

// ComplexS32SquaredMag computes a[k] = (re^2 + im^2) >> 30 of the shifted
// input and returns the headroom of the result.
func ComplexS32SquaredMag(a []int32, b []vpu.ComplexS32, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		re2 := vpu.RoundShr(int64(bb.Re)*int64(bb.Re), 30)
		im2 := vpu.RoundShr(int64(bb.Im)*int64(bb.Im), 30)
		a[i] = vpu.SatS32(re2 + im2)
	}
	return Headroom(a[:len(b)])
}

// ComplexS32Mag computes the element-wise magnitude of the shifted input.
// The result mantissa is the square root of the Q30 squared magnitude, at
// the exponent chosen by ComplexS32MagPrepare.
func ComplexS32Mag(a []int32, b []vpu.ComplexS32, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrC32(b[i], int(bShr))
		re2 := vpu.RoundShr(int64(bb.Re)*int64(bb.Re), 30)
		im2 := vpu.RoundShr(int64(bb.Im)*int64(bb.Im), 30)
		sq := vpu.SatS32(re2 + im2)
		if sq <= 0 {
			a[i] = 0
			continue
		}
		// sq is the squared magnitude at exponent 2*(b_exp+b_shr)+30,
		// always even, so its root lands at exponent b_exp+b_shr with the
		// Q30 widening below.
		x := uint64(sq) << 30
		var y uint64
		for bit := 30; bit >= 0; bit-- {
			t := y | (1 << uint(bit))
			if t*t <= x {
				y = t
			}
		}
		a[i] = int32(y)
	}
	return Headroom(a[:len(b)])
}

// ComplexS32Sum returns the wide sum of the shifted elements of b.
func ComplexS32Sum(b []vpu.ComplexS32, bShr vpu.RightShift) vpu.ComplexS64 {
	var s vpu.ComplexS64
	for _, x := range b {
		xx := ashrC32(x, int(bShr))
		s.Re += int64(xx.Re)
		s.Im += int64(xx.Im)
	}
	return s
}

// ComplexS32Conjugate negates the imaginary parts and returns the headroom
// of the result.
func ComplexS32Conjugate(a, b []vpu.ComplexS32) vpu.Headroom {
	for i := range b {
		a[i] = vpu.ComplexS32{Re: b[i].Re, Im: vpu.SatS32(-int64(b[i].Im))}
	}
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32RealPart copies the real parts of b into a.
func ComplexS32RealPart(a []int32, b []vpu.ComplexS32) vpu.Headroom {
	for i := range b {
		a[i] = b[i].Re
	}
	return Headroom(a[:len(b)])
}

// ComplexS32ImagPart copies the imaginary parts of b into a.
func ComplexS32ImagPart(a []int32, b []vpu.ComplexS32) vpu.Headroom {
	for i := range b {
		a[i] = b[i].Im
	}
	return Headroom(a[:len(b)])
}

// ComplexS32Make assembles a complex vector from shifted real and imaginary
// parts.
func ComplexS32Make(a []vpu.ComplexS32, b, c []int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	S32Zip(a, b, c, bShr, cShr)
	return ComplexS32Headroom(a[:len(b)])
}

// ComplexS32ToComplexS16 narrows b into the split real/imaginary buffers,
// shifting each part down bShr bits.
func ComplexS32ToComplexS16(aRe, aIm []int16, b []vpu.ComplexS32, bShr vpu.RightShift) {
	for i := range b {
		aRe[i] = vpu.SatRoundShrS16(int64(b[i].Re), int(bShr))
		aIm[i] = vpu.SatRoundShrS16(int64(b[i].Im), int(bShr))
	}
}

// ComplexS16ToComplexS32 widens the split real/imaginary buffers into b.
func ComplexS16ToComplexS32(a []vpu.ComplexS32, bRe, bIm []int16) vpu.Headroom {
	for i := range bRe {
		a[i] = vpu.ComplexS32{Re: int32(bRe[i]), Im: int32(bIm[i])}
	}
	return ComplexS32Headroom(a[:len(bRe)])
}

// ComplexS32TailReverse reverses x[1:] in place, turning the spectrum of a
// signal into the spectrum of its time reversal.
func ComplexS32TailReverse(x []vpu.ComplexS32) {
	n := len(x)
	for i := 1; i < n-i; i++ {
		x[i], x[n-i] = x[n-i], x[i]
	}
}
