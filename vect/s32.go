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

// 32-bit real vector kernels. Products of two 32-bit mantissas are taken at
// 64 bits and shifted down 30 bits (plus the operand shifts), so Q2.30
// operands produce Q2.30 results.

// accLanes is the number of parallel 40-bit accumulator lanes used by the
// summing kernels.
const accLanes = 8

// S32Add computes a[k] = sat((b[k] >> bShr) + (c[k] >> cShr)) and returns
// the headroom of the result.
func S32Add(a, b, c []int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS32(b[i], int(bShr)))
		cc := int64(vpu.AshrS32(c[i], int(cShr)))
		a[i] = vpu.SatS32(bb + cc)
	}
	return Headroom(a[:len(b)])
}

// S32Sub computes a[k] = sat((b[k] >> bShr) - (c[k] >> cShr)) and returns
// the headroom of the result.
func S32Sub(a, b, c []int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS32(b[i], int(bShr)))
		cc := int64(vpu.AshrS32(c[i], int(cShr)))
		a[i] = vpu.SatS32(bb - cc)
	}
	return Headroom(a[:len(b)])
}

// S32AddScalar computes a[k] = sat((b[k] >> bShr) + c) and returns the
// headroom of the result. The scalar must already be shifted to the output
// exponent.
func S32AddScalar(a, b []int32, c int32, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS32(b[i], int(bShr)))
		a[i] = vpu.SatS32(bb + int64(c))
	}
	return Headroom(a[:len(b)])
}

// S32Mul computes a[k] = sat_round_shr(b[k] * c[k], 30 + bShr + cShr) and
// returns the headroom of the result.
func S32Mul(a, b, c []int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	shr := 30 + int(bShr) + int(cShr)
	for i := range b {
		a[i] = vpu.SatRoundShrS32(int64(b[i])*int64(c[i]), shr)
	}
	return Headroom(a[:len(b)])
}

// S32Scale computes a[k] = sat_round_shr(b[k] * c, 30 + bShr + cShr) and
// returns the headroom of the result.
func S32Scale(a, b []int32, c int32, bShr, cShr vpu.RightShift) vpu.Headroom {
	shr := 30 + int(bShr) + int(cShr)
	for i := range b {
		a[i] = vpu.SatRoundShrS32(int64(b[i])*int64(c), shr)
	}
	return Headroom(a[:len(b)])
}

// S32Macc computes acc[k] = sat((acc[k] >> accShr) +
// round_shr(b[k]*c[k], 30+bShr+cShr)) and returns the headroom of the
// result.
func S32Macc(acc, b, c []int32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	shr := 30 + int(bShr) + int(cShr)
	for i := range b {
		p := vpu.RoundShr(int64(b[i])*int64(c[i]), shr)
		aa := int64(vpu.AshrS32(acc[i], int(accShr)))
		acc[i] = vpu.SatS32(aa + p)
	}
	return Headroom(acc[:len(b)])
}

// S32Nmacc is S32Macc with the product negated.
func S32Nmacc(acc, b, c []int32, accShr, bShr, cShr vpu.RightShift) vpu.Headroom {
	shr := 30 + int(bShr) + int(cShr)
	for i := range b {
		p := vpu.RoundShr(int64(b[i])*int64(c[i]), shr)
		aa := int64(vpu.AshrS32(acc[i], int(accShr)))
		acc[i] = vpu.SatS32(aa - p)
	}
	return Headroom(acc[:len(b)])
}

// S32Sum returns the sum of the elements of b, accumulated across eight
// saturating 40-bit lanes and merged into a 43-bit total.
func S32Sum(b []int32) int64 {
	var lanes [accLanes]int64
	for i, x := range b {
		l := i % accLanes
		lanes[l] = vpu.SatS40(lanes[l] + int64(x))
	}
	var total int64
	for _, l := range lanes {
		total += l
	}
	return total
}

// S32AbsSum returns the sum of |b[k]|, accumulated like S32Sum.
func S32AbsSum(b []int32) int64 {
	var lanes [accLanes]int64
	for i, x := range b {
		l := i % accLanes
		lanes[l] = vpu.SatS40(lanes[l] + int64(vpu.AbsS32(x)))
	}
	var total int64
	for _, l := range lanes {
		total += l
	}
	return total
}

// S32Dot returns the inner product of the shifted operands. Each product is
// rounded down 30 bits and accumulated into one of eight saturating 40-bit
// lanes; lane k holds the partial sum of indices congruent to k mod 8.
func S32Dot(b, c []int32, bShr, cShr vpu.RightShift) int64 {
	var lanes [accLanes]int64
	for i := range b {
		bb := int64(vpu.AshrS32(b[i], int(bShr)))
		cc := int64(vpu.AshrS32(c[i], int(cShr)))
		p := vpu.RoundShr(bb*cc, 30)
		l := i % accLanes
		lanes[l] = vpu.SatS40(lanes[l] + p)
	}
	var total int64
	for _, l := range lanes {
		total += l
	}
	return total
}

// S32Energy returns the sum of squares of the shifted elements of b.
func S32Energy(b []int32, bShr vpu.RightShift) int64 {
	return S32Dot(b, b, bShr, bShr)
}

// S32Sqrt computes the element-wise square root of the shifted input. All
// elements share the exponent chosen by S32SqrtPrepare; depth selects how
// many result bits are computed. Non-positive inputs produce zero. Returns
// the headroom of the result.
func S32Sqrt(a, b []int32, bShr vpu.RightShift, depth int) vpu.Headroom {
	if depth < 1 {
		depth = 1
	}
	if depth > vpu.SqrtMaxDepth {
		depth = vpu.SqrtMaxDepth
	}
	for i := range b {
		bb := vpu.AshrS32(b[i], int(bShr))
		if bb <= 0 {
			a[i] = 0
			continue
		}
		x := uint64(bb) << 30
		var y uint64
		for bit := 30; bit > 30-depth; bit-- {
			t := y | (1 << uint(bit))
			if t*t <= x {
				y = t
			}
		}
		a[i] = int32(y)
	}
	return Headroom(a[:len(b)])
}

// S32Inverse computes a[k] = 2^scale / b[k] and returns the headroom of the
// result. Elements must be non-zero.
func S32Inverse(a, b []int32, scale int) vpu.Headroom {
	dividend := int64(1) << uint(scale)
	for i := range b {
		a[i] = vpu.SatS32(dividend / int64(b[i]))
	}
	return Headroom(a[:len(b)])
}

// S32ToS16 narrows b into a, shifting each element down bShr bits with
// rounding and symmetric saturation.
func S32ToS16(a []int16, b []int32, bShr vpu.RightShift) {
	for i := range b {
		a[i] = vpu.SatRoundShrS16(int64(b[i]), int(bShr))
	}
}

// S16ToS32 widens b into a with an 8-bit left shift, so the output exponent
// is the input exponent minus 8.
func S16ToS32(a []int32, b []int16) vpu.Headroom {
	for i := range b {
		a[i] = int32(b[i]) << 8
	}
	return Headroom(a[:len(b)])
}

// S32Zip interleaves the shifted elements of b and c into a complex vector:
// a[k] = (b[k] >> bShr) + j*(c[k] >> cShr).
func S32Zip(a []vpu.ComplexS32, b, c []int32, bShr, cShr vpu.RightShift) {
	for i := range b {
		a[i] = vpu.ComplexS32{
			Re: vpu.AshrS32(b[i], int(bShr)),
			Im: vpu.AshrS32(c[i], int(cShr)),
		}
	}
}

// S32Unzip splits a complex vector into its real and imaginary parts.
func S32Unzip(a, b []int32, c []vpu.ComplexS32) {
	for i := range c {
		a[i] = c[i].Re
		b[i] = c[i].Im
	}
}
