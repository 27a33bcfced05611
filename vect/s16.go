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

// 16-bit real vector kernels. Products are taken in a 32-bit accumulator
// and shifted down by a single output shift chosen by the prepare helpers.

// S16Add computes a[k] = sat((b[k] >> bShr) + (c[k] >> cShr)) and returns
// the headroom of the result.
func S16Add(a, b, c []int16, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS16(b[i], int(bShr)))
		cc := int64(vpu.AshrS16(c[i], int(cShr)))
		a[i] = vpu.SatS16(bb + cc)
	}
	return Headroom(a[:len(b)])
}

// S16Sub computes a[k] = sat((b[k] >> bShr) - (c[k] >> cShr)) and returns
// the headroom of the result.
func S16Sub(a, b, c []int16, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS16(b[i], int(bShr)))
		cc := int64(vpu.AshrS16(c[i], int(cShr)))
		a[i] = vpu.SatS16(bb - cc)
	}
	return Headroom(a[:len(b)])
}

// S16AddScalar computes a[k] = sat((b[k] >> bShr) + c) and returns the
// headroom of the result.
func S16AddScalar(a, b []int16, c int16, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := int64(vpu.AshrS16(b[i], int(bShr)))
		a[i] = vpu.SatS16(bb + int64(c))
	}
	return Headroom(a[:len(b)])
}

// S16Mul computes a[k] = sat_round_shr(b[k] * c[k], sat) and returns the
// headroom of the result.
func S16Mul(a, b, c []int16, sat vpu.RightShift) vpu.Headroom {
	for i := range b {
		a[i] = vpu.SatRoundShrS16(int64(b[i])*int64(c[i]), int(sat))
	}
	return Headroom(a[:len(b)])
}

// S16Scale computes a[k] = sat_round_shr(b[k] * c, sat) and returns the
// headroom of the result.
func S16Scale(a, b []int16, c int16, sat vpu.RightShift) vpu.Headroom {
	for i := range b {
		a[i] = vpu.SatRoundShrS16(int64(b[i])*int64(c), int(sat))
	}
	return Headroom(a[:len(b)])
}

// S16Macc computes acc[k] = sat((acc[k] >> accShr) +
// round_shr(b[k]*c[k], sat)) and returns the headroom of the result.
func S16Macc(acc, b, c []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	for i := range b {
		p := vpu.RoundShr(int64(b[i])*int64(c[i]), int(sat))
		aa := int64(vpu.AshrS16(acc[i], int(accShr)))
		acc[i] = vpu.SatS16(aa + p)
	}
	return Headroom(acc[:len(b)])
}

// S16Nmacc is S16Macc with the product negated.
func S16Nmacc(acc, b, c []int16, accShr, sat vpu.RightShift) vpu.Headroom {
	for i := range b {
		p := vpu.RoundShr(int64(b[i])*int64(c[i]), int(sat))
		aa := int64(vpu.AshrS16(acc[i], int(accShr)))
		acc[i] = vpu.SatS16(aa - p)
	}
	return Headroom(acc[:len(b)])
}

// S16Sum returns the sum of the elements of b in a saturating 32-bit
// accumulator.
func S16Sum(b []int16) int32 {
	var acc int64
	for _, x := range b {
		acc = int64(vpu.SatS32(acc + int64(x)))
	}
	return int32(acc)
}

// S16AbsSum returns the sum of |b[k]| in a saturating 32-bit accumulator.
func S16AbsSum(b []int16) int32 {
	var acc int64
	for _, x := range b {
		acc = int64(vpu.SatS32(acc + int64(vpu.AbsS16(x))))
	}
	return int32(acc)
}

// S16Dot returns the inner product of b and c. Products fit 32 bits; the
// total is accumulated across eight saturating 40-bit lanes.
func S16Dot(b, c []int16) int64 {
	var lanes [accLanes]int64
	for i := range b {
		p := int64(b[i]) * int64(c[i])
		l := i % accLanes
		lanes[l] = vpu.SatS40(lanes[l] + p)
	}
	var total int64
	for _, l := range lanes {
		total += l
	}
	return total
}

// S16Sqrt computes the element-wise square root of the shifted input with a
// 15-bit result mantissa at the exponent chosen by S16SqrtPrepare.
// Non-positive inputs produce zero. Returns the headroom of the result.
func S16Sqrt(a, b []int16, bShr vpu.RightShift, depth int) vpu.Headroom {
	if depth < 1 {
		depth = 1
	}
	if depth > 15 {
		depth = 15
	}
	for i := range b {
		bb := vpu.AshrS16(b[i], int(bShr))
		if bb <= 0 {
			a[i] = 0
			continue
		}
		x := uint32(bb) << 14
		var y uint32
		for bit := 14; bit > 14-depth; bit-- {
			t := y | (1 << uint(bit))
			if t*t <= x {
				y = t
			}
		}
		a[i] = int16(y)
	}
	return Headroom(a[:len(b)])
}

// S16Inverse computes a[k] = 2^scale / b[k] and returns the headroom of the
// result. Elements must be non-zero.
func S16Inverse(a, b []int16, scale int) vpu.Headroom {
	dividend := int32(1) << uint(scale)
	for i := range b {
		a[i] = vpu.SatS16(int64(dividend / int32(b[i])))
	}
	return Headroom(a[:len(b)])
}
