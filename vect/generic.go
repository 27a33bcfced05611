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

// Kernels that behave identically for 16- and 32-bit elements.

// Set fills a with value.
func Set[T Ints](a []T, value T) {
	for i := range a {
		a[i] = value
	}
}

// Copy copies b into a.
func Copy[T Ints](a, b []T) {
	copy(a, b)
}

// headroomS32 is the selected 32-bit headroom-scan implementation. The
// unrolled variant is chosen at init when the dispatch layer reports a wide
// vector unit; both compute the same result.
var headroomS32 func(b []int32) vpu.Headroom

func init() {
	if vpu.HasAccel() {
		headroomS32 = headroomS32Unrolled
	} else {
		headroomS32 = headroomS32Ref
	}
}

func headroomS32Ref(b []int32) vpu.Headroom {
	var acc int32
	for _, x := range b {
		acc |= x ^ (x >> 31)
	}
	return vpu.HRS32(acc | (acc >> 31))
}

func headroomS32Unrolled(b []int32) vpu.Headroom {
	var a0, a1, a2, a3 int32
	i := 0
	for ; i+4 <= len(b); i += 4 {
		a0 |= b[i] ^ (b[i] >> 31)
		a1 |= b[i+1] ^ (b[i+1] >> 31)
		a2 |= b[i+2] ^ (b[i+2] >> 31)
		a3 |= b[i+3] ^ (b[i+3] >> 31)
	}
	acc := a0 | a1 | a2 | a3
	for ; i < len(b); i++ {
		acc |= b[i] ^ (b[i] >> 31)
	}
	return vpu.HRS32(acc | (acc >> 31))
}

// Headroom returns the minimum headroom across all elements of b.
// Headroom of an empty slice is the full element width minus one.
func Headroom[T Ints](b []T) vpu.Headroom {
	switch bb := any(b).(type) {
	case []int32:
		return headroomS32(bb)
	case []int16:
		var acc int16
		for _, x := range bb {
			acc |= x ^ (x >> 15)
		}
		return vpu.HRS16(acc | (acc >> 15))
	}
	var zero T
	return hrOf(zero)
}

// Shl left-shifts each element of b by shl bits (right for negative shl),
// saturating, and returns the headroom of the result.
func Shl[T Ints](a, b []T, shl vpu.LeftShift) vpu.Headroom {
	return Shr(a, b, vpu.RightShift(-shl))
}

// Shr right-shifts each element of b by shr bits (left for negative shr)
// with rounding and saturation, and returns the headroom of the result.
func Shr[T Ints](a, b []T, shr vpu.RightShift) vpu.Headroom {
	for i := range b {
		a[i] = ashrOf(b[i], int(shr))
	}
	return Headroom(a[:len(b)])
}

// Abs computes |b| element-wise with symmetric saturation and returns the
// headroom of the result.
func Abs[T Ints](a, b []T) vpu.Headroom {
	for i := range b {
		a[i] = absOf(b[i])
	}
	return Headroom(a[:len(b)])
}

// Rect zeroes the negative elements of b and returns the headroom of the
// result.
func Rect[T Ints](a, b []T) vpu.Headroom {
	for i := range b {
		if b[i] < 0 {
			a[i] = 0
		} else {
			a[i] = b[i]
		}
	}
	return Headroom(a[:len(b)])
}

// Max returns the maximum element of b.
func Max[T Ints](b []T) T {
	m := b[0]
	for _, x := range b[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Min returns the minimum element of b.
func Min[T Ints](b []T) T {
	m := b[0]
	for _, x := range b[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ArgMax returns the index of the maximum element of b. Ties resolve to the
// lowest index.
func ArgMax[T Ints](b []T) int {
	arg := 0
	for i, x := range b {
		if x > b[arg] {
			arg = i
		}
	}
	return arg
}

// ArgMin returns the index of the minimum element of b. Ties resolve to the
// lowest index.
func ArgMin[T Ints](b []T) int {
	arg := 0
	for i, x := range b {
		if x < b[arg] {
			arg = i
		}
	}
	return arg
}

// MaxElementwise writes the element-wise maximum of the shifted operands and
// returns the headroom of the result.
func MaxElementwise[T Ints](a, b, c []T, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrOf(b[i], int(bShr))
		cc := ashrOf(c[i], int(cShr))
		if bb >= cc {
			a[i] = bb
		} else {
			a[i] = cc
		}
	}
	return Headroom(a[:len(b)])
}

// MinElementwise writes the element-wise minimum of the shifted operands and
// returns the headroom of the result.
func MinElementwise[T Ints](a, b, c []T, bShr, cShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		bb := ashrOf(b[i], int(bShr))
		cc := ashrOf(c[i], int(cShr))
		if bb <= cc {
			a[i] = bb
		} else {
			a[i] = cc
		}
	}
	return Headroom(a[:len(b)])
}

// Clip clamps the shifted elements of b to [lo, hi] and returns the headroom
// of the result. Bounds are expressed at the output exponent.
func Clip[T Ints](a, b []T, lo, hi T, bShr vpu.RightShift) vpu.Headroom {
	for i := range b {
		v := ashrOf(b[i], int(bShr))
		if v < lo {
			v = lo
		}
		if v > hi {
			v = hi
		}
		a[i] = v
	}
	return Headroom(a[:len(b)])
}
