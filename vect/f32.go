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

import (
	"math"

	"github.com/ajroetker/go-bfp/vpu"
)

// float32 conversion helpers used by the float FFT convenience wrappers.

// F32MaxExponent returns the largest exponent any element of b would take as
// a 32-bit mantissa.
func F32MaxExponent(b []float32) vpu.Exponent {
	maxExp := vpu.Exponent(math.MinInt32)
	for _, x := range b {
		_, e := math.Frexp(float64(x))
		if exp := vpu.Exponent(e - 31); exp > maxExp {
			maxExp = exp
		}
	}
	return maxExp
}

// F32ToS32 quantizes b into 32-bit mantissas at the given exponent.
func F32ToS32(a []int32, b []float32, exp vpu.Exponent) vpu.Headroom {
	scale := math.Ldexp(1, -int(exp))
	for i := range b {
		a[i] = vpu.SatS32(int64(math.Round(float64(b[i]) * scale)))
	}
	return Headroom(a[:len(b)])
}

// S32ToF32 dequantizes 32-bit mantissas at the given exponent into b.
func S32ToF32(a []float32, b []int32, exp vpu.Exponent) {
	for i := range b {
		a[i] = float32(math.Ldexp(float64(b[i]), int(exp)))
	}
}
