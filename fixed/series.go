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

package fixed

import "github.com/ajroetker/go-bfp/vpu"

// ChunkSize is the lane count of the per-chunk forms: the transcendental
// kernels work eight 32-bit lanes at a time.
const ChunkSize = 8

// expSmallCoef holds 1/k! in Q2.30 for the exp power series.
var expSmallCoef = [10]int32{
	0x40000000, 0x40000000, 0x20000000, 0x0AAAAAAB, 0x02AAAAAB,
	0x00888889, 0x0016C16C, 0x00034034, 0x00006807, 0x00000B8F,
}

// s32PowerSeries evaluates sum coef[k] * x^k in Q2.30 by Horner's rule.
func s32PowerSeries(x int32, coef []int32) int32 {
	acc := int64(coef[len(coef)-1])
	for k := len(coef) - 2; k >= 0; k-- {
		acc = int64(coef[k]) + ((acc * int64(x)) >> 30)
	}
	return vpu.SatS32(acc)
}

// ChunkQ30PowerSeries evaluates a power series with Q2.30 coefficients over
// one eight-lane chunk.
func ChunkQ30PowerSeries(a, b []int32, coef []int32) {
	n := min(len(b), ChunkSize)
	for i := 0; i < n; i++ {
		a[i] = s32PowerSeries(b[i], coef)
	}
}

// VectQ30PowerSeries evaluates a power series with Q2.30 coefficients over a
// vector of any length, chunk by chunk.
func VectQ30PowerSeries(a, b []int32, coef []int32) {
	for i := 0; i < len(b); i += ChunkSize {
		end := min(i+ChunkSize, len(b))
		ChunkQ30PowerSeries(a[i:end], b[i:end], coef)
	}
}

// ChunkQ30ExpSmall computes e^x over one chunk of Q2.30 inputs. Inputs must
// satisfy |x| <= 0.5; the ten-term series then converges past the Q2.30
// quantization floor.
func ChunkQ30ExpSmall(a, b []int32) {
	ChunkQ30PowerSeries(a, b, expSmallCoef[:])
}

// VectQ30ExpSmall computes e^x over a Q2.30 vector with |x| <= 0.5.
func VectQ30ExpSmall(a, b []int32) {
	VectQ30PowerSeries(a, b, expSmallCoef[:])
}

// ChunkS32Dot returns the eight-lane dot product with each product shifted
// down 30 bits, so Q8.24 against Q2.30 yields Q8.24.
func ChunkS32Dot(b, c []int32) int32 {
	var acc int64
	n := min(ChunkSize, min(len(b), len(c)))
	for i := 0; i < n; i++ {
		acc += vpu.RoundShr(int64(b[i])*int64(c[i]), 30)
	}
	return vpu.SatS32(acc)
}

// S32OddPowers fills a with the odd powers x, x^3, x^5, ... of a fixed-point
// value with q fractional bits.
func S32OddPowers(a []int32, x int32, count int, q int) {
	x2 := int32((int64(x) * int64(x)) >> uint(q))
	p := x
	for k := 0; k < count && k < len(a); k++ {
		a[k] = p
		p = int32((int64(p) * int64(x2)) >> uint(q))
	}
}
