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

import (
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// Natural log of 1+f as an alternating series, coefficients +-1/n in Q2.30.
var lnSeriesCoef = [16]int32{
	1073741824, -536870912, 357913941, -268435456,
	214748365, -178956971, 153391689, -134217728,
	119304647, -107374182, 97612893, -89478485,
	82595525, -76695845, 71582788, -67108864,
}

// s32Ln returns ln(b * 2^bExp) in Q8.24. The mantissa is normalized to
// [1, 2) and halved into [0.75, 1.5) when large, so the series argument
// stays in [-0.25, 0.5); there sixteen terms keep the truncation error
// within about six Q8.24 LSBs, the worst case being f just below 0.5.
// Non-positive inputs return the most negative representable value.
func s32Ln(b int32, bExp vpu.Exponent) int32 {
	if b <= 0 {
		return vpu.MinS32
	}
	hr := int(vpu.HRS32(b))
	m := b << uint(hr) // Q2.30 mantissa in [1, 2)
	k := int(bExp) - hr + 30

	var f int32
	if m >= 0x60000000 {
		f = (m >> 1) - 0x40000000
		k++
	} else {
		f = m - 0x40000000
	}

	// Horner over f, then series * f (the series has no constant term).
	acc := int64(lnSeriesCoef[len(lnSeriesCoef)-1])
	for i := len(lnSeriesCoef) - 2; i >= 0; i-- {
		acc = int64(lnSeriesCoef[i]) + ((acc * int64(f)) >> 30)
	}
	poly := (acc * int64(f)) >> 30 // Q2.30

	return vpu.SatS32((poly >> 6) + int64(k)*ln2Q24)
}

// ChunkS32Log computes the natural log of one chunk of mantissas sharing an
// exponent, producing Q8.24 results.
func ChunkS32Log(a, b []int32, bExp vpu.Exponent) {
	n := min(len(b), ChunkSize)
	for i := 0; i < n; i++ {
		a[i] = s32Ln(b[i], bExp)
	}
}

// ChunkFloatS32Log computes the natural log of one chunk of scalar floats,
// producing Q8.24 results.
func ChunkFloatS32Log(a []int32, b []vpu.FloatS32) {
	n := min(len(b), ChunkSize)
	for i := 0; i < n; i++ {
		a[i] = s32Ln(b[i].Mant, b[i].Exp)
	}
}

func s32LogBase(a, b []int32, bExp vpu.Exponent, invLnBaseQ30 int32) {
	for i := 0; i < len(b); i += ChunkSize {
		end := min(i+ChunkSize, len(b))
		ChunkS32Log(a[i:end], b[i:end], bExp)
	}
	if invLnBaseQ30 != 0 {
		vect.S32Scale(a[:len(b)], a[:len(b)], invLnBaseQ30, 0, 0)
	}
}

// S32Log computes the element-wise natural log of a mantissa vector with a
// shared exponent, producing Q8.24 results.
func S32Log(a, b []int32, bExp vpu.Exponent) {
	s32LogBase(a, b, bExp, 0)
}

// S32Log2 computes the element-wise base-2 log, producing Q8.24 results.
func S32Log2(a, b []int32, bExp vpu.Exponent) {
	s32LogBase(a, b, bExp, invLn2Q30)
}

// S32Log10 computes the element-wise base-10 log, producing Q8.24 results.
func S32Log10(a, b []int32, bExp vpu.Exponent) {
	s32LogBase(a, b, bExp, invLn10Q30)
}

func floatS32LogBase(a []int32, b []vpu.FloatS32, invLnBaseQ30 int32) {
	for i := 0; i < len(b); i += ChunkSize {
		end := min(i+ChunkSize, len(b))
		ChunkFloatS32Log(a[i:end], b[i:end])
	}
	if invLnBaseQ30 != 0 {
		vect.S32Scale(a[:len(b)], a[:len(b)], invLnBaseQ30, 0, 0)
	}
}

// FloatS32Log computes the element-wise natural log of scalar floats,
// producing Q8.24 results.
func FloatS32Log(a []int32, b []vpu.FloatS32) {
	floatS32LogBase(a, b, 0)
}

// FloatS32Log2 computes the element-wise base-2 log, producing Q8.24
// results.
func FloatS32Log2(a []int32, b []vpu.FloatS32) {
	floatS32LogBase(a, b, invLn2Q30)
}

// FloatS32Log10 computes the element-wise base-10 log, producing Q8.24
// results.
func FloatS32Log10(a []int32, b []vpu.FloatS32) {
	floatS32LogBase(a, b, invLn10Q30)
}
