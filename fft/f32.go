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

package fft

import (
	"unsafe"

	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// Float convenience wrappers: quantize to 32-bit mantissas with two bits of
// headroom, run the integer mono FFT in the same buffer, and dequantize.
// The float buffer is reinterpreted in place, so no scratch is needed.

// F32Forward computes the spectrum of the real signal x in place and
// returns the packed complex view of the same buffer. len(x) must be a
// power of two in [16, MaxFFTLen].
func F32Forward(x []float32) []vpu.ComplexF32 {
	n := len(x)
	xS32 := unsafe.Slice((*int32)(unsafe.Pointer(&x[0])), n)
	xC32 := unsafe.Slice((*vpu.ComplexS32)(unsafe.Pointer(&x[0])), n/2)

	exp := vect.F32MaxExponent(x) + 2
	vect.F32ToS32(xS32, x, exp)

	IndexBitReversal(xC32)
	hr := vpu.Headroom(2)
	DitForward(xC32, &hr, &exp)
	MonoAdjust(xC32, n, false)

	vect.S32ToF32(x, xS32, exp)
	return unsafe.Slice((*vpu.ComplexF32)(unsafe.Pointer(&x[0])), n/2)
}

// F32Inverse computes the real signal of the packed spectrum X in place and
// returns the real view of the same buffer. 2*len(X) must be a power of two
// in [16, MaxFFTLen].
func F32Inverse(X []vpu.ComplexF32) []float32 {
	n := 2 * len(X)
	x := unsafe.Slice((*float32)(unsafe.Pointer(&X[0])), n)
	xS32 := unsafe.Slice((*int32)(unsafe.Pointer(&X[0])), n)
	xC32 := unsafe.Slice((*vpu.ComplexS32)(unsafe.Pointer(&X[0])), n/2)

	exp := vect.F32MaxExponent(x) + 2
	vect.F32ToS32(xS32, x, exp)

	MonoAdjust(xC32, n, true)
	IndexBitReversal(xC32)
	hr := vpu.Headroom(2)
	DitInverse(xC32, &hr, &exp)

	vect.S32ToF32(x, xS32, exp)
	return x
}
