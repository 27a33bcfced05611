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

// Package bfp provides block floating-point vectors: an integer mantissa
// buffer sharing one exponent and one headroom count, with arithmetic that
// chooses shifts ahead of each kernel call so results cannot overflow.
//
// Operations mutate their receiver, which is the destination vector; the
// destination may alias any input unless documented otherwise. Buffers are
// caller-provided (Init) or heap-backed (Alloc); only the arithmetic-free
// lifecycle entry points allocate.
package bfp

import (
	"unsafe"

	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// Flags carries the bookkeeping bits of a BFP vector.
type Flags uint16

// FlagOwned marks a vector whose buffer was allocated by Alloc; Dealloc
// releases only owned buffers.
const FlagOwned Flags = 1 << 0

// S16 is a BFP vector of 16-bit mantissas.
type S16 struct {
	Data   []int16
	Length int
	Exp    vpu.Exponent
	HR     vpu.Headroom
	Flags  Flags
}

// S32 is a BFP vector of 32-bit mantissas.
type S32 struct {
	Data   []int32
	Length int
	Exp    vpu.Exponent
	HR     vpu.Headroom
	Flags  Flags
}

// ComplexS16 is a BFP vector of complex 16-bit mantissas. The real and
// imaginary parts live in separate buffers.
type ComplexS16 struct {
	Real   []int16
	Imag   []int16
	Length int
	Exp    vpu.Exponent
	HR     vpu.Headroom
	Flags  Flags
}

// ComplexS32 is a BFP vector of complex 32-bit mantissas.
type ComplexS32 struct {
	Data   []vpu.ComplexS32
	Length int
	Exp    vpu.Exponent
	HR     vpu.Headroom
	Flags  Flags
}

func assert(cond bool, msg string) {
	if debugChecks && !cond {
		panic(msg)
	}
}

func assertPow2(length int, msg string) {
	assert(length > 0 && length&(length-1) == 0, msg)
}

// InitS16 wraps a caller-provided buffer as a borrowed BFP vector. When
// calcHR is false the headroom is reported as zero, which is always safe.
func InitS16(data []int16, exp vpu.Exponent, calcHR bool) S16 {
	a := S16{Data: data, Length: len(data), Exp: exp}
	if calcHR {
		a.Headroom()
	}
	return a
}

// InitS32 wraps a caller-provided buffer as a borrowed BFP vector.
func InitS32(data []int32, exp vpu.Exponent, calcHR bool) S32 {
	a := S32{Data: data, Length: len(data), Exp: exp}
	if calcHR {
		a.Headroom()
	}
	return a
}

// InitComplexS16 wraps caller-provided real and imaginary buffers as a
// borrowed BFP vector. The buffers must have equal length.
func InitComplexS16(real, imag []int16, exp vpu.Exponent, calcHR bool) ComplexS16 {
	assert(len(real) == len(imag), "bfp: real/imag length mismatch")
	a := ComplexS16{Real: real, Imag: imag, Length: len(real), Exp: exp}
	if calcHR {
		a.Headroom()
	}
	return a
}

// InitComplexS32 wraps a caller-provided buffer as a borrowed BFP vector.
func InitComplexS32(data []vpu.ComplexS32, exp vpu.Exponent, calcHR bool) ComplexS32 {
	a := ComplexS32{Data: data, Length: len(data), Exp: exp}
	if calcHR {
		a.Headroom()
	}
	return a
}

// AllocS16 returns an owned vector of the given length. On allocation
// failure the returned vector has Length zero.
func AllocS16(length int) S16 {
	if length <= 0 {
		return S16{}
	}
	return S16{Data: make([]int16, length), Length: length, Flags: FlagOwned}
}

// AllocS32 returns an owned vector of the given length. Two extra elements
// of capacity are reserved so a mono FFT of the vector can be unpacked into
// length/2 + 1 spectral bins in place.
func AllocS32(length int) S32 {
	if length <= 0 {
		return S32{}
	}
	return S32{Data: make([]int32, length, length+2), Length: length, Flags: FlagOwned}
}

// AllocComplexS16 returns an owned vector of the given length. One buffer
// backs both parts, padded so the imaginary part stays word-aligned.
func AllocComplexS16(length int) ComplexS16 {
	if length <= 0 {
		return ComplexS16{}
	}
	stride := length + (length & 1)
	buf := make([]int16, 2*stride)
	return ComplexS16{
		Real:   buf[:length],
		Imag:   buf[stride : stride+length],
		Length: length,
		Flags:  FlagOwned,
	}
}

// AllocComplexS32 returns an owned vector of the given length.
func AllocComplexS32(length int) ComplexS32 {
	if length <= 0 {
		return ComplexS32{}
	}
	return ComplexS32{Data: make([]vpu.ComplexS32, length), Length: length, Flags: FlagOwned}
}

// Dealloc releases an owned buffer; borrowed vectors are left untouched.
func (a *S16) Dealloc() {
	if a.Flags&FlagOwned == 0 {
		return
	}
	*a = S16{}
}

// Dealloc releases an owned buffer; borrowed vectors are left untouched.
func (a *S32) Dealloc() {
	if a.Flags&FlagOwned == 0 {
		return
	}
	*a = S32{}
}

// Dealloc releases an owned buffer; borrowed vectors are left untouched.
func (a *ComplexS16) Dealloc() {
	if a.Flags&FlagOwned == 0 {
		return
	}
	*a = ComplexS16{}
}

// Dealloc releases an owned buffer; borrowed vectors are left untouched.
func (a *ComplexS32) Dealloc() {
	if a.Flags&FlagOwned == 0 {
		return
	}
	*a = ComplexS32{}
}

// Set fills a with value * 2^exp.
func (a *S16) Set(value int16, exp vpu.Exponent) {
	a.Exp = exp
	a.HR = vpu.HRS16(value)
	vect.Set(a.Data[:a.Length], value)
}

// Set fills a with value * 2^exp.
func (a *S32) Set(value int32, exp vpu.Exponent) {
	a.Exp = exp
	a.HR = vpu.HRS32(value)
	vect.Set(a.Data[:a.Length], value)
}

// Set fills a with value * 2^exp.
func (a *ComplexS16) Set(value vpu.ComplexS16, exp vpu.Exponent) {
	a.Exp = exp
	a.HR = vpu.HRC16(value)
	vect.ComplexS16Set(a.Real[:a.Length], a.Imag[:a.Length], value.Re, value.Im)
}

// Set fills a with value * 2^exp.
func (a *ComplexS32) Set(value vpu.ComplexS32, exp vpu.Exponent) {
	a.Exp = exp
	a.HR = vpu.HRC32(value)
	vect.ComplexS32Set(a.Data[:a.Length], value.Re, value.Im)
}

// complexView reinterprets an int32 mantissa buffer as complex elements,
// carrying the spare capacity through for in-place spectrum unpacking. The
// buffer must be doubleword-aligned, which Alloc guarantees.
func complexView(data []int32) []vpu.ComplexS32 {
	if len(data) == 0 {
		return nil
	}
	full := unsafe.Slice((*vpu.ComplexS32)(unsafe.Pointer(&data[0])), cap(data)/2)
	return full[:len(data)/2]
}

// realView reinterprets a complex mantissa buffer as packed int32 elements.
func realView(data []vpu.ComplexS32) []int32 {
	if len(data) == 0 {
		return nil
	}
	full := unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), 2*cap(data))
	return full[:2*len(data)]
}
