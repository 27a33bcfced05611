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

// Package vect provides the low-level vector kernels and the prepare
// functions the BFP layer is built on.
//
// Kernels operate on caller-owned slices, never allocate, and are total:
// every input combination produces a defined, symmetrically saturated
// output. Output slices may alias input slices. Shift arguments are signed;
// a negative right-shift shifts left with saturation.
//
// A prepare function is the pure counterpart of a kernel: from input
// exponents and headrooms it derives the output exponent and the per-operand
// shifts that make the worst-case mantissa combination land just inside the
// symmetric range.
package vect

import "github.com/ajroetker/go-bfp/vpu"

// Ints is the constraint for the element types the kernels operate on.
type Ints interface {
	int16 | int32
}

// hrOf returns the headroom of a single element.
func hrOf[T Ints](x T) vpu.Headroom {
	switch v := any(x).(type) {
	case int16:
		return vpu.HRS16(v)
	case int32:
		return vpu.HRS32(v)
	default:
		return 0
	}
}

// ashrOf shifts a single element, rounding right shifts and saturating left
// shifts to the element's symmetric range.
func ashrOf[T Ints](x T, shr int) T {
	switch v := any(x).(type) {
	case int16:
		return T(vpu.AshrS16(v, shr))
	case int32:
		return T(vpu.AshrS32(v, shr))
	default:
		return x
	}
}

// absOf returns |x| with symmetric saturation.
func absOf[T Ints](x T) T {
	switch v := any(x).(type) {
	case int16:
		return T(vpu.AbsS16(v))
	case int32:
		return T(vpu.AbsS32(v))
	default:
		return x
	}
}

// satOf clamps a 64-bit intermediate to the element's symmetric range.
func satOf[T Ints](v int64) T {
	var zero T
	switch any(zero).(type) {
	case int16:
		return T(vpu.SatS16(v))
	default:
		return T(vpu.SatS32(v))
	}
}
