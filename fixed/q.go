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

// Package fixed provides Q-format conversion helpers and the fixed-point
// transcendental functions: power-series exp, log and logistic, and
// table-free sin/cos/tan over signed-binary-radian angles.
package fixed

// Q converts a floating-point value to fixed point with fracBits fractional
// bits, rounding half away from zero. Q(30, 1.0) == 1<<30.
func Q(fracBits int, f float64) int32 {
	scaled := f * float64(uint64(1)<<uint(fracBits))
	if scaled >= 0 {
		return int32(scaled + 0.5)
	}
	return -int32(-scaled + 0.5)
}

// F converts a fixed-point value with fracBits fractional bits to a
// floating-point value.
func F(fracBits int, x int32) float64 {
	return float64(x) / float64(uint64(1)<<uint(fracBits))
}

// Q24 converts a float to Q8.24.
func Q24(f float64) int32 { return Q(24, f) }

// Q30 converts a float to Q2.30.
func Q30(f float64) int32 { return Q(30, f) }

// Q31 converts a float to Q1.31.
func Q31(f float64) int32 { return Q(31, f) }

// F24 converts a Q8.24 value to a float.
func F24(x int32) float64 { return F(24, x) }

// F30 converts a Q2.30 value to a float.
func F30(x int32) float64 { return F(30, x) }

// F31 converts a Q1.31 value to a float.
func F31(x int32) float64 { return F(31, x) }
