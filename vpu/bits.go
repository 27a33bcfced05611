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

package vpu

import "math/bits"

// This file provides the bit-level helpers: headroom (redundant leading sign
// bit) counts, ceiling log2, and index bit-reversal.

// HRS16 returns the headroom of a 16-bit value. HRS16(0) == 15.
func HRS16(x int16) Headroom {
	return Headroom(bits.LeadingZeros16(uint16(x^(x>>15))) - 1)
}

// HRS32 returns the headroom of a 32-bit value. HRS32(0) == 31.
func HRS32(x int32) Headroom {
	return Headroom(bits.LeadingZeros32(uint32(x^(x>>31))) - 1)
}

// HRS64 returns the headroom of a 64-bit value. HRS64(0) == 63.
func HRS64(x int64) Headroom {
	return Headroom(bits.LeadingZeros64(uint64(x^(x>>63))) - 1)
}

// HRC16 returns the headroom of a complex 16-bit value: the smaller of the
// headrooms of its real and imaginary parts.
func HRC16(x ComplexS16) Headroom {
	return min(HRS16(x.Re), HRS16(x.Im))
}

// HRC32 returns the headroom of a complex 32-bit value.
func HRC32(x ComplexS32) Headroom {
	return min(HRS32(x.Re), HRS32(x.Im))
}

// ClsS32 counts the leading sign bits of x (headroom plus the sign bit
// itself). ClsS32(0) == 32.
func ClsS32(x int32) int {
	return int(HRS32(x)) + 1
}

// CeilLog2 returns the ceiling of log2(n). CeilLog2(1) == 0; n must be
// non-zero.
func CeilLog2(n uint32) int {
	if n == 1 {
		return 0
	}
	return 32 - bits.LeadingZeros32(n-1)
}

// FloorLog2 returns the floor of log2(n); n must be non-zero.
func FloorLog2(n uint32) int {
	return 31 - bits.LeadingZeros32(n)
}

// Bitrev reverses the low `width` bits of index. Bits above `width` are
// discarded.
func Bitrev(index uint32, width int) uint32 {
	return bits.Reverse32(index) >> uint(32-width)
}
