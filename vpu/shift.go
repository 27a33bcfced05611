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

// This file provides the rounding, saturating shift primitives.
//
// Right shifts round half away from zero for non-negative inputs and use a
// plain arithmetic shift for negative inputs, so (-1) >> 1 == -1. Left
// shifts (negative shift counts) saturate to the symmetric bounds.

// SatS16 clamps a wider value to the symmetric 16-bit range.
func SatS16(v int64) int16 {
	if v > int64(MaxS16) {
		return MaxS16
	}
	if v < int64(MinS16) {
		return MinS16
	}
	return int16(v)
}

// SatS32 clamps a wider value to the symmetric 32-bit range.
func SatS32(v int64) int32 {
	if v > int64(MaxS32) {
		return MaxS32
	}
	if v < int64(MinS32) {
		return MinS32
	}
	return int32(v)
}

// SatS40 clamps a value to the symmetric 40-bit accumulator range.
func SatS40(v int64) int64 {
	if v > MaxS40 {
		return MaxS40
	}
	if v < MinS40 {
		return MinS40
	}
	return v
}

// RoundShr arithmetic-shifts x right by shr bits with rounding. A negative
// shr shifts left without saturation; the caller is responsible for keeping
// left-shifted results within range.
func RoundShr(x int64, shr int) int64 {
	if shr <= 0 {
		if shr <= -64 {
			shr = -63
		}
		return x << uint(-shr)
	}
	if shr >= 64 {
		if x >= 0 {
			return 0
		}
		return -1
	}
	if x >= 0 {
		return (x + (1 << uint(shr-1))) >> uint(shr)
	}
	return x >> uint(shr)
}

// AshrS32 shifts a 32-bit value by shr bits (right for positive shr, left
// for negative), rounding right shifts and saturating left shifts.
func AshrS32(x int32, shr int) int32 {
	if shr >= 32 {
		if x >= 0 {
			return 0
		}
		return -1
	}
	if shr >= 0 {
		return int32(RoundShr(int64(x), shr))
	}
	if shr <= -32 {
		shr = -31
	}
	return SatS32(int64(x) << uint(-shr))
}

// AshrS16 shifts a 16-bit value by shr bits, rounding right shifts and
// saturating left shifts.
func AshrS16(x int16, shr int) int16 {
	if shr >= 16 {
		if x >= 0 {
			return 0
		}
		return -1
	}
	if shr >= 0 {
		return int16(RoundShr(int64(x), shr))
	}
	if shr <= -16 {
		shr = -15
	}
	return SatS16(int64(x) << uint(-shr))
}

// SatRoundShrS32 shifts a 64-bit intermediate by shr bits and clamps the
// result to the symmetric 32-bit range. This is the rounding applied to
// every 32-bit kernel product and butterfly output.
func SatRoundShrS32(x int64, shr int) int32 {
	return SatS32(RoundShr(x, shr))
}

// SatRoundShrS16 shifts a 64-bit intermediate by shr bits and clamps the
// result to the symmetric 16-bit range.
func SatRoundShrS16(x int64, shr int) int16 {
	return SatS16(RoundShr(x, shr))
}

// AbsS32 returns |x| with symmetric saturation: AbsS32(math.MinInt32) is
// MaxS32, not MinInt32.
func AbsS32(x int32) int32 {
	if x >= 0 {
		return x
	}
	if x == -0x80000000 {
		return MaxS32
	}
	return -x
}

// AbsS16 returns |x| with symmetric saturation.
func AbsS16(x int16) int16 {
	if x >= 0 {
		return x
	}
	if x == -0x8000 {
		return MaxS16
	}
	return -x
}
