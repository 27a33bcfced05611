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

// Angles arrive as Q8.24 radians and are reduced to sbrads: a Q1.31 value in
// [-1, 1] mapping linearly to [-pi/2, pi/2]. The power series then run on
// the sbrad, whose bounded range keeps every term inside Q2.30.

const (
	invRhoQ31     = 0x517CC1B7 // 2/pi in Q1.31
	piHalfQ24     = 26353589   // pi/2 in Q8.24
	threePiTwoQ24 = 79060768   // 3*pi/2 in Q8.24
)

// sin(x * pi/2) power series coefficients in Q2.30.
var sbradSinCoef = [7]int32{
	1686629713, -693598668, 85569306, -5026995, 172272, -3864, 61,
}

// tan(x * pi/2) power series coefficients in Q2.30, valid for |x| <= 0.5.
var sbradTanCoef = [8]int32{
	1686629713, 1387197337, 1369108894, 1367342701,
	1367153849, 1367133129, 1367130837, 1367130583,
}

// RadiansToSbrads folds a Q8.24 radian angle into the sbrad range using the
// symmetries of sin: reduction mod 2*pi, then reflection about +-pi/2.
func RadiansToSbrads(theta int32) int32 {
	acc := int64(invRhoQ31) * int64(theta) // Q55, quadrant units

	m := acc >> 24 // Q31 quadrant units
	m &= (1 << 33) - 1
	if m >= 1<<32 {
		m -= 1 << 33
	}
	if m > 1<<31 {
		m = (1 << 32) - m
	}
	if m < -(1 << 31) {
		m = -(1 << 32) - m
	}
	if m > int64(vpu.MaxS32) {
		m = int64(vpu.MaxS32)
	}
	if m < int64(vpu.MinS32) {
		m = int64(vpu.MinS32)
	}
	return int32(m)
}

// SbradSin returns sin(alpha * pi/2) in Q2.30 for an sbrad alpha.
func SbradSin(alpha int32) int32 {
	x2 := int32((int64(alpha) * int64(alpha)) >> 32) // Q30

	acc := int64(sbradSinCoef[len(sbradSinCoef)-1])
	for k := len(sbradSinCoef) - 2; k >= 0; k-- {
		acc = int64(sbradSinCoef[k]) + ((acc * int64(x2)) >> 30)
	}
	return vpu.SatS32((acc * int64(alpha)) >> 31)
}

// SbradTan returns tan(alpha * pi/2) in Q2.30 for |alpha| <= 0.5.
func SbradTan(alpha int32) int32 {
	x2 := int32((int64(alpha) * int64(alpha)) >> 32) // Q30

	acc := int64(sbradTanCoef[len(sbradTanCoef)-1])
	for k := len(sbradTanCoef) - 2; k >= 0; k-- {
		acc = int64(sbradTanCoef[k]) + ((acc * int64(x2)) >> 30)
	}
	return vpu.SatS32((acc * int64(alpha)) >> 31)
}

// Q24Sin returns sin(theta) in Q2.30 for a Q8.24 radian angle.
func Q24Sin(theta int32) int32 {
	return SbradSin(RadiansToSbrads(theta))
}

// Q24Cos returns cos(theta) in Q2.30 for a Q8.24 radian angle. The shift to
// sin's argument steps toward zero so the Q8.24 angle cannot overflow:
// the span of Q8.24 is not an integer multiple of 2*pi.
func Q24Cos(theta int32) int32 {
	var thetaMod int32
	if theta >= 0 {
		thetaMod = theta - threePiTwoQ24
	} else {
		thetaMod = theta + piHalfQ24
	}
	return SbradSin(RadiansToSbrads(thetaMod))
}

// radiansToTbrads reduces for tan instead of sin: tan's period is pi, which
// is exactly the Q1.31 wrap, so the truncating conversion is the reduction.
func radiansToTbrads(theta int32) int32 {
	acc := int64(invRhoQ31) * int64(theta)
	return int32(acc >> 24)
}

// Q24Tan returns tan(theta) for a Q8.24 radian angle. Arguments reducing
// past |0.5| sbrad are reflected and inverted, so the result is returned as
// a scalar float to cover tan's full range.
func Q24Tan(theta int32) vpu.FloatS32 {
	alpha := radiansToTbrads(theta)

	inv := alpha > 0x40000000 || alpha < -0x40000000
	if inv {
		// Reflect across +-0.5; the wrap at 2^31 makes one expression
		// serve both signs.
		alpha = int32(uint32(0x80000000) - uint32(alpha))
	}

	t := SbradTan(alpha)
	if !inv {
		return vpu.FloatS32{Mant: t, Exp: -30}
	}

	mant, exp := vpu.S32Inverse(t)
	return vpu.FloatS32{Mant: mant, Exp: exp + 30}
}
