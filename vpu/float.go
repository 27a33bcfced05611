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

import "math"

// FloatS32 arithmetic. These are the scalar counterparts of the BFP vector
// operations: exponents are chosen from operand headroom exactly the way the
// vector prepare helpers do it.

// ashr shifts without rounding, saturating left shifts. Scalar float
// arithmetic truncates on right shifts.
func ashr(x int32, shr int) int32 {
	if shr >= 32 {
		if x >= 0 {
			return 0
		}
		return -1
	}
	if shr >= 0 {
		return x >> uint(shr)
	}
	if shr <= -32 {
		shr = -31
	}
	tmp := int64(x) << uint(-shr)
	if tmp > int64(math.MaxInt32) {
		return math.MaxInt32
	}
	if tmp < int64(math.MinInt32) {
		return math.MinInt32
	}
	return int32(tmp)
}

// Add returns x + y.
func (x FloatS32) Add(y FloatS32) FloatS32 {
	xMin := x.Exp - Exponent(HRS32(x.Mant))
	yMin := y.Exp - Exponent(HRS32(y.Mant))
	exp := max(xMin, yMin) + 1
	return FloatS32{
		Mant: ashr(x.Mant, int(exp-x.Exp)) + ashr(y.Mant, int(exp-y.Exp)),
		Exp:  exp,
	}
}

// Sub returns x - y.
func (x FloatS32) Sub(y FloatS32) FloatS32 {
	xMin := x.Exp - Exponent(HRS32(x.Mant))
	yMin := y.Exp - Exponent(HRS32(y.Mant))
	exp := max(xMin, yMin) + 1
	return FloatS32{
		Mant: ashr(x.Mant, int(exp-x.Exp)) - ashr(y.Mant, int(exp-y.Exp)),
		Exp:  exp,
	}
}

// Mul returns x * y.
func (x FloatS32) Mul(y FloatS32) FloatS32 {
	var res FloatS32
	res.Mant, res.Exp = S32Mul(x.Mant, y.Mant, x.Exp, y.Exp)
	return res
}

// Div returns x / y.
func (x FloatS32) Div(y FloatS32) FloatS32 {
	var t FloatS32
	t.Mant, t.Exp = S32Inverse(y.Mant)
	t.Exp -= y.Exp
	return x.Mul(t)
}

// Abs returns |x|.
func (x FloatS32) Abs() FloatS32 {
	x.Mant = AbsS32(x.Mant)
	return x
}

// Gt reports whether x > y.
func (x FloatS32) Gt(y FloatS32) bool {
	return x.Sub(y).Mant > 0
}

// Gte reports whether x >= y.
func (x FloatS32) Gte(y FloatS32) bool {
	return x.Sub(y).Mant >= 0
}

// Ema returns the exponential moving average coef*x + (1-coef)*y, with the
// coefficient in Q2.30.
func (x FloatS32) Ema(y FloatS32, coefQ30 int32) FloatS32 {
	t := FloatS32{Mant: coefQ30, Exp: -30}
	s := FloatS32{Mant: 0x40000000 - coefQ30, Exp: -30}
	return x.Mul(t).Add(y.Mul(s))
}

// Sqrt returns the square root of x at full depth.
func (x FloatS32) Sqrt() FloatS32 {
	var res FloatS32
	res.Mant, res.Exp = S32Sqrt(x.Mant, x.Exp, SqrtMaxDepth)
	return res
}

// Float64 converts x to a float64.
func (x FloatS32) Float64() float64 {
	return math.Ldexp(float64(x.Mant), int(x.Exp))
}

// ToFloatS64 widens x without changing the represented value.
func (x FloatS32) ToFloatS64() FloatS64 {
	return FloatS64{Mant: int64(x.Mant), Exp: x.Exp}
}

// ToFloatS32 narrows x, shifting the mantissa into the 32-bit range.
func (x FloatS64) ToFloatS32() FloatS32 {
	res := FloatS32{Mant: int32(x.Mant), Exp: x.Exp}
	if hr := HRS64(x.Mant); hr < 32 {
		shr := 32 - int(hr)
		res.Mant = int32(x.Mant >> uint(shr))
		res.Exp = x.Exp + Exponent(shr)
	}
	return res
}

// Float64 converts x to a float64.
func (x FloatS64) Float64() float64 {
	return math.Ldexp(float64(x.Mant), int(x.Exp))
}
