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

const (
	ln2Q24     = 11629080   // ln(2) in Q8.24
	ln2Q30     = 744261118  // ln(2) in Q2.30
	invLn2Q30  = 0x5C551D95 // 1/ln(2) in Q2.30
	invLn10Q30 = 0x1BCB7B15 // 1/ln(10) in Q2.30
)

// FloatS32Exp computes e^x. The argument is reduced by its integer part in
// ln(2) units, which becomes a power of two folded into the result exponent;
// the residue (|r| <= ln(2)/2) goes through the small-argument series.
// Arguments must satisfy |x| < 128 so the Q8.24 reduction cannot overflow.
func FloatS32Exp(x vpu.FloatS32) vpu.FloatS32 {
	x24 := vpu.AshrS32(x.Mant, -24-int(x.Exp))

	t := int64(x24) * int64(invLn2Q30) // Q54, x/ln2
	k := int((t + (1 << 53)) >> 54)

	r24 := x24 - int32(int64(k)*ln2Q24)
	r30 := r24 << 6

	return vpu.FloatS32{
		Mant: s32PowerSeries(r30, expSmallCoef[:]),
		Exp:  vpu.Exponent(-30 + k),
	}
}
