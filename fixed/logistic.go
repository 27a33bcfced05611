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

// Logistic power series coefficients in Q2.30; the trailing zero lane masks
// the eighth element out of the chunk dot product.
var logisticCoef = [9]int32{
	536870912, 268435456, -22369621, 2236962, -226359, 22932, -2323, 0, 0,
}

const (
	q24One      = 16777216 // 1.0 in Q8.24
	q24SeriesHi = 20132659 // 1.2 in Q8.24, series/exp crossover
)

// Q24Logistic returns 1/(1 + e^-x) in Q8.24 for a Q8.24 argument.
//
// Small magnitudes use the power series over the odd powers of x; larger
// ones go through e^-|x| and the geometric series for 1/(1+y). Negative
// arguments use logistic(-x) = 1 - logistic(x).
func Q24Logistic(x int32) int32 {
	isNeg := x < 0
	posX := x
	if isNeg {
		posX = ^x
	}

	var result int32
	if posX <= q24SeriesHi {
		var oddPowers [8]int32
		S32OddPowers(oddPowers[:], posX, 7, 24)

		result = logisticCoef[0] >> 6
		result += ChunkS32Dot(oddPowers[:], logisticCoef[1:])
	} else {
		yy := FloatS32Exp(vpu.FloatS32{Mant: -posX, Exp: -24})

		// Convert e^-x to Q8.24.
		y := vpu.AshrS32(yy.Mant, -24-int(yy.Exp))

		// 1/(1+y) as the geometric series in -y.
		y = -y
		yPow := int32(q24One)
		result = q24One
		for k := 0; k < 10; k++ {
			yPow = int32((int64(yPow) * int64(y)) >> 24)
			result += yPow
		}
	}

	if isNeg {
		result = q24One - result
	}
	return result
}
