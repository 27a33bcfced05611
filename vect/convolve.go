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

package vect

import "github.com/ajroetker/go-bfp/vpu"

// PadMode selects how ConvolveSame extends the signal past its ends.
type PadMode int

const (
	// PadModeZero pads with zeros.
	PadModeZero PadMode = iota

	// PadModeExtend repeats the boundary sample.
	PadModeExtend

	// PadModeReflect mirrors the signal without repeating the boundary
	// sample.
	PadModeReflect
)

// MaxConvolveTaps is the largest supported filter length. Tap counts must be
// odd.
const MaxConvolveTaps = 7

// S32ConvolveValid convolves the signal with a Q2.30 filter, producing only
// the outputs for which the filter lies entirely inside the signal:
// out[k] = sum_t in[k+t] * filter[t]. len(out) must be
// len(in) - (taps - 1). Returns the headroom of the output.
func S32ConvolveValid(out, in, filterQ30 []int32) vpu.Headroom {
	taps := len(filterQ30)
	n := len(in) - (taps - 1)
	for k := 0; k < n; k++ {
		var lanes [accLanes]int64
		for t := 0; t < taps; t++ {
			p := vpu.RoundShr(int64(in[k+t])*int64(filterQ30[t]), 30)
			lanes[t%accLanes] = vpu.SatS40(lanes[t%accLanes] + p)
		}
		var total int64
		for _, l := range lanes {
			total += l
		}
		out[k] = vpu.SatS32(total)
	}
	return Headroom(out[:n])
}

func padConstant(buff []int32, value int32) {
	for i := range buff {
		buff[i] = value
	}
}

func padReflect(buff []int32, p int, in []int32, right bool) {
	if !right {
		for i := 0; i < p; i++ {
			buff[i] = in[p-i]
		}
	} else {
		for i := 0; i < p; i++ {
			buff[i] = in[len(in)-2-i]
		}
	}
}

// S32ConvolveSame convolves the signal with a Q2.30 filter, producing an
// output of the same length by padding the ends according to mode. The body
// is a valid convolution; each tail runs over a small padded buffer. Returns
// the headroom of the output.
func S32ConvolveSame(out, in, filterQ30 []int32, mode PadMode) vpu.Headroom {
	taps := len(filterQ30)
	p := taps >> 1
	n := len(in)

	resHR := S32ConvolveValid(out[p:p+(n-(taps-1))], in, filterQ30)

	var buff [MaxConvolveTaps + MaxConvolveTaps/2]int32

	// Left tail.
	copyCount := taps + p - 1
	for i := p; i < copyCount; i++ {
		buff[i] = in[i-p]
	}
	switch mode {
	case PadModeReflect:
		padReflect(buff[:p], p, in, false)
	case PadModeExtend:
		padConstant(buff[:p], in[0])
	default:
		padConstant(buff[:p], 0)
	}
	hr := S32ConvolveValid(out[:p], buff[:copyCount], filterQ30)
	resHR = min(resHR, hr)

	// Right tail.
	for i := 0; i < taps-1; i++ {
		buff[i] = in[n+1-taps+i]
	}
	switch mode {
	case PadModeReflect:
		padReflect(buff[taps-1:taps-1+p], p, in, true)
	case PadModeExtend:
		padConstant(buff[taps-1:taps-1+p], in[n-1])
	default:
		padConstant(buff[taps-1:taps-1+p], 0)
	}
	hr = S32ConvolveValid(out[n-p:], buff[:copyCount], filterQ30)
	resHR = min(resHR, hr)

	return resHR
}
