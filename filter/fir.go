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

// Package filter provides stateful fixed-point FIR and biquad filters with
// Q-format coefficients and circular-buffer history.
package filter

import "github.com/ajroetker/go-bfp/vpu"

// FIRS32 is a 32-bit FIR filter. Coefficients are Q2.30; each tap product
// is rounded down 30 bits into one of eight saturating 40-bit lanes, the
// lanes are summed to a 43-bit total, and the final shift produces the
// 32-bit output.
type FIRS32 struct {
	numTaps int
	head    int
	shift   vpu.RightShift
	coef    []int32
	state   []int32
}

// InitFIRS32 binds a filter to its coefficients and a caller-provided
// history buffer of at least tap-count elements. shift is the final
// rounding right-shift applied to each output.
func InitFIRS32(sampleBuffer []int32, coefficients []int32, shift vpu.RightShift) *FIRS32 {
	if len(coefficients) == 0 {
		panic("filter: empty coefficient vector")
	}
	return &FIRS32{
		numTaps: len(coefficients),
		head:    len(coefficients) - 1,
		shift:   shift,
		coef:    coefficients,
		state:   sampleBuffer,
	}
}

// AddSample pushes a new input sample into the filter history without
// producing an output.
func (f *FIRS32) AddSample(newSample int32) {
	f.state[f.head] = newSample
	if f.head == 0 {
		f.head = f.numTaps - 1
	} else {
		f.head--
	}
}

// Run pushes a new input sample and returns the filter output.
func (f *FIRS32) Run(newSample int32) int32 {
	f.AddSample(newSample)

	var lanes [8]int64
	idx := f.head
	for t := 0; t < f.numTaps; t++ {
		idx++
		if idx == f.numTaps {
			idx = 0
		}
		p := vpu.RoundShr(int64(f.coef[t])*int64(f.state[idx]), 30)
		lanes[t%8] = vpu.SatS40(lanes[t%8] + p)
	}
	var total int64
	for _, l := range lanes {
		total += l
	}
	return vpu.SatRoundShrS32(total, int(f.shift))
}

// FIRS16 is a 16-bit FIR filter with a saturating 32-bit accumulator. To
// guarantee the accumulator cannot saturate, the coefficient norm must obey
// sum(|b[k]|) <= 2^16.
type FIRS16 struct {
	numTaps int
	shift   vpu.RightShift
	coef    []int16
	state   []int16
}

// InitFIRS16 binds a filter to its coefficients and a caller-provided
// history buffer of at least tap-count elements.
func InitFIRS16(sampleBuffer []int16, coefficients []int16, shift vpu.RightShift) *FIRS16 {
	if len(coefficients) == 0 {
		panic("filter: empty coefficient vector")
	}
	return &FIRS16{
		numTaps: len(coefficients),
		shift:   shift,
		coef:    coefficients,
		state:   sampleBuffer,
	}
}

// AddSample pushes a new input sample into the filter history without
// producing an output. The 16-bit history is kept newest-first.
func (f *FIRS16) AddSample(newSample int16) {
	copy(f.state[1:f.numTaps], f.state[:f.numTaps-1])
	f.state[0] = newSample
}

// Run pushes a new input sample and returns the filter output.
func (f *FIRS16) Run(newSample int16) int16 {
	f.AddSample(newSample)

	var acc int64
	for t := 0; t < f.numTaps; t++ {
		acc = int64(vpu.SatS32(acc + int64(f.coef[t])*int64(f.state[t])))
	}
	return vpu.SatRoundShrS16(acc, int(f.shift))
}
