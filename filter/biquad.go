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

package filter

import "github.com/ajroetker/go-bfp/vpu"

// BiquadSections is the number of second-order sections one BiquadS32
// carries. Longer cascades chain multiple structs.
const BiquadSections = 8

// BiquadSectionCoef holds one section's coefficients in Q2.30, with the
// feedback terms pre-negated: [b0, b1, b2, -a1, -a2].
type BiquadSectionCoef [5]int32

// BiquadS32 is a cascade of up to eight direct-form-I second-order sections
// with 32-bit state and Q2.30 coefficients.
type BiquadS32 struct {
	// SectionCount is how many of the eight sections are active.
	SectionCount int

	// Coef[s] holds section s's [b0, b1, b2, -a1, -a2].
	Coef [BiquadSections]BiquadSectionCoef

	// state[s] holds section s's [x[n-1], x[n-2], y[n-1], y[n-2]].
	state [BiquadSections][4]int32
}

// InitBiquadS32 builds a cascade from per-section coefficient rows.
func InitBiquadS32(sections []BiquadSectionCoef) *BiquadS32 {
	if len(sections) == 0 || len(sections) > BiquadSections {
		panic("filter: section count must be in [1, 8]")
	}
	f := &BiquadS32{SectionCount: len(sections)}
	copy(f.Coef[:], sections)
	return f
}

// Run feeds one sample through the cascade and returns the output.
func (f *BiquadS32) Run(newSample int32) int32 {
	smp := newSample
	for s := 0; s < f.SectionCount; s++ {
		c := &f.Coef[s]
		st := &f.state[s]

		acc := int64(c[0]) * int64(smp)
		acc += int64(c[1]) * int64(st[0])
		acc += int64(c[2]) * int64(st[1])
		acc += int64(c[3]) * int64(st[2])
		acc += int64(c[4]) * int64(st[3])
		y := vpu.SatRoundShrS32(acc, 30)

		st[1] = st[0]
		st[0] = smp
		st[3] = st[2]
		st[2] = y
		smp = y
	}
	return smp
}

// RunBiquads feeds one sample through a chain of cascades.
func RunBiquads(blocks []*BiquadS32, newSample int32) int32 {
	smp := newSample
	for _, b := range blocks {
		smp = b.Run(smp)
	}
	return smp
}
