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

// Split accumulators: a chunk of sixteen 32-bit accumulators stored as two
// parallel 16-element int16 arrays, VD holding the top halves and VR the
// bottom halves. Lane k's value is (VD[k] << 16) | (VR[k] & 0xFFFF). The
// split layout lets a 16-lane engine update all accumulators of a chunk in
// one pass.

// SplitAccChunkSize is the number of accumulator lanes per chunk.
const SplitAccChunkSize = 16

// SplitAccS32 is one chunk of sixteen split 32-bit accumulators.
type SplitAccS32 struct {
	VD [SplitAccChunkSize]int16
	VR [SplitAccChunkSize]int16
}

// Get returns the packed value of lane k.
func (s *SplitAccS32) Get(k int) int32 {
	return int32(s.VD[k])<<16 | int32(uint16(s.VR[k]))
}

// Put stores a packed value into lane k.
func (s *SplitAccS32) Put(k int, v int32) {
	s.VD[k] = int16(v >> 16)
	s.VR[k] = int16(uint16(v))
}

// S32MergeAccs converts split-accumulator chunks into a packed int32 vector.
// length is the number of accumulators; chunks beyond it are ignored.
func S32MergeAccs(a []int32, accs []SplitAccS32, length int) {
	for i := 0; i < length; i++ {
		a[i] = accs[i/SplitAccChunkSize].Get(i % SplitAccChunkSize)
	}
}

// S32SplitAccs converts a packed int32 vector into split-accumulator chunks.
func S32SplitAccs(accs []SplitAccS32, b []int32, length int) {
	for i := 0; i < length; i++ {
		accs[i/SplitAccChunkSize].Put(i%SplitAccChunkSize, b[i])
	}
}

// SplitAccS32Shr right-shifts every accumulator by shr bits, rounding, by
// merging, shifting and re-splitting.
func SplitAccS32Shr(accs []SplitAccS32, length int, shr vpu.RightShift) {
	for i := 0; i < length; i++ {
		c := &accs[i/SplitAccChunkSize]
		k := i % SplitAccChunkSize
		c.Put(k, vpu.AshrS32(c.Get(k), int(shr)))
	}
}

// CtrlWord carries the running headroom estimate across chunked accumulate
// calls, the way a vector-unit status register would.
type CtrlWord uint32

// CtrlWordInit returns the control word for a fresh accumulation.
func CtrlWordInit() CtrlWord {
	return CtrlWord(31)
}

// Headroom extracts the headroom bound encoded in the control word.
func (c CtrlWord) Headroom() vpu.Headroom {
	return vpu.Headroom(c & 0x1F)
}

func (c CtrlWord) fold(hr vpu.Headroom) CtrlWord {
	if hr < c.Headroom() {
		return CtrlWord(hr)
	}
	return c
}

// ChunkS16Accumulate adds the shifted elements of one 16-element int16 chunk
// into a split-accumulator chunk: acc[k] += b[k] >> bShr, saturating.
// Returns the control word updated with the headroom of the results.
func ChunkS16Accumulate(acc *SplitAccS32, b []int16, bShr vpu.RightShift, ctrl CtrlWord) CtrlWord {
	n := min(len(b), SplitAccChunkSize)
	for k := 0; k < n; k++ {
		// The sample is shifted in the 32-bit domain so a negative bShr can
		// promote it past 16 bits without loss.
		v := vpu.SatS32(int64(acc.Get(k)) + vpu.RoundShr(int64(b[k]), int(bShr)))
		acc.Put(k, v)
		ctrl = ctrl.fold(vpu.HRS32(v))
	}
	return ctrl
}

// S16Accumulate adds the shifted elements of b into the split accumulators
// chunk by chunk, returning the updated control word.
func S16Accumulate(accs []SplitAccS32, b []int16, bShr vpu.RightShift, ctrl CtrlWord) CtrlWord {
	for i := 0; i < len(b); i += SplitAccChunkSize {
		end := min(i+SplitAccChunkSize, len(b))
		ctrl = ChunkS16Accumulate(&accs[i/SplitAccChunkSize], b[i:end], bShr, ctrl)
	}
	return ctrl
}
