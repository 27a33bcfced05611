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

// Package fft implements the in-place radix-4 block floating-point FFT
// engine: decimation-in-time and decimation-in-frequency transforms over
// complex 32-bit mantissa vectors, plus the real-spectrum helpers built on
// them.
//
// Transform lengths must be powers of two in [4, MaxFFTLen]. Inputs need at
// least two bits of headroom; per stage the engine scans the working
// headroom and applies a shift of +1, 0 or -1 so no butterfly can saturate,
// accumulating the net scaling into the exponent it returns.
package fft

import (
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// shiftModeFor maps the current working headroom to the per-stage shift:
// shift down when the headroom is thin, up when there is slack.
func shiftModeFor(hr vpu.Headroom) int {
	switch {
	case hr == 3:
		return 0
	case hr < 3:
		return 1
	default:
		return -1
	}
}

// vfttf is the forward 4-point butterfly used by the DIT transforms.
func vfttf(v []vpu.ComplexS32, shiftMode int) {
	var s [4]struct{ re, im int64 }

	s[0].re = int64(v[0].Re) + int64(v[1].Re)
	s[0].im = int64(v[0].Im) + int64(v[1].Im)
	s[1].re = int64(v[0].Re) - int64(v[1].Re)
	s[1].im = int64(v[0].Im) - int64(v[1].Im)
	s[2].re = int64(v[2].Re) + int64(v[3].Re)
	s[2].im = int64(v[2].Im) + int64(v[3].Im)
	s[3].re = int64(v[2].Im) - int64(v[3].Im)
	s[3].im = int64(v[3].Re) - int64(v[2].Re)

	v[0].Re = vpu.SatRoundShrS32(s[0].re+s[2].re, shiftMode)
	v[0].Im = vpu.SatRoundShrS32(s[0].im+s[2].im, shiftMode)
	v[1].Re = vpu.SatRoundShrS32(s[1].re+s[3].re, shiftMode)
	v[1].Im = vpu.SatRoundShrS32(s[1].im+s[3].im, shiftMode)
	v[2].Re = vpu.SatRoundShrS32(s[0].re-s[2].re, shiftMode)
	v[2].Im = vpu.SatRoundShrS32(s[0].im-s[2].im, shiftMode)
	v[3].Re = vpu.SatRoundShrS32(s[1].re-s[3].re, shiftMode)
	v[3].Im = vpu.SatRoundShrS32(s[1].im-s[3].im, shiftMode)
}

// vfttb is the inverse 4-point butterfly used by the DIT transforms.
func vfttb(v []vpu.ComplexS32, shiftMode int) {
	var s [4]struct{ re, im int64 }

	s[0].re = int64(v[0].Re) + int64(v[1].Re)
	s[0].im = int64(v[0].Im) + int64(v[1].Im)
	s[1].re = int64(v[0].Re) - int64(v[1].Re)
	s[1].im = int64(v[0].Im) - int64(v[1].Im)
	s[2].re = int64(v[2].Re) + int64(v[3].Re)
	s[2].im = int64(v[2].Im) + int64(v[3].Im)
	s[3].re = int64(v[3].Im) - int64(v[2].Im)
	s[3].im = int64(v[2].Re) - int64(v[3].Re)

	v[0].Re = vpu.SatRoundShrS32(s[0].re+s[2].re, shiftMode)
	v[0].Im = vpu.SatRoundShrS32(s[0].im+s[2].im, shiftMode)
	v[1].Re = vpu.SatRoundShrS32(s[1].re+s[3].re, shiftMode)
	v[1].Im = vpu.SatRoundShrS32(s[1].im+s[3].im, shiftMode)
	v[2].Re = vpu.SatRoundShrS32(s[0].re-s[2].re, shiftMode)
	v[2].Im = vpu.SatRoundShrS32(s[0].im-s[2].im, shiftMode)
	v[3].Re = vpu.SatRoundShrS32(s[1].re-s[3].re, shiftMode)
	v[3].Im = vpu.SatRoundShrS32(s[1].im-s[3].im, shiftMode)
}

// DitForward applies the radix-4 decimation-in-time FFT to x in place.
// Elements must already be in bit-reversed index order. hr and exp describe
// the input on entry and the output on return.
func DitForward(x []vpu.ComplexS32, hr *vpu.Headroom, exp *vpu.Exponent) {
	n := len(x)
	logN := 31 - vpu.ClsS32(int32(n))

	wi := 0
	var expMod vpu.Exponent

	shiftMode := shiftModeFor(*hr)
	expMod += vpu.Exponent(shiftMode)

	for j := 0; j < n>>2; j++ {
		vfttf(x[4*j:4*j+4], shiftMode)
	}

	if n != 4 {
		for stage := 0; stage < logN-2; stage++ {
			b := 1 << uint(stage+2)
			a := 1 << uint((logN-3)-stage)

			curHR := vect.ComplexS32Headroom(x)
			shiftMode = shiftModeFor(curHR)
			expMod += vpu.Exponent(shiftMode)

			for k := b - 4; k >= 0; k -= 4 {
				vC := ditLUT[wi : wi+4]
				wi += 4

				s := k
				for j := 0; j < a; j++ {
					var vD, vR [4]vpu.ComplexS32
					copy(vD[:], x[s+b:s+b+4])

					vect.ComplexS32Mul(vR[:], vD[:], vC, 0, 0)

					for i := 0; i < 4; i++ {
						vD[i].Re = vpu.SatRoundShrS32(int64(x[s+i].Re)-int64(vR[i].Re), shiftMode)
						vD[i].Im = vpu.SatRoundShrS32(int64(x[s+i].Im)-int64(vR[i].Im), shiftMode)
						vR[i].Re = vpu.SatRoundShrS32(int64(x[s+i].Re)+int64(vR[i].Re), shiftMode)
						vR[i].Im = vpu.SatRoundShrS32(int64(x[s+i].Im)+int64(vR[i].Im), shiftMode)
					}

					copy(x[s:s+4], vR[:])
					copy(x[s+b:s+b+4], vD[:])
					s += 2 * b
				}
			}
		}
	}

	*hr = vect.ComplexS32Headroom(x)
	*exp += expMod
}

// DitInverse applies the radix-4 decimation-in-time inverse FFT to x in
// place. The 1/N scaling is absorbed into the exponent rather than applied
// to the mantissas.
func DitInverse(x []vpu.ComplexS32, hr *vpu.Headroom, exp *vpu.Exponent) {
	n := len(x)
	logN := 31 - vpu.ClsS32(int32(n))

	wi := 0
	var expMod vpu.Exponent

	shiftMode := shiftModeFor(*hr)
	expMod += vpu.Exponent(shiftMode)
	expMod += -2

	for j := 0; j < n>>2; j++ {
		vfttb(x[4*j:4*j+4], shiftMode)
	}

	if n != 4 {
		for stage := 0; stage < logN-2; stage++ {
			b := 1 << uint(stage+2)
			a := 1 << uint((logN-3)-stage)

			curHR := vect.ComplexS32Headroom(x)
			shiftMode = shiftModeFor(curHR)
			expMod += vpu.Exponent(shiftMode)
			expMod += -1

			for k := b - 4; k >= 0; k -= 4 {
				vC := ditLUT[wi : wi+4]
				wi += 4

				s := k
				for j := 0; j < a; j++ {
					var vD, vR [4]vpu.ComplexS32
					copy(vD[:], x[s+b:s+b+4])

					vect.ComplexS32ConjMul(vR[:], vD[:], vC, 0, 0)

					for i := 0; i < 4; i++ {
						vD[i].Re = vpu.SatRoundShrS32(int64(x[s+i].Re)-int64(vR[i].Re), shiftMode)
						vD[i].Im = vpu.SatRoundShrS32(int64(x[s+i].Im)-int64(vR[i].Im), shiftMode)
						vR[i].Re = vpu.SatRoundShrS32(int64(x[s+i].Re)+int64(vR[i].Re), shiftMode)
						vR[i].Im = vpu.SatRoundShrS32(int64(x[s+i].Im)+int64(vR[i].Im), shiftMode)
					}

					copy(x[s:s+4], vR[:])
					copy(x[s+b:s+b+4], vD[:])
					s += 2 * b
				}
			}
		}
	}

	*hr = vect.ComplexS32Headroom(x)
	*exp += expMod
}

// vftff is the forward 4-point butterfly used by the DIF transforms.
func vftff(v []vpu.ComplexS32, shiftMode int) {
	var s [4]struct{ re, im int64 }

	s[0].re = int64(v[0].Re) + int64(v[2].Re)
	s[0].im = int64(v[0].Im) + int64(v[2].Im)
	s[1].re = int64(v[1].Re) + int64(v[3].Re)
	s[1].im = int64(v[1].Im) + int64(v[3].Im)
	s[2].re = int64(v[0].Re) - int64(v[2].Re)
	s[2].im = int64(v[0].Im) - int64(v[2].Im)
	s[3].re = int64(v[1].Im) - int64(v[3].Im)
	s[3].im = int64(v[3].Re) - int64(v[1].Re)

	v[0].Re = vpu.SatRoundShrS32(s[0].re+s[1].re, shiftMode)
	v[0].Im = vpu.SatRoundShrS32(s[0].im+s[1].im, shiftMode)
	v[1].Re = vpu.SatRoundShrS32(s[0].re-s[1].re, shiftMode)
	v[1].Im = vpu.SatRoundShrS32(s[0].im-s[1].im, shiftMode)
	v[2].Re = vpu.SatRoundShrS32(s[2].re+s[3].re, shiftMode)
	v[2].Im = vpu.SatRoundShrS32(s[2].im+s[3].im, shiftMode)
	v[3].Re = vpu.SatRoundShrS32(s[2].re-s[3].re, shiftMode)
	v[3].Im = vpu.SatRoundShrS32(s[2].im-s[3].im, shiftMode)
}

// vftfb is the inverse 4-point butterfly used by the DIF transforms.
func vftfb(v []vpu.ComplexS32, shiftMode int) {
	var s [4]struct{ re, im int64 }

	s[0].re = int64(v[0].Re) + int64(v[2].Re)
	s[0].im = int64(v[0].Im) + int64(v[2].Im)
	s[1].re = int64(v[1].Re) + int64(v[3].Re)
	s[1].im = int64(v[1].Im) + int64(v[3].Im)
	s[2].re = int64(v[0].Re) - int64(v[2].Re)
	s[2].im = int64(v[0].Im) - int64(v[2].Im)
	s[3].re = int64(v[3].Im) - int64(v[1].Im)
	s[3].im = int64(v[1].Re) - int64(v[3].Re)

	v[0].Re = vpu.SatRoundShrS32(s[0].re+s[1].re, shiftMode)
	v[0].Im = vpu.SatRoundShrS32(s[0].im+s[1].im, shiftMode)
	v[1].Re = vpu.SatRoundShrS32(s[0].re-s[1].re, shiftMode)
	v[1].Im = vpu.SatRoundShrS32(s[0].im-s[1].im, shiftMode)
	v[2].Re = vpu.SatRoundShrS32(s[2].re+s[3].re, shiftMode)
	v[2].Im = vpu.SatRoundShrS32(s[2].im+s[3].im, shiftMode)
	v[3].Re = vpu.SatRoundShrS32(s[2].re-s[3].re, shiftMode)
	v[3].Im = vpu.SatRoundShrS32(s[2].im-s[3].im, shiftMode)
}

func difStages(x []vpu.ComplexS32, shiftMode int, expMod *vpu.Exponent, inverse bool) int {
	n := len(x)
	logN := 31 - vpu.ClsS32(int32(n))
	wi := MaxFFTLen - n

	for stage := 0; stage < logN-2; stage++ {
		b := 1 << uint(logN-1-stage)
		a := 1 << uint(2+stage)

		for k := b - 4; k >= 0; k -= 4 {
			vC := difLUT[wi : wi+4]
			wi += 4

			for j := 0; j < a/4; j++ {
				s := 2*j*b + k

				var vD, vR [4]vpu.ComplexS32
				copy(vR[:], x[s:s+4])

				for i := 0; i < 4; i++ {
					vD[i].Re = vpu.SatRoundShrS32(int64(vR[i].Re)-int64(x[s+b+i].Re), shiftMode)
					vD[i].Im = vpu.SatRoundShrS32(int64(vR[i].Im)-int64(x[s+b+i].Im), shiftMode)
					vR[i].Re = vpu.SatRoundShrS32(int64(x[s+b+i].Re)+int64(vR[i].Re), shiftMode)
					vR[i].Im = vpu.SatRoundShrS32(int64(x[s+b+i].Im)+int64(vR[i].Im), shiftMode)
				}

				copy(x[s:s+4], vR[:])

				if inverse {
					vect.ComplexS32ConjMul(x[s+b:s+b+4], vD[:], vC, 0, 0)
				} else {
					vect.ComplexS32Mul(x[s+b:s+b+4], vD[:], vC, 0, 0)
				}
			}
		}

		curHR := vect.ComplexS32Headroom(x)
		shiftMode = shiftModeFor(curHR)
		*expMod += vpu.Exponent(shiftMode)
	}
	return shiftMode
}

// DifForward applies the radix-4 decimation-in-frequency FFT to x in place.
// The output is in bit-reversed index order.
func DifForward(x []vpu.ComplexS32, hr *vpu.Headroom, exp *vpu.Exponent) {
	n := len(x)
	var expMod vpu.Exponent

	shiftMode := shiftModeFor(*hr)
	expMod += vpu.Exponent(shiftMode)

	if n != 4 {
		shiftMode = difStages(x, shiftMode, &expMod, false)
	}

	for j := 0; j < n>>2; j++ {
		vftff(x[4*j:4*j+4], shiftMode)
	}

	*hr = vect.ComplexS32Headroom(x)
	*exp += expMod
}

// DifInverse applies the radix-4 decimation-in-frequency inverse FFT to x in
// place, folding the 1/N scaling into the exponent.
func DifInverse(x []vpu.ComplexS32, hr *vpu.Headroom, exp *vpu.Exponent) {
	n := len(x)
	logN := 31 - vpu.ClsS32(int32(n))

	expMod := vpu.Exponent(-logN)

	shiftMode := shiftModeFor(*hr)
	expMod += vpu.Exponent(shiftMode)

	if n != 4 {
		shiftMode = difStages(x, shiftMode, &expMod, true)
	}

	for j := 0; j < n>>2; j++ {
		vftfb(x[4*j:4*j+4], shiftMode)
	}

	*hr = vect.ComplexS32Headroom(x)
	*exp += expMod
}
