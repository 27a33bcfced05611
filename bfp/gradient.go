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

package bfp

import (
	"unsafe"

	"github.com/ajroetker/go-bfp/fft"
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// Gradient constraint: time-alias suppression for frequency-domain adaptive
// filters. The spectrum is taken to the time domain, samples at and past
// frameAdvance are zeroed, and the result is transformed back.
//
// Using the inverse DIF transform followed by the forward DIT transform puts
// both bit-reversal permutations in the time domain, where they cancel; the
// zeroing loops therefore address samples through the bit-reversed index
// mapping instead of permuting the whole vector twice.

// GradientConstraintMono applies the gradient constraint to a packed mono
// spectrum. frameAdvance must be even and at most half the transform length;
// the upper half of the time-domain frame is always zeroed.
func (X *ComplexS32) GradientConstraintMono(frameAdvance int) {
	assertPow2(X.Length, "bfp: FFT length must be a power of two")

	fftN := 2 * X.Length
	fftNLog2 := vpu.CeilLog2(uint32(fftN))
	freqBins := fftN / 2

	// The inverse transform needs exactly two bits of headroom.
	X.UseExponent(X.Exp - vpu.Exponent(X.HR) + 2)

	fft.MonoAdjust(X.Data[:freqBins], fftN, true)
	fft.DifInverse(X.Data[:freqBins], &X.HR, &X.Exp)

	// The half-length real transform packs time-domain pairs td[2k],
	// td[2k+1] into one complex element, so the zeroing works on pairs:
	// td[frameAdvance:] == 0 means elements [frameAdvance/2 : freqBins] of
	// the complex view, addressed in bit-reversed order.

	// td[fftN/2:] lives at the odd bit-reversed indices.
	for i := 1; i < freqBins; i += 2 {
		X.Data[i] = vpu.ComplexS32{}
	}

	// td[frameAdvance : fftN/2].
	for i := frameAdvance / 2; i < freqBins/2; i++ {
		ri := vpu.Bitrev(uint32(i), fftNLog2-1)
		X.Data[ri] = vpu.ComplexS32{}
	}

	X.UseExponent(X.Exp - vpu.Exponent(X.HR) + 2)
	fft.DitForward(X.Data[:freqBins], &X.HR, &X.Exp)
	fft.MonoAdjust(X.Data[:freqBins], fftN, false)
	X.Headroom()
}

// GradientConstraintStereo applies the gradient constraint to two packed
// spectra. When the spectra have equal length and X2's buffer directly
// follows X1's, the pair is processed as one merged complex transform,
// which is faster; otherwise it falls back to two mono passes.
func GradientConstraintStereo(X1, X2 *ComplexS32, frameAdvance int) {
	assertPow2(X1.Length, "bfp: FFT length must be a power of two")
	assertPow2(X2.Length, "bfp: FFT length must be a power of two")

	fast := X1.Length == X2.Length &&
		len(X1.Data) >= X1.Length && len(X2.Data) > 0 &&
		unsafe.Pointer(&X2.Data[0]) == unsafe.Add(unsafe.Pointer(&X1.Data[0]),
			uintptr(X1.Length)*unsafe.Sizeof(vpu.ComplexS32{}))

	if !fast {
		X1.GradientConstraintMono(frameAdvance)
		X2.GradientConstraintMono(frameAdvance)
		return
	}

	fftN := 2 * X1.Length
	fftNLog2 := vpu.CeilLog2(uint32(fftN))

	X1.UseExponent(X1.Exp - vpu.Exponent(X1.HR) + 2)
	X2.UseExponent(X2.Exp - vpu.Exponent(X2.HR) + 2)

	comb := unsafe.Slice(&X1.Data[0], fftN)

	fft.SpectraMerge(comb)

	exp := vpu.Exponent(0)
	hr := vpu.Headroom(2)
	fft.DifInverse(comb, &hr, &exp)

	// frameAdvance <= fftN/2 always, so the top half of the time domain is
	// zeroed unconditionally. Those indices all have the most significant
	// index bit set, which lands them on the odd bit-reversed indices.
	for i := 1; i < fftN; i += 2 {
		comb[i] = vpu.ComplexS32{}
	}

	// td[frameAdvance : fftN/2], one bit-reversed index at a time. A
	// closed-form stride exists when the run length is a power of two, but
	// the run length is not guaranteed to be one.
	for i := frameAdvance; i < fftN/2; i++ {
		ri := vpu.Bitrev(uint32(i), fftNLog2)
		comb[ri] = vpu.ComplexS32{}
	}

	hr = vect.ComplexS32Headroom(comb)
	if hr != 2 {
		delta := vpu.RightShift(2 - int(hr))
		hr = vect.ComplexS32Shr(comb, comb, delta)
		exp += vpu.Exponent(delta)
	}

	fft.DitForward(comb, &hr, &exp)
	fft.SpectraSplit(comb)

	X1.Exp += exp
	X2.Exp += exp

	X1.Headroom()
	X2.Headroom()
}
