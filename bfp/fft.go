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
	"github.com/ajroetker/go-bfp/fft"
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// FFT entry points. The transforms run in place over the input vector's
// buffer; the mono forms reinterpret the same memory as the other element
// type and return a vector header sharing it, so deallocating either view
// releases the same owned buffer at most once (the returned header carries
// the ownership flag, the input keeps its own copy — callers treat the pair
// as one vector in two shapes, exactly one of which is live).

// FFTForwardMono transforms a real vector of power-of-two length
// [16, fft.MaxFFTLen] into its packed half-spectrum. The result aliases x's
// buffer; x must not be used again until FFTInverseMono rebuilds it.
func FFTForwardMono(x *S32) *ComplexS32 {
	assertPow2(x.Length, "bfp: FFT length must be a power of two")

	fftN := x.Length

	// The DIT transform needs exactly two bits of headroom.
	xShr := vpu.RightShift(2 - int(x.HR))
	vect.Shl(x.Data[:fftN], x.Data[:fftN], vpu.LeftShift(-xShr))
	x.HR += vpu.Headroom(xShr)
	x.Exp += vpu.Exponent(xShr)

	// The N-point real FFT runs as an N/2-point complex FFT over the same
	// memory.
	X := &ComplexS32{
		Data:   complexView(x.Data[:fftN]),
		Length: fftN / 2,
		Exp:    x.Exp,
		HR:     x.HR,
		Flags:  x.Flags,
	}

	fft.IndexBitReversal(X.Data[:X.Length])
	fft.DitForward(X.Data[:X.Length], &X.HR, &X.Exp)
	fft.MonoAdjust(X.Data[:X.Length], fftN, false)

	X.HR = vect.ComplexS32Headroom(X.Data[:X.Length])
	return X
}

// FFTInverseMono transforms a packed half-spectrum back into the real
// signal, reusing the spectrum's buffer.
func FFTInverseMono(X *ComplexS32) *S32 {
	assertPow2(X.Length, "bfp: FFT length must be a power of two")

	fftN := 2 * X.Length

	XShr := vpu.RightShift(2 - int(X.HR))
	vect.ComplexS32Shr(X.Data[:X.Length], X.Data[:X.Length], XShr)
	X.HR += vpu.Headroom(XShr)
	X.Exp += vpu.Exponent(XShr)

	x := &S32{
		Data:   realView(X.Data[:X.Length]),
		Length: fftN,
		Exp:    X.Exp,
		HR:     X.HR,
		Flags:  X.Flags,
	}

	fft.MonoAdjust(X.Data[:X.Length], fftN, true)
	fft.IndexBitReversal(X.Data[:X.Length])
	fft.DitInverse(X.Data[:X.Length], &x.HR, &x.Exp)

	return x
}

// FFTForwardComplex transforms a complex vector of power-of-two length
// [4, fft.MaxFFTLen] in place.
func FFTForwardComplex(samples *ComplexS32) {
	assertPow2(samples.Length, "bfp: FFT length must be a power of two")

	if samples.HR < 2 {
		shl := vpu.LeftShift(int(samples.HR) - 2)
		samples.HR = vect.ComplexS32Shl(samples.Data[:samples.Length], samples.Data[:samples.Length], shl)
		samples.Exp -= vpu.Exponent(shl)
	}

	fft.IndexBitReversal(samples.Data[:samples.Length])
	fft.DitForward(samples.Data[:samples.Length], &samples.HR, &samples.Exp)
}

// FFTInverseComplex inverse-transforms a complex spectrum in place.
func FFTInverseComplex(spectrum *ComplexS32) {
	assertPow2(spectrum.Length, "bfp: FFT length must be a power of two")

	if spectrum.HR < 2 {
		shl := vpu.LeftShift(int(spectrum.HR) - 2)
		spectrum.HR = vect.ComplexS32Shl(spectrum.Data[:spectrum.Length], spectrum.Data[:spectrum.Length], shl)
		spectrum.Exp -= vpu.Exponent(shl)
	}

	fft.IndexBitReversal(spectrum.Data[:spectrum.Length])
	fft.DitInverse(spectrum.Data[:spectrum.Length], &spectrum.HR, &spectrum.Exp)
}

// FFTForwardStereo transforms two equal-length real vectors with a single
// complex FFT. The scratch buffer must hold a.Length complex elements and is
// exclusively owned by the call; the returned packed spectra alias a's and
// b's buffers.
func FFTForwardStereo(a, b *S32, scratch []vpu.ComplexS32) (*ComplexS32, *ComplexS32) {
	assert(a.Length == b.Length, "bfp: stereo channels must have equal length")
	assertPow2(a.Length, "bfp: FFT length must be a power of two")

	fftN := a.Length

	aShr := vpu.RightShift(2 - int(a.HR))
	bShr := vpu.RightShift(2 - int(b.HR))
	a.HR += vpu.Headroom(aShr)
	a.Exp += vpu.Exponent(aShr)
	b.HR += vpu.Headroom(bShr)
	b.Exp += vpu.Exponent(bShr)

	// Channel B rides in the imaginary parts of the complex input.
	vect.S32Zip(scratch[:fftN], a.Data[:fftN], b.Data[:fftN], aShr, bShr)

	fft.IndexBitReversal(scratch[:fftN])

	expDiff := vpu.Exponent(0)
	hr := a.HR
	fft.DitForward(scratch[:fftN], &hr, &expDiff)

	hr = fft.SpectraSplit(scratch[:fftN])

	aFFT := &ComplexS32{Data: complexView(a.Data[:fftN]), Length: fftN / 2, Exp: a.Exp, Flags: a.Flags}
	bFFT := &ComplexS32{Data: complexView(b.Data[:fftN]), Length: fftN / 2, Exp: b.Exp, Flags: b.Flags}

	copy(aFFT.Data[:fftN/2], scratch[:fftN/2])
	copy(bFFT.Data[:fftN/2], scratch[fftN/2:fftN])

	// The split only measures the headroom of the whole FFT_N-element
	// spectrum, which is the minimum over the two halves. Call Headroom on
	// either output for a per-channel count.
	aFFT.HR = hr
	bFFT.HR = hr
	aFFT.Exp += expDiff
	bFFT.Exp += expDiff

	return aFFT, bFFT
}

// FFTInverseStereo rebuilds the two real signals from their packed spectra.
// The scratch buffer must hold 2*aFFT.Length complex elements.
func FFTInverseStereo(aFFT, bFFT *ComplexS32, scratch []vpu.ComplexS32) (*S32, *S32) {
	assert(aFFT.Length == bFFT.Length, "bfp: stereo spectra must have equal length")
	assertPow2(aFFT.Length, "bfp: FFT length must be a power of two")

	fftN := 2 * aFFT.Length

	// Merging the spectra can cost a bit of headroom on top of the two the
	// inverse transform needs.
	aShr := vpu.RightShift(3 - int(aFFT.HR))
	bShr := vpu.RightShift(3 - int(bFFT.HR))

	aFFT.Exp += vpu.Exponent(aShr)
	bFFT.Exp += vpu.Exponent(bShr)
	aFFT.HR += vpu.Headroom(aShr)
	bFFT.HR += vpu.Headroom(bShr)

	vect.ComplexS32Shr(scratch[:fftN/2], aFFT.Data[:fftN/2], aShr)
	vect.ComplexS32Shr(scratch[fftN/2:fftN], bFFT.Data[:fftN/2], bShr)

	hr := vpu.Headroom(2)
	expDiff := vpu.Exponent(0)

	fft.SpectraMerge(scratch[:fftN])
	fft.IndexBitReversal(scratch[:fftN])
	fft.DitInverse(scratch[:fftN], &hr, &expDiff)

	a := &S32{Data: realView(aFFT.Data[:fftN/2]), Length: fftN, Exp: aFFT.Exp + expDiff, HR: hr, Flags: aFFT.Flags}
	b := &S32{Data: realView(bFFT.Data[:fftN/2]), Length: fftN, Exp: bFFT.Exp + expDiff, HR: hr, Flags: bFFT.Flags}

	vect.S32Unzip(a.Data[:fftN], b.Data[:fftN], scratch[:fftN])

	return a, b
}

// FFTUnpackMono expands a packed half-spectrum into length+1 bins, moving
// the Nyquist bin's real part out of the DC bin's imaginary part. The
// vector's buffer must have room for the extra element.
func FFTUnpackMono(x *ComplexS32) {
	x.Data = x.Data[:x.Length+1]
	x.Data[x.Length].Re = x.Data[0].Im
	x.Data[0].Im = 0
	x.Data[x.Length].Im = 0
	x.Length++
}

// FFTPackMono repacks a spectrum expanded by FFTUnpackMono; the inverse
// transforms assume the packed layout.
func FFTPackMono(x *ComplexS32) {
	x.Length--
	x.Data[0].Im = x.Data[x.Length].Re
	x.Data = x.Data[:x.Length]
}
