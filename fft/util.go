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

package fft

import (
	"github.com/ajroetker/go-bfp/vect"
	"github.com/ajroetker/go-bfp/vpu"
)

// Q2.30 constant vectors used by the real-spectrum adjustment.
var (
	vecPosJ = [4]vpu.ComplexS32{
		{Re: 0, Im: 0x40000000}, {Re: 0, Im: 0x40000000},
		{Re: 0, Im: 0x40000000}, {Re: 0, Im: 0x40000000},
	}
	vecOnes = [4]vpu.ComplexS32{
		{Re: 0x40000000, Im: 0}, {Re: 0x40000000, Im: 0},
		{Re: 0x40000000, Im: 0}, {Re: 0x40000000, Im: 0},
	}
)

// IndexBitReversal permutes a so element i moves to the bit-reversal of i
// over log2(len(a)) bits. It is its own inverse.
func IndexBitReversal(a []vpu.ComplexS32) {
	logN := vpu.CeilLog2(uint32(len(a)))
	for i := range a {
		rev := int(vpu.Bitrev(uint32(i), logN))
		if rev < i {
			continue
		}
		a[i], a[rev] = a[rev], a[i]
	}
}

// SpectraSplit untangles the FFT of two interleaved real signals. On entry X
// holds the length-N complex spectrum of a + j*b; on return the first half
// holds A's packed spectrum and the second half holds B's. The input must
// have at least one bit of headroom. Returns the headroom of the result.
func SpectraSplit(X []vpu.ComplexS32) vpu.Headroom {
	n := len(X)
	k := n / 2

	// Reverse the order of the second half past the Nyquist bin, so bin f
	// of the lower half lines up with bin -f of the upper half.
	for f := 1; f < n/4; f++ {
		X[k+f], X[n-f] = X[n-f], X[k+f]
	}

	// The DC and Nyquist bins of a real signal's spectrum are purely real;
	// the Nyquist value is stuffed into the imaginary part of the DC bin.
	// The bins are pre-combined so the split loop below can treat them like
	// every other pair, which is what costs the one bit of headroom.
	x0 := X[0]
	xn := X[k]
	X[0].Re = x0.Re - xn.Im
	X[0].Im = x0.Im + xn.Re
	X[k].Re = x0.Re + xn.Im
	X[k].Im = x0.Im - xn.Re

	for f := 0; f < k; f++ {
		// A[f] = (X[f] + conj(X[-f])) / 2
		// B[f] = j*(conj(X[-f]) - X[f]) / 2
		xp := vpu.ComplexS32{Re: X[f].Re >> 1, Im: X[f].Im >> 1}
		xn := vpu.ComplexS32{Re: X[k+f].Re >> 1, Im: X[k+f].Im >> 1}

		X[f].Re = xp.Re + xn.Re
		X[f].Im = xp.Im - xn.Im
		X[k+f].Re = xp.Im + xn.Im
		X[k+f].Im = -xp.Re + xn.Re
	}

	return vect.ComplexS32Headroom(X)
}

// SpectraMerge reassembles the interleaved-signal spectrum that SpectraSplit
// took apart, so a single complex inverse FFT can recover both time-domain
// signals. Returns the headroom of the result.
func SpectraMerge(X []vpu.ComplexS32) vpu.Headroom {
	n := len(X)
	k := n / 2

	// Pre-boggle DC and Nyquist.
	dc := vpu.ComplexS32{Re: X[0].Re >> 1, Im: X[0].Im >> 1}
	ny := vpu.ComplexS32{Re: X[k].Re >> 1, Im: X[k].Im >> 1}
	X[0].Re = dc.Re + dc.Im
	X[0].Im = ny.Re - ny.Im
	X[k].Re = ny.Re + ny.Im
	X[k].Im = -dc.Re + dc.Im

	for f := 0; f < k; f++ {
		// X[f] = a + j*b;  X[k+f] = conj(a - j*b)
		a := X[f]
		b := X[k+f]

		X[f].Re = a.Re - b.Im
		X[f].Im = a.Im + b.Re
		X[k+f].Re = b.Im + a.Re
		X[k+f].Im = b.Re - a.Im
	}

	for f := 1; f < n/4; f++ {
		X[k+f], X[n-f] = X[n-f], X[k+f]
	}

	return vect.ComplexS32Headroom(X)
}

// MonoAdjust converts between the half-length complex FFT of an interleaved
// real signal and the packed spectrum of that real signal. x holds fftN/2
// complex elements; fftN must be at least 16. The adjustment uses the tail
// of the DIT twiddle table, walking it backward.
func MonoAdjust(x []vpu.ComplexS32, fftN int, inverse bool) {
	if fftN < 16 {
		panic("fft: MonoAdjust requires a transform length of at least 16")
	}

	wi := fftN - 8

	x0 := x[0]
	xq := x[fftN/4]

	vect.ComplexS32TailReverse(x[fftN/4:])

	lo, hi := 0, fftN/4
	if inverse {
		lo, hi = hi, lo
	}

	for k := 0; k < fftN/4; k += 4 {
		var xLo, xHi, tmp, va, vb [4]vpu.ComplexS32
		copy(xLo[:], x[lo:lo+4])
		copy(xHi[:], x[hi:hi+4])

		// tmp = j*W
		copy(tmp[:], ditLUT[wi:wi+4])
		vect.ComplexS32Mul(tmp[:], tmp[:], vecPosJ[:], 0, 0)

		// va = 0.5*(1 - j*W);  vb = 0.5*(1 + j*W)
		vect.ComplexS32Sub(va[:], vecOnes[:], tmp[:], 1, 1)
		vect.ComplexS32Add(vb[:], vecOnes[:], tmp[:], 1, 1)

		// new_lo = va*X_lo + vb*conj(X_hi)
		vect.ComplexS32Mul(x[lo:lo+4], va[:], xLo[:], 0, 0)
		vect.ComplexS32ConjMul(tmp[:], vb[:], xHi[:], 0, 0)
		vect.ComplexS32Add(x[lo:lo+4], x[lo:lo+4], tmp[:], 0, 0)

		// new_hi = conj(va)*X_hi + conj(vb)*conj(X_lo)
		vect.ComplexS32ConjMul(x[hi:hi+4], xHi[:], va[:], 0, 0)
		vect.ComplexS32Conjugate(vb[:], vb[:])
		vect.ComplexS32ConjMul(tmp[:], vb[:], xLo[:], 0, 0)
		vect.ComplexS32Add(x[hi:hi+4], x[hi:hi+4], tmp[:], 0, 0)

		wi -= 4
		lo += 4
		hi += 4
	}

	if inverse {
		x0.Re = vpu.AshrS32(x0.Re, 1)
		x0.Im = vpu.AshrS32(x0.Im, 1)
	}

	// Fix DC and Nyquist.
	x[0].Re = vpu.SatS32(int64(x0.Re) + int64(x0.Im))
	x[0].Im = vpu.SatS32(int64(x0.Re) - int64(x0.Im))
	x[fftN/4].Re = xq.Re
	x[fftN/4].Im = vpu.SatS32(-int64(xq.Im))

	vect.ComplexS32TailReverse(x[fftN/4:])
}
