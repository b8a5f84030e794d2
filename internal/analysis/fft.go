package analysis

import (
	"math"
	"math/cmplx"
)

// PowerSpectrum returns the magnitude spectrum of a trace, zero-padded to
// the next power-of-two length. Bin i holds i cycles per padded window;
// only the first half of the spectrum is returned.
func PowerSpectrum(data []float64) []float64 {
	buf := make([]complex128, nextPow2(len(data)))
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	fft(buf)

	ps := make([]float64, len(buf)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(buf[i])
	}
	return ps
}

// fft transforms buf in place, iterative radix-2 Cooley-Tukey.
// len(buf) must be a power of two.
func fft(buf []complex128) {
	n := len(buf)

	// bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := start; k < start+size/2; k++ {
				a, b := buf[k], buf[k+size/2]*w
				buf[k] = a + b
				buf[k+size/2] = a - b
				w *= step
			}
		}
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
