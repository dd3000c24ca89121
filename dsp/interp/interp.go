package interp

import "math/bits"

// maxStackOrder bounds the order Lagrange evaluates without allocating.
const maxStackOrder = 15

// LinearFixed blends prev towards next by frac/2^shift:
//
//	prev + (frac*(next-prev)) >> shift
//
// The shift is arithmetic, so negative differences round towards -Inf.
// frac must lie in [0, 2^shift) and shift in [1, 63]. The product is formed
// in 128 bits, so any pair of int64 samples is safe.
func LinearFixed(prev, next, frac int64, shift uint) int64 {
	if next >= prev {
		hi, lo := bits.Mul64(uint64(next)-uint64(prev), uint64(frac))
		return int64(uint64(prev) + shiftRight128(hi, lo, shift))
	}

	hi, lo := bits.Mul64(uint64(prev)-uint64(next), uint64(frac))
	lo, carry := bits.Add64(lo, 1<<shift-1, 0)

	return int64(uint64(prev) - shiftRight128(hi+carry, lo, shift))
}

func shiftRight128(hi, lo uint64, shift uint) uint64 {
	return lo>>shift | hi<<(64-shift)
}

// Linear blends prev towards next by frac in [0,1).
func Linear(prev, next, frac float64) float64 {
	return prev + frac*(next-prev)
}

// LagrangeWeights fills dst with the Lagrange basis polynomials evaluated
// at position d, for nodes 0..len(dst)-1:
//
//	dst[n] = prod_{k != n} (d-k)/(n-k)
//
// The weights sum to 1 for any d.
func LagrangeWeights(dst []float64, d float64) {
	for n := range dst {
		w := 1.0
		for k := range dst {
			if k != n {
				w *= (d - float64(k)) / float64(n-k)
			}
		}
		dst[n] = w
	}
}

// Lagrange evaluates the interpolating polynomial through samples at
// position d, where samples[i] sits at node i.
func Lagrange(samples []float64, d float64) float64 {
	var stack [maxStackOrder + 1]float64

	var w []float64
	if len(samples) <= len(stack) {
		w = stack[:len(samples)]
	} else {
		w = make([]float64, len(samples))
	}

	LagrangeWeights(w, d)

	var y float64
	for i, s := range samples {
		y += w[i] * s
	}
	return y
}
