package testutil

import (
	"math"
	"math/rand"
	"slices"

	"github.com/cwbudde/algo-srconv/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise of type T with a fixed seed,
// uniformly spread over [-amplitude, amplitude].
func DeterministicNoise[T core.Sample](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = core.Saturate[T]((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Split cuts x into consecutive chunks whose lengths cycle through sizes.
// Zero sizes yield empty chunks; without a positive size x is returned whole.
func Split[T any](x []T, sizes ...int) [][]T {
	if slices.Max(append([]int{0}, sizes...)) <= 0 {
		return [][]T{x}
	}

	var out [][]T
	for i, n := 0, 0; n < len(x); i++ {
		size := min(sizes[i%len(sizes)], len(x)-n)
		out = append(out, x[n:n+size])
		n += size
	}
	return out
}
