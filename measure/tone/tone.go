// Package tone measures the frequency and level of a single tone, used to
// check that a converter preserves pitch and amplitude.
package tone

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-srconv/dsp/spectrum"
	"github.com/cwbudde/algo-srconv/dsp/window"
	timestats "github.com/cwbudde/algo-srconv/stats/time"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Result holds the measurements of a tone.
type Result struct {
	// ZeroCrossings counts sign changes between consecutive samples.
	ZeroCrossings int
	// Frequency is estimated from the interpolated zero-crossing instants.
	Frequency float64
	// DominantHz is the strongest spectral peak of the Hann-windowed signal,
	// refined by parabolic interpolation.
	DominantHz float64
	// Amplitude is the sine amplitude at DominantHz, measured with a
	// Hann-windowed Goertzel filter.
	Amplitude float64
	// Peak is the largest absolute sample value.
	Peak float64
	// RMS is the root mean square level.
	RMS float64
}

// String formats the result on one line.
func (r Result) String() string {
	return fmt.Sprintf("crossings=%d freq=%.2fHz dominant=%.2fHz amplitude=%.2f peak=%.2f rms=%.2f",
		r.ZeroCrossings, r.Frequency, r.DominantHz, r.Amplitude, r.Peak, r.RMS)
}

// Analyze measures x sampled at sampleRate. An empty signal or a
// non-positive rate yields the zero Result.
func Analyze(x []float64, sampleRate float64) Result {
	if len(x) == 0 || sampleRate <= 0 {
		return Result{}
	}

	level := timestats.Calculate(x)
	res := Result{Peak: level.Peak, RMS: level.RMS}

	res.ZeroCrossings, res.Frequency = crossings(x, sampleRate)

	coeffs := window.Generate(window.TypeHann, len(x))
	res.DominantHz = dominant(x, coeffs, sampleRate)
	res.Amplitude = amplitude(x, coeffs, res.DominantHz, sampleRate)

	return res
}

// crossings counts sign changes and estimates the frequency from the time
// between the first and the last one.
func crossings(x []float64, sampleRate float64) (int, float64) {
	count := 0
	first, last := 0.0, 0.0

	for i := 1; i < len(x); i++ {
		a, b := x[i-1], x[i]
		if (a < 0) == (b < 0) {
			continue
		}

		at := float64(i-1) + a/(a-b)
		if count == 0 {
			first = at
		}

		last = at
		count++
	}

	if count < 2 || last <= first {
		return count, 0
	}

	return count, float64(count-1) / 2 / (last - first) * sampleRate
}

func dominant(x, coeffs []float64, sampleRate float64) float64 {
	n := nextPowerOf2(len(x))
	if n < 4 {
		return 0
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0
	}

	bins := n/2 + 1
	mag := spectrum.Magnitude(out[:bins])

	peak := 1
	for i := 2; i < bins-1; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	bin := float64(peak)
	if peak+1 < bins {
		a, b, c := mag[peak-1], mag[peak], mag[peak+1]
		if den := a - 2*b + c; den != 0 {
			bin += 0.5 * (a - c) / den
		}
	}

	return bin * sampleRate / float64(n)
}

// amplitude scales the windowed DFT magnitude at freq back to the peak
// amplitude of a sine: A = 2|X(f)| / sum(w).
func amplitude(x, coeffs []float64, freq, sampleRate float64) float64 {
	if freq <= 0 {
		return 0
	}

	g, err := spectrum.NewGoertzel(freq, sampleRate)
	if err != nil {
		return 0
	}

	windowed := make([]float64, len(x))
	vecmath.MulBlock(windowed, x, coeffs)
	g.ProcessBlock(windowed)

	var sum float64
	for _, w := range coeffs {
		sum += w
	}

	if sum == 0 {
		return 0
	}

	return 2 * g.Magnitude() / sum
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
