package resample

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-srconv/dsp/window"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// DesignHalfFilter returns the first half of a symmetric windowed-sinc
// low-pass filter with oversampling*multiplier taps. Tap i of the returned
// L = oversampling*multiplier/2 taps is
//
//	sin(w*d)/d * win[i],  w = pi/oversampling,  d = i - (L-0.5)
//
// where win is the full-length window of type wt. The taps are scaled so
// that twice their sum divided by oversampling is 1, which gives unity
// passband gain for every phase.
func DesignHalfFilter(oversampling, multiplier int, wt window.Type, opts ...window.Option) ([]float64, error) {
	if oversampling < 1 || multiplier < 1 {
		return nil, fmt.Errorf("%w: oversampling %d, multiplier %d, want >= 1",
			ErrInvalidFilter, oversampling, multiplier)
	}

	if oversampling%2 == 1 && multiplier%2 == 1 {
		return nil, fmt.Errorf("%w: oversampling %d and multiplier %d are both odd",
			ErrInvalidFilter, oversampling, multiplier)
	}

	n := oversampling * multiplier
	if n/multiplier != oversampling || n > 1<<26 {
		return nil, fmt.Errorf("%w: %d x %d taps", ErrInvalidFilter, oversampling, multiplier)
	}

	win := window.Generate(wt, n, opts...)
	if win == nil {
		return nil, fmt.Errorf("%w: window %s", ErrInvalidFilter, wt)
	}

	half := n / 2
	taps := make([]float64, half)
	w := math.Pi / float64(oversampling)
	center := float64(half) - 0.5

	for i := range taps {
		d := float64(i) - center
		taps[i] = math.Sin(w*d) / d
	}

	vecmath.MulBlockInPlace(taps, win[:half])

	var sum float64
	for _, v := range taps {
		sum += v
	}

	sum = 2 * sum / float64(oversampling)
	if math.Abs(sum) <= 1e-9 || math.IsNaN(sum) {
		return nil, fmt.Errorf("%w: degenerate filter gain %g", ErrInvalidFilter, sum)
	}

	vecmath.ScaleBlock(taps, taps, 1/sum)

	return taps, nil
}
