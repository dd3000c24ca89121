package resample

import (
	"github.com/cwbudde/algo-srconv/dsp/core"
	"github.com/cwbudde/algo-srconv/dsp/delay"
	"github.com/cwbudde/algo-srconv/dsp/window"
)

// FIR converts with a polyphase windowed-sinc low-pass filter. The filter
// table holds oversampling phases per input sample; each output picks the
// phase nearest to its fractional position and applies multiplier taps.
// Only half of the symmetric table is stored.
type FIR[T core.Sample] struct {
	inRate       int
	outRate      int
	oversampling int
	multiplier   int

	phase phase
	line  *delay.Line
	taps  []float64
	sat   core.Saturator[T]
}

// NewFIR creates a polyphase FIR converter from inRate to outRate.
// WithOversampling, WithMultiplier, WithWindow and WithKaiserBeta shape
// the filter (defaults 1024, 2, Blackman).
func NewFIR[T core.Sample](inRate, outRate int, opts ...Option) (*FIR[T], error) {
	cfg := applyOptions(opts)

	c := &FIR[T]{sat: core.NewSaturator[T]()}

	err := c.Init(inRate, outRate, cfg.oversampling, cfg.multiplier,
		cfg.window, window.WithAlpha(cfg.kaiserBeta))
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Init redesigns the filter and clears the converter state. On error the
// converter is left unchanged.
func (c *FIR[T]) Init(inRate, outRate, oversampling, multiplier int, wt window.Type, opts ...window.Option) error {
	p, err := newRationalPhase(inRate, outRate, 0)
	if err != nil {
		return err
	}

	taps, err := DesignHalfFilter(oversampling, multiplier, wt, opts...)
	if err != nil {
		return err
	}

	line, err := delay.New(multiplier)
	if err != nil {
		return err
	}

	c.inRate, c.outRate = inRate, outRate
	c.oversampling, c.multiplier = oversampling, multiplier
	c.phase = p
	c.line = line
	c.taps = taps

	return nil
}

// Process converts an input block and returns the newly produced samples.
func (c *FIR[T]) Process(in []T) []T {
	if len(in) == 0 {
		return nil
	}

	return c.ProcessTo(make([]T, 0, c.PredictOutputLen(len(in))), in)
}

// ProcessTo converts an input block and appends the produced samples to dst.
func (c *FIR[T]) ProcessTo(dst, in []T) []T {
	i := 0

	for {
		n, ready := c.phase.next(len(in) - i)
		for _, x := range in[i : i+n] {
			c.line.Push(float64(x))
		}

		i += n

		if !ready {
			return dst
		}

		dst = append(dst, c.sat.Apply(c.filter(c.phase.fraction())))

		c.phase.step()
	}
}

// filter applies the phase nearest to frac. Coefficient j of the full
// symmetric table is taps[j] for j < L and taps[2L-1-j] above.
func (c *FIR[T]) filter(frac float64) float64 {
	half := len(c.taps)
	full := 2 * half

	j := int(0.5 + float64(c.oversampling)*frac)
	k := 0

	var y float64

	for ; j < half && k < c.multiplier; j, k = j+c.oversampling, k+1 {
		y += c.taps[j] * c.line.Tap(k)
	}

	for ; j < full && k < c.multiplier; j, k = j+c.oversampling, k+1 {
		y += c.taps[full-1-j] * c.line.Tap(k)
	}

	return y
}

// PredictOutputLen returns the number of samples the next Process call
// with inputLen samples will produce.
func (c *FIR[T]) PredictOutputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}

	return c.phase.predict(inputLen)
}

// Reset clears the phase and the delay line, keeping the filter.
func (c *FIR[T]) Reset() {
	c.phase.reset()
	c.line.Reset()
}

// Ratio returns the configured input and output rates.
func (c *FIR[T]) Ratio() (in, out int) {
	return c.inRate, c.outRate
}

// Taps returns a copy of the stored half of the filter table.
func (c *FIR[T]) Taps() []float64 {
	return append([]float64(nil), c.taps...)
}

// Oversampling returns the number of filter phases per input sample.
func (c *FIR[T]) Oversampling() int {
	return c.oversampling
}

// Multiplier returns the number of taps applied per output sample.
func (c *FIR[T]) Multiplier() int {
	return c.multiplier
}

// Delay returns the filter group delay, oversampling*multiplier/2 table
// entries or multiplier/2 input samples.
func (c *FIR[T]) Delay() float64 {
	return float64(len(c.taps)) / float64(c.oversampling)
}
