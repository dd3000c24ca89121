package resample

import (
	"github.com/cwbudde/algo-srconv/dsp/core"
	"github.com/cwbudde/algo-srconv/dsp/interp"
)

// Linear converts by linear interpolation between consecutive input samples
// with a fixed-point phase. Each output needs the following input sample,
// so the stream lags by one sample. Integer samples are blended in integer
// arithmetic and cannot leave the range spanned by their neighbours.
// The blend weight has the configured accuracy, but the step carries the
// bits below it, so the output count never drifts from the ratio.
type Linear[T core.Sample] struct {
	inRate  int
	outRate int
	bits    uint

	phase phase
	prev  T
	float bool
}

// NewLinear creates a linear converter from inRate to outRate.
// WithAccuracy selects the fixed-point precision (default 16 bits).
func NewLinear[T core.Sample](inRate, outRate int, opts ...Option) (*Linear[T], error) {
	cfg := applyOptions(opts)

	c := &Linear[T]{float: core.IsFloat[T]()}
	if err := c.Init(inRate, outRate, cfg.accuracy); err != nil {
		return nil, err
	}

	return c, nil
}

// Init reconfigures the converter and clears its state. On error the
// converter is left unchanged.
func (c *Linear[T]) Init(inRate, outRate int, bits uint) error {
	p, err := newFixedPhase(inRate, outRate, bits, 1)
	if err != nil {
		return err
	}

	c.inRate, c.outRate, c.bits = inRate, outRate, bits
	c.phase = p
	c.prev = 0

	return nil
}

// Process converts an input block and returns the newly produced samples.
func (c *Linear[T]) Process(in []T) []T {
	if len(in) == 0 {
		return nil
	}

	return c.ProcessTo(make([]T, 0, c.PredictOutputLen(len(in))), in)
}

// ProcessTo converts an input block and appends the produced samples to dst.
func (c *Linear[T]) ProcessTo(dst, in []T) []T {
	i := 0

	for {
		n, ready := c.phase.next(len(in) - i)
		if n > 0 {
			c.prev = in[i+n-1]
			i += n
		}

		if !ready {
			return dst
		}

		dst = append(dst, c.blend(c.prev, in[i]))

		c.phase.step()
	}
}

func (c *Linear[T]) blend(prev, next T) T {
	if c.float {
		return T(interp.Linear(float64(prev), float64(next), c.phase.fraction()))
	}

	return T(interp.LinearFixed(int64(prev), int64(next), c.phase.frac, c.bits))
}

// PredictOutputLen returns the number of samples the next Process call
// with inputLen samples will produce.
func (c *Linear[T]) PredictOutputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}

	return c.phase.predict(inputLen)
}

// Reset clears the phase and the held sample, keeping the configuration.
func (c *Linear[T]) Reset() {
	c.phase.reset()
	c.prev = 0
}

// Ratio returns the configured input and output rates.
func (c *Linear[T]) Ratio() (in, out int) {
	return c.inRate, c.outRate
}

// Accuracy returns the fixed-point precision in bits.
func (c *Linear[T]) Accuracy() uint {
	return c.bits
}

// Delay is zero: output m reproduces the input at m*in/out exactly. The
// converter still holds one sample of lookahead, so the output trails the
// input stream by one sample.
func (c *Linear[T]) Delay() float64 {
	return 0
}
