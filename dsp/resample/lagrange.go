package resample

import (
	"fmt"

	"github.com/cwbudde/algo-srconv/dsp/core"
	"github.com/cwbudde/algo-srconv/dsp/delay"
	"github.com/cwbudde/algo-srconv/dsp/interp"
)

// Lagrange converts by evaluating an odd-order interpolating polynomial
// through the most recent order+1 input samples. The polynomial may
// overshoot between samples; results are saturated to the range of T.
type Lagrange[T core.Sample] struct {
	inRate  int
	outRate int
	order   int

	phase   phase
	history *delay.Line
	weights []float64
	sat     core.Saturator[T]
}

// NewLagrange creates a Lagrange converter from inRate to outRate.
// WithOrder selects the polynomial order (default 3).
func NewLagrange[T core.Sample](inRate, outRate int, opts ...Option) (*Lagrange[T], error) {
	cfg := applyOptions(opts)

	c := &Lagrange[T]{sat: core.NewSaturator[T]()}
	if err := c.Init(inRate, outRate, cfg.order); err != nil {
		return nil, err
	}

	return c, nil
}

// Init reconfigures the converter and clears its state. On error the
// converter is left unchanged.
func (c *Lagrange[T]) Init(inRate, outRate, order int) error {
	if order < 1 || order%2 == 0 {
		return fmt.Errorf("%w: %d, want odd and >= 1", ErrInvalidOrder, order)
	}

	p, err := newRationalPhase(inRate, outRate, 0)
	if err != nil {
		return err
	}

	history, err := delay.New(order + 1)
	if err != nil {
		return err
	}

	c.inRate, c.outRate, c.order = inRate, outRate, order
	c.phase = p
	c.history = history
	c.weights = make([]float64, order+1)

	return nil
}

// Process converts an input block and returns the newly produced samples.
func (c *Lagrange[T]) Process(in []T) []T {
	if len(in) == 0 {
		return nil
	}

	return c.ProcessTo(make([]T, 0, c.PredictOutputLen(len(in))), in)
}

// ProcessTo converts an input block and appends the produced samples to dst.
func (c *Lagrange[T]) ProcessTo(dst, in []T) []T {
	half := float64(c.order-1) / 2
	i := 0

	for {
		n, ready := c.phase.next(len(in) - i)
		for _, x := range in[i : i+n] {
			c.history.Push(float64(x))
		}

		i += n

		if !ready {
			return dst
		}

		interp.LagrangeWeights(c.weights, half+c.phase.fraction())

		var y float64
		for k, w := range c.weights {
			y += w * c.history.At(k)
		}

		dst = append(dst, c.sat.Apply(y))

		c.phase.step()
	}
}

// PredictOutputLen returns the number of samples the next Process call
// with inputLen samples will produce.
func (c *Lagrange[T]) PredictOutputLen(inputLen int) int {
	if inputLen <= 0 {
		return 0
	}

	return c.phase.predict(inputLen)
}

// Reset clears the phase and the sample history, keeping the configuration.
func (c *Lagrange[T]) Reset() {
	c.phase.reset()
	c.history.Reset()
}

// Ratio returns the configured input and output rates.
func (c *Lagrange[T]) Ratio() (in, out int) {
	return c.inRate, c.outRate
}

// Order returns the polynomial order.
func (c *Lagrange[T]) Order() int {
	return c.order
}

// Delay returns (order+1)/2 input samples.
func (c *Lagrange[T]) Delay() float64 {
	return float64(c.order+1) / 2
}
