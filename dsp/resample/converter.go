package resample

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-srconv/dsp/core"
	"github.com/cwbudde/algo-srconv/dsp/window"
)

// Converter is a streaming sample-rate converter. Feeding a stream in
// chunks yields exactly the samples one call with the whole stream yields.
// A Converter is not safe for concurrent use.
type Converter[T core.Sample] interface {
	// Process consumes in and returns the samples that became available.
	Process(in []T) []T
	// ProcessTo is like Process but appends to dst.
	ProcessTo(dst, in []T) []T
	// Reset returns the converter to its freshly constructed state.
	Reset()
	// Ratio returns the input and output rates.
	Ratio() (in, out int)
	// Delay is the group delay in input samples: output m approximates
	// the input at time m*in/out - Delay().
	Delay() float64
}

var (
	_ Converter[int16]   = (*Linear[int16])(nil)
	_ Converter[float32] = (*Lagrange[float32])(nil)
	_ Converter[int32]   = (*FIR[int32])(nil)
)

// Method selects a conversion algorithm.
type Method int

const (
	// MethodLinear interpolates linearly with a fixed-point phase.
	MethodLinear Method = iota
	// MethodLagrange interpolates with an odd-order polynomial.
	MethodLagrange
	// MethodFIR filters with a polyphase windowed sinc.
	MethodFIR
)

var methodNames = [...]string{
	MethodLinear:   "linear",
	MethodLagrange: "lagrange",
	MethodFIR:      "fir",
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod accepts a method name, case-insensitive, or its number
// as used by the srconv -t flag ("0", "1", "2").
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for m, n := range methodNames {
		if name == n || name == fmt.Sprint(m) {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Config describes a converter. Zero parameters select the package
// defaults, including a nil Window, which selects window.TypeBlackman.
type Config struct {
	Method  Method
	InRate  int
	OutRate int

	// AccuracyBits is the fixed-point precision of MethodLinear.
	AccuracyBits uint
	// Order is the polynomial order of MethodLagrange.
	Order int
	// Oversampling, Multiplier, Window and KaiserBeta shape MethodFIR.
	Oversampling int
	Multiplier   int
	Window       *window.Type
	KaiserBeta   float64
}

// DefaultConfig returns a Config for method with every algorithm
// parameter at its default.
func DefaultConfig(method Method, inRate, outRate int) Config {
	d := defaultConfig()

	return Config{
		Method:       method,
		InRate:       inRate,
		OutRate:      outRate,
		AccuracyBits: d.accuracy,
		Order:        d.order,
		Oversampling: d.oversampling,
		Multiplier:   d.multiplier,
		Window:       &d.window,
		KaiserBeta:   d.kaiserBeta,
	}
}

func (c Config) options() []Option {
	var opts []Option

	if c.Window != nil {
		opts = append(opts, WithWindow(*c.Window))
	}

	if c.AccuracyBits != 0 {
		opts = append(opts, WithAccuracy(c.AccuracyBits))
	}

	if c.Order != 0 {
		opts = append(opts, WithOrder(c.Order))
	}

	if c.Oversampling != 0 {
		opts = append(opts, WithOversampling(c.Oversampling))
	}

	if c.Multiplier != 0 {
		opts = append(opts, WithMultiplier(c.Multiplier))
	}

	if c.KaiserBeta != 0 {
		opts = append(opts, WithKaiserBeta(c.KaiserBeta))
	}

	return opts
}

// New builds the converter described by cfg.
func New[T core.Sample](cfg Config) (Converter[T], error) {
	opts := cfg.options()

	switch cfg.Method {
	case MethodLinear:
		c, err := NewLinear[T](cfg.InRate, cfg.OutRate, opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	case MethodLagrange:
		c, err := NewLagrange[T](cfg.InRate, cfg.OutRate, opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	case MethodFIR:
		c, err := NewFIR[T](cfg.InRate, cfg.OutRate, opts...)
		if err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, cfg.Method)
	}
}

// Resample converts a complete signal in one call.
func Resample[T core.Sample](in []T, cfg Config) ([]T, error) {
	c, err := New[T](cfg)
	if err != nil {
		return nil, err
	}

	return c.Process(in), nil
}
