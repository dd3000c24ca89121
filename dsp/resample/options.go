package resample

import "github.com/cwbudde/algo-srconv/dsp/window"

const (
	// DefaultAccuracy is the fixed-point precision of Linear in bits.
	DefaultAccuracy = 16
	// DefaultOrder is the Lagrange interpolation order.
	DefaultOrder = 3
	// DefaultOversampling is the number of FIR coefficient phases per input sample.
	DefaultOversampling = 1024
	// DefaultMultiplier is the number of FIR taps applied per output sample.
	DefaultMultiplier = 2
)

type config struct {
	accuracy     uint
	order        int
	oversampling int
	multiplier   int
	window       window.Type
	kaiserBeta   float64
}

// Option configures a converter. Options only record values; the
// constructor validates them.
type Option func(*config)

func defaultConfig() config {
	return config{
		accuracy:     DefaultAccuracy,
		order:        DefaultOrder,
		oversampling: DefaultOversampling,
		multiplier:   DefaultMultiplier,
		window:       window.TypeBlackman,
		kaiserBeta:   8.6,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithAccuracy sets the fixed-point precision of Linear, in bits.
func WithAccuracy(bits uint) Option {
	return func(cfg *config) {
		cfg.accuracy = bits
	}
}

// WithOrder sets the Lagrange interpolation order. It must be odd.
func WithOrder(n int) Option {
	return func(cfg *config) {
		cfg.order = n
	}
}

// WithOversampling sets the number of FIR coefficient phases per input
// sample. It determines the time resolution of the filter table.
func WithOversampling(n int) Option {
	return func(cfg *config) {
		cfg.oversampling = n
	}
}

// WithMultiplier sets the number of multiply-accumulate taps per FIR output
// sample. It determines CPU load and the length of the delay line.
// A multiplier of 1 is accepted but degenerate: an output at phase 0 reads
// only the outermost tap, which a tapering window drives to zero. Use 2 or
// more for usable output.
func WithMultiplier(n int) Option {
	return func(cfg *config) {
		cfg.multiplier = n
	}
}

// WithWindow selects the window applied to the FIR sinc kernel.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithKaiserBeta sets beta when the FIR window is window.TypeKaiser.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}
