package resample_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-srconv/dsp/resample"
	"github.com/cwbudde/algo-srconv/dsp/signal"
	"github.com/cwbudde/algo-srconv/measure/tone"
)

// A 120 Hz tone sampled at 3500 Hz with amplitude 1000 is converted to
// 1200 Hz. The output must keep the pitch and follow the ideal tone,
// shifted by the converter delay.
func TestKnownWaveformScenario(t *testing.T) {
	const (
		inRate  = 3500
		outRate = 1200
		freq    = 120.0
		amp     = 1000.0
	)

	x, err := signal.NewGenerator(inRate).Sine(freq, amp, inRate)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	tests := []struct {
		name   string
		cfg    resample.Config
		tol    float64
		warmup int
	}{
		{name: "linear", cfg: withBits(resample.DefaultConfig(resample.MethodLinear, inRate, outRate), 32), tol: 12, warmup: 1},
		{name: "lagrange", cfg: resample.DefaultConfig(resample.MethodLagrange, inRate, outRate), tol: 3, warmup: 2},
		{name: "lagrange order 7", cfg: withOrder(resample.DefaultConfig(resample.MethodLagrange, inRate, outRate), 7), tol: 2, warmup: 3},
		{name: "fir", cfg: withMultiplier(resample.DefaultConfig(resample.MethodFIR, inRate, outRate), 16), tol: 12, warmup: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := resample.New[int16](tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			out := c.Process(signal.Quantize[int16](x))
			y := signal.Float(out)

			res := tone.Analyze(y, outRate)
			if math.Abs(float64(res.ZeroCrossings)-240) > 2 {
				t.Fatalf("zero crossings = %d, want 240 +- 2", res.ZeroCrossings)
			}
			if math.Abs(res.Frequency-freq) > 1 {
				t.Fatalf("frequency = %.3f Hz, want %v", res.Frequency, freq)
			}
			if math.Abs(res.DominantHz-freq) > 1 {
				t.Fatalf("dominant = %.3f Hz, want %v", res.DominantHz, freq)
			}
			if math.Abs(res.Amplitude-amp) > 0.02*amp {
				t.Fatalf("amplitude = %.2f, want %v", res.Amplitude, amp)
			}
			// Ten samples per period catch the crest within cos(pi/10).
			if res.Peak < amp*math.Cos(math.Pi/10)-tt.tol || res.Peak > amp+tt.tol {
				t.Fatalf("peak = %v, want about %v", res.Peak, amp)
			}

			// Output m reproduces the tone at m*in/out - Delay() input samples.
			step := float64(inRate) / outRate
			start := int(math.Ceil((float64(tt.warmup) + c.Delay()) / step))
			for m := start; m < len(y); m++ {
				at := float64(m)*step - c.Delay()
				want := amp * math.Sin(2*math.Pi*freq*at/inRate)
				if d := math.Abs(y[m] - want); d > tt.tol {
					t.Fatalf("out[%d] = %v, want %.2f (diff %.2f > %v)", m, y[m], want, d, tt.tol)
				}
			}
		})
	}
}

func withBits(cfg resample.Config, bits uint) resample.Config {
	cfg.AccuracyBits = bits
	return cfg
}

func withOrder(cfg resample.Config, order int) resample.Config {
	cfg.Order = order
	return cfg
}

func withMultiplier(cfg resample.Config, mul int) resample.Config {
	cfg.Multiplier = mul
	return cfg
}
