package tone

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-srconv/internal/testutil"
)

func TestAnalyzeSine(t *testing.T) {
	tests := []struct {
		freq, rate, amp float64
		n               int
	}{
		{freq: 1000, rate: 48000, amp: 0.5, n: 4800},
		{freq: 120, rate: 3500, amp: 1000, n: 3500},
		{freq: 120, rate: 1200, amp: 1000, n: 1200},
	}

	for _, tt := range tests {
		x := testutil.DeterministicSine(tt.freq, tt.rate, tt.amp, tt.n)
		res := Analyze(x, tt.rate)

		wantCrossings := 2 * tt.freq * float64(tt.n) / tt.rate
		if math.Abs(float64(res.ZeroCrossings)-wantCrossings) > 2 {
			t.Fatalf("%v Hz @ %v: crossings = %d, want ~%.0f", tt.freq, tt.rate, res.ZeroCrossings, wantCrossings)
		}
		if math.Abs(res.Frequency-tt.freq) > 0.01*tt.freq {
			t.Fatalf("%v Hz @ %v: Frequency = %v", tt.freq, tt.rate, res.Frequency)
		}
		if math.Abs(res.DominantHz-tt.freq) > 0.02*tt.freq {
			t.Fatalf("%v Hz @ %v: DominantHz = %v", tt.freq, tt.rate, res.DominantHz)
		}
		if math.Abs(res.Amplitude-tt.amp) > 0.01*tt.amp {
			t.Fatalf("%v Hz @ %v: Amplitude = %v, want ~%v", tt.freq, tt.rate, res.Amplitude, tt.amp)
		}
		if res.Peak > tt.amp || res.Peak < 0.95*tt.amp {
			t.Fatalf("%v Hz @ %v: Peak = %v, want ~%v", tt.freq, tt.rate, res.Peak, tt.amp)
		}
		if math.Abs(res.RMS-tt.amp/math.Sqrt2) > 0.01*tt.amp {
			t.Fatalf("%v Hz @ %v: RMS = %v, want ~%v", tt.freq, tt.rate, res.RMS, tt.amp/math.Sqrt2)
		}
	}
}

func TestAnalyzeDegenerate(t *testing.T) {
	if res := Analyze(nil, 48000); res != (Result{}) {
		t.Fatalf("Analyze(nil) = %+v, want zero", res)
	}
	if res := Analyze([]float64{1, -1}, 0); res != (Result{}) {
		t.Fatalf("Analyze(rate 0) = %+v, want zero", res)
	}

	res := Analyze([]float64{2, 2, 2, 2, 2, 2, 2, 2}, 8)
	if res.ZeroCrossings != 0 || res.Frequency != 0 {
		t.Fatalf("DC signal: %+v", res)
	}
	if res.Peak != 2 || res.RMS != 2 {
		t.Fatalf("DC signal: peak %v rms %v, want 2", res.Peak, res.RMS)
	}
}

func TestResultString(t *testing.T) {
	r := Result{ZeroCrossings: 4, Frequency: 50, DominantHz: 50.5, Amplitude: 1, Peak: 1, RMS: 0.71}
	want := "crossings=4 freq=50.00Hz dominant=50.50Hz amplitude=1.00 peak=1.00 rms=0.71"
	if got := r.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
