package resample

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-srconv/internal/testutil"
)

func TestLinearKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
		bits    uint
		input   []int16
		want    []int16
	}{
		{
			name: "upsample x2", in: 1, out: 2, bits: 16,
			input: []int16{0, 10, 20, 30},
			want:  []int16{0, 5, 10, 15, 20, 25},
		},
		{
			name: "downsample x2", in: 2, out: 1, bits: 16,
			input: []int16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			want:  []int16{0, 2, 4, 6, 8},
		},
		{
			name: "negative slope floors", in: 1, out: 4, bits: 2,
			input: []int16{-7, -8},
			want:  []int16{-7, -8, -8, -8},
		},
		{
			name: "extremes", in: 1, out: 2, bits: 8,
			input: []int16{-32768, 32767, -32768},
			want:  []int16{-32768, -1, 32767, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLinear[int16](tt.in, tt.out, WithAccuracy(tt.bits))
			if err != nil {
				t.Fatalf("NewLinear() error = %v", err)
			}
			if got := c.PredictOutputLen(len(tt.input)); got != len(tt.want) {
				t.Fatalf("PredictOutputLen() = %d, want %d", got, len(tt.want))
			}
			testutil.RequireSliceEqual(t, c.Process(tt.input), tt.want)
		})
	}
}

func TestLinearIdentityIsExact(t *testing.T) {
	in := testutil.DeterministicNoise[int32](3, 2e9, 1000)

	for _, bits := range []uint{2, 8, 16, 31, 32} {
		c, err := NewLinear[int32](44100, 44100, WithAccuracy(bits))
		if err != nil {
			t.Fatalf("NewLinear(bits=%d) error = %v", bits, err)
		}

		var out []int32
		for _, chunk := range testutil.Split(in, 1, 17, 64) {
			out = c.ProcessTo(out, chunk)
		}

		testutil.RequireSliceEqual(t, out, in[:len(in)-1])
	}
}

func TestLinearFloatPath(t *testing.T) {
	c, err := NewLinear[float64](1, 4)
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	got := c.Process([]float64{0, 1, -1})
	want := []float64{0, 0.25, 0.5, 0.75, 1, 0.5, 0, -0.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestLinearNeverLeavesNeighbourRange(t *testing.T) {
	in := testutil.DeterministicNoise[int8](9, 128, 500)

	c, err := NewLinear[int8](7, 19, WithAccuracy(12))
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	out := c.Process(in)

	// Output m sits between input floor(m*7/19) and the sample after it.
	for m, y := range out {
		k := m * 7 / 19
		lo, hi := min(in[k], in[k+1]), max(in[k], in[k+1])
		if y < lo || y > hi {
			t.Fatalf("out[%d] = %d outside [%d, %d]", m, y, lo, hi)
		}
	}
}

func TestLinearOutputCountDoesNotDrift(t *testing.T) {
	const n = 1000000

	tests := []struct{ in, out int }{
		{in: 48000, out: 44100},
		{in: 44100, out: 48000},
		{in: 3500, out: 1200},
		{in: 7, out: 3},
	}

	zeros := make([]int16, n)

	for _, tt := range tests {
		c, err := NewLinear[int16](tt.in, tt.out)
		if err != nil {
			t.Fatalf("NewLinear() error = %v", err)
		}

		var got int
		for _, chunk := range testutil.Split(zeros, 4096, 333) {
			got += len(c.Process(chunk))
		}

		// Output m reads inputs floor(m*in/out) and the one after it, so
		// exactly the outputs with m*in < (n-1)*out are produced.
		want := (int64(n-1)*int64(tt.out) + int64(tt.in) - 1) / int64(tt.in)
		if int64(got) != want {
			t.Fatalf("%d -> %d: %d outputs from %d inputs, want %d", tt.in, tt.out, got, n, want)
		}
	}
}

func TestLinearInitKeepsStateOnError(t *testing.T) {
	c, err := NewLinear[int16](3, 2)
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}

	if err := c.Init(3, 2, 40); !errors.Is(err, ErrInvalidAccuracy) {
		t.Fatalf("Init(bits=40) error = %v, want %v", err, ErrInvalidAccuracy)
	}
	if err := c.Init(3, 0, 16); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("Init(out=0) error = %v, want %v", err, ErrInvalidRate)
	}

	in, out := c.Ratio()
	if in != 3 || out != 2 || c.Accuracy() != DefaultAccuracy {
		t.Fatalf("config changed: %d/%d bits %d", in, out, c.Accuracy())
	}

	if err := c.Init(1, 2, 8); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	testutil.RequireSliceEqual(t, c.Process([]int16{0, 10}), []int16{0, 5})
}
