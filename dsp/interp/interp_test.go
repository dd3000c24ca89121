package interp

import (
	"math"
	"testing"
)

func TestLinearFixed(t *testing.T) {
	tests := []struct {
		prev, next, frac int64
		bits             uint
		want             int64
	}{
		{prev: 0, next: 100, frac: 0, bits: 16, want: 0},
		{prev: 0, next: 100, frac: 1 << 15, bits: 16, want: 50},
		{prev: 100, next: 0, frac: 1 << 14, bits: 16, want: 75},
		{prev: -10, next: 10, frac: 1 << 15, bits: 16, want: 0},
		{prev: 0, next: -1, frac: 1, bits: 2, want: -1},
		{prev: -7, next: -8, frac: 3, bits: 2, want: -8},
		{prev: math.MinInt32, next: math.MaxInt32, frac: 1 << 31, bits: 32, want: -1},
		{prev: math.MaxInt32, next: math.MinInt32, frac: 1<<32 - 1, bits: 32, want: math.MinInt32},
	}

	for _, tt := range tests {
		if got := LinearFixed(tt.prev, tt.next, tt.frac, tt.bits); got != tt.want {
			t.Fatalf("LinearFixed(%d, %d, %d, %d) = %d, want %d",
				tt.prev, tt.next, tt.frac, tt.bits, got, tt.want)
		}
	}
}

func TestLinear(t *testing.T) {
	if got := Linear(2, 4, 0.25); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}
}

func TestLagrangeWeightsAtNodes(t *testing.T) {
	w := make([]float64, 4)
	for node := range w {
		LagrangeWeights(w, float64(node))
		for n, v := range w {
			want := 0.0
			if n == node {
				want = 1
			}
			if v != want {
				t.Fatalf("d=%d: w[%d] = %v, want %v", node, n, v, want)
			}
		}
	}
}

func TestLagrangeWeightsPartitionOfUnity(t *testing.T) {
	for _, order := range []int{1, 3, 5, 7} {
		w := make([]float64, order+1)
		for _, d := range []float64{0.1, 1.37, float64(order) / 2, 2.9} {
			LagrangeWeights(w, d)
			var sum float64
			for _, v := range w {
				sum += v
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Fatalf("order %d, d=%v: sum = %v, want 1", order, d, sum)
			}
		}
	}
}

func TestLagrangeExactForPolynomials(t *testing.T) {
	// Order 3 reproduces cubics exactly.
	f := func(x float64) float64 { return 0.5*x*x*x - 2*x*x + x - 3 }
	samples := []float64{f(0), f(1), f(2), f(3)}

	for _, d := range []float64{0.25, 1.5, 2.75} {
		got := Lagrange(samples, d)
		if diff := math.Abs(got - f(d)); diff > 1e-12 {
			t.Fatalf("d=%v: got %v want %v", d, got, f(d))
		}
	}
}

func TestLagrangeHighOrderAllocates(t *testing.T) {
	samples := make([]float64, 20)
	for i := range samples {
		samples[i] = float64(i)
	}
	if got := Lagrange(samples, 9.5); math.Abs(got-9.5) > 1e-6 {
		t.Fatalf("got %v want 9.5", got)
	}
}

func BenchmarkLagrangeWeightsOrder7(b *testing.B) {
	w := make([]float64, 8)
	for i := 0; i < b.N; i++ {
		LagrangeWeights(w, 3.37)
	}
}
