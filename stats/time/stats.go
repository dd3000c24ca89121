package time

import (
	"math"

	"github.com/cwbudde/algo-srconv/dsp/core"
)

// Stats holds time-domain level statistics of a converted stream.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	ZeroCrossings  int
	// Clipped counts integer samples sitting on the limits of their type.
	// It is always zero for floating-point samples.
	Clipped int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes the statistics of x in a single pass.
func Calculate[T core.Sample](x []T) Stats {
	s := NewStreamingStats[T]()
	s.Update(x)

	return s.Result()
}

// Peak returns the peak absolute amplitude of x.
func Peak[T core.Sample](x []T) float64 {
	var peak float64
	for _, v := range x {
		peak = math.Max(peak, math.Abs(float64(v)))
	}

	return peak
}

// RMS returns the root-mean-square of x.
func RMS[T core.Sample](x []T) float64 {
	if len(x) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range x {
		f := float64(v)
		sumSq += f * f
	}

	return math.Sqrt(sumSq / float64(len(x)))
}

// StreamingStats accumulates statistics across blocks of samples, such as
// the successive outputs of a converter. Splitting a signal into blocks
// gives the same Result as [Calculate] on the whole signal.
type StreamingStats[T core.Sample] struct {
	n             int
	sum           float64
	sumSq         float64
	maxVal        float64
	maxPos        int
	minVal        float64
	minPos        int
	zeroCrossings int
	clipped       int
	lastSample    float64

	float  bool
	lo, hi float64
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats[T core.Sample]() *StreamingStats[T] {
	lo, hi := core.Limits[T]()

	return &StreamingStats[T]{float: core.IsFloat[T](), lo: lo, hi: hi}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats[T]) Update(samples []T) {
	for _, v := range samples {
		x := float64(v)

		if s.n == 0 || x > s.maxVal {
			s.maxVal = x
			s.maxPos = s.n
		}

		if s.n == 0 || x < s.minVal {
			s.minVal = x
			s.minPos = s.n
		}

		if s.n > 0 && s.lastSample*x < 0 {
			s.zeroCrossings++
		}

		if !s.float && (x <= s.lo || x >= s.hi) {
			s.clipped++
		}

		s.sum += x
		s.sumSq += x * x
		s.lastSample = x
		s.n++
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats[T]) Result() Stats {
	if s.n == 0 {
		return emptyStats()
	}

	nf := float64(s.n)
	rms := math.Sqrt(s.sumSq / nf)
	peak := math.Max(math.Abs(s.maxVal), math.Abs(s.minVal))

	var crest, crestdB float64
	if rms != 0 {
		crest = peak / rms
		crestdB = ampTodB(crest)
	}

	return Stats{
		Length:         s.n,
		DC:             s.sum / nf,
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Max:            s.maxVal,
		MaxPos:         s.maxPos,
		Min:            s.minVal,
		MinPos:         s.minPos,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		ZeroCrossings:  s.zeroCrossings,
		Clipped:        s.clipped,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats[T]) Reset() {
	*s = StreamingStats[T]{float: s.float, lo: s.lo, hi: s.hi}
}
