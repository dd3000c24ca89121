// Package delay provides the fixed-capacity sample history used by the
// interpolating converters.
package delay

import "fmt"

// Line is a circular buffer holding the most recent Len() samples.
type Line struct {
	buffer   []float64
	writePos int
}

// New returns a zero-filled line of fixed size.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Push writes one sample over the oldest one.
func (d *Line) Push(sample float64) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// At returns the i-th sample counted from the oldest.
// At(0) is the oldest sample and At(Len()-1) the newest.
func (d *Line) At(i int) float64 {
	return d.buffer[d.wrap(d.writePos+i)]
}

// Tap returns the k-th sample counted from the newest.
// Tap(0) is the newest sample.
func (d *Line) Tap(k int) float64 {
	return d.buffer[d.wrap(d.writePos-1-k)]
}

// Reset clears line state.
func (d *Line) Reset() {
	for i := range d.buffer {
		d.buffer[i] = 0
	}
	d.writePos = 0
}

func (d *Line) wrap(i int) int {
	n := len(d.buffer)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
