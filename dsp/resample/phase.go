package resample

import (
	"fmt"
	"math"
)

// phase tracks virtual time: how many input samples have been consumed and
// at which input tick the next output sample is due. The output time is
// target + frac/den; the remainder is exact, so chunk boundaries never
// change the produced samples.
type phase struct {
	ticks  int64
	target int64
	frac   int64

	den      int64
	stepInt  int64
	stepFrac int64

	// rem/remDen is the part of the step below 1/den. It carries into
	// frac so the long-run step stays exact. Zero for rational phases.
	rem     int64
	remDen  int64
	stepRem int64

	// lookahead is the number of unconsumed input samples an output needs.
	lookahead int
}

// newRationalPhase steps by exactly inRate/outRate input samples per output.
func newRationalPhase(inRate, outRate, lookahead int) (phase, error) {
	if inRate <= 0 || outRate <= 0 {
		return phase{}, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, inRate, outRate)
	}

	g := gcd(inRate, outRate)
	num := int64(inRate / g)
	den := int64(outRate / g)

	return phase{
		den:       den,
		stepInt:   num / den,
		stepFrac:  num % den,
		remDen:    1,
		lookahead: lookahead,
	}, nil
}

// newFixedPhase steps by inRate/outRate with a binary fraction of the given
// precision. The bits below that precision accumulate separately and carry
// into the fraction, so output positions are floor(m*in/out*2^bits)/2^bits
// and the output count never drifts.
func newFixedPhase(inRate, outRate int, bits uint, lookahead int) (phase, error) {
	if inRate <= 0 || outRate <= 0 {
		return phase{}, fmt.Errorf("%w: %d -> %d", ErrInvalidRate, inRate, outRate)
	}

	if bits <= 1 || bits > 32 {
		return phase{}, fmt.Errorf("%w: %d bits, want (1, 32]", ErrInvalidAccuracy, bits)
	}

	if int64(inRate) > math.MaxInt64>>bits {
		return phase{}, fmt.Errorf("%w: input rate %d overflows %d-bit step", ErrInvalidRate, inRate, bits)
	}

	scaled := int64(inRate) << bits
	quotient := scaled / int64(outRate)
	if quotient <= 0 {
		return phase{}, fmt.Errorf("%w: step %d/%d underflows %d bits", ErrInvalidRate, inRate, outRate, bits)
	}

	mask := int64(1)<<bits - 1

	return phase{
		den:       mask + 1,
		stepInt:   quotient >> bits,
		stepFrac:  quotient & mask,
		remDen:    int64(outRate),
		stepRem:   scaled % int64(outRate),
		lookahead: lookahead,
	}, nil
}

// next consumes input until the next output instant is reachable. avail is
// the number of input samples left in the current call. It returns how many
// of them were consumed and whether an output sample is due now.
func (p *phase) next(avail int) (consumed int, ready bool) {
	for p.ticks <= p.target {
		if consumed == avail {
			p.rebase()
			return consumed, false
		}

		consumed++
		p.ticks++
	}

	if avail-consumed < p.lookahead {
		p.rebase()
		return consumed, false
	}

	return consumed, true
}

// step advances virtual time by one output period.
func (p *phase) step() {
	r := p.rem + p.stepRem
	p.rem = r % p.remDen

	t := p.frac + p.stepFrac + r/p.remDen
	p.target += p.stepInt + t/p.den
	p.frac = t % p.den
}

// rebase removes the common part of ticks and target. Only their
// difference matters, so this keeps both small on endless streams.
func (p *phase) rebase() {
	m := min(p.ticks, p.target)
	p.ticks -= m
	p.target -= m
}

// fraction returns the fractional output position in [0, 1).
func (p *phase) fraction() float64 {
	return float64(p.frac) / float64(p.den)
}

func (p *phase) reset() {
	p.ticks = 0
	p.target = 0
	p.frac = 0
	p.rem = 0
}

// predict counts the outputs a call with n input samples would produce.
func (p *phase) predict(n int) int {
	q := *p
	count := 0

	for {
		c, ready := q.next(n)
		n -= c

		if !ready {
			return count
		}

		count++

		q.step()
	}
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}
