package core

import (
	"math"
	"unsafe"
)

// Sample is the set of element types a converter can stream.
// Unsigned types are excluded because audio and sensor samples are
// bipolar around zero.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

type bounds struct {
	float  bool
	lo, hi float64
	minInt int64
	maxInt int64
}

func boundsOf[T Sample]() bounds {
	var zero T

	half := 0.5
	if T(half) != 0 {
		if unsafe.Sizeof(zero) == 4 {
			return bounds{float: true, lo: -math.MaxFloat32, hi: math.MaxFloat32}
		}

		return bounds{float: true, lo: -math.MaxFloat64, hi: math.MaxFloat64}
	}

	switch unsafe.Sizeof(zero) {
	case 1:
		return bounds{lo: math.MinInt8, hi: math.MaxInt8, minInt: math.MinInt8, maxInt: math.MaxInt8}
	case 2:
		return bounds{lo: math.MinInt16, hi: math.MaxInt16, minInt: math.MinInt16, maxInt: math.MaxInt16}
	case 4:
		return bounds{lo: math.MinInt32, hi: math.MaxInt32, minInt: math.MinInt32, maxInt: math.MaxInt32}
	default:
		return bounds{lo: math.MinInt64, hi: math.MaxInt64, minInt: math.MinInt64, maxInt: math.MaxInt64}
	}
}

// IsFloat reports whether T is a floating-point sample type.
func IsFloat[T Sample]() bool {
	return boundsOf[T]().float
}

// Limits returns the lowest and highest value representable by T.
func Limits[T Sample]() (lo, hi float64) {
	b := boundsOf[T]()
	return b.lo, b.hi
}

// Saturate converts v to T, clamping it to the representable range of T.
// Integer targets are rounded to the nearest value, halves away from zero.
// NaN converts to zero.
func Saturate[T Sample](v float64) T {
	return saturate[T](v, boundsOf[T]())
}

// Saturator caches the bounds of T for hot loops.
type Saturator[T Sample] struct {
	b bounds
}

// NewSaturator returns a Saturator for T.
func NewSaturator[T Sample]() Saturator[T] {
	return Saturator[T]{b: boundsOf[T]()}
}

// Apply is equivalent to Saturate[T](v).
func (s Saturator[T]) Apply(v float64) T {
	return saturate[T](v, s.b)
}

func saturate[T Sample](v float64, b bounds) T {
	if math.IsNaN(v) {
		return 0
	}

	if b.float {
		return T(Clamp(v, b.lo, b.hi))
	}

	r := math.Round(v)
	if r >= b.hi {
		return T(b.maxInt)
	}

	if r <= b.lo {
		return T(b.minInt)
	}

	return T(int64(r))
}
