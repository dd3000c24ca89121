package resample

import "errors"

var (
	// ErrInvalidRate indicates a non-positive sample rate or a rate pair
	// whose step cannot be represented.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrInvalidAccuracy indicates linear accuracy bits outside (1, 32].
	ErrInvalidAccuracy = errors.New("resample: invalid accuracy")
	// ErrInvalidOrder indicates an even or non-positive Lagrange order.
	ErrInvalidOrder = errors.New("resample: invalid interpolation order")
	// ErrInvalidFilter indicates FIR parameters that cannot form an
	// even-length symmetric filter.
	ErrInvalidFilter = errors.New("resample: invalid filter parameters")
	// ErrUnknownMethod indicates an unsupported conversion method.
	ErrUnknownMethod = errors.New("resample: unknown method")
)
