// Package resample provides streaming sample-rate converters driven by a
// shared phase accumulator.
//
// Converters:
//   - Linear:   fixed-point linear interpolation, one sample of lookahead
//   - Lagrange: odd-order polynomial interpolation, delay (order+1)/2
//   - FIR:      polyphase windowed-sinc filter, delay multiplier/2
//
// Every converter is generic over the sample type (see core.Sample) and
// keeps its virtual time across calls, so feeding a signal in arbitrary
// chunks produces exactly the samples a single call over the whole signal
// would. Lagrange and FIR saturate their output to the range of the sample
// type.
//
// Common workflows:
//   - NewLinear(inRate, outRate, WithAccuracy(bits))
//   - NewLagrange(inRate, outRate, WithOrder(n))
//   - NewFIR(inRate, outRate, WithOversampling(n), WithMultiplier(m))
//   - New(Config{...}) / Resample(input, Config{...})
//
// A converter instance is not safe for concurrent use; independent
// instances need no coordination.
package resample
