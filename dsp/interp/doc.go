// Package interp provides the per-sample interpolation kernels used by the
// streaming converters in dsp/resample.
//
// Available kernels:
//
//   - [LinearFixed]:     2-point linear blend in fixed-point arithmetic
//   - [Linear]:          2-point linear blend in floating point
//   - [LagrangeWeights]: Lagrange basis of arbitrary order at a fractional position
//   - [Lagrange]:        polynomial interpolation over a sample window
package interp
