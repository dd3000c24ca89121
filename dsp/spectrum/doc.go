// Package spectrum provides spectrum-domain helpers for tone measurement.
//
// The package does not implement an FFT itself. [Magnitude] operates on
// complex bins produced by an external FFT backend, and [Goertzel]
// evaluates a single frequency directly from time-domain samples.
package spectrum
