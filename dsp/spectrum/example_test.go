package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-srconv/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExampleAnalyzeBlock() {
	mag, err := spectrum.AnalyzeBlock([]float64{1, 1, 1, 1}, 0, 8000)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", mag)
	// Output:
	// 4.0
}
