// Command firinfo prints the frequency response of the windowed-sinc
// kernels used by the FIR sample-rate converter.
//
// Usage:
//
//	firinfo [flags] [window-name ...]
//
// Without arguments it prints one row per known window type. Response
// frequencies are given in cycles per input sample, so 0.5 is the input
// Nyquist frequency.
//
// Examples:
//
//	firinfo blackman
//	firinfo -mul 16 hann blackman kaiser
//	firinfo -oversampling 256 -beta 5 kaiser
//	firinfo -freqs 0.4,0.5,0.6 -mul 32
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-srconv/dsp/resample"
	"github.com/cwbudde/algo-srconv/dsp/spectrum"
	"github.com/cwbudde/algo-srconv/dsp/window"
)

var errUsage = errors.New("invalid arguments")

var allWindows = []window.Type{
	window.TypeRectangular,
	window.TypeHann,
	window.TypeHamming,
	window.TypeBlackman,
	window.TypeExactBlackman,
	window.TypeBlackmanHarris4Term,
	window.TypeKaiser,
}

type options struct {
	overSample int
	multiplier int
	beta       float64
	freqs      string
	names      []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("firinfo: ")

	var o options
	flag.IntVar(&o.overSample, "oversampling", resample.DefaultOversampling, "filter phases per input sample")
	flag.IntVar(&o.multiplier, "mul", resample.DefaultMultiplier, "taps per output sample")
	flag.Float64Var(&o.beta, "beta", 8.6, "kaiser window beta")
	flag.StringVar(&o.freqs, "freqs", "0.25,0.45,0.5,0.75,1", "comma-separated response frequencies in cycles per input sample")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the response of the FIR converter kernel for each window.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo -mul 16 hann blackman kaiser\n")
		fmt.Fprintf(os.Stderr, "  firinfo -freqs 0.4,0.5,0.6 -mul 32\n")
	}
	flag.Parse()
	o.names = flag.Args()

	if err := run(o, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			log.Print(err)
			flag.Usage()
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(o options, stdout io.Writer) error {
	freqs, err := parseFreqs(o.freqs, o.overSample)
	if err != nil {
		return err
	}

	types := allWindows
	if len(o.names) > 0 {
		types = nil
		for _, name := range o.names {
			wt, err := window.ParseType(name)
			if err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			types = append(types, wt)
		}
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Window\tTaps\tDelay")
	for _, f := range freqs {
		fmt.Fprintf(tw, "\t%g [dB]", f)
	}
	fmt.Fprintln(tw)

	for _, wt := range types {
		row, err := analyze(o, wt, freqs)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}

func analyze(o options, wt window.Type, freqs []float64) (string, error) {
	c, err := resample.NewFIR[float64](1, 1,
		resample.WithOversampling(o.overSample),
		resample.WithMultiplier(o.multiplier),
		resample.WithWindow(wt),
		resample.WithKaiserBeta(o.beta),
	)
	if err != nil {
		return "", err
	}

	kernel := fullKernel(c.Taps())

	label := wt.String()
	if wt == window.TypeKaiser {
		label = fmt.Sprintf("%s (b=%.2f)", label, o.beta)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\t%d\t%.4g", label, len(kernel), c.Delay())

	for _, f := range freqs {
		mag, err := spectrum.AnalyzeBlock(kernel, f, float64(o.overSample))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\t%.2f", responsedB(mag, o.overSample))
	}

	return b.String(), nil
}

// fullKernel mirrors the stored rising half into the symmetric kernel.
func fullKernel(half []float64) []float64 {
	full := make([]float64, 2*len(half))
	for i, v := range half {
		full[i] = v
		full[len(full)-1-i] = v
	}

	return full
}

// responsedB scales a kernel DFT magnitude by its DC gain, which the
// design normalizes to the oversampling factor.
func responsedB(mag float64, oversampling int) float64 {
	gain := mag / float64(oversampling)
	if gain <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(gain)
}

func parseFreqs(list string, oversampling int) ([]float64, error) {
	var freqs []float64

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -freqs: %w", errUsage, err)
		}

		if f < 0 || f > float64(oversampling)/2 {
			return nil, fmt.Errorf("%w: -freqs: %g outside 0..%g", errUsage, f, float64(oversampling)/2)
		}

		freqs = append(freqs, f)
	}

	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: -freqs is empty", errUsage)
	}

	return freqs, nil
}
