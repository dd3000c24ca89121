// Command srconv converts the sample rate of a text file of samples.
//
// Usage:
//
//	srconv [flags] -in input.txt -out output.txt -fi rate -fo rate
//
// The input holds whitespace-separated numbers; the output holds one
// converted sample per line.
//
// Examples:
//
//	srconv -in in.txt -out out.txt -fi 3500 -fo 1200
//	srconv -in in.txt -out out.txt -fi 44100 -fo 48000 -method lagrange -order 5
//	srconv -in in.txt -out out.txt -fi 8000 -fo 22050 -t 2 -oversampling 512 -mul 16 -type f32
//	srconv -in in.txt -out out.txt -fi 48000 -fo 44100 -method fir -block 256
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/algo-srconv/dsp/core"
	"github.com/cwbudde/algo-srconv/dsp/resample"
	"github.com/cwbudde/algo-srconv/dsp/window"
	"github.com/cwbudde/algo-srconv/internal/textio"
	timestats "github.com/cwbudde/algo-srconv/stats/time"
)

var errUsage = errors.New("invalid arguments")

type options struct {
	in, out    string
	inRate     int
	outRate    int
	method     string
	methodNum  int
	accuracy   uint
	order      int
	overSample int
	multiplier int
	window     string
	sampleType string
	block      int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("srconv: ")

	var o options
	flag.StringVar(&o.in, "in", "", "input text file")
	flag.StringVar(&o.out, "out", "", "output text file")
	flag.IntVar(&o.inRate, "fi", 0, "input sample rate in Hz")
	flag.IntVar(&o.outRate, "fo", 0, "output sample rate in Hz")
	flag.StringVar(&o.method, "method", "linear", "conversion method: linear, lagrange, fir")
	flag.IntVar(&o.methodNum, "t", -1, "conversion method by number: 0 linear, 1 lagrange, 2 fir")
	flag.UintVar(&o.accuracy, "accuracy", resample.DefaultAccuracy, "linear: fixed-point accuracy in bits (2..32)")
	flag.IntVar(&o.order, "order", resample.DefaultOrder, "lagrange: interpolation order (odd, > 1)")
	flag.IntVar(&o.overSample, "oversampling", resample.DefaultOversampling, "fir: filter phases per input sample (> 1)")
	flag.IntVar(&o.multiplier, "mul", resample.DefaultMultiplier, "fir: taps per output sample (>= 1)")
	flag.StringVar(&o.window, "window", window.TypeBlackman.String(), "fir: window applied to the sinc kernel")
	flag.StringVar(&o.sampleType, "type", "i16", "sample type: i8, i16, i32, f32, f64")
	flag.IntVar(&o.block, "block", 0, "process the input in blocks of this many samples (0 = one block)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: srconv [flags] -in input.txt -out output.txt -fi rate -fo rate\n\n")
		fmt.Fprintf(os.Stderr, "Converts the sample rate of a whitespace-separated sample file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  srconv -in in.txt -out out.txt -fi 3500 -fo 1200\n")
		fmt.Fprintf(os.Stderr, "  srconv -in in.txt -out out.txt -fi 44100 -fo 48000 -method lagrange -order 5\n")
		fmt.Fprintf(os.Stderr, "  srconv -in in.txt -out out.txt -fi 8000 -fo 22050 -t 2 -mul 16 -type f32\n")
	}
	flag.Parse()

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
	cfg, err := o.config()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "method:      %s\n", cfg.Method)
	fmt.Fprintf(stdout, "rates:       %d Hz -> %d Hz\n", cfg.InRate, cfg.OutRate)

	switch cfg.Method {
	case resample.MethodLinear:
		fmt.Fprintf(stdout, "accuracy:    %d bits\n", cfg.AccuracyBits)
	case resample.MethodLagrange:
		fmt.Fprintf(stdout, "order:       %d\n", cfg.Order)
	case resample.MethodFIR:
		fmt.Fprintf(stdout, "filter:      %d x %d, %s window\n", cfg.Oversampling, cfg.Multiplier, *cfg.Window)
	}

	fmt.Fprintf(stdout, "sample type: %s\n", o.sampleType)

	var r report

	switch o.sampleType {
	case "i8":
		r, err = convert[int8](o, cfg)
	case "i16":
		r, err = convert[int16](o, cfg)
	case "i32":
		r, err = convert[int32](o, cfg)
	case "f32":
		r, err = convert[float32](o, cfg)
	case "f64":
		r, err = convert[float64](o, cfg)
	default:
		return fmt.Errorf("%w: unknown sample type %q", errUsage, o.sampleType)
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "input:       %d samples, peak %g, rms %.4g\n", r.in.Length, r.in.Peak, r.in.RMS)
	fmt.Fprintf(stdout, "output:      %d samples, peak %g, rms %.4g\n", r.out.Length, r.out.Peak, r.out.RMS)
	fmt.Fprintf(stdout, "clipped:     %d samples\n", r.out.Clipped)

	return nil
}

// config validates the flags. The limits on order and oversampling are
// stricter than the ones the library enforces.
func (o options) config() (resample.Config, error) {
	if o.in == "" || o.out == "" {
		return resample.Config{}, fmt.Errorf("%w: -in and -out are required", errUsage)
	}

	if o.inRate <= 0 || o.outRate <= 0 {
		return resample.Config{}, fmt.Errorf("%w: -fi and -fo must be > 0", errUsage)
	}

	name := o.method
	if o.methodNum >= 0 {
		name = fmt.Sprint(o.methodNum)
	}

	method, err := resample.ParseMethod(name)
	if err != nil {
		return resample.Config{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	cfg := resample.DefaultConfig(method, o.inRate, o.outRate)

	switch method {
	case resample.MethodLinear:
		if o.accuracy <= 1 || o.accuracy > 32 {
			return cfg, fmt.Errorf("%w: -accuracy must be in 2..32", errUsage)
		}
		cfg.AccuracyBits = o.accuracy
	case resample.MethodLagrange:
		if o.order <= 1 || o.order%2 == 0 {
			return cfg, fmt.Errorf("%w: -order must be odd and > 1", errUsage)
		}
		cfg.Order = o.order
	case resample.MethodFIR:
		if o.overSample <= 1 || o.multiplier < 1 {
			return cfg, fmt.Errorf("%w: -oversampling must be > 1 and -mul >= 1", errUsage)
		}
		wt, err := window.ParseType(o.window)
		if err != nil {
			return cfg, fmt.Errorf("%w: %w", errUsage, err)
		}
		cfg.Oversampling, cfg.Multiplier, cfg.Window = o.overSample, o.multiplier, &wt
	}

	if o.block < 0 {
		return cfg, fmt.Errorf("%w: -block must be >= 0", errUsage)
	}

	return cfg, nil
}

// report holds the levels of the input and the converted output.
type report struct {
	in, out timestats.Stats
}

func convert[T core.Sample](o options, cfg resample.Config) (report, error) {
	c, err := resample.New[T](cfg)
	if err != nil {
		return report{}, err
	}

	x, err := textio.ReadFile[T](o.in)
	if err != nil {
		return report{}, err
	}

	if len(x) == 0 {
		return report{}, fmt.Errorf("%s: %w", o.in, textio.ErrNoData)
	}

	block := o.block
	if block == 0 {
		block = len(x)
	}

	level := timestats.NewStreamingStats[T]()

	var y []T
	for start := 0; start < len(x); start += block {
		n := len(y)
		y = c.ProcessTo(y, x[start:min(start+block, len(x))])
		level.Update(y[n:])
	}

	if err := textio.WriteFile(o.out, y); err != nil {
		return report{}, err
	}

	return report{in: timestats.Calculate(x), out: level.Result()}, nil
}
