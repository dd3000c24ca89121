// Package textio reads and writes sample sequences as whitespace-separated
// decimal text, one value per line on output.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/cwbudde/algo-srconv/dsp/core"
)

// ErrNoData is returned when there are no samples to write.
var ErrNoData = errors.New("textio: no data")

// Read parses whitespace-separated numbers from r. Integer sample types
// accept fractional input and are rounded and saturated.
func Read[T core.Sample](r io.Reader) ([]T, error) {
	sat := core.NewSaturator[T]()
	isFloat := core.IsFloat[T]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var out []T
	for sc.Scan() {
		tok := sc.Text()

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return out, fmt.Errorf("textio: value %d: %w", len(out), err)
		}
		if math.IsNaN(v) {
			return out, fmt.Errorf("textio: value %d: %q is not a number", len(out), tok)
		}

		if isFloat {
			out = append(out, sat.Apply(v))
			continue
		}

		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			out = append(out, saturateInt[T](i, sat))
			continue
		}
		out = append(out, sat.Apply(v))
	}

	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("textio: %w", err)
	}
	return out, nil
}

// saturateInt keeps int64 input exact where float64 would round it.
func saturateInt[T core.Sample](i int64, sat core.Saturator[T]) T {
	lo, hi := core.Limits[T]()
	if float64(i) >= hi || float64(i) <= lo {
		return sat.Apply(float64(i))
	}
	return T(i)
}

// Write prints x to w, one value per line. Floats use the shortest
// representation that reads back exactly.
func Write[T core.Sample](w io.Writer, x []T) error {
	if len(x) == 0 {
		return ErrNoData
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	isFloat := core.IsFloat[T]()
	bitSize := 64
	if lo, _ := core.Limits[T](); isFloat && lo == -math.MaxFloat32 {
		bitSize = 32
	}

	for _, v := range x {
		buf = buf[:0]
		if isFloat {
			buf = strconv.AppendFloat(buf, float64(v), 'g', -1, bitSize)
		} else {
			buf = strconv.AppendInt(buf, int64(v), 10)
		}
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("textio: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("textio: %w", err)
	}
	return nil
}

// ReadFile reads the samples stored in the named file.
func ReadFile[T core.Sample](name string) ([]T, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read[T](f)
}

// WriteFile writes x to the named file, replacing its content.
func WriteFile[T core.Sample](name string, x []T) error {
	if len(x) == 0 {
		return ErrNoData
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := Write(f, x); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
