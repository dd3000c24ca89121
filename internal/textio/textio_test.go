package textio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-srconv/internal/testutil"
)

func TestReadIntegers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int16
	}{
		{name: "one per line", in: "1\n-2\n3\n", want: []int16{1, -2, 3}},
		{name: "mixed whitespace", in: "  4\t5 \r\n\n6", want: []int16{4, 5, 6}},
		{name: "fractional rounds", in: "1.5 -1.5 2.4", want: []int16{2, -2, 2}},
		{name: "saturates", in: "40000 -1e9 1e400", want: []int16{32767, -32768, 32767}},
		{name: "empty", in: " \n ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read[int16](strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			testutil.RequireSliceEqual(t, got, tt.want)
		})
	}
}

func TestReadInt64Exact(t *testing.T) {
	got, err := Read[int64](strings.NewReader("9007199254740993 -9223372036854775808"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	testutil.RequireSliceEqual(t, got, []int64{9007199254740993, -9223372036854775808})
}

func TestReadRejectsGarbage(t *testing.T) {
	for _, in := range []string{"1 2 x3", "1 NaN"} {
		got, err := Read[float64](strings.NewReader(in))
		if err == nil {
			t.Fatalf("Read(%q) succeeded", in)
		}
		if !strings.Contains(err.Error(), "value 1") && !strings.Contains(err.Error(), "value 2") {
			t.Fatalf("Read(%q) error = %v, want token index", in, err)
		}
		if len(got) == 0 {
			t.Fatalf("Read(%q) dropped the values before the error", in)
		}
	}
}

func TestWriteFormats(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []int8{-128, 0, 127}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "-128\n0\n127\n" {
		t.Fatalf("Write(int8) = %q", got)
	}

	buf.Reset()
	if err := Write(&buf, []float32{0.1, -2.5}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "0.1\n-2.5\n" {
		t.Fatalf("Write(float32) = %q", got)
	}

	if err := Write[int16](&buf, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("Write(nil) error = %v, want %v", err, ErrNoData)
	}
}

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "samples.txt")
	want := []float64{0, 1.25, -3e-7, 12345.678}

	if err := WriteFile(name, want); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadFile[float64](name)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	testutil.RequireSliceEqual(t, got, want)

	if err := WriteFile[int32](name, nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("WriteFile(nil) error = %v, want %v", err, ErrNoData)
	}
	if _, err := ReadFile[int32](filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("ReadFile(missing) succeeded")
	}
}
