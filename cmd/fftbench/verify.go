package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	benchfft "github.com/peter-jerry-ye/benchmark-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// dumpSpectrum writes one "real,imag" line per sample, rounded to two
// decimals. The output is the reference-file format accepted by -ref.
func dumpSpectrum(w io.Writer, x []benchfft.Complex) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for _, v := range x {
		fmt.Fprintf(bw, "%.2f,%.2f\n", round2(v.Real), round2(v.Imag))
	}
}

// parseReference reads "real,imag" lines, one per sample. Blank lines are
// skipped; anything else malformed is an error naming the line.
func parseReference(r io.Reader) ([]benchfft.Complex, error) {
	var ref []benchfft.Complex

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rePart, imPart, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("reference line %d: missing comma: %q", lineNo, line)
		}

		re, err := strconv.ParseFloat(strings.TrimSpace(rePart), 64)
		if err != nil {
			return nil, fmt.Errorf("reference line %d: %w", lineNo, err)
		}

		im, err := strconv.ParseFloat(strings.TrimSpace(imPart), 64)
		if err != nil {
			return nil, fmt.Errorf("reference line %d: %w", lineNo, err)
		}

		ref = append(ref, benchfft.NewComplex(re, im))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ref, nil
}

// compareRounded returns the index of the first sample whose two-decimal
// rounding differs from ref, or -1 if all match. Comparison is exact after
// rounding, matching how reference files are produced.
func compareRounded(got, ref []benchfft.Complex) int {
	for i := range got {
		if i >= len(ref) {
			return i
		}
		if round2(got[i].Real) != ref[i].Real || round2(got[i].Imag) != ref[i].Imag {
			return i
		}
	}

	return -1
}

func verifyReferenceFile(out []benchfft.Complex, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	ref, err := parseReference(f)
	if err != nil {
		return err
	}

	if len(ref) != len(out) {
		return fmt.Errorf("reference has %d samples, output has %d", len(ref), len(out))
	}

	if i := compareRounded(out, ref); i >= 0 {
		return fmt.Errorf("mismatch at sample %d: got (%.2f,%.2f), reference (%.2f,%.2f)",
			i, round2(out[i].Real), round2(out[i].Imag), ref[i].Real, ref[i].Imag)
	}

	return nil
}

// crossCheck recomputes the spectrum of src with gonum's FFT, applies the
// unitary scaling, and returns the maximum per-bin error against out.
func crossCheck(out, src []benchfft.Complex) (float64, error) {
	n := len(src)

	in := make([]complex128, n)
	for i, v := range src {
		in[i] = complex(v.Real, v.Imag)
	}

	want := fourier.NewCmplxFFT(n).Coefficients(nil, in)
	scale := complex(1/math.Sqrt(float64(n)), 0)

	var maxErr float64
	for i := range out {
		got := complex(out[i].Real, out[i].Imag)
		if diff := cmplx.Abs(got - want[i]*scale); diff > maxErr {
			maxErr = diff
		}
	}

	if tol := 1e-9 * float64(n); maxErr > tol {
		return maxErr, fmt.Errorf("oracle mismatch: max error %.3e exceeds %.3e", maxErr, tol)
	}

	return maxErr, nil
}
