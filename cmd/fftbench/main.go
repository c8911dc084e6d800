// Command fftbench times the unitary FFT on a synthetic two-tone signal and
// optionally verifies the spectrum against a reference file or an independent
// FFT implementation.
//
// Usage:
//
//	fftbench -size 14 -iters 50 -warmup 5
//	fftbench -size 14 -dump > ref.csv
//	fftbench -size 14 -ref ref.csv
//	fftbench -size 14 -check
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	benchfft "github.com/peter-jerry-ye/benchmark-fft"
	"github.com/peter-jerry-ye/benchmark-fft/internal/cpu"
)

const maxSizeExponent = 30

func main() {
	var (
		size    = flag.Int("size", 14, "transform length exponent: n = 2^size")
		iters   = flag.Int("iters", 1, "timed iterations")
		warmup  = flag.Int("warmup", 0, "warmup iterations")
		refFile = flag.String("ref", "", "verify the spectrum against a real,imag reference file")
		check   = flag.Bool("check", false, "cross-check the spectrum against an independent FFT")
		dump    = flag.Bool("dump", false, "print the spectrum as real,imag lines and exit")
	)
	flag.Parse()

	if *size < 0 || *size > maxSizeExponent {
		fmt.Fprintf(os.Stderr, "fftbench: -size must be in [0, %d], got %d\n", maxSizeExponent, *size)
		os.Exit(1)
	}
	if *iters < 1 {
		fmt.Fprintln(os.Stderr, "fftbench: -iters must be at least 1")
		os.Exit(1)
	}

	n := 1 << *size
	src := generateSignal(n)

	out := make([]benchfft.Complex, n)
	copy(out, src)

	if err := benchfft.Transform(out); err != nil {
		fmt.Fprintf(os.Stderr, "fftbench: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		dumpSpectrum(os.Stdout, out)
		return
	}

	if *refFile != "" {
		if err := verifyReferenceFile(out, *refFile); err != nil {
			fmt.Fprintf(os.Stderr, "fftbench: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("reference check passed (%d samples)\n", n)
	}

	if *check {
		maxErr, err := crossCheck(out, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fftbench: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("oracle check passed, max error %.3e\n", maxErr)
	}

	fmt.Printf("fftbench: n=%d (2^%d), %s\n", n, *size, cpu.DetectFeatures().Summary())
	fmt.Printf("iters=%d warmup=%d\n", *iters, *warmup)

	minNs, meanNs := timeTransform(src, *iters, *warmup)
	fmt.Printf("min  %10.3f ms\nmean %10.3f ms\n", minNs/1e6, meanNs/1e6)
}

// timeTransform measures Transform over iters runs, each on a fresh copy of
// src, and returns the minimum and mean wall-clock nanoseconds per run.
func timeTransform(src []benchfft.Complex, iters, warmup int) (minNs, meanNs float64) {
	x := make([]benchfft.Complex, len(src))

	for i := 0; i < warmup; i++ {
		copy(x, src)
		benchfft.TransformUnchecked(x)
	}

	var total time.Duration

	for i := 0; i < iters; i++ {
		copy(x, src)

		start := time.Now()
		benchfft.TransformUnchecked(x)
		elapsed := time.Since(start)

		total += elapsed
		if i == 0 || float64(elapsed.Nanoseconds()) < minNs {
			minNs = float64(elapsed.Nanoseconds())
		}
	}

	return minNs, float64(total.Nanoseconds()) / float64(iters)
}
