// Package cpu reports SIMD capabilities of the host. The benchmark command
// prints them alongside timings so results can be compared across machines;
// nothing in the transform dispatches on them.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU features relevant to numeric throughput.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
// Flags for foreign architectures read as false.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Summary returns a one-line description like "amd64 (sse2 avx avx2)".
func (f Features) Summary() string {
	var flags []string

	if f.HasSSE2 {
		flags = append(flags, "sse2")
	}
	if f.HasAVX {
		flags = append(flags, "avx")
	}
	if f.HasAVX2 {
		flags = append(flags, "avx2")
	}
	if f.HasAVX512 {
		flags = append(flags, "avx512")
	}
	if f.HasNEON {
		flags = append(flags, "neon")
	}

	if len(flags) == 0 {
		return f.Architecture
	}

	return f.Architecture + " (" + strings.Join(flags, " ") + ")"
}
