package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvKernel names the environment variable that overrides kernel selection.
const EnvKernel = "DICOL_SIMD"

// Kernel identifies a scan kernel family.
type Kernel uint8

const (
	// Generic compares one lane at a time.
	Generic Kernel = iota
	// SWAR compares two 32-bit lanes per 64-bit word.
	SWAR
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case SWAR:
		return "swar"
	default:
		return "unknown"
	}
}

// ParseKernel parses a kernel name.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "scalar":
		return Generic, true
	case "swar":
		return SWAR, true
	default:
		return Generic, false
	}
}

// Package-level state, set once by the platform init.
var (
	activeKernel Kernel
	hasOverride  bool

	// CPU feature flags (set by platform-specific init)
	hasASIMD bool // ARM64 NEON
	hasAVX2  bool // x86-64 AVX2
	hasSSE42 bool // x86-64 SSE4.2
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvKernel); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			useKernel(k)

			return
		}
	}

	useKernel(selectBestKernel())
}

// selectBestKernel picks SWAR where 64-bit words are native.
func selectBestKernel() Kernel {
	switch runtime.GOARCH {
	case "amd64", "arm64", "ppc64", "ppc64le", "riscv64", "s390x", "loong64", "mips64", "mips64le":
		return SWAR
	default:
		return Generic
	}
}

// useKernel switches the dispatch table and returns a function restoring the previous one.
func useKernel(k Kernel) func() {
	prevKernel, prevImpl := activeKernel, impl

	activeKernel = k
	switch k {
	case SWAR:
		impl = swarKernels
	default:
		activeKernel = Generic
		impl = genericKernels
	}

	return func() {
		activeKernel, impl = prevKernel, prevImpl
	}
}

// ActiveKernel returns the kernel family in use.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if DICOL_SIMD selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasSSE42 returns true if x86-64 SSE4.2 is available.
func HasSSE42() bool {
	return hasSSE42
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}

// Features describes the platform and detected vector extensions, e.g. "amd64 avx2 sse4.2".
func Features() string {
	parts := []string{runtime.GOARCH}
	if hasAVX2 {
		parts = append(parts, "avx2")
	}
	if hasSSE42 {
		parts = append(parts, "sse4.2")
	}
	if hasASIMD {
		parts = append(parts, "asimd")
	}

	return strings.Join(parts, " ")
}
