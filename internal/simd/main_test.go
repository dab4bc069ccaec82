package simd

import (
	"fmt"
	"os"
	"testing"
)

// TestMain prints which kernel the tests run against.
func TestMain(m *testing.M) {
	fmt.Printf("=== dicol scan kernels ===\n")
	fmt.Printf("%s=%q\n", EnvKernel, os.Getenv(EnvKernel))
	fmt.Printf("Active kernel: %s\n", ActiveKernel())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("CPU features: %s\n", Features())
	fmt.Printf("==========================\n\n")

	os.Exit(m.Run())
}
