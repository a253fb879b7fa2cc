package crcengine

import (
	"fmt"
)

// Kernel selects one of the five inner-loop shapes. All kernels compute the
// same update; they differ in how many input bytes they fold per table step
// and in how many table rows they touch.
type Kernel int

const (
	// KernelByte folds one byte per step using row 0 only.
	KernelByte Kernel = iota
	// Kernel1x32 folds one 32-bit word per step (slicing-by-4, rows 0-3).
	Kernel1x32
	// Kernel2x32 folds two 32-bit words per step (slicing-by-8, rows 0-7).
	Kernel2x32
	// Kernel4x32 folds four 32-bit words per step (slicing-by-16, rows 0-15).
	Kernel4x32
	// Kernel8x32 folds eight 32-bit words per step (slicing-by-32, all 32 rows).
	Kernel8x32
)

func (k Kernel) String() string {
	switch k {
	case KernelByte:
		return "byte"
	case Kernel1x32:
		return "1x32"
	case Kernel2x32:
		return "2x32"
	case Kernel4x32:
		return "4x32"
	case Kernel8x32:
		return "8x32"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

func (k Kernel) valid() bool {
	return k >= KernelByte && k <= Kernel8x32
}

// ParseKernel maps a kernel name ("byte", "1x32", "2x32", "4x32", "8x32")
// back to its Kernel value.
func ParseKernel(name string) (Kernel, error) {
	for k := KernelByte; k <= Kernel8x32; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return KernelByte, fmt.Errorf("unknown kernel %q", name)
}
