package crcengine

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures tracks the CPU capabilities relevant to kernel choice
type CPUFeatures struct {
	HasSSE42  bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

// Global CPU feature detection
var cpuFeatures CPUFeatures

func init() {
	detectCPUFeatures()
}

// detectCPUFeatures populates the global cpuFeatures struct
func detectCPUFeatures() {
	cpuFeatures = CPUFeatures{
		HasSSE42:  cpu.X86.HasSSE42,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasNEON:   cpu.ARM64.HasASIMD,
	}
}

// HostFeatures returns the detected CPU features.
func HostFeatures() CPUFeatures {
	return cpuFeatures
}

// RecommendedKernel returns the kernel expected to run fastest on this host
// without measuring. Wide out-of-order cores keep all 32 table rows resident
// and profit from the 8x32 fold; on anything older the 16-row 4x32 fold is
// the safer default. Tune measures instead of guessing and overrides this.
func RecommendedKernel() Kernel {
	if cpuFeatures.HasAVX2 || cpuFeatures.HasNEON {
		return Kernel8x32
	}
	return Kernel4x32
}

// CPUInfo returns a string describing available CPU features
func CPUInfo() string {
	features := []string{}

	if cpuFeatures.HasSSE42 {
		features = append(features, "SSE4.2")
	}
	if cpuFeatures.HasAVX {
		features = append(features, "AVX")
	}
	if cpuFeatures.HasAVX2 {
		features = append(features, "AVX2")
	}
	if cpuFeatures.HasAVX512 {
		features = append(features, "AVX512F")
	}
	if cpuFeatures.HasNEON {
		features = append(features, "NEON")
	}

	if len(features) == 0 {
		return "No SIMD extensions detected"
	}

	result := "CPU features: "
	for i, f := range features {
		if i > 0 {
			result += ", "
		}
		result += f
	}
	return result
}
