package simd

import "golang.org/x/sys/cpu"

// wideScan reports whether the host CPU has wide SIMD registers (AVX2 on
// x86-64, ASIMD on arm64). We have no assembly to hand here (see
// memchr_generic_impl.go), so we cannot issue real vector instructions, but
// a wider registers hints that a 4-way unrolled scan -- four independent
// SWAR lanes instead of one -- still pays off: it shortens the dependency
// chain between loop iterations the same way real SIMD does.
var wideScan = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// CPUFeatures summarizes the detected capability used to pick a scan width.
// Exposed for diagnostics (see cmd/mnsearch's -v flag).
type CPUFeatures struct {
	AVX2  bool
	ASIMD bool
}

// DetectCPUFeatures returns the capability flags simd consulted at init time.
func DetectCPUFeatures() CPUFeatures {
	return CPUFeatures{AVX2: cpu.X86.HasAVX2, ASIMD: cpu.ARM64.HasASIMD}
}
