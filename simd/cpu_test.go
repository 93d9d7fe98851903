package simd

import "testing"

func TestDetectCPUFeatures(t *testing.T) {
	f := DetectCPUFeatures()
	// Nothing to assert about the host's actual capabilities; just confirm
	// the flags agree with the package-level variable consulted at scan time.
	if f.AVX2 || f.ASIMD {
		if !wideScan {
			t.Error("wideScan = false but DetectCPUFeatures reports a wide-register CPU")
		}
	}
}
