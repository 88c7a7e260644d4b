// Package hostinfo describes the host CPU for the simulated device
// runtime.
package hostinfo

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features returns a short comma-separated summary of the host's vector
// extensions, used as the simulated device's compute capability string.
func Features() string {
	var feats []string
	if cpu.X86.HasSSE2 {
		feats = append(feats, "sse2")
	}
	if cpu.X86.HasAVX {
		feats = append(feats, "avx")
	}
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasAVX512F {
		feats = append(feats, "avx512")
	}
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "neon")
	}
	if len(feats) == 0 {
		return runtime.GOARCH
	}
	return runtime.GOARCH + "/" + strings.Join(feats, ",")
}
