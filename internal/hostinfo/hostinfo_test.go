package hostinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestFeaturesIncludesArch(t *testing.T) {
	got := Features()
	if got == "" {
		t.Fatal("Features returned an empty string")
	}
	if !strings.HasPrefix(got, runtime.GOARCH) {
		t.Errorf("Features() = %q, want %q prefix", got, runtime.GOARCH)
	}
}
