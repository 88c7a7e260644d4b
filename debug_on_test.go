//go:build godfdebug

package godf

import (
	"errors"
	"testing"

	"github.com/cwbudde/godf/cuda"
)

// TestCheckStreamArmedBuild verifies that with the godfdebug tag the
// exported CheckStream performs the full synchronize-and-check sequence.
func TestCheckStreamArmedBuild(t *testing.T) {
	if !DebugChecksEnabled() {
		t.Fatal("debug checks unexpectedly disarmed under godfdebug tag")
	}

	rt := cuda.NewSimRuntime()
	s, err := rt.NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	defer s.Close()

	rt.Launch(s, func() cuda.Error { return cuda.Success })
	if err := CheckStream(rt, s); err != nil {
		t.Fatalf("CheckStream after successful work = %v, want nil", err)
	}
	if rt.SyncCount() != 1 {
		t.Errorf("sync count = %d, want 1", rt.SyncCount())
	}

	rt.Launch(s, func() cuda.Error { return cuda.ErrLaunchFailure })
	err = CheckStream(rt, s)
	if err == nil {
		t.Fatal("CheckStream after failing work returned nil")
	}
	if !errors.Is(err, cuda.ErrLaunchFailure) {
		t.Errorf("error %v does not match failing code", err)
	}
}
