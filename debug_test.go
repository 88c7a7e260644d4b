package godf

import (
	"errors"
	"testing"

	"github.com/cwbudde/godf/cuda"
)

// TestCheckStreamArmedSuccess verifies the armed check synchronizes the
// stream and returns nil when everything completed.
func TestCheckStreamArmedSuccess(t *testing.T) {
	rt := cuda.NewSimRuntime()
	s, err := rt.NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	defer s.Close()

	ran := false
	rt.Launch(s, func() cuda.Error {
		ran = true
		return cuda.Success
	})

	if err := checkStream(rt, s, 0); err != nil {
		t.Fatalf("checkStream = %v, want nil", err)
	}
	if !ran {
		t.Error("check returned before pending work completed")
	}
	if rt.SyncCount() != 1 {
		t.Errorf("sync count = %d, want 1", rt.SyncCount())
	}
}

// TestCheckStreamArmedFailure verifies a failing pending operation
// surfaces as a DeviceError after the blocking wait.
func TestCheckStreamArmedFailure(t *testing.T) {
	rt := cuda.NewSimRuntime()
	s, err := rt.NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	defer s.Close()

	rt.Launch(s, func() cuda.Error { return cuda.Success })
	rt.Launch(s, func() cuda.Error { return cuda.ErrIllegalAddress })

	err = checkStream(rt, s, 0)
	if err == nil {
		t.Fatal("checkStream with failing pending op returned nil")
	}
	var de *DeviceError
	if !errors.As(err, &de) {
		t.Fatalf("got %T, want *DeviceError", err)
	}
	if de.Code() != cuda.ErrIllegalAddress {
		t.Errorf("code %v, want ErrIllegalAddress", de.Code())
	}
}

// TestCheckStreamArmedCatchesRecordedError verifies the second phase of
// the check: an asynchronous error recorded outside the synchronized
// stream is still reported.
func TestCheckStreamArmedCatchesRecordedError(t *testing.T) {
	rt := cuda.NewSimRuntime()
	s, err := rt.NewStream()
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	defer s.Close()

	rt.InjectError(cuda.ErrLaunchTimeout)

	err = checkStream(rt, s, 0)
	if err == nil {
		t.Fatal("checkStream with recorded error returned nil")
	}
	if !errors.Is(err, cuda.ErrLaunchTimeout) {
		t.Errorf("error %v does not match recorded code", err)
	}
	// The check consumed the recorded error.
	if rt.PeekLastError() != cuda.Success {
		t.Error("recorded error not cleared by check")
	}
}

// TestCheckStreamNilRuntime verifies the no-runtime sentinel on the
// armed path.
func TestCheckStreamNilRuntime(t *testing.T) {
	if err := checkStream(nil, nil, 0); !errors.Is(err, cuda.ErrNoRuntime) {
		t.Fatalf("checkStream(nil) = %v, want ErrNoRuntime", err)
	}
}
