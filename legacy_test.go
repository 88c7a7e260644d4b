package godf

import (
	"errors"
	"testing"

	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/mem"
)

// TestTryAllocCollapsesFailures verifies every non-success
// memory-manager status reports the fixed sentinel and nothing else.
func TestTryAllocCollapsesFailures(t *testing.T) {
	if st, ok := TryAlloc(mem.Success); !ok || st != OK {
		t.Fatalf("TryAlloc(Success) = (%v, %v), want (OK, true)", st, ok)
	}

	failures := []mem.Status{
		mem.ErrorNotInitialized,
		mem.ErrorInvalidArgument,
		mem.ErrorOutOfMemory,
		mem.ErrorCudaError,
	}
	for _, f := range failures {
		st, ok := TryAlloc(f)
		if ok {
			t.Errorf("TryAlloc(%v) reported success", f)
		}
		if st != MemoryManagerError {
			t.Errorf("TryAlloc(%v) = %v, want MemoryManagerError", f, st)
		}
	}
}

// TestTryAllocCudaBridgesStatusSpaces verifies the second variant
// returns the device error pending on the runtime.
func TestTryAllocCudaBridgesStatusSpaces(t *testing.T) {
	rt := cuda.NewSimRuntime()

	if code, ok := TryAllocCuda(mem.Success, rt); !ok || code != cuda.Success {
		t.Fatalf("TryAllocCuda(Success) = (%v, %v), want (Success, true)", code, ok)
	}

	rt.InjectError(cuda.ErrMemoryAllocation)
	code, ok := TryAllocCuda(mem.ErrorOutOfMemory, rt)
	if ok {
		t.Error("TryAllocCuda on failure reported success")
	}
	if code != cuda.ErrMemoryAllocation {
		t.Errorf("TryAllocCuda returned %v, want pending ErrMemoryAllocation", code)
	}
	// Bridging must not consume the pending error.
	if rt.PeekLastError() != cuda.ErrMemoryAllocation {
		t.Error("TryAllocCuda consumed the pending device error")
	}
}

// TestRequire verifies the deprecated legacy check.
func TestRequire(t *testing.T) {
	if st, ok := Require(true, UnsupportedDtype); !ok || st != OK {
		t.Fatalf("Require(true) = (%v, %v), want (OK, true)", st, ok)
	}
	if st, ok := Require(false, ColumnSizeMismatch); ok || st != ColumnSizeMismatch {
		t.Fatalf("Require(false) = (%v, %v), want (ColumnSizeMismatch, false)", st, ok)
	}
}

// TestResultClassification verifies ResultOf tags each error kind and
// the adapters preserve both conventions.
func TestResultClassification(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		kind   ResultKind
		legacy Status
	}{
		{"nil", nil, KindOK, OK},
		{"device", NewDeviceError(cuda.ErrLaunchFailure), KindDeviceError, CudaError},
		{"precondition", Expects(false, "bad input"), KindPreconditionViolation, InvalidAPICall},
		{"memory", ErrMemoryManager, KindMemoryManagerError, MemoryManagerError},
		{"unknown", errors.New("disk on fire"), KindUnknown, UnknownError},
	}

	for _, tc := range cases {
		r := ResultOf(tc.err)
		if r.Kind() != tc.kind {
			t.Errorf("%s: kind = %v, want %v", tc.name, r.Kind(), tc.kind)
		}
		if r.Legacy() != tc.legacy {
			t.Errorf("%s: Legacy() = %v, want %v", tc.name, r.Legacy(), tc.legacy)
		}
		if (tc.err == nil) != r.Ok() {
			t.Errorf("%s: Ok() = %v", tc.name, r.Ok())
		}
		if err := r.Err(); (err == nil) != (tc.err == nil) {
			t.Errorf("%s: Err() = %v", tc.name, err)
		}
	}
}

// TestResultErrRoundTrip verifies Err returns the original error value.
func TestResultErrRoundTrip(t *testing.T) {
	orig := NewDeviceError(cuda.ErrECCUncorrectable)
	if got := ResultOf(orig).Err(); got != orig {
		t.Fatalf("Err() = %v, want original %v", got, orig)
	}
}

// TestStatusStrings spot-checks the legacy symbolic names.
func TestStatusStrings(t *testing.T) {
	cases := map[Status]string{
		OK:                 "GDF_SUCCESS",
		MemoryManagerError: "GDF_MEMORYMANAGER_ERROR",
		CudaError:          "GDF_CUDA_ERROR",
		ColumnSizeMismatch: "GDF_COLUMN_SIZE_MISMATCH",
		Status(42):         "GDF_UNKNOWN_ERROR(42)",
	}
	for st, want := range cases {
		if got := st.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}
