package godf

import (
	"errors"

	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/mem"
)

// ResultKind tags the variants of a Result.
type ResultKind uint8

const (
	// KindOK tags a successful outcome.
	KindOK ResultKind = iota

	// KindMemoryManagerError tags a memory-manager failure.
	KindMemoryManagerError

	// KindDeviceError tags a device runtime failure.
	KindDeviceError

	// KindPreconditionViolation tags a failed entry invariant.
	KindPreconditionViolation

	// KindUnknown tags a failure that fits no other variant.
	KindUnknown
)

// Result is the tagged outcome of an operation. It represents the
// legacy status-code convention and the error convention uniformly, with
// a thin adapter to each: Legacy for old callers that branch on a status
// code, Err for new callers that propagate errors.
type Result struct {
	kind ResultKind
	err  error
}

// ResultOf classifies err into a Result. A nil err is KindOK.
func ResultOf(err error) Result {
	if err == nil {
		return Result{kind: KindOK}
	}
	var de *DeviceError
	if errors.As(err, &de) {
		return Result{kind: KindDeviceError, err: err}
	}
	var pe *PreconditionError
	if errors.As(err, &pe) {
		return Result{kind: KindPreconditionViolation, err: err}
	}
	if errors.Is(err, ErrMemoryManager) {
		return Result{kind: KindMemoryManagerError, err: err}
	}
	return Result{kind: KindUnknown, err: err}
}

// Kind returns the variant tag.
func (r Result) Kind() ResultKind { return r.kind }

// Ok reports whether the outcome was success.
func (r Result) Ok() bool { return r.kind == KindOK }

// Err returns the outcome for error-surface callers: nil on success,
// the carried error otherwise.
func (r Result) Err() error {
	if r.kind == KindOK {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	if r.kind == KindMemoryManagerError {
		return ErrMemoryManager
	}
	return errors.New("godf: unknown error")
}

// Legacy returns the outcome for legacy-surface callers. The mapping is
// lossy: every memory-manager failure collapses to MemoryManagerError
// and every precondition violation to InvalidAPICall, discarding the
// detail. Old callers depend on these fixed sentinels, so the collapse
// is preserved deliberately.
func (r Result) Legacy() Status {
	switch r.kind {
	case KindOK:
		return OK
	case KindMemoryManagerError:
		return MemoryManagerError
	case KindDeviceError:
		return CudaError
	case KindPreconditionViolation:
		return InvalidAPICall
	default:
		return UnknownError
	}
}

// TryAlloc adapts a memory-manager status to the legacy convention.
// On success ok is true. On any failure it reports the fixed
// MemoryManagerError sentinel; the specific memory-manager status is
// discarded, matching what legacy callers expect. The caller returns
// early on !ok:
//
//	buf, st := mgr.Alloc(n)
//	if gst, ok := godf.TryAlloc(st); !ok {
//		return gst
//	}
func TryAlloc(st mem.Status) (Status, bool) {
	if st == mem.Success {
		return OK, true
	}
	return MemoryManagerError, false
}

// TryAllocCuda adapts a memory-manager status to the device status
// space: on failure it returns whatever device error is currently
// pending on the runtime, bridging the two status spaces without
// producing an error value.
func TryAllocCuda(st mem.Status, rt cuda.Runtime) (cuda.Error, bool) {
	if st == mem.Success {
		return cuda.Success, true
	}
	if rt == nil {
		return cuda.ErrInitialization, false
	}
	return rt.PeekLastError(), false
}

// Require checks a condition and reports st when it fails, for callers
// on the legacy check-and-return convention.
//
// Deprecated: Require propagates a bare status code with no source
// location. Use Expects in all new code.
func Require(cond bool, st Status) (Status, bool) {
	if cond {
		return OK, true
	}
	return st, false
}
