package cuda

import "errors"

var (
	// ErrNoRuntime is returned when no device runtime is registered.
	ErrNoRuntime = errors.New("godf/cuda: no runtime registered")

	// ErrRuntimeUnavailable is returned when the runtime is registered but
	// not usable on the current system (e.g., no device, driver missing).
	ErrRuntimeUnavailable = errors.New("godf/cuda: runtime unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("godf/cuda: not implemented")

	// ErrStreamClosed is returned when issuing work to a closed stream.
	ErrStreamClosed = errors.New("godf/cuda: stream closed")
)
