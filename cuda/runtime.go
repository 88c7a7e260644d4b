package cuda

import "sync"

// Kernel is a unit of asynchronous device work. Launching a kernel
// returns no status; its outcome is observed through stream
// synchronization or the last-error query.
type Kernel func() Error

// Stream is an ordered queue of asynchronous device operations.
// Operations issued on the same stream complete in issue order.
type Stream interface {
	Close() error
}

// Buffer is a device memory allocation.
type Buffer interface {
	Size() int
}

// DeviceInfo describes a device exposed by a runtime.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// Runtime is implemented by device runtimes (the real CUDA runtime, the
// CPU-backed simulator). It exposes exactly the surface the error
// boundary needs: stream synchronization, the sticky last-error query,
// and raw allocation.
type Runtime interface {
	Name() string
	Devices() ([]DeviceInfo, error)

	// NewStream creates an execution stream.
	NewStream() (Stream, error)

	// Launch enqueues fn on stream s. Like a kernel launch it returns
	// no status; launch-configuration failures are recorded as the last
	// error and execution failures surface on synchronization.
	Launch(s Stream, fn Kernel)

	// StreamSynchronize blocks until all work previously issued on s has
	// completed and returns the cumulative status of that work.
	StreamSynchronize(s Stream) Error

	// GetLastError returns the most recently recorded asynchronous error
	// and resets it to Success.
	GetLastError() Error

	// PeekLastError returns the most recently recorded asynchronous
	// error without resetting it.
	PeekLastError() Error

	// Malloc allocates a device buffer of the given size in bytes.
	Malloc(bytes int) (Buffer, Error)

	// Free releases a buffer obtained from Malloc.
	Free(b Buffer) Error
}

var (
	runtimeMu sync.RWMutex
	runtime   Runtime
)

// RegisterRuntime registers a device runtime. Passing nil clears the
// runtime.
func RegisterRuntime(rt Runtime) {
	runtimeMu.Lock()
	runtime = rt
	runtimeMu.Unlock()
}

// Current returns the registered runtime, or nil if none is registered.
func Current() Runtime {
	runtimeMu.RLock()
	rt := runtime
	runtimeMu.RUnlock()
	return rt
}
