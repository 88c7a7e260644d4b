// Package mem is godf's device memory manager. It allocates device
// buffers through the registered runtime and reports outcomes with its
// own status code space, consumed by the legacy adapters in the root
// package.
package mem

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/cwbudde/godf/cuda"
)

// Status is the memory manager's result code.
type Status int

const (
	// Success indicates the operation completed.
	Success Status = iota

	// ErrorNotInitialized indicates the manager has been closed or was
	// never constructed properly.
	ErrorNotInitialized

	// ErrorInvalidArgument indicates a bad size or an unknown buffer.
	ErrorInvalidArgument

	// ErrorOutOfMemory indicates the device allocation failed for lack
	// of memory.
	ErrorOutOfMemory

	// ErrorCudaError indicates the underlying runtime reported a failure
	// other than exhaustion; the pending device error holds the detail.
	ErrorCudaError
)

// String returns the symbolic name of the status.
func (s Status) String() string {
	switch s {
	case Success:
		return "MEM_SUCCESS"
	case ErrorNotInitialized:
		return "MEM_ERROR_NOT_INITIALIZED"
	case ErrorInvalidArgument:
		return "MEM_ERROR_INVALID_ARGUMENT"
	case ErrorOutOfMemory:
		return "MEM_ERROR_OUT_OF_MEMORY"
	case ErrorCudaError:
		return "MEM_ERROR_CUDA_ERROR"
	default:
		return fmt.Sprintf("MEM_ERROR_UNKNOWN(%d)", int(s))
	}
}

// Manager tracks device buffers allocated through a runtime.
//
// It is a thin bookkeeping layer: allocation policy lives in the
// runtime, the manager adds ownership tracking so leaked buffers can be
// reclaimed on Close.
type Manager struct {
	mu      sync.Mutex
	rt      cuda.Runtime
	buffers map[cuda.Buffer]struct{}
	closed  bool
}

// NewManager returns a manager allocating through rt.
func NewManager(rt cuda.Runtime) *Manager {
	return &Manager{
		rt:      rt,
		buffers: make(map[cuda.Buffer]struct{}),
	}
}

// Alloc allocates a device buffer of the given size in bytes.
func (m *Manager) Alloc(bytes int) (cuda.Buffer, Status) {
	if bytes <= 0 {
		return nil, ErrorInvalidArgument
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.rt == nil {
		return nil, ErrorNotInitialized
	}
	buf, code := m.rt.Malloc(bytes)
	if code != cuda.Success {
		if code == cuda.ErrMemoryAllocation {
			return nil, ErrorOutOfMemory
		}
		return nil, ErrorCudaError
	}
	m.buffers[buf] = struct{}{}
	return buf, Success
}

// Free releases a buffer obtained from Alloc.
func (m *Manager) Free(b cuda.Buffer) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.rt == nil {
		return ErrorNotInitialized
	}
	if _, ok := m.buffers[b]; !ok {
		return ErrorInvalidArgument
	}
	delete(m.buffers, b)
	if code := m.rt.Free(b); code != cuda.Success {
		return ErrorCudaError
	}
	return Success
}

// Outstanding reports the number of live buffers.
func (m *Manager) Outstanding() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buffers)
}

// Close releases all outstanding buffers and disables the manager.
// Errors from individual releases are aggregated.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	var err error
	for buf := range m.buffers {
		if code := m.rt.Free(buf); code != cuda.Success {
			err = multierr.Append(err, fmt.Errorf("mem: free failed: %w", code))
		}
	}
	m.buffers = nil
	return err
}
