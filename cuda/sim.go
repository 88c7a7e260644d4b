package cuda

import (
	"sync"

	"github.com/cwbudde/godf/internal/hostinfo"
)

// defaultSimCapacity is the simulated device memory, in bytes.
const defaultSimCapacity = 256 << 20

// SimRuntime is a CPU-backed device runtime for development and tests.
// It models the parts of the real runtime the error boundary depends on:
// streams execute enqueued kernels in issue order when synchronized, and
// the most recent failure is recorded as a sticky last error that
// GetLastError reads and clears.
type SimRuntime struct {
	mu        sync.Mutex
	device    DeviceInfo
	lastError Error
	capacity  int
	allocated int
	syncs     int
}

// NewSimRuntime returns a simulated runtime with a single fake device
// described by the host's CPU features.
func NewSimRuntime() *SimRuntime {
	return &SimRuntime{
		device: DeviceInfo{
			Name:       "SimGPU",
			Vendor:     "godf",
			Driver:     "sim",
			MemoryMB:   defaultSimCapacity >> 20,
			ComputeCap: hostinfo.Features(),
		},
		capacity: defaultSimCapacity,
	}
}

// RegisterSimRuntime registers a fresh simulated runtime as the active
// runtime and returns it.
func RegisterSimRuntime() *SimRuntime {
	rt := NewSimRuntime()
	RegisterRuntime(rt)
	return rt
}

func (r *SimRuntime) Name() string {
	return "sim"
}

func (r *SimRuntime) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{r.device}, nil
}

// SetCapacity overrides the simulated device memory size in bytes.
// Intended for tests that exercise allocation failure.
func (r *SimRuntime) SetCapacity(bytes int) {
	r.mu.Lock()
	r.capacity = bytes
	r.mu.Unlock()
}

// SyncCount reports how many stream synchronizations have been
// performed. Tests use it to verify that disarmed diagnostic checks do
// not touch the device.
func (r *SimRuntime) SyncCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncs
}

// InjectError records code as the pending asynchronous error, as if an
// earlier launch had failed. Intended for tests and self-diagnostics.
func (r *SimRuntime) InjectError(code Error) {
	r.mu.Lock()
	r.lastError = code
	r.mu.Unlock()
}

func (r *SimRuntime) NewStream() (Stream, error) {
	return &simStream{runtime: r}, nil
}

func (r *SimRuntime) Launch(s Stream, fn Kernel) {
	ss, ok := s.(*simStream)
	if !ok || ss.runtime != r {
		r.record(ErrInvalidValue)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if ss.closed {
		// Launch-configuration failure: recorded immediately, observable
		// via PeekLastError before any synchronization.
		r.lastError = ErrInvalidValue
		return
	}
	ss.ops = append(ss.ops, fn)
}

func (r *SimRuntime) StreamSynchronize(s Stream) Error {
	ss, ok := s.(*simStream)
	if !ok || ss.runtime != r {
		return r.record(ErrInvalidValue)
	}
	r.mu.Lock()
	r.syncs++
	ops := ss.ops
	ss.ops = nil
	r.mu.Unlock()

	// Kernels run outside the lock, in issue order. The first failure is
	// the stream's cumulative status; remaining work is discarded, as on
	// a faulted device.
	for _, fn := range ops {
		if code := fn(); code != Success {
			return r.record(code)
		}
	}
	return Success
}

func (r *SimRuntime) GetLastError() Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	code := r.lastError
	r.lastError = Success
	return code
}

func (r *SimRuntime) PeekLastError() Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

func (r *SimRuntime) Malloc(bytes int) (Buffer, Error) {
	if bytes <= 0 {
		return nil, r.record(ErrInvalidValue)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.allocated+bytes > r.capacity {
		r.lastError = ErrMemoryAllocation
		return nil, ErrMemoryAllocation
	}
	r.allocated += bytes
	return &simBuffer{runtime: r, size: bytes}, Success
}

func (r *SimRuntime) Free(b Buffer) Error {
	sb, ok := b.(*simBuffer)
	if !ok || sb.runtime != r || sb.freed {
		return r.record(ErrInvalidValue)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sb.freed = true
	r.allocated -= sb.size
	return Success
}

// Allocated reports the number of simulated device bytes currently
// allocated.
func (r *SimRuntime) Allocated() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.allocated
}

func (r *SimRuntime) record(code Error) Error {
	r.mu.Lock()
	r.lastError = code
	r.mu.Unlock()
	return code
}

type simStream struct {
	runtime *SimRuntime
	ops     []Kernel
	closed  bool
}

func (s *simStream) Close() error {
	s.runtime.mu.Lock()
	defer s.runtime.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	s.closed = true
	s.ops = nil
	return nil
}

type simBuffer struct {
	runtime *SimRuntime
	size    int
	freed   bool
}

func (b *simBuffer) Size() int {
	return b.size
}
