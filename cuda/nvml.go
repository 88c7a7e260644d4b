//go:build cuda

package cuda

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// NVMLRuntime is a discovery-only runtime enabled with the "cuda" build
// tag. It reports real devices through NVML but does not execute work:
// stream operations require the CUDA runtime proper and return
// ErrNotSupported status codes.
type NVMLRuntime struct {
	initialized bool
}

// NewNVMLRuntime initializes NVML and returns a runtime over it.
func NewNVMLRuntime() (*NVMLRuntime, error) {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		return nil, fmt.Errorf("godf/cuda: failed to initialize NVML: %s", nvml.ErrorString(ret))
	}
	return &NVMLRuntime{initialized: true}, nil
}

// RegisterNVMLRuntime initializes NVML and registers the runtime.
func RegisterNVMLRuntime() error {
	rt, err := NewNVMLRuntime()
	if err != nil {
		return err
	}
	RegisterRuntime(rt)
	return nil
}

// Shutdown releases the NVML library.
func (r *NVMLRuntime) Shutdown() error {
	if !r.initialized {
		return nil
	}
	if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
		return fmt.Errorf("godf/cuda: failed to shut down NVML: %s", nvml.ErrorString(ret))
	}
	r.initialized = false
	return nil
}

func (r *NVMLRuntime) Name() string {
	return "nvml"
}

func (r *NVMLRuntime) Devices() ([]DeviceInfo, error) {
	if !r.initialized {
		return nil, ErrRuntimeUnavailable
	}
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("godf/cuda: failed to count devices: %s", nvml.ErrorString(ret))
	}
	driver, ret := nvml.SystemGetDriverVersion()
	if ret != nvml.SUCCESS {
		driver = "unknown"
	}
	devices := make([]DeviceInfo, 0, count)
	for i := 0; i < count; i++ {
		dev, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return nil, fmt.Errorf("godf/cuda: failed to get device %d: %s", i, nvml.ErrorString(ret))
		}
		name, ret := dev.GetName()
		if ret != nvml.SUCCESS {
			name = "unknown"
		}
		info := DeviceInfo{
			Name:   name,
			Vendor: "NVIDIA",
			Driver: driver,
		}
		if mem, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS {
			info.MemoryMB = int(mem.Total >> 20)
		}
		if major, minor, ret := dev.GetCudaComputeCapability(); ret == nvml.SUCCESS {
			info.ComputeCap = fmt.Sprintf("%d.%d", major, minor)
		}
		devices = append(devices, info)
	}
	return devices, nil
}

func (r *NVMLRuntime) NewStream() (Stream, error) {
	return nil, ErrNotImplemented
}

func (r *NVMLRuntime) Launch(Stream, Kernel) {}

func (r *NVMLRuntime) StreamSynchronize(Stream) Error {
	return ErrNotSupported
}

func (r *NVMLRuntime) GetLastError() Error {
	return ErrNotSupported
}

func (r *NVMLRuntime) PeekLastError() Error {
	return ErrNotSupported
}

func (r *NVMLRuntime) Malloc(int) (Buffer, Error) {
	return nil, ErrNotSupported
}

func (r *NVMLRuntime) Free(Buffer) Error {
	return ErrNotSupported
}
