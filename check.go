package godf

import (
	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/internal/telemetry"
)

// CheckCuda translates a device status into an error, recording the
// caller as the failure site. Wrap every runtime invocation that returns
// a status:
//
//	if err := godf.CheckCuda(rt.StreamSynchronize(s)); err != nil {
//		return err
//	}
//
// A non-success status always produces a *DeviceError; cuda.Success
// produces nil.
func CheckCuda(code cuda.Error) error {
	if code == cuda.Success {
		return nil
	}
	telemetry.DeviceErrors.WithLabelValues(code.Name()).Inc()
	return newDeviceError(1, code)
}

// CheckLast re-checks the most recently recorded asynchronous error
// without issuing new device work. Use it immediately after launching
// asynchronous operations that return no status themselves, such as
// kernel launches.
func CheckLast(rt cuda.Runtime) error {
	if rt == nil {
		return cuda.ErrNoRuntime
	}
	code := rt.PeekLastError()
	if code == cuda.Success {
		return nil
	}
	telemetry.DeviceErrors.WithLabelValues(code.Name()).Inc()
	return newDeviceError(1, code)
}
