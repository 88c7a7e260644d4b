package godf

import (
	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/internal/telemetry"
)

// DebugChecksEnabled reports whether CheckStream is armed, i.e. whether
// the binary was built with the godfdebug tag.
func DebugChecksEnabled() bool {
	return debugChecks
}

// CheckStream synchronizes a stream and checks for device errors.
//
// In a build with the godfdebug tag, CheckStream blocks until all work
// previously issued on s has completed, translates a non-success
// completion status into a *DeviceError, and then separately checks the
// most recently recorded asynchronous error. In a default build it is a
// no-op compiled down to a constant-false branch, with no device
// interaction.
//
// CheckStream converts "error observed far from its cause" into "error
// observed immediately after the offending asynchronous call". Forcing
// synchronization destroys the benefit of asynchronous execution, so
// insert it after asynchronous calls for debugging only, never on
// production paths.
func CheckStream(rt cuda.Runtime, s cuda.Stream) error {
	if !debugChecks {
		return nil
	}
	return checkStream(rt, s, 1)
}

// checkStream performs the armed check regardless of build mode. skip is
// the number of frames above checkStream to report as the failure site.
func checkStream(rt cuda.Runtime, s cuda.Stream, skip int) error {
	if rt == nil {
		return cuda.ErrNoRuntime
	}
	telemetry.StreamChecks.Inc()
	if code := rt.StreamSynchronize(s); code != cuda.Success {
		telemetry.DeviceErrors.WithLabelValues(code.Name()).Inc()
		return newDeviceError(skip+1, code)
	}
	if code := rt.GetLastError(); code != cuda.Success {
		telemetry.DeviceErrors.WithLabelValues(code.Name()).Inc()
		return newDeviceError(skip+1, code)
	}
	return nil
}
