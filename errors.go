package godf

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cwbudde/godf/cuda"
)

// ErrMemoryManager is the error-surface rendering of a legacy
// memory-manager failure.
var ErrMemoryManager = errors.New("godf: memory manager error")

// location returns the file and line of the frame skip levels above the
// caller of location.
func location(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return file, line
}

// PreconditionError reports a violated entry invariant. It is produced
// by Expects, never constructed directly, and its message embeds the
// exact file and line of the failed check.
type PreconditionError struct {
	file   string
	line   int
	reason string
}

// newPreconditionError captures the frame skip levels above its caller.
func newPreconditionError(skip int, reason string) *PreconditionError {
	file, line := location(skip + 1)
	return &PreconditionError{file: file, line: line, reason: reason}
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("godf failure at: %s:%d: %s", e.file, e.line, e.reason)
}

// File returns the source file of the failed check.
func (e *PreconditionError) File() string { return e.file }

// Line returns the source line of the failed check.
func (e *PreconditionError) Line() int { return e.line }

// Reason returns the caller-supplied description of the invariant.
func (e *PreconditionError) Reason() string { return e.reason }

// DeviceError reports a non-success device runtime status. It carries
// the call site together with the status's numeric value, symbolic name,
// and description. A DeviceError never wraps cuda.Success.
type DeviceError struct {
	file string
	line int
	code cuda.Error
}

// newDeviceError captures the frame skip levels above its caller.
// code must not be cuda.Success; the exported constructors guard this.
func newDeviceError(skip int, code cuda.Error) *DeviceError {
	file, line := location(skip + 1)
	return &DeviceError{file: file, line: line, code: code}
}

// NewDeviceError translates a device status into an error, recording
// the caller as the failure site. It returns nil for cuda.Success.
func NewDeviceError(code cuda.Error) error {
	if code == cuda.Success {
		return nil
	}
	return newDeviceError(1, code)
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	return fmt.Sprintf("CUDA error encountered at: %s:%d: %d %s %s",
		e.file, e.line, int32(e.code), e.code.Name(), e.code.Description())
}

// Code returns the device status that produced the error.
func (e *DeviceError) Code() cuda.Error { return e.code }

// Unwrap exposes the device status so callers can match it with
// errors.Is.
func (e *DeviceError) Unwrap() error { return e.code }

// File returns the source file of the failing call.
func (e *DeviceError) File() string { return e.file }

// Line returns the source line of the failing call.
func (e *DeviceError) Line() int { return e.line }
