package cuda

import "fmt"

// Error is a device runtime status code. It mirrors the numeric code
// space of the CUDA runtime: zero is success, everything else identifies
// a specific failure of the most recently issued or synchronized device
// operation.
//
// A status is transient: it describes the operation that produced it and
// must be read immediately. Use Runtime.PeekLastError or
// Runtime.GetLastError to re-query the most recent asynchronous error.
type Error int32

const (
	// Success indicates the operation completed without error.
	Success Error = 0

	// ErrInvalidValue indicates one or more parameters were outside the
	// accepted range.
	ErrInvalidValue Error = 1

	// ErrMemoryAllocation indicates a device memory allocation failed.
	ErrMemoryAllocation Error = 2

	// ErrInitialization indicates the runtime could not be initialized.
	ErrInitialization Error = 3

	// ErrNoDevice indicates no capable device was detected.
	ErrNoDevice Error = 100

	// ErrInvalidDevice indicates the device ordinal does not correspond
	// to a usable device.
	ErrInvalidDevice Error = 101

	// ErrECCUncorrectable indicates an uncorrectable ECC error was
	// detected during execution.
	ErrECCUncorrectable Error = 214

	// ErrIllegalAddress indicates a kernel accessed an invalid memory
	// address. The process state is undefined after this error.
	ErrIllegalAddress Error = 700

	// ErrLaunchOutOfResources indicates a launch requested more
	// resources than the device can provide.
	ErrLaunchOutOfResources Error = 701

	// ErrLaunchTimeout indicates a kernel exceeded the device watchdog
	// time limit and was terminated.
	ErrLaunchTimeout Error = 702

	// ErrLaunchFailure indicates a kernel launch failed for an
	// unspecified reason.
	ErrLaunchFailure Error = 719

	// ErrNotSupported indicates the operation is not supported by the
	// active runtime.
	ErrNotSupported Error = 801

	// ErrUnknown indicates an internal error of unknown origin.
	ErrUnknown Error = 999
)

// Name returns the symbolic name of the status code, e.g.
// "cudaErrorInvalidValue". Unrecognized codes render as
// "cudaErrorUnknown(N)".
func (e Error) Name() string {
	switch e {
	case Success:
		return "cudaSuccess"
	case ErrInvalidValue:
		return "cudaErrorInvalidValue"
	case ErrMemoryAllocation:
		return "cudaErrorMemoryAllocation"
	case ErrInitialization:
		return "cudaErrorInitializationError"
	case ErrNoDevice:
		return "cudaErrorNoDevice"
	case ErrInvalidDevice:
		return "cudaErrorInvalidDevice"
	case ErrECCUncorrectable:
		return "cudaErrorECCUncorrectable"
	case ErrIllegalAddress:
		return "cudaErrorIllegalAddress"
	case ErrLaunchOutOfResources:
		return "cudaErrorLaunchOutOfResources"
	case ErrLaunchTimeout:
		return "cudaErrorLaunchTimeout"
	case ErrLaunchFailure:
		return "cudaErrorLaunchFailure"
	case ErrNotSupported:
		return "cudaErrorNotSupported"
	case ErrUnknown:
		return "cudaErrorUnknown"
	default:
		return fmt.Sprintf("cudaErrorUnknown(%d)", int32(e))
	}
}

// Description returns the human-readable description of the status code,
// matching the wording of the device runtime's own lookup facility.
func (e Error) Description() string {
	switch e {
	case Success:
		return "no error"
	case ErrInvalidValue:
		return "invalid argument"
	case ErrMemoryAllocation:
		return "out of memory"
	case ErrInitialization:
		return "initialization error"
	case ErrNoDevice:
		return "no CUDA-capable device is detected"
	case ErrInvalidDevice:
		return "invalid device ordinal"
	case ErrECCUncorrectable:
		return "uncorrectable ECC error encountered"
	case ErrIllegalAddress:
		return "an illegal memory access was encountered"
	case ErrLaunchOutOfResources:
		return "too many resources requested for launch"
	case ErrLaunchTimeout:
		return "the launch timed out and was terminated"
	case ErrLaunchFailure:
		return "unspecified launch failure"
	case ErrNotSupported:
		return "operation not supported"
	case ErrUnknown:
		return "unknown error"
	default:
		return fmt.Sprintf("unrecognized error code %d", int32(e))
	}
}

// String implements fmt.Stringer.
func (e Error) String() string {
	return e.Name()
}

// Error implements the error interface so device status codes can be
// matched with errors.Is through wrapping error types.
func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name(), e.Description())
}
