package godf

import "fmt"

// Status is the result code of the legacy C-style API surface. Old
// callers branch on it instead of inspecting errors. New code should
// return errors and use Expects; the legacy surface is kept for
// compatibility only.
type Status int

const (
	// OK indicates success.
	OK Status = iota

	// CudaError indicates a device runtime failure. The pending device
	// error on the runtime holds the detail.
	CudaError

	// MemoryManagerError indicates a failure in the memory manager.
	// All memory-manager failures collapse to this value on the legacy
	// surface regardless of cause.
	MemoryManagerError

	// UnsupportedDtype indicates a column had a dtype the operation
	// cannot handle.
	UnsupportedDtype

	// ColumnSizeMismatch indicates columns of differing lengths were
	// passed to an operation requiring equal lengths.
	ColumnSizeMismatch

	// ValidityUnsupported indicates a column carried a validity mask
	// where the operation supports none.
	ValidityUnsupported

	// InvalidAPICall indicates arguments violated the operation's
	// contract.
	InvalidAPICall

	// UnknownError indicates a failure that fits no other code.
	UnknownError
)

// String returns the legacy symbolic name of the status.
func (s Status) String() string {
	switch s {
	case OK:
		return "GDF_SUCCESS"
	case CudaError:
		return "GDF_CUDA_ERROR"
	case MemoryManagerError:
		return "GDF_MEMORYMANAGER_ERROR"
	case UnsupportedDtype:
		return "GDF_UNSUPPORTED_DTYPE"
	case ColumnSizeMismatch:
		return "GDF_COLUMN_SIZE_MISMATCH"
	case ValidityUnsupported:
		return "GDF_VALIDITY_UNSUPPORTED"
	case InvalidAPICall:
		return "GDF_INVALID_API_CALL"
	case UnknownError:
		return "GDF_UNKNOWN_ERROR"
	default:
		return fmt.Sprintf("GDF_UNKNOWN_ERROR(%d)", int(s))
	}
}
