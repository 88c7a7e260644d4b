package godf

import (
	"fmt"

	"github.com/cwbudde/godf/cuda"
	"github.com/cwbudde/godf/mem"
)

// DType identifies the element type of a column.
type DType uint8

const (
	Int32 DType = iota
	Int64
	Float32
	Float64
)

// Size returns the element size in bytes.
func (d DType) Size() int {
	switch d {
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (d DType) String() string {
	switch d {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
}

// Column is a device-resident typed column. Its data buffer is owned by
// the memory manager that allocated it; Close returns the buffers.
//
// A nil validity mask means all elements are valid.
type Column struct {
	dtype  DType
	length int
	data   cuda.Buffer
	valid  cuda.Buffer
}

// DType returns the column's element type.
func (c *Column) DType() DType { return c.dtype }

// Len returns the number of elements.
func (c *Column) Len() int { return c.length }

// HasValidity reports whether the column carries a validity mask.
func (c *Column) HasValidity() bool { return c.valid != nil }

// NewColumn allocates a device column of the given type and length.
func NewColumn(mgr *mem.Manager, dtype DType, length int) (*Column, error) {
	if err := Expects(dtype.Size() > 0, "unsupported column dtype"); err != nil {
		return nil, err
	}
	if err := Expects(length >= 0, "column length must be non-negative"); err != nil {
		return nil, err
	}
	col := &Column{dtype: dtype, length: length}
	if length == 0 {
		return col, nil
	}
	buf, st := mgr.Alloc(length * dtype.Size())
	if st != mem.Success {
		return nil, ErrMemoryManager
	}
	col.data = buf
	return col, nil
}

// NewColumnLegacy is the legacy C-style surface for NewColumn. Any
// memory-manager failure reports the fixed MemoryManagerError sentinel.
func NewColumnLegacy(mgr *mem.Manager, dtype DType, length int) (*Column, Status) {
	if st, ok := Require(dtype.Size() > 0, UnsupportedDtype); !ok {
		return nil, st
	}
	if st, ok := Require(length >= 0, InvalidAPICall); !ok {
		return nil, st
	}
	col := &Column{dtype: dtype, length: length}
	if length == 0 {
		return col, OK
	}
	buf, allocSt := mgr.Alloc(length * dtype.Size())
	if st, ok := TryAlloc(allocSt); !ok {
		return nil, st
	}
	col.data = buf
	return col, OK
}

// AllocValidity attaches a validity mask to the column, one bit per
// element.
func (c *Column) AllocValidity(mgr *mem.Manager) error {
	if err := Expects(c.valid == nil, "column already has a validity mask"); err != nil {
		return err
	}
	if c.length == 0 {
		return nil
	}
	buf, st := mgr.Alloc((c.length + 7) / 8)
	if st != mem.Success {
		return ErrMemoryManager
	}
	c.valid = buf
	return nil
}

// Close returns the column's buffers to the manager. The column must
// not be used afterwards; device work still referencing it will fault.
func (c *Column) Close(mgr *mem.Manager) error {
	if c.data != nil {
		if st := mgr.Free(c.data); st != mem.Success {
			return ErrMemoryManager
		}
		c.data = nil
	}
	if c.valid != nil {
		if st := mgr.Free(c.valid); st != mem.Success {
			return ErrMemoryManager
		}
		c.valid = nil
	}
	c.length = 0
	return nil
}

// BinaryOp enqueues an element-wise binary operation out = lhs op rhs on
// stream s. The work is asynchronous; completion status surfaces at the
// next synchronization point. In godfdebug builds the trailing
// CheckStream synchronizes immediately so failures are reported here.
func BinaryOp(rt cuda.Runtime, s cuda.Stream, out, lhs, rhs *Column) error {
	if err := Expects(out != nil && lhs != nil && rhs != nil, "nil column"); err != nil {
		return err
	}
	if err := Expects(lhs.dtype == rhs.dtype && out.dtype == lhs.dtype, "column dtype mismatch"); err != nil {
		return err
	}
	if err := Expects(lhs.length == rhs.length && out.length == lhs.length, "column size mismatch"); err != nil {
		return err
	}
	if err := Expects(!lhs.HasValidity() && !rhs.HasValidity(), "validity masks not supported"); err != nil {
		return err
	}
	rt.Launch(s, columnKernel(out, lhs, rhs))
	if err := CheckLast(rt); err != nil {
		return err
	}
	return CheckStream(rt, s)
}

// BinaryOpLegacy is the legacy C-style surface for BinaryOp, reporting
// the specific legacy status for each failed check.
func BinaryOpLegacy(rt cuda.Runtime, s cuda.Stream, out, lhs, rhs *Column) Status {
	if st, ok := Require(out != nil && lhs != nil && rhs != nil, InvalidAPICall); !ok {
		return st
	}
	if st, ok := Require(lhs.dtype == rhs.dtype && out.dtype == lhs.dtype, UnsupportedDtype); !ok {
		return st
	}
	if st, ok := Require(lhs.length == rhs.length && out.length == lhs.length, ColumnSizeMismatch); !ok {
		return st
	}
	if st, ok := Require(!lhs.HasValidity() && !rhs.HasValidity(), ValidityUnsupported); !ok {
		return st
	}
	rt.Launch(s, columnKernel(out, lhs, rhs))
	if code := rt.PeekLastError(); code != cuda.Success {
		return CudaError
	}
	return OK
}

// CopyColumn enqueues an asynchronous copy of src into dst on stream s.
func CopyColumn(rt cuda.Runtime, s cuda.Stream, dst, src *Column) error {
	if err := Expects(dst != nil && src != nil, "nil column"); err != nil {
		return err
	}
	if err := Expectsf(dst.dtype == src.dtype, "column dtype mismatch: %s vs %s", dst.dtype, src.dtype); err != nil {
		return err
	}
	if err := Expectsf(dst.length == src.length, "column size mismatch: %d vs %d", dst.length, src.length); err != nil {
		return err
	}
	rt.Launch(s, columnKernel(dst, src))
	if err := CheckLast(rt); err != nil {
		return err
	}
	return CheckStream(rt, s)
}

// columnKernel models device work over the given columns. Actual
// compute kernels live outside this layer; the stand-in faults with
// cudaErrorIllegalAddress when a referenced column's storage has been
// released, which is how a real kernel reading freed device memory
// surfaces.
func columnKernel(cols ...*Column) cuda.Kernel {
	return func() cuda.Error {
		for _, c := range cols {
			if c.length > 0 && c.data == nil {
				return cuda.ErrIllegalAddress
			}
		}
		return cuda.Success
	}
}
