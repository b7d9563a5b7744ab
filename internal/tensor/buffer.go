package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Buffer is a dense, row-major float64 array with a shape.
//
// A rank-0 buffer (Shape{}) holds exactly one element.
type Buffer struct {
	shape Shape
	data  []float64
}

// NewBuffer creates a buffer from a Go slice. The slice is copied.
func NewBuffer(data []float64, shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShape, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}
	buf := &Buffer{shape: shape.Clone(), data: make([]float64, len(data))}
	copy(buf.data, data)
	return buf, nil
}

// newBuffer allocates a zeroed buffer without validation.
func newBuffer(shape Shape) *Buffer {
	return &Buffer{shape: shape.Clone(), data: make([]float64, shape.NumElements())}
}

// Zeros creates a buffer filled with zeros.
// It panics on a negative dimension.
func Zeros(shape Shape) *Buffer {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newBuffer(shape)
}

// Ones creates a buffer filled with ones.
func Ones(shape Shape) *Buffer {
	return Full(shape, 1)
}

// Full creates a buffer with every element set to value.
func Full(shape Shape, value float64) *Buffer {
	buf := Zeros(shape)
	for i := range buf.data {
		buf.data[i] = value
	}
	return buf
}

// Shape returns a copy of the buffer shape.
func (b *Buffer) Shape() Shape {
	return b.shape.Clone()
}

// Data returns the backing slice.
// WARNING: the slice aliases the buffer. Callers that keep it must not
// let it escape into another buffer.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{shape: b.shape.Clone(), data: make([]float64, len(b.data))}
	copy(out.data, b.data)
	return out
}

// NumElements returns the number of stored elements.
func (b *Buffer) NumElements() int {
	return len(b.data)
}

// Rank returns the number of dimensions.
func (b *Buffer) Rank() int {
	return len(b.shape)
}

// At returns the element at the given multi-dimensional index.
func (b *Buffer) At(indices ...int) (float64, error) {
	if len(indices) != len(b.shape) {
		return 0, errors.Wrapf(ErrShape, "index has %d components, tensor has rank %d", len(indices), len(b.shape))
	}
	strides := b.shape.ComputeStrides()
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= b.shape[i] {
			return 0, errors.Wrapf(ErrShape, "index %d out of range for dimension %d of size %d", idx, i, b.shape[i])
		}
		offset += idx * strides[i]
	}
	return b.data[offset], nil
}

// Reshape returns a copy of the buffer with a new shape.
// Element counts must match.
func (b *Buffer) Reshape(shape Shape) (*Buffer, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(b.data) {
		return nil, errors.Wrapf(ErrShape, "cannot reshape %v (%d elements) to %v (%d elements)",
			b.shape, len(b.data), shape, shape.NumElements())
	}
	out := &Buffer{shape: shape.Clone(), data: make([]float64, len(b.data))}
	copy(out.data, b.data)
	return out, nil
}

// Scale returns a new buffer with every element multiplied by k.
func (b *Buffer) Scale(k float64) *Buffer {
	out := b.Clone()
	floats.Scale(k, out.data)
	return out
}

// Map returns a new buffer with fn applied to every element.
func (b *Buffer) Map(fn func(float64) float64) *Buffer {
	out := newBuffer(b.shape)
	for i, v := range b.data {
		out.data[i] = fn(v)
	}
	return out
}

// AddInPlace adds other into b element by element.
// Shapes must be equal; this is the gradient accumulation kernel.
func (b *Buffer) AddInPlace(other *Buffer) error {
	if !b.shape.Equal(other.shape) {
		return errors.Wrapf(ErrShape, "in-place add: %v vs %v", b.shape, other.shape)
	}
	floats.Add(b.data, other.data)
	return nil
}

// AllClose reports whether both buffers have the same shape and all
// elements agree within tol.
func (b *Buffer) AllClose(other *Buffer, tol float64) bool {
	if !b.shape.Equal(other.shape) {
		return false
	}
	return floats.EqualApprox(b.data, other.data, tol)
}

// Stack joins equally shaped buffers along a new leading axis.
func Stack(bufs []*Buffer) (*Buffer, error) {
	if len(bufs) == 0 {
		return nil, errors.Wrap(ErrShape, "stack of zero tensors")
	}
	first := bufs[0].shape
	for i, buf := range bufs[1:] {
		if !buf.shape.Equal(first) {
			return nil, errors.Wrapf(ErrShape, "stack: tensor %d has shape %v, expected %v", i+1, buf.shape, first)
		}
	}

	shape := append(Shape{len(bufs)}, first...)
	out := newBuffer(shape)
	n := first.NumElements()
	for i, buf := range bufs {
		copy(out.data[i*n:(i+1)*n], buf.data)
	}
	return out, nil
}
