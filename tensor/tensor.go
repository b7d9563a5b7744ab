// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/minigrad/internal/tensor"

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// Buffer is a dense row-major float64 array.
type Buffer = tensor.Buffer

// Error kinds.
var (
	ErrShape           = tensor.ErrShape
	ErrMissingGradient = tensor.ErrMissingGradient
	ErrEmptyTensor     = tensor.ErrEmptyTensor
	ErrUnsupportedRank = tensor.ErrUnsupportedRank
	ErrArity           = tensor.ErrArity
	ErrNoGradient      = tensor.ErrNoGradient
	ErrNotLeaf         = tensor.ErrNotLeaf
)

// NewBuffer creates a buffer from a Go slice. The slice is copied.
func NewBuffer(data []float64, shape Shape) (*Buffer, error) {
	return tensor.NewBuffer(data, shape)
}

// Zeros creates a buffer filled with zeros.
func Zeros(shape Shape) *Buffer {
	return tensor.Zeros(shape)
}

// Ones creates a buffer filled with ones.
func Ones(shape Shape) *Buffer {
	return tensor.Ones(shape)
}

// Full creates a buffer with every element set to value.
func Full(shape Shape, value float64) *Buffer {
	return tensor.Full(shape, value)
}

// Stack joins equally shaped buffers along a new leading axis.
func Stack(bufs []*Buffer) (*Buffer, error) {
	return tensor.Stack(bufs)
}

// BroadcastShapes returns the NumPy broadcast of two shapes.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
