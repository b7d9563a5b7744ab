package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of all elements.
func (b *Buffer) Sum() float64 {
	return floats.Sum(b.data)
}

// Mean returns the arithmetic mean of all elements.
// It fails with ErrEmptyTensor when the buffer has no elements.
func (b *Buffer) Mean() (float64, error) {
	if len(b.data) == 0 {
		return 0, errors.Wrapf(ErrEmptyTensor, "mean of tensor with shape %v", b.shape)
	}
	return floats.Sum(b.data) / float64(len(b.data)), nil
}

// SumAxis sums along one axis. With keepDim the axis stays with size 1,
// otherwise it is removed.
func (b *Buffer) SumAxis(axis int, keepDim bool) (*Buffer, error) {
	if axis < 0 || axis >= len(b.shape) {
		return nil, errors.Wrapf(ErrShape, "axis %d out of range for rank %d", axis, len(b.shape))
	}

	outer := b.shape[:axis].NumElements()
	n := b.shape[axis]
	inner := b.shape[axis+1:].NumElements()

	var shape Shape
	if keepDim {
		shape = b.shape.Clone()
		shape[axis] = 1
	} else {
		shape = make(Shape, 0, len(b.shape)-1)
		shape = append(shape, b.shape[:axis]...)
		shape = append(shape, b.shape[axis+1:]...)
	}

	out := newBuffer(shape)
	for o := 0; o < outer; o++ {
		dst := out.data[o*inner : (o+1)*inner]
		for k := 0; k < n; k++ {
			start := (o*n + k) * inner
			floats.Add(dst, b.data[start:start+inner])
		}
	}
	return out, nil
}

// SumToShape reduces a broadcast result back to target. It is the
// inverse of broadcasting and is used by backward rules:
//  1. leading axes that target lacks are summed away;
//  2. axes where target has size 1 but b does not are summed with keepDim.
//
// The result has exactly the target shape.
func (b *Buffer) SumToShape(target Shape) (*Buffer, error) {
	if b.shape.Equal(target) {
		return b.Clone(), nil
	}
	if len(target) > len(b.shape) {
		return nil, errors.Wrapf(ErrShape, "cannot reduce %v to higher rank %v", b.shape, target)
	}

	out := b
	for len(out.shape) > len(target) {
		next, err := out.SumAxis(0, false)
		if err != nil {
			return nil, err
		}
		out = next
	}

	for i, dim := range target {
		switch {
		case dim == out.shape[i]:
		case dim == 1:
			next, err := out.SumAxis(i, true)
			if err != nil {
				return nil, err
			}
			out = next
		default:
			return nil, errors.Wrapf(ErrShape, "cannot reduce %v to %v (dimension %d)", b.shape, target, i)
		}
	}

	if out == b {
		return b.Clone(), nil
	}
	return out.Reshape(target)
}
