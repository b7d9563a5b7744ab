package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Add returns b + other with NumPy broadcasting.
func (b *Buffer) Add(other *Buffer) (*Buffer, error) {
	return b.binary(other, "add", floats.AddTo, func(x, y float64) float64 { return x + y })
}

// Sub returns b - other with NumPy broadcasting.
func (b *Buffer) Sub(other *Buffer) (*Buffer, error) {
	return b.binary(other, "sub", floats.SubTo, func(x, y float64) float64 { return x - y })
}

// Mul returns b * other element by element with NumPy broadcasting.
func (b *Buffer) Mul(other *Buffer) (*Buffer, error) {
	return b.binary(other, "mul", floats.MulTo, func(x, y float64) float64 { return x * y })
}

// binary runs an elementwise kernel. Equal shapes take the gonum fast
// path; otherwise both operands are read through broadcast strides.
func (b *Buffer) binary(
	other *Buffer,
	name string,
	fast func(dst, s, t []float64) []float64,
	op func(x, y float64) float64,
) (*Buffer, error) {
	if b.shape.Equal(other.shape) {
		out := newBuffer(b.shape)
		fast(out.data, b.data, other.data)
		return out, nil
	}

	shape, _, err := BroadcastShapes(b.shape, other.shape)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	out := newBuffer(shape)
	if len(out.data) == 0 {
		return out, nil
	}

	aStrides := b.shape.broadcastStrides(shape)
	bStrides := other.shape.broadcastStrides(shape)
	index := make([]int, len(shape))
	aOff, bOff := 0, 0

	for i := range out.data {
		out.data[i] = op(b.data[aOff], other.data[bOff])

		// Advance the multi-dimensional counter, keeping both offsets in step.
		for d := len(shape) - 1; d >= 0; d-- {
			index[d]++
			aOff += aStrides[d]
			bOff += bStrides[d]
			if index[d] < shape[d] {
				break
			}
			aOff -= aStrides[d] * shape[d]
			bOff -= bStrides[d] * shape[d]
			index[d] = 0
		}
	}
	return out, nil
}
