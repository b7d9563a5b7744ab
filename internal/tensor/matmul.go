package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// MatMul returns the matrix product of two rank-2 buffers.
// [m, k] x [k, n] -> [m, n].
func (b *Buffer) MatMul(other *Buffer) (*Buffer, error) {
	if len(b.shape) != 2 || len(other.shape) != 2 {
		return nil, errors.Wrapf(ErrUnsupportedRank, "matmul requires rank-2 operands, got %v and %v", b.shape, other.shape)
	}
	m, k := b.shape[0], b.shape[1]
	k2, n := other.shape[0], other.shape[1]
	if k != k2 {
		return nil, errors.Wrapf(ErrShape, "matmul: inner dimensions differ: %v x %v", b.shape, other.shape)
	}

	// gonum panics on zero-sized matrices.
	if m == 0 || k == 0 || n == 0 {
		return newBuffer(Shape{m, n}), nil
	}

	out := newBuffer(Shape{m, n})
	dst := mat.NewDense(m, n, out.data)
	dst.Mul(mat.NewDense(m, k, b.data), mat.NewDense(k, n, other.data))
	return out, nil
}

// Transpose2D returns the transpose of a rank-2 buffer.
func (b *Buffer) Transpose2D() (*Buffer, error) {
	if len(b.shape) != 2 {
		return nil, errors.Wrapf(ErrUnsupportedRank, "transpose requires rank 2, got %v", b.shape)
	}
	rows, cols := b.shape[0], b.shape[1]
	out := newBuffer(Shape{cols, rows})
	if rows == 0 || cols == 0 {
		return out, nil
	}
	dst := mat.NewDense(cols, rows, out.data)
	dst.Copy(mat.NewDense(rows, cols, b.data).T())
	return out, nil
}
