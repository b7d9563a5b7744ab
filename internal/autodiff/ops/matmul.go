package ops

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// MatMulOp represents a matrix multiplication operation: output = a @ b.
//
// The left operand is [m, k] or batched [b, c, k]; the right operand is
// [k, n]. A batched left operand is flattened to [b*c, k], so every
// product runs as one 2D multiply.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad, summed over all leading axes of A
//
// Where @ denotes matrix multiplication and ^T denotes transpose.
type MatMulOp struct {
	a, b   *tensor.Buffer // a flattened to rank 2
	aShape tensor.Shape
	needs  []bool
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp() *MatMulOp {
	return &MatMulOp{}
}

// MatMul returns a @ b.
func MatMul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return NewMatMulOp().Forward(a, b)
}

// Name returns "matmul".
func (op *MatMulOp) Name() string {
	return "matmul"
}

// Forward computes a @ b.
func (op *MatMulOp) Forward(inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if err := autodiff.CheckInputs(op.Name(), inputs, 2); err != nil {
		return nil, err
	}
	a, b := inputs[0].RawData(), inputs[1].RawData()
	aShape, bShape := a.Shape(), b.Shape()

	if len(aShape) > 3 {
		return nil, errors.Wrapf(tensor.ErrUnsupportedRank,
			"matmul: left operand rank %d not implemented: %v", len(aShape), aShape)
	}
	if len(aShape) < 2 || len(bShape) != 2 {
		return nil, errors.Wrapf(tensor.ErrShape,
			"matmul: expected [m,k] or [b,c,k] times [k,n], got %v and %v", aShape, bShape)
	}
	k := aShape[len(aShape)-1]
	if bShape[0] != k {
		return nil, errors.Wrapf(tensor.ErrShape,
			"matmul: contraction dimension mismatch: %v @ %v", aShape, bShape)
	}

	flat, err := a.Reshape(tensor.Shape{aShape[:len(aShape)-1].NumElements(), k})
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}
	prod, err := flat.MatMul(b)
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}

	outShape := append(aShape[:len(aShape)-1].Clone(), bShape[1])
	out, err := prod.Reshape(outShape)
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}

	op.a, op.b, op.aShape = flat, b, aShape
	node, needs := autodiff.NewResult(out, op, inputs...)
	op.needs = needs
	return node, nil
}

// Backward computes input gradients for matrix multiplication.
func (op *MatMulOp) Backward(output *autodiff.Node) ([]*tensor.Buffer, error) {
	grad, err := autodiff.OutputGrad(op.Name(), output)
	if err != nil {
		return nil, err
	}
	rows, n := op.a.Shape()[0], op.b.Shape()[1]
	g, err := grad.Reshape(tensor.Shape{rows, n})
	if err != nil {
		return nil, errors.Wrapf(err, "%s backward", op.Name())
	}

	return gradList(op.needs, func(i int) (*tensor.Buffer, error) {
		var (
			out *tensor.Buffer
			err error
		)
		if i == 0 {
			out, err = op.gradLeft(g)
		} else {
			out, err = op.gradRight(g)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s backward", op.Name())
		}
		return out, nil
	})
}

// gradLeft computes g @ B^T, restored to the left operand's shape.
func (op *MatMulOp) gradLeft(g *tensor.Buffer) (*tensor.Buffer, error) {
	bT, err := op.b.Transpose2D()
	if err != nil {
		return nil, err
	}
	ga, err := g.MatMul(bT)
	if err != nil {
		return nil, err
	}
	return ga.Reshape(op.aShape)
}

// gradRight computes A^T @ g over the flattened left operand, which sums
// the per-batch contributions.
func (op *MatMulOp) gradRight(g *tensor.Buffer) (*tensor.Buffer, error) {
	aT, err := op.a.Transpose2D()
	if err != nil {
		return nil, err
	}
	return aT.MatMul(g)
}
