package ops

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// MulOp represents an element-wise multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs [2]*tensor.Buffer // [a, b]
	needs  []bool
}

// NewMulOp creates a new MulOp.
func NewMulOp() *MulOp {
	return &MulOp{}
}

// Mul returns a * b element by element with broadcasting.
func Mul(a, b *autodiff.Node) (*autodiff.Node, error) {
	return NewMulOp().Forward(a, b)
}

// Name returns "mul".
func (op *MulOp) Name() string {
	return "mul"
}

// Forward computes a * b.
func (op *MulOp) Forward(inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if err := autodiff.CheckInputs(op.Name(), inputs, 2); err != nil {
		return nil, err
	}
	a, b := inputs[0].RawData(), inputs[1].RawData()

	out, err := a.Mul(b)
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}

	op.inputs = [2]*tensor.Buffer{a, b}
	node, needs := autodiff.NewResult(out, op, inputs...)
	op.needs = needs
	return node, nil
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(output *autodiff.Node) ([]*tensor.Buffer, error) {
	grad, err := autodiff.OutputGrad(op.Name(), output)
	if err != nil {
		return nil, err
	}
	return gradList(op.needs, func(i int) (*tensor.Buffer, error) {
		// grad_a = outputGrad * b, grad_b = outputGrad * a
		other := op.inputs[1-i]
		g, err := grad.Mul(other)
		if err != nil {
			return nil, errors.Wrapf(err, "%s backward", op.Name())
		}
		return reduceBroadcast(op.Name(), g, op.inputs[i].Shape())
	})
}
