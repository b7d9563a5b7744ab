package ops

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The gradient is computed by creating a mask where input > 0, then
// multiplying the output gradient by this mask.
type ReLUOp struct {
	input *tensor.Buffer
	needs []bool
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp() *ReLUOp {
	return &ReLUOp{}
}

// ReLU returns max(x, 0) element by element.
func ReLU(x *autodiff.Node) (*autodiff.Node, error) {
	return NewReLUOp().Forward(x)
}

// Name returns "relu".
func (op *ReLUOp) Name() string {
	return "relu"
}

// Forward computes max(x, 0).
func (op *ReLUOp) Forward(inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if err := autodiff.CheckInputs(op.Name(), inputs, 1); err != nil {
		return nil, err
	}
	op.input = inputs[0].RawData()

	out := op.input.Map(func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})

	node, needs := autodiff.NewResult(out, op, inputs...)
	op.needs = needs
	return node, nil
}

// Backward computes input gradient for ReLU.
func (op *ReLUOp) Backward(output *autodiff.Node) ([]*tensor.Buffer, error) {
	grad, err := autodiff.OutputGrad(op.Name(), output)
	if err != nil {
		return nil, err
	}
	return gradList(op.needs, func(int) (*tensor.Buffer, error) {
		g, err := grad.Mul(reluMask(op.input))
		if err != nil {
			return nil, errors.Wrapf(err, "%s backward", op.Name())
		}
		return g, nil
	})
}

// reluMask creates a binary mask where input > 0.
func reluMask(input *tensor.Buffer) *tensor.Buffer {
	return input.Map(func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
}
