package ops

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// MeanOp reduces a tensor to the scalar mean of all its elements.
//
// Backward pass:
//   - d(mean(x))/dx_i = 1/n, so grad_x = outputGrad / n everywhere
type MeanOp struct {
	shape tensor.Shape
	needs []bool
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp() *MeanOp {
	return &MeanOp{}
}

// Mean returns the rank-0 mean of x.
func Mean(x *autodiff.Node) (*autodiff.Node, error) {
	return NewMeanOp().Forward(x)
}

// Name returns "mean".
func (op *MeanOp) Name() string {
	return "mean"
}

// Forward computes the mean. It fails with ErrEmptyTensor for zero elements.
func (op *MeanOp) Forward(inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if err := autodiff.CheckInputs(op.Name(), inputs, 1); err != nil {
		return nil, err
	}
	x := inputs[0].RawData()

	m, err := x.Mean()
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}

	op.shape = x.Shape()
	node, needs := autodiff.NewResult(tensor.Full(tensor.Shape{}, m), op, inputs...)
	op.needs = needs
	return node, nil
}

// Backward spreads the scalar gradient evenly over the input.
func (op *MeanOp) Backward(output *autodiff.Node) ([]*tensor.Buffer, error) {
	grad, err := autodiff.OutputGrad(op.Name(), output)
	if err != nil {
		return nil, err
	}
	g := grad.Data()[0] / float64(op.shape.NumElements())
	return gradList(op.needs, func(int) (*tensor.Buffer, error) {
		return tensor.Full(op.shape, g), nil
	})
}
