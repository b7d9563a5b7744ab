package ops

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// AddOp represents an element-wise addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
//
// Note: If broadcasting was used in forward pass, gradients must be
// reduced (summed) along the broadcast dimensions to match input shapes.
type AddOp struct {
	shapes [2]tensor.Shape
	needs  []bool
}

// NewAddOp creates a new AddOp.
func NewAddOp() *AddOp {
	return &AddOp{}
}

// Add returns a + b with broadcasting.
func Add(a, b *autodiff.Node) (*autodiff.Node, error) {
	return NewAddOp().Forward(a, b)
}

// Name returns "add".
func (op *AddOp) Name() string {
	return "add"
}

// Forward computes a + b.
func (op *AddOp) Forward(inputs ...*autodiff.Node) (*autodiff.Node, error) {
	if err := autodiff.CheckInputs(op.Name(), inputs, 2); err != nil {
		return nil, err
	}
	a, b := inputs[0].RawData(), inputs[1].RawData()

	out, err := a.Add(b)
	if err != nil {
		return nil, errors.Wrap(err, op.Name())
	}

	op.shapes = [2]tensor.Shape{a.Shape(), b.Shape()}
	node, needs := autodiff.NewResult(out, op, inputs...)
	op.needs = needs
	return node, nil
}

// Backward passes the output gradient to both inputs, reduced to their shapes.
func (op *AddOp) Backward(output *autodiff.Node) ([]*tensor.Buffer, error) {
	grad, err := autodiff.OutputGrad(op.Name(), output)
	if err != nil {
		return nil, err
	}
	return gradList(op.needs, func(i int) (*tensor.Buffer, error) {
		return reduceBroadcast(op.Name(), grad, op.shapes[i])
	})
}
