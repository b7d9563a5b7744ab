package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// MSE is commonly used for regression tasks where the goal is to predict
// continuous values.
//
// Example:
//
//	mse := nn.NewMSELoss()
//	predictions, _ := model.Forward(input)
//	loss, err := mse.Forward(predictions, targets)
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the MSE loss as a rank-0 node.
//
// predictions and targets must have the same shape.
func (m *MSELoss) Forward(predictions, targets *autodiff.Node) (*autodiff.Node, error) {
	if !predictions.Shape().Equal(targets.Shape()) {
		return nil, errors.Wrapf(tensor.ErrShape, "mse loss: predictions %v vs targets %v",
			predictions.Shape(), targets.Shape())
	}

	diff, err := ops.Sub(predictions, targets)
	if err != nil {
		return nil, err
	}
	squared, err := ops.Mul(diff, diff)
	if err != nil {
		return nil, err
	}
	return ops.Mean(squared)
}

// MSE is a shorthand for NewMSELoss().Forward.
func MSE(predictions, targets *autodiff.Node) (*autodiff.Node, error) {
	return NewMSELoss().Forward(predictions, targets)
}
