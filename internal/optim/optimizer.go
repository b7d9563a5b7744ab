// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Design inspired by PyTorch's torch.optim.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    optimizer.ZeroGrad()
//	    output, _ := model.Forward(input)
//	    loss, _ := nn.MSE(output, targets)
//	    _ = loss.Backward()
//	    _ = optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters in place from the gradients left on
// them by the last backward pass.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Parameters without a gradient (not part of the last graph) are skipped.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// Gradients accumulate across backward passes, so this should be
	// called before each one.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for scheduling.
	SetLR(lr float64)
}

// update applies fn to a parameter's data and gradient.
// A parameter with no gradient is skipped.
func update(param *nn.Parameter, fn func(data, grad []float64)) error {
	err := param.Node().ApplyUpdate(fn)
	if err == nil || errors.Is(err, tensor.ErrMissingGradient) {
		return nil
	}
	return errors.Wrapf(err, "parameter %q", param.Name())
}

// zeroGrad clears the gradients of params.
func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
