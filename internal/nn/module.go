// Package nn implements neural network modules for minigrad.
//
// This package provides building blocks for constructing neural networks:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable parameters with gradient tracking
//   - Linear: Fully connected layer
//   - ReLU: Activation module
//   - MSELoss: Mean squared error
//   - Sequential: Container for stacking layers
//
// Every module is built from the operations in internal/autodiff/ops, so
// gradients flow through modules with no extra backward code.
package nn

import "github.com/born-ml/minigrad/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build complex architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, nn.LinearConfig{}),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, nn.LinearConfig{}),
//	)
type Module interface {
	// Forward computes the output of the module given an input node.
	//
	// For example, Linear expects [batch_size, in_features].
	Forward(input *autodiff.Node) (*autodiff.Node, error)

	// Parameters returns all trainable parameters of this module.
	//
	// Returns an empty slice for modules without trainable parameters
	// (e.g., activation functions).
	Parameters() []*Parameter
}
