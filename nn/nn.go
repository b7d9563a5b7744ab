// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/nn"
)

// Module is the base interface for all neural network components.
type Module = nn.Module

// Parameter is a trainable parameter.
type Parameter = nn.Parameter

// NewParameter creates a trainable parameter from a node.
func NewParameter(name string, node *autodiff.Node) *Parameter {
	return nn.NewParameter(name, node)
}

// Linear is a fully connected layer.
type Linear = nn.Linear

// LinearConfig configures a Linear layer.
type LinearConfig = nn.LinearConfig

// NewLinear creates a new Linear layer.
//
// Example:
//
//	layer := nn.NewLinear(784, 128, nn.LinearConfig{})
func NewLinear(inFeatures, outFeatures int, config LinearConfig) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, config)
}

// ReLU is the ReLU activation module.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sequential chains modules.
type Sequential = nn.Sequential

// NewSequential creates a Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// MSELoss is the mean squared error loss.
type MSELoss = nn.MSELoss

// NewMSELoss creates an MSE loss.
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// MSE computes mean((predictions - targets)²).
func MSE(predictions, targets *autodiff.Node) (*autodiff.Node, error) {
	return nn.MSE(predictions, targets)
}
