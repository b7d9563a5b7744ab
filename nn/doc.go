// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU
//   - Loss functions: MSELoss
//   - Utilities: Sequential, Module interface, Parameter
//
// # Basic Usage
//
//	import "github.com/born-ml/minigrad/nn"
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(2, 16, nn.LinearConfig{}),
//	        nn.NewReLU(),
//	        nn.NewLinear(16, 1, nn.LinearConfig{}),
//	    )
//
//	    output, err := model.Forward(input)
//	    loss, err := nn.MSE(output, targets)
//	}
//
// # Layers
//
// Linear computes x @ W + b with W of shape [in, out]. Inputs may be
// [batch, in] or [b, c, in].
package nn
