// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/minigrad/nn"
//	    "github.com/born-ml/minigrad/optim"
//	)
//
//	func main() {
//	    model := nn.NewLinear(784, 10, nn.LinearConfig{})
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	    for _, batch := range batches {
//	        optimizer.ZeroGrad()
//	        output, _ := model.Forward(batch.Input)
//	        loss, _ := nn.MSE(output, batch.Target)
//	        _ = loss.Backward()
//	        _ = optimizer.Step()
//	    }
//	}
//
// Gradients accumulate on parameters across backward passes, so call
// ZeroGrad before each one.
package optim
