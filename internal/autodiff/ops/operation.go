// Package ops implements the differentiable operations of the computation graph.
//
// Each operation implements autodiff.Operation:
//   - Forward: computes the result and links it to its inputs
//   - Backward: computes gradients for inputs given the output gradient
//
// Supported operations:
//   - AddOp: element-wise addition with broadcasting (d(a+b)/da = 1, d(a+b)/db = 1)
//   - MulOp: element-wise multiplication with broadcasting (d(a*b)/da = b, d(a*b)/db = a)
//   - MeanOp: mean of all elements to a scalar (d(mean)/dx = 1/n)
//   - MatMulOp: matrix multiplication (d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad)
//   - ReLUOp: rectified linear unit activation (d(ReLU(x))/dx = 1 if x > 0, else 0)
//
// Sub, Scale and Neg are compositions of the above and add no backward rules.
package ops

import "github.com/born-ml/minigrad/internal/autodiff"

// Compile-time interface checks.
var (
	_ autodiff.Operation = (*AddOp)(nil)
	_ autodiff.Operation = (*MulOp)(nil)
	_ autodiff.Operation = (*MeanOp)(nil)
	_ autodiff.Operation = (*MatMulOp)(nil)
	_ autodiff.Operation = (*ReLUOp)(nil)
)
