// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides automatic differentiation capabilities.
//
// This package implements reverse-mode automatic differentiation
// (backpropagation) over a dynamic graph of nodes. Every operation records
// its inputs; Backward walks the graph in reverse topological order.
//
// Example:
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/tensor"
//	)
//
//	func main() {
//	    x, _ := autodiff.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})
//	    x.WithGrad(true)
//
//	    y, _ := autodiff.Mul(x, x)
//	    loss, _ := autodiff.Mean(y)
//	    _ = loss.Backward()
//
//	    fmt.Println(x.Grad().Data()) // 2x/3
//	}
package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
)

// Node is a tensor in the computation graph.
type Node = autodiff.Node

// Operation is a differentiable operation.
type Operation = autodiff.Operation

// RandomConfig configures RandomNormal.
type RandomConfig = autodiff.RandomConfig

// DefaultRandomConfig returns the configuration used for parameter init.
func DefaultRandomConfig() RandomConfig {
	return autodiff.DefaultRandomConfig()
}

// Factories

// FromBuffer wraps buf in a leaf node.
func FromBuffer(buf *tensor.Buffer) *Node {
	return autodiff.FromBuffer(buf)
}

// FromSlice creates a leaf node from a Go slice.
func FromSlice(data []float64, shape tensor.Shape) (*Node, error) {
	return autodiff.FromSlice(data, shape)
}

// Scalar creates a rank-0 leaf node.
func Scalar(v float64) *Node {
	return autodiff.Scalar(v)
}

// Zeros creates a leaf node filled with zeros.
func Zeros(shape tensor.Shape) *Node {
	return autodiff.Zeros(shape)
}

// Ones creates a leaf node filled with ones.
func Ones(shape tensor.Shape) *Node {
	return autodiff.Ones(shape)
}

// Full creates a leaf node with every element set to v.
func Full(shape tensor.Shape, v float64) *Node {
	return autodiff.Full(shape, v)
}

// RandomNormal creates a leaf of scaled standard normal samples.
func RandomNormal(shape tensor.Shape, cfg RandomConfig) *Node {
	return autodiff.RandomNormal(shape, cfg)
}

// Stack joins equally shaped nodes along a new leading axis.
func Stack(nodes []*Node) (*Node, error) {
	return autodiff.Stack(nodes)
}

// Operations

// Add returns a + b with broadcasting.
func Add(a, b *Node) (*Node, error) {
	return ops.Add(a, b)
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Node) (*Node, error) {
	return ops.Sub(a, b)
}

// Mul returns a * b element by element with broadcasting.
func Mul(a, b *Node) (*Node, error) {
	return ops.Mul(a, b)
}

// Scale returns k * x.
func Scale(x *Node, k float64) (*Node, error) {
	return ops.Scale(x, k)
}

// Neg returns -x.
func Neg(x *Node) (*Node, error) {
	return ops.Neg(x)
}

// Mean returns the rank-0 mean of x.
func Mean(x *Node) (*Node, error) {
	return ops.Mean(x)
}

// MatMul returns a @ b for [m,k] or [b,c,k] times [k,n].
func MatMul(a, b *Node) (*Node, error) {
	return ops.MatMul(a, b)
}

// ReLU returns max(x, 0).
func ReLU(x *Node) (*Node, error) {
	return ops.ReLU(x)
}

// Engine

// Backward computes gradients of root, seeded with ones.
func Backward(root *Node) error {
	return autodiff.Backward(root)
}

// BackwardWithSeed computes gradients of root from an explicit seed.
func BackwardWithSeed(root *Node, seed *tensor.Buffer) error {
	return autodiff.BackwardWithSeed(root, seed)
}

// TopologicalOrder returns the nodes reachable from root, parents first.
func TopologicalOrder(root *Node) []*Node {
	return autodiff.TopologicalOrder(root)
}
