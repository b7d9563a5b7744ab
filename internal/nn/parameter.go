package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter wraps a leaf node that requires gradients. Optimizers update
// it in place through autodiff.Node.ApplyUpdate.
//
// Example:
//
//	weight := nn.NewParameter("weight", autodiff.Zeros(tensor.Shape{3, 2}))
//	w := weight.Node()   // use in the graph
//	g := weight.Grad()   // after backward
type Parameter struct {
	name string
	node *autodiff.Node
}

// NewParameter creates a new trainable parameter and enables gradient
// tracking on node.
func NewParameter(name string, node *autodiff.Node) *Parameter {
	return &Parameter{
		name: name,
		node: node.WithGrad(true),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Node returns the parameter node.
func (p *Parameter) Node() *autodiff.Node {
	return p.node
}

// Shape returns the parameter shape.
func (p *Parameter) Shape() tensor.Shape {
	return p.node.Shape()
}

// Grad returns a copy of the gradient, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Buffer {
	return p.node.Grad()
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.node.ClearGradient()
}
