// Package autodiff implements reverse-mode automatic differentiation over
// a dynamic computation graph.
//
// Architecture:
//   - Node: a tensor value plus its gradient, creator and parents
//   - Operation: pairs a forward computation with its backward rule
//   - Engine: Backward walks the graph in reverse topological order and
//     accumulates gradients into every node that requires them
//
// Every operation call allocates a new Node that points at its inputs.
// Nodes never point at their consumers, so the graph is acyclic and the
// garbage collector owns its lifetime.
//
// Usage:
//
//	x := autodiff.Scalar(3).WithGrad(true)
//	y, _ := ops.Mul(x, x) // y = x²
//	_ = y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 6
package autodiff

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// Node is a tensor in the computation graph.
//
// Leaves are created by factories and have no creator. Interior nodes are
// created by operations and remember the inputs that require gradients.
type Node struct {
	data         *tensor.Buffer
	grad         *tensor.Buffer // nil until backward assigns it
	requiresGrad bool
	creator      Operation
	parents      []*Node // aligned with creator.Backward's result
}

func newLeaf(buf *tensor.Buffer) *Node {
	return &Node{data: buf}
}

// Shape returns a copy of the node shape.
func (n *Node) Shape() tensor.Shape {
	return n.data.Shape()
}

// NumElements returns the number of elements.
func (n *Node) NumElements() int {
	return n.data.NumElements()
}

// Dims returns the rank.
func (n *Node) Dims() int {
	return n.data.Rank()
}

// Size returns the length of dimension dim, or false if dim is out of range.
func (n *Node) Size(dim int) (int, bool) {
	shape := n.data.Shape()
	if dim < 0 || dim >= len(shape) {
		return 0, false
	}
	return shape[dim], true
}

// Data returns a copy of the node value.
func (n *Node) Data() *tensor.Buffer {
	return n.data.Clone()
}

// Grad returns a copy of the accumulated gradient, or nil.
func (n *Node) Grad() *tensor.Buffer {
	if n.grad == nil {
		return nil
	}
	return n.grad.Clone()
}

// RawData returns the node value without copying.
// Operations use it to read inputs; callers must not mutate it.
func (n *Node) RawData() *tensor.Buffer {
	return n.data
}

// RawGrad returns the gradient without copying, or nil.
func (n *Node) RawGrad() *tensor.Buffer {
	return n.grad
}

// RequiresGrad reports whether gradients are tracked for this node.
func (n *Node) RequiresGrad() bool {
	return n.requiresGrad
}

// IsLeaf reports whether the node was created by a factory rather than an operation.
func (n *Node) IsLeaf() bool {
	return n.creator == nil
}

// Creator returns the operation that produced this node, or nil for leaves.
func (n *Node) Creator() Operation {
	return n.creator
}

// Parents returns the inputs of the creator that require gradients.
func (n *Node) Parents() []*Node {
	out := make([]*Node, len(n.parents))
	copy(out, n.parents)
	return out
}

// WithGrad turns gradient tracking on or off and returns the node.
//
// Turning it on allocates a zero gradient if none is present. Turning it
// off drops the gradient and cuts the node from its creator.
func (n *Node) WithGrad(requiresGrad bool) *Node {
	n.requiresGrad = requiresGrad
	if requiresGrad {
		if n.grad == nil {
			n.grad = tensor.Zeros(n.data.Shape())
		}
		return n
	}
	n.grad = nil
	n.creator = nil
	n.parents = nil
	return n
}

// ClearGradient resets the gradient to nil.
func (n *Node) ClearGradient() {
	n.grad = nil
}

// ApplyUpdate mutates a leaf's value in place using its gradient.
// fn receives the backing data and gradient slices.
//
// It is the one sanctioned mutation of node data and exists for optimizers.
func (n *Node) ApplyUpdate(fn func(data, grad []float64)) error {
	if !n.IsLeaf() {
		return errors.Wrap(tensor.ErrNotLeaf, "apply update")
	}
	if n.grad == nil {
		return errors.Wrap(tensor.ErrMissingGradient, "apply update")
	}
	fn(n.data.Data(), n.grad.Data())
	return nil
}

// Backward runs reverse-mode differentiation from this node, seeded with ones.
func (n *Node) Backward() error {
	return Backward(n)
}

// BackwardWithSeed runs reverse-mode differentiation from this node with
// an explicit seed gradient.
func (n *Node) BackwardWithSeed(seed *tensor.Buffer) error {
	return BackwardWithSeed(n, seed)
}
