package autodiff

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// Operation represents a differentiable operation in the computation graph.
//
// An Operation value is created per call. Forward computes the result node
// and records whatever Backward will need (input buffers, masks).
type Operation interface {
	// Name returns a short identifier such as "add" or "matmul".
	Name() string

	// Forward computes the output node from its inputs and links it into
	// the graph. Shape errors are returned before any node is created.
	Forward(inputs ...*Node) (*Node, error)

	// Backward computes gradients for the output's parents given the
	// output's gradient. The result has one buffer per parent, in parent
	// order, each with that parent's shape.
	//
	// Example for Add:
	//   output.grad: dL/d(a+b)
	//   returns: [dL/da, dL/db] (reduced over broadcast axes)
	Backward(output *Node) ([]*tensor.Buffer, error)
}

// NewResult wraps buf as the output of op applied to inputs.
//
// The result requires gradients if any input does; its parents are the
// inputs that require gradients, in input order. The returned mask tells
// op which inputs need a gradient from its Backward.
func NewResult(buf *tensor.Buffer, op Operation, inputs ...*Node) (*Node, []bool) {
	needs := make([]bool, len(inputs))
	out := newLeaf(buf)
	for i, in := range inputs {
		if !in.requiresGrad {
			continue
		}
		needs[i] = true
		out.requiresGrad = true
		out.parents = append(out.parents, in)
	}
	if out.requiresGrad {
		out.creator = op
	}
	return out, needs
}

// CheckInputs validates the number of inputs passed to an operation.
func CheckInputs(name string, inputs []*Node, want int) error {
	if len(inputs) != want {
		return errors.Wrapf(tensor.ErrArity, "%s: expected %d inputs, got %d", name, want, len(inputs))
	}
	for i, in := range inputs {
		if in == nil {
			return errors.Wrapf(tensor.ErrArity, "%s: input %d is nil", name, i)
		}
	}
	return nil
}

// OutputGrad returns the output gradient an operation's Backward consumes.
func OutputGrad(name string, output *Node) (*tensor.Buffer, error) {
	if output == nil || output.grad == nil {
		return nil, errors.Wrapf(tensor.ErrMissingGradient, "%s backward", name)
	}
	return output.grad, nil
}
