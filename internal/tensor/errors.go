package tensor

import "github.com/pkg/errors"

// Error kinds shared by the buffer kernels, the graph engine and the
// operations. Call sites wrap them with context; match with errors.Is.
var (
	// ErrShape reports incompatible shapes for broadcast, reshape, stack or matmul.
	ErrShape = errors.New("incompatible tensor shape")

	// ErrMissingGradient reports a backward step on a node whose gradient was never set.
	ErrMissingGradient = errors.New("missing gradient")

	// ErrEmptyTensor reports a reduction over zero elements.
	ErrEmptyTensor = errors.New("reduction over empty tensor")

	// ErrUnsupportedRank reports a tensor rank an operation does not implement.
	ErrUnsupportedRank = errors.New("unsupported tensor rank")

	// ErrArity reports a wrong number of operation inputs, or a nil input.
	ErrArity = errors.New("wrong number of operation inputs")

	// ErrNoGradient reports backward called on a node that does not require gradients.
	ErrNoGradient = errors.New("tensor does not require gradients")

	// ErrNotLeaf reports an in-place parameter update on a non-leaf node.
	ErrNotLeaf = errors.New("tensor is not a leaf")
)
