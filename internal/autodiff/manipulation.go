package autodiff

import (
	"strconv"
	"strings"

	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// maxPrintElements is the largest tensor String prints in full.
const maxPrintElements = 64

// Reshape returns a new leaf with the same data and a new shape.
// The result does not require gradients and is not linked to n.
func (n *Node) Reshape(shape tensor.Shape) (*Node, error) {
	buf, err := n.data.Reshape(shape)
	if err != nil {
		return nil, err
	}
	return newLeaf(buf), nil
}

// Stack joins equally shaped nodes along a new leading axis.
// The result is a leaf one rank higher that does not require gradients.
func Stack(nodes []*Node) (*Node, error) {
	bufs := make([]*tensor.Buffer, len(nodes))
	for i, node := range nodes {
		if node == nil {
			return nil, errors.Wrapf(tensor.ErrArity, "stack: node %d is nil", i)
		}
		bufs[i] = node.data
	}
	buf, err := tensor.Stack(bufs)
	if err != nil {
		return nil, err
	}
	return newLeaf(buf), nil
}

// Squeeze removes a size-1 dimension. With dim == nil every size-1
// dimension is removed.
func (n *Node) Squeeze(dim *int) (*Node, error) {
	shape := n.data.Shape()
	var next tensor.Shape

	if dim != nil {
		d := *dim
		if d < 0 || d >= len(shape) {
			return nil, errors.Wrapf(tensor.ErrShape, "squeeze: dim %d out of range for rank %d", d, len(shape))
		}
		if shape[d] != 1 {
			return nil, errors.Wrapf(tensor.ErrShape, "squeeze: dim %d has size %d", d, shape[d])
		}
		next = append(next, shape[:d]...)
		next = append(next, shape[d+1:]...)
	} else {
		for _, size := range shape {
			if size != 1 {
				next = append(next, size)
			}
		}
	}

	if next == nil {
		next = tensor.Shape{}
	}
	return n.Reshape(next)
}

// Unsqueeze inserts a size-1 dimension at dim, where 0 <= dim <= rank.
func (n *Node) Unsqueeze(dim int) (*Node, error) {
	shape := n.data.Shape()
	if dim < 0 || dim > len(shape) {
		return nil, errors.Wrapf(tensor.ErrShape, "unsqueeze: dim %d out of range for rank %d", dim, len(shape))
	}
	next := make(tensor.Shape, 0, len(shape)+1)
	next = append(next, shape[:dim]...)
	next = append(next, 1)
	next = append(next, shape[dim:]...)
	return n.Reshape(next)
}

// Index returns the element at the given multi-dimensional index.
func (n *Node) Index(indices ...int) (float64, error) {
	return n.data.At(indices...)
}

// Item returns the value of a rank-0 node.
func (n *Node) Item() (float64, error) {
	if n.data.Rank() != 0 {
		return 0, errors.Wrapf(tensor.ErrShape, "item requires a scalar, got shape %v", n.data.Shape())
	}
	return n.data.Data()[0], nil
}

// Detach returns a new leaf holding a copy of the data, with no gradient
// and no link to n.
func (n *Node) Detach() *Node {
	return newLeaf(n.data.Clone())
}

// String formats the node as tensor([...]).
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString("tensor(")
	if n.data.NumElements() <= maxPrintElements {
		writeNested(&sb, n.data.Data(), n.data.Shape())
	} else {
		dims := make([]string, 0, n.data.Rank())
		for _, d := range n.data.Shape() {
			dims = append(dims, strconv.Itoa(d))
		}
		sb.WriteString("[...tensor of size ")
		sb.WriteString(strings.Join(dims, "×"))
		sb.WriteString("]")
	}
	if n.requiresGrad {
		sb.WriteString(", requires_grad=true")
	}
	sb.WriteString(")")
	return sb.String()
}

func writeNested(sb *strings.Builder, data []float64, shape tensor.Shape) {
	if len(shape) == 0 {
		sb.WriteString(strconv.FormatFloat(data[0], 'g', -1, 64))
		return
	}
	sb.WriteString("[")
	step := 0
	if shape[0] > 0 {
		step = len(data) / shape[0]
	}
	for i := 0; i < shape[0]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeNested(sb, data[i*step:(i+1)*step], shape[1:])
	}
	sb.WriteString("]")
}
