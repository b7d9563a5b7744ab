package ops

import "github.com/born-ml/minigrad/internal/autodiff"

// Sub returns a - b with broadcasting, computed as a + (-1 * b).
func Sub(a, b *autodiff.Node) (*autodiff.Node, error) {
	negB, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, negB)
}

// Neg returns -x.
func Neg(x *autodiff.Node) (*autodiff.Node, error) {
	return Scale(x, -1)
}

// Scale returns k * x, computed as a multiplication by a constant scalar node.
func Scale(x *autodiff.Node, k float64) (*autodiff.Node, error) {
	return Mul(x, autodiff.Scalar(k))
}
