package ops_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradInput is one input of a gradient check.
type gradInput struct {
	data  []float64
	shape tensor.Shape
}

// scalarFn builds a scalar loss from its inputs.
type scalarFn func(inputs []*autodiff.Node) (*autodiff.Node, error)

func evalLoss(t *testing.T, fn scalarFn, inputs []gradInput) float64 {
	t.Helper()
	nodes := make([]*autodiff.Node, len(inputs))
	for i, in := range inputs {
		n, err := autodiff.FromSlice(in.data, in.shape)
		require.NoError(t, err)
		nodes[i] = n
	}
	out, err := fn(nodes)
	require.NoError(t, err)
	v, err := out.Item()
	require.NoError(t, err)
	return v
}

// checkGradients compares backward gradients against central finite differences.
func checkGradients(t *testing.T, fn scalarFn, inputs []gradInput) {
	t.Helper()
	const eps = 1e-6

	nodes := make([]*autodiff.Node, len(inputs))
	for i, in := range inputs {
		nodes[i] = leaf(t, in.data, in.shape)
	}
	out, err := fn(nodes)
	require.NoError(t, err)
	require.NoError(t, out.Backward())

	for i, in := range inputs {
		analytic := nodes[i].Grad().Data()
		for j := range in.data {
			orig := in.data[j]

			in.data[j] = orig + eps
			plus := evalLoss(t, fn, inputs)
			in.data[j] = orig - eps
			minus := evalLoss(t, fn, inputs)
			in.data[j] = orig

			numeric := (plus - minus) / (2 * eps)
			assert.InDelta(t, numeric, analytic[j], 1e-5, "input %d element %d", i, j)
		}
	}
}

func TestGradientCheck_AddMulBroadcast(t *testing.T) {
	fn := func(in []*autodiff.Node) (*autodiff.Node, error) {
		s, err := ops.Add(in[0], in[1])
		if err != nil {
			return nil, err
		}
		p, err := ops.Mul(s, in[2])
		if err != nil {
			return nil, err
		}
		sq, err := ops.Mul(p, p)
		if err != nil {
			return nil, err
		}
		return ops.Mean(sq)
	}
	checkGradients(t, fn, []gradInput{
		{[]float64{0.5, -1.2, 2.0, 0.3, 1.1, -0.7}, tensor.Shape{2, 3}},
		{[]float64{0.1, 0.2, -0.3}, tensor.Shape{3}},
		{[]float64{1.5, -0.5}, tensor.Shape{2, 1}},
	})
}

func TestGradientCheck_MatMulReLU(t *testing.T) {
	fn := func(in []*autodiff.Node) (*autodiff.Node, error) {
		h, err := ops.MatMul(in[0], in[1])
		if err != nil {
			return nil, err
		}
		h, err = ops.Add(h, in[2])
		if err != nil {
			return nil, err
		}
		r, err := ops.ReLU(h)
		if err != nil {
			return nil, err
		}
		sq, err := ops.Mul(r, r)
		if err != nil {
			return nil, err
		}
		return ops.Mean(sq)
	}
	checkGradients(t, fn, []gradInput{
		{[]float64{0.2, -0.4, 1.0, 0.7, -1.3, 0.5, 0.9, 0.1, -0.6, 1.2, 0.3, -0.8}, tensor.Shape{2, 2, 3}},
		{[]float64{0.5, -0.2, 0.3, 0.8, -0.6, 0.4}, tensor.Shape{3, 2}},
		{[]float64{0.05, -0.1}, tensor.Shape{2}},
	})
}

func TestGradientCheck_Sub(t *testing.T) {
	fn := func(in []*autodiff.Node) (*autodiff.Node, error) {
		d, err := ops.Sub(in[0], in[1])
		if err != nil {
			return nil, err
		}
		sq, err := ops.Mul(d, d)
		if err != nil {
			return nil, err
		}
		return ops.Mean(sq)
	}
	checkGradients(t, fn, []gradInput{
		{[]float64{1, 2, 3, 4}, tensor.Shape{4}},
		{[]float64{0.5, 2.5, 2, 5}, tensor.Shape{4}},
	})
}
