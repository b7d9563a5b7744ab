package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *autodiff.Node {
	t.Helper()
	n, err := autodiff.FromSlice(data, shape)
	require.NoError(t, err)
	return n
}

func TestFromSlice(t *testing.T) {
	n := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	assert.Equal(t, tensor.Shape{2, 3}, n.Shape())
	assert.Equal(t, 6, n.NumElements())
	assert.Equal(t, 2, n.Dims())
	assert.True(t, n.IsLeaf())
	assert.False(t, n.RequiresGrad())
	assert.Nil(t, n.Grad())

	size, ok := n.Size(1)
	assert.True(t, ok)
	assert.Equal(t, 3, size)
	_, ok = n.Size(2)
	assert.False(t, ok)

	_, err := autodiff.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2})
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestFactories(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, autodiff.Zeros(tensor.Shape{2}).Data().Data())
	assert.Equal(t, []float64{1, 1}, autodiff.Ones(tensor.Shape{2}).Data().Data())
	assert.Equal(t, []float64{7, 7}, autodiff.Full(tensor.Shape{2}, 7).Data().Data())

	s := autodiff.Scalar(2.5)
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	like := autodiff.OnesLike(autodiff.Zeros(tensor.Shape{3, 1}))
	assert.Equal(t, tensor.Shape{3, 1}, like.Shape())
	assert.Equal(t, tensor.Shape{4}, autodiff.ZerosLike(autodiff.Ones(tensor.Shape{4})).Shape())
}

func TestRandomNormal(t *testing.T) {
	cfg := autodiff.RandomConfig{Seed: 42, Scale: 1}
	a := autodiff.RandomNormal(tensor.Shape{100, 100}, cfg)
	b := autodiff.RandomNormal(tensor.Shape{100, 100}, cfg)

	assert.Equal(t, a.Data().Data(), b.Data().Data(), "same seed must give same samples")

	data := a.Data()
	mean, err := data.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 0, mean, 0.05)

	var sq float64
	for _, v := range data.Data() {
		sq += (v - mean) * (v - mean)
	}
	assert.InDelta(t, 1, sq/float64(data.NumElements()), 0.1)
}

func TestRandomNormal_DefaultScale(t *testing.T) {
	n := autodiff.RandomNormal(tensor.Shape{1000}, autodiff.RandomConfig{Seed: 7})
	for _, v := range n.Data().Data() {
		assert.Less(t, v*v, 0.01, "samples are scaled by 0.01")
	}

	like := autodiff.RandomNormalLike(n, autodiff.DefaultRandomConfig())
	assert.Equal(t, tensor.Shape{1000}, like.Shape())
}

func TestWithGrad(t *testing.T) {
	x := autodiff.Ones(tensor.Shape{2}).WithGrad(true)
	assert.True(t, x.RequiresGrad())
	require.NotNil(t, x.Grad())
	assert.Equal(t, []float64{0, 0}, x.Grad().Data())

	x.WithGrad(false)
	assert.False(t, x.RequiresGrad())
	assert.Nil(t, x.Grad())
}

func TestWithGrad_OffCutsGraph(t *testing.T) {
	x := autodiff.Ones(tensor.Shape{2}).WithGrad(true)
	y, err := ops.ReLU(x)
	require.NoError(t, err)
	require.False(t, y.IsLeaf())

	y.WithGrad(false)
	assert.True(t, y.IsLeaf())
	assert.Empty(t, y.Parents())
}

func TestReshape(t *testing.T) {
	x := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}).WithGrad(true)

	r, err := x.Reshape(tensor.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, r.Shape())
	assert.True(t, r.IsLeaf())
	assert.False(t, r.RequiresGrad())

	_, err = x.Reshape(tensor.Shape{4})
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestReshape_RoundTrip(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	tests := []struct {
		name string
		orig tensor.Shape
		via  tensor.Shape
	}{
		{"matrix to vector", tensor.Shape{3, 4}, tensor.Shape{12}},
		{"rank 3 to rank 2", tensor.Shape{2, 2, 3}, tensor.Shape{4, 3}},
		{"add unit axes", tensor.Shape{12}, tensor.Shape{1, 12, 1}},
		{"swap factors", tensor.Shape{2, 6}, tensor.Shape{6, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := fromSlice(t, data, tt.orig)

			mid, err := x.Reshape(tt.via)
			require.NoError(t, err)
			back, err := mid.Reshape(tt.orig)
			require.NoError(t, err)

			assert.Equal(t, tt.orig, back.Shape())
			assert.Equal(t, x.Data().Data(), back.Data().Data())
		})
	}
}

func TestStack(t *testing.T) {
	a := fromSlice(t, []float64{1, 2}, tensor.Shape{2})
	b := fromSlice(t, []float64{3, 4}, tensor.Shape{2})

	s, err := autodiff.Stack([]*autodiff.Node{a, b})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, s.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Data().Data())

	_, err = autodiff.Stack(nil)
	assert.True(t, errors.Is(err, tensor.ErrShape))

	_, err = autodiff.Stack([]*autodiff.Node{a, autodiff.Zeros(tensor.Shape{3})})
	assert.True(t, errors.Is(err, tensor.ErrShape))

	_, err = autodiff.Stack([]*autodiff.Node{a, nil})
	assert.True(t, errors.Is(err, tensor.ErrArity))
}

func TestSqueezeUnsqueeze(t *testing.T) {
	x := autodiff.Zeros(tensor.Shape{1, 3, 1})

	all, err := x.Squeeze(nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, all.Shape())

	dim := 2
	one, err := x.Squeeze(&dim)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, one.Shape())

	dim = 1
	_, err = x.Squeeze(&dim)
	assert.True(t, errors.Is(err, tensor.ErrShape))

	dim = 5
	_, err = x.Squeeze(&dim)
	assert.True(t, errors.Is(err, tensor.ErrShape))

	scalar, err := autodiff.Ones(tensor.Shape{1, 1}).Squeeze(nil)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{}, scalar.Shape())

	u, err := all.Unsqueeze(1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 1}, u.Shape())

	_, err = all.Unsqueeze(3)
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestIndexItem(t *testing.T) {
	x := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	v, err := x.Index(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = x.Index(0, 2)
	assert.True(t, errors.Is(err, tensor.ErrShape))

	_, err = x.Item()
	assert.True(t, errors.Is(err, tensor.ErrShape))
}

func TestDetach(t *testing.T) {
	x := autodiff.Ones(tensor.Shape{2}).WithGrad(true)
	y, err := ops.Scale(x, 2)
	require.NoError(t, err)

	d := y.Detach()
	assert.True(t, d.IsLeaf())
	assert.False(t, d.RequiresGrad())
	assert.Nil(t, d.Grad())
	assert.Equal(t, []float64{2, 2}, d.Data().Data())

	// The source graph is untouched.
	assert.False(t, y.IsLeaf())
	assert.True(t, y.RequiresGrad())
	require.Len(t, y.Parents(), 1)
	assert.Same(t, x, y.Parents()[0])

	require.NoError(t, y.Backward())
	assert.Equal(t, []float64{2, 2}, x.Grad().Data())
	assert.Nil(t, d.Grad())
}

func TestDataReturnsCopy(t *testing.T) {
	x := autodiff.Ones(tensor.Shape{2})
	x.Data().Data()[0] = 100
	assert.Equal(t, []float64{1, 1}, x.Data().Data())
}

func TestString(t *testing.T) {
	assert.Equal(t, "tensor(3)", autodiff.Scalar(3).String())

	x := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2}).WithGrad(true)
	assert.Equal(t, "tensor([[1, 2], [3, 4]], requires_grad=true)", x.String())

	big := autodiff.Zeros(tensor.Shape{10, 10})
	assert.Equal(t, "tensor([...tensor of size 10×10])", big.String())
}

func TestApplyUpdate(t *testing.T) {
	w := autodiff.Ones(tensor.Shape{2})
	w.WithGrad(true)
	w.ClearGradient()

	err := w.ApplyUpdate(func(_, _ []float64) {})
	assert.True(t, errors.Is(err, tensor.ErrMissingGradient))

	y, err := ops.Scale(w, 3)
	require.NoError(t, err)
	m, err := ops.Mean(y)
	require.NoError(t, err)
	require.NoError(t, m.Backward())

	err = y.ApplyUpdate(func(_, _ []float64) {})
	assert.True(t, errors.Is(err, tensor.ErrNotLeaf))

	require.NoError(t, w.ApplyUpdate(func(data, grad []float64) {
		for i := range data {
			data[i] -= grad[i]
		}
	}))
	assert.Equal(t, []float64{-0.5, -0.5}, w.Data().Data())
}
