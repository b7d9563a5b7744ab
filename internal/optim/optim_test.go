package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newParam creates a parameter holding values.
func newParam(t *testing.T, name string, values ...float64) *nn.Parameter {
	t.Helper()
	n, err := autodiff.FromSlice(values, tensor.Shape{len(values)})
	require.NoError(t, err)
	return nn.NewParameter(name, n)
}

// backwardScaled runs backward on mean(k * p) * len(p), which leaves
// gradient k on every element of p.
func backwardScaled(t *testing.T, p *nn.Parameter, k float64) {
	t.Helper()
	p.ZeroGrad()
	scaled, err := ops.Scale(p.Node(), k*float64(p.Node().NumElements()))
	require.NoError(t, err)
	loss, err := ops.Mean(scaled)
	require.NoError(t, err)
	require.NoError(t, loss.Backward())
}

func values(p *nn.Parameter) []float64 {
	return p.Node().Data().Data()
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	param := newParam(t, "x", 2.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	backwardScaled(t, param, 1.0)
	require.NoError(t, optimizer.Step())

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, values(param)[0], 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	param := newParam(t, "x", 1.0)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	backwardScaled(t, param, 1.0)
	require.NoError(t, optimizer.Step())
	assert.InDelta(t, 0.9, values(param)[0], 1e-12)

	// Step 2: v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	backwardScaled(t, param, 1.0)
	require.NoError(t, optimizer.Step())
	assert.InDelta(t, 0.71, values(param)[0], 1e-12)
}

func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())
}

func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})
	assert.Equal(t, 0.1, optimizer.GetLR())

	optimizer.SetLR(0.05)
	assert.Equal(t, 0.05, optimizer.GetLR())
}

func TestSGD_ZeroGrad(t *testing.T) {
	param := newParam(t, "x", 1.0, 2.0)
	backwardScaled(t, param, 3.0)
	require.NotNil(t, param.Grad())

	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})
	optimizer.ZeroGrad()
	assert.Nil(t, param.Grad())
}

func TestSGD_SkipsParametersWithoutGradient(t *testing.T) {
	used := newParam(t, "used", 1.0)
	unused := newParam(t, "unused", 5.0)
	unused.ZeroGrad()

	optimizer := optim.NewSGD([]*nn.Parameter{used, unused}, optim.SGDConfig{LR: 0.5})
	backwardScaled(t, used, 1.0)
	require.NoError(t, optimizer.Step())

	assert.InDelta(t, 0.5, values(used)[0], 1e-12)
	assert.Equal(t, []float64{5.0}, values(unused))
}

func TestAdam_SimpleUpdate(t *testing.T) {
	param := newParam(t, "x", 1.0)
	optimizer := optim.NewAdam([]*nn.Parameter{param}, optim.AdamConfig{LR: 0.1})

	backwardScaled(t, param, 2.0)
	require.NoError(t, optimizer.Step())

	// After bias correction the first step moves by lr * sign(grad).
	assert.InDelta(t, 0.9, values(param)[0], 1e-6)
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())

	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

// TestConvergence_SimpleQuadratic minimizes (x - 3)² with both optimizers.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	tests := []struct {
		name string
		make func([]*nn.Parameter) optim.Optimizer
	}{
		{"sgd", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.1})
		}},
		{"sgd momentum", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.05, Momentum: 0.5})
		}},
		{"adam", func(p []*nn.Parameter) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := newParam(t, "x", 0.0)
			optimizer := tt.make([]*nn.Parameter{param})
			target := autodiff.Full(tensor.Shape{1}, 3)

			for i := 0; i < 300; i++ {
				optimizer.ZeroGrad()
				loss, err := nn.MSE(param.Node(), target)
				require.NoError(t, err)
				require.NoError(t, loss.Backward())
				require.NoError(t, optimizer.Step())
			}

			x := values(param)[0]
			assert.False(t, math.IsNaN(x))
			assert.InDelta(t, 3.0, x, 1e-2)
		})
	}
}
