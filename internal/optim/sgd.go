package optim

import (
	"github.com/born-ml/minigrad/internal/nn"
	"gonum.org/v1/gonum/floats"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in computational graph) are skipped.
func (s *SGD) Step() error {
	for _, param := range s.params {
		var err error
		if s.momentum == 0 {
			err = update(param, func(data, grad []float64) {
				// param -= lr * grad
				floats.AddScaled(data, -s.lr, grad)
			})
		} else {
			err = update(param, func(data, grad []float64) {
				s.stepWithMomentum(param, data, grad)
			})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// stepWithMomentum performs SGD update with momentum.
func (s *SGD) stepWithMomentum(param *nn.Parameter, data, grad []float64) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = make([]float64, len(data))
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	floats.Scale(s.momentum, velocity)
	floats.Add(velocity, grad)

	// param -= lr * velocity
	floats.AddScaled(data, -s.lr, velocity)
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
