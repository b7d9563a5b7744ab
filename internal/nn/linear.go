package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// LinearConfig configures a Linear layer.
type LinearConfig struct {
	NoBias bool                  // omit the bias term
	Init   autodiff.RandomConfig // weight init (default: scale 0.01, random seed)
}

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input with shape [batch_size, in_features] or [b, c, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y has the input's leading dimensions and out_features last
//
// Weights are drawn from a scaled normal distribution.
// Biases are initialized to zeros.
//
// Example:
//
//	layer := nn.NewLinear(784, 128, nn.LinearConfig{})
//	output, err := layer.Forward(input) // [32, 784] -> [32, 128]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features], nil with NoBias
}

// NewLinear creates a new Linear layer.
func NewLinear(inFeatures, outFeatures int, config LinearConfig) *Linear {
	weight := NewParameter("weight",
		autodiff.RandomNormal(tensor.Shape{inFeatures, outFeatures}, config.Init))

	var bias *Parameter
	if !config.NoBias {
		bias = NewParameter("bias", autodiff.Zeros(tensor.Shape{outFeatures}))
	}

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes x @ W + b.
func (l *Linear) Forward(input *autodiff.Node) (*autodiff.Node, error) {
	shape := input.Shape()
	if len(shape) == 0 || shape[len(shape)-1] != l.inFeatures {
		return nil, errors.Wrapf(tensor.ErrShape,
			"linear: expected input with %d features, got shape %v", l.inFeatures, shape)
	}

	output, err := ops.MatMul(input, l.weight.Node())
	if err != nil {
		return nil, errors.Wrap(err, "linear")
	}

	if l.bias != nil {
		// [out_features] broadcasts over every leading dimension.
		output, err = ops.Add(output, l.bias.Node())
		if err != nil {
			return nil, errors.Wrap(err, "linear")
		}
	}
	return output, nil
}

// Parameters returns [weight, bias], or [weight] without bias.
func (l *Linear) Parameters() []*Parameter {
	if l.bias != nil {
		return []*Parameter{l.weight, l.bias}
	}
	return []*Parameter{l.weight}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter, or nil.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
