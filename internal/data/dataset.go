// Package data provides datasets and a mini-batch loader for training.
//
// A Dataset yields (input, target) pairs by index. DataLoader groups them
// into batches by stacking along a new leading axis:
//
//	ds, _ := data.NewTensorDataset(inputs, targets)
//	loader := data.NewLoader(ds, data.LoaderConfig{BatchSize: 32, Shuffle: true})
//	for loader.Next() {
//	    x, y := loader.Batch()
//	    ...
//	}
//	if err := loader.Err(); err != nil { ... }
package data

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// Dataset is an indexable collection of (input, target) samples.
type Dataset interface {
	// Len returns the number of samples.
	Len() int

	// Get returns sample idx, where 0 <= idx < Len().
	Get(idx int) (input, target *autodiff.Node)
}

// TensorDataset is a Dataset over in-memory nodes.
type TensorDataset struct {
	inputs  []*autodiff.Node
	targets []*autodiff.Node
}

// NewTensorDataset pairs inputs with targets. Both slices must have the same length.
func NewTensorDataset(inputs, targets []*autodiff.Node) (*TensorDataset, error) {
	if len(inputs) != len(targets) {
		return nil, errors.Wrapf(tensor.ErrShape, "dataset: %d inputs but %d targets", len(inputs), len(targets))
	}
	return &TensorDataset{inputs: inputs, targets: targets}, nil
}

// Len returns the number of samples.
func (d *TensorDataset) Len() int {
	return len(d.inputs)
}

// Get returns sample idx.
func (d *TensorDataset) Get(idx int) (input, target *autodiff.Node) {
	return d.inputs[idx], d.targets[idx]
}
