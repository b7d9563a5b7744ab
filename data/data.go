// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data provides datasets and a mini-batch loader.
package data

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/data"
)

// Dataset is an indexable collection of (input, target) samples.
type Dataset = data.Dataset

// TensorDataset is a Dataset over in-memory nodes.
type TensorDataset = data.TensorDataset

// NewTensorDataset pairs inputs with targets.
func NewTensorDataset(inputs, targets []*autodiff.Node) (*TensorDataset, error) {
	return data.NewTensorDataset(inputs, targets)
}

// DataLoader iterates over a Dataset in mini-batches.
type DataLoader = data.DataLoader

// LoaderConfig configures a DataLoader.
type LoaderConfig = data.LoaderConfig

// NewLoader creates a loader positioned before the first batch.
func NewLoader(dataset Dataset, config LoaderConfig) *DataLoader {
	return data.NewLoader(dataset, config)
}
