package data

import (
	"math/rand/v2"
	"time"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/pkg/errors"
)

// LoaderConfig configures a DataLoader.
type LoaderConfig struct {
	BatchSize int    // samples per batch (default: 1)
	Shuffle   bool   // reshuffle the sample order on every Reset
	Seed      uint64 // shuffle seed; 0 draws a time-based seed
}

// DataLoader iterates over a Dataset in mini-batches.
//
// Batches are leaves that do not require gradients. The last batch is
// smaller when the batch size does not divide the dataset length.
type DataLoader struct {
	dataset   Dataset
	batchSize int
	shuffle   bool
	rng       *rand.Rand
	indices   []int
	pos       int

	inputs, targets *autodiff.Node
	err             error
}

// NewLoader creates a loader positioned before the first batch.
func NewLoader(dataset Dataset, config LoaderConfig) *DataLoader {
	if config.BatchSize <= 0 {
		config.BatchSize = 1
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	l := &DataLoader{
		dataset:   dataset,
		batchSize: config.BatchSize,
		shuffle:   config.Shuffle,
		rng:       rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	l.Reset()
	return l
}

// Reset rewinds the loader and, with shuffling on, draws a new sample order.
func (l *DataLoader) Reset() {
	n := l.dataset.Len()
	if len(l.indices) != n {
		l.indices = make([]int, n)
	}
	for i := range l.indices {
		l.indices[i] = i
	}
	if l.shuffle {
		l.rng.Shuffle(n, func(i, j int) {
			l.indices[i], l.indices[j] = l.indices[j], l.indices[i]
		})
	}
	l.pos = 0
	l.inputs, l.targets, l.err = nil, nil, nil
}

// Next advances to the next batch. It returns false when the epoch is
// exhausted or a batch could not be built; check Err afterwards.
func (l *DataLoader) Next() bool {
	if l.err != nil || l.pos >= len(l.indices) {
		return false
	}

	end := min(l.pos+l.batchSize, len(l.indices))
	batch := l.indices[l.pos:end]
	inputs := make([]*autodiff.Node, len(batch))
	targets := make([]*autodiff.Node, len(batch))
	for i, idx := range batch {
		inputs[i], targets[i] = l.dataset.Get(idx)
	}

	x, err := autodiff.Stack(inputs)
	if err != nil {
		l.err = errors.Wrapf(err, "batch at %d: inputs", l.pos)
		return false
	}
	y, err := autodiff.Stack(targets)
	if err != nil {
		l.err = errors.Wrapf(err, "batch at %d: targets", l.pos)
		return false
	}

	l.inputs, l.targets = x, y
	l.pos = end
	return true
}

// Batch returns the current batch set by the last successful Next.
func (l *DataLoader) Batch() (inputs, targets *autodiff.Node) {
	return l.inputs, l.targets
}

// Err returns the error that stopped iteration, if any.
func (l *DataLoader) Err() error {
	return l.err
}

// NumBatches returns the number of batches per epoch.
func (l *DataLoader) NumBatches() int {
	return (l.dataset.Len() + l.batchSize - 1) / l.batchSize
}
