package autodiff

import (
	"math/rand/v2"
	"time"

	"github.com/born-ml/minigrad/internal/tensor"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomConfig configures RandomNormal.
type RandomConfig struct {
	Seed  uint64  // 0 draws a time-based seed
	Scale float64 // multiplier for standard normal samples (default: 0.01)
}

// DefaultRandomConfig returns the configuration used for parameter init.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{Scale: 0.01}
}

// FromBuffer wraps buf in a leaf node that does not require gradients.
// The buffer is not copied.
func FromBuffer(buf *tensor.Buffer) *Node {
	return newLeaf(buf)
}

// FromSlice creates a leaf node from a Go slice. The slice is copied.
func FromSlice(data []float64, shape tensor.Shape) (*Node, error) {
	buf, err := tensor.NewBuffer(data, shape)
	if err != nil {
		return nil, err
	}
	return newLeaf(buf), nil
}

// Scalar creates a rank-0 leaf node.
func Scalar(v float64) *Node {
	return newLeaf(tensor.Full(tensor.Shape{}, v))
}

// Zeros creates a leaf node filled with zeros.
func Zeros(shape tensor.Shape) *Node {
	return newLeaf(tensor.Zeros(shape))
}

// Ones creates a leaf node filled with ones.
func Ones(shape tensor.Shape) *Node {
	return newLeaf(tensor.Ones(shape))
}

// Full creates a leaf node with every element set to v.
func Full(shape tensor.Shape, v float64) *Node {
	return newLeaf(tensor.Full(shape, v))
}

// RandomNormal creates a leaf node of standard normal samples multiplied by cfg.Scale.
func RandomNormal(shape tensor.Shape, cfg RandomConfig) *Node {
	if cfg.Scale == 0 {
		cfg.Scale = 0.01
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}

	buf := tensor.Zeros(shape)
	data := buf.Data()
	for i := range data {
		data[i] = dist.Rand() * cfg.Scale
	}
	return newLeaf(buf)
}

// ZerosLike creates a zero leaf with the shape of n.
func ZerosLike(n *Node) *Node {
	return Zeros(n.Shape())
}

// OnesLike creates a leaf of ones with the shape of n.
func OnesLike(n *Node) *Node {
	return Ones(n.Shape())
}

// RandomNormalLike creates a random leaf with the shape of n.
func RandomNormalLike(n *Node, cfg RandomConfig) *Node {
	return RandomNormal(n.Shape(), cfg)
}
