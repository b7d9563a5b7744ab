package main

import (
	"log/slog"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/data"
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/internal/optim"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// trainConfig holds the demo training settings.
type trainConfig struct {
	Model     string
	Optimizer string
	Epochs    int
	LR        float64
	LRDecay   float64
	Momentum  float64
	BatchSize int
	Seed      uint64
}

func defaultTrainConfig() trainConfig {
	return trainConfig{
		Model:     "linear",
		Optimizer: "sgd",
		Epochs:    100,
		LR:        0.01,
		LRDecay:   1,
		Seed:      1,
	}
}

// train fits the selected demo model and returns the loss of the last epoch.
func train(cfg trainConfig, logger *slog.Logger) (float64, error) {
	var (
		ds    *data.TensorDataset
		model nn.Module
		err   error
	)
	initCfg := autodiff.RandomConfig{Seed: cfg.Seed, Scale: 0.01}

	switch cfg.Model {
	case "linear":
		ds, err = linearDataset()
		model = nn.NewLinear(2, 1, nn.LinearConfig{Init: initCfg})
	case "mlp":
		ds, err = quadraticDataset(50)
		second := initCfg
		second.Seed++
		initCfg.Scale, second.Scale = 0.5, 0.5
		model = nn.NewSequential(
			nn.NewLinear(2, 64, nn.LinearConfig{Init: initCfg}),
			nn.NewReLU(),
			nn.NewLinear(64, 1, nn.LinearConfig{Init: second}),
		)
	default:
		return 0, errors.Errorf("unknown model %q", cfg.Model)
	}
	if err != nil {
		return 0, err
	}

	var optimizer optim.Optimizer
	switch cfg.Optimizer {
	case "sgd":
		optimizer = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum})
	case "adam":
		optimizer = optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: cfg.LR})
	default:
		return 0, errors.Errorf("unknown optimizer %q", cfg.Optimizer)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = ds.Len()
	}
	loader := data.NewLoader(ds, data.LoaderConfig{
		BatchSize: batchSize,
		Shuffle:   batchSize < ds.Len(),
		Seed:      cfg.Seed,
	})

	logger.Info("training",
		"model", cfg.Model,
		"optimizer", cfg.Optimizer,
		"samples", ds.Len(),
		"batches", loader.NumBatches(),
		"params", len(model.Parameters()),
	)

	var epochLoss float64
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		epochLoss, err = trainEpoch(model, optimizer, loader)
		if err != nil {
			return 0, errors.Wrapf(err, "epoch %d", epoch)
		}
		logger.Debug("epoch", "epoch", epoch, "loss", epochLoss, "lr", optimizer.GetLR())

		if cfg.LRDecay > 0 && cfg.LRDecay != 1 {
			optimizer.SetLR(optimizer.GetLR() * cfg.LRDecay)
		}
		loader.Reset()
	}

	logger.Info("done", "epochs", cfg.Epochs, "loss", epochLoss)
	return epochLoss, nil
}

// trainEpoch runs one pass over the loader and returns the mean batch loss.
func trainEpoch(model nn.Module, optimizer optim.Optimizer, loader *data.DataLoader) (float64, error) {
	var total float64
	batches := 0
	for loader.Next() {
		x, y := loader.Batch()

		optimizer.ZeroGrad()
		out, err := model.Forward(x)
		if err != nil {
			return 0, err
		}
		loss, err := nn.MSE(out, y)
		if err != nil {
			return 0, err
		}
		if err := loss.Backward(); err != nil {
			return 0, err
		}
		if err := optimizer.Step(); err != nil {
			return 0, err
		}

		v, err := loss.Item()
		if err != nil {
			return 0, err
		}
		total += v
		batches++
	}
	if err := loader.Err(); err != nil {
		return 0, err
	}
	if batches == 0 {
		return 0, errors.Wrap(tensor.ErrEmptyTensor, "no batches")
	}
	return total / float64(batches), nil
}

// linearDataset returns six points close to y = x0 + x1.
func linearDataset() (*data.TensorDataset, error) {
	xs := [][]float64{{1, 1}, {3, 1}, {3, 3}, {5, 3}, {5, 5}, {10, 2}}
	ys := []float64{2, 4.01, 5.99, 8.01, 10.005, 12}
	return buildDataset(xs, ys)
}

// quadraticDataset returns n normalized samples of y = 2(x0 + x1)².
func quadraticDataset(n int) (*data.TensorDataset, error) {
	maxX := 2.0 * float64(n)
	maxY := maxX * maxX * 2
	xs := make([][]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		a, b := float64(i), float64(i+1)
		xs[i] = []float64{a / maxX, b / maxX}
		ys[i] = 2 * (a + b) * (a + b) / maxY
	}
	return buildDataset(xs, ys)
}

func buildDataset(xs [][]float64, ys []float64) (*data.TensorDataset, error) {
	inputs := make([]*autodiff.Node, len(xs))
	targets := make([]*autodiff.Node, len(ys))
	for i := range xs {
		x, err := autodiff.FromSlice(xs[i], tensor.Shape{len(xs[i])})
		if err != nil {
			return nil, err
		}
		inputs[i] = x
		targets[i] = autodiff.Full(tensor.Shape{1}, ys[i])
	}
	return data.NewTensorDataset(inputs, targets)
}
