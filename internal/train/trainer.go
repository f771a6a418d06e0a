// Package train runs the max-margin training loop for binary classifiers
// built with package nn.
package train

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/dataset"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// Config holds trainer settings.
type Config struct {
	Epochs    int         // Number of passes over the data (default: 100)
	Alpha     float64     // L2 regularization strength (default: 1e-4, negative disables)
	BatchSize int         // Samples per step (default: 0 = full batch)
	Rand      *rand.Rand  // Shuffles batches each epoch (default: nil = fixed order)
	Logger    *log.Logger // Per-epoch progress (default: nil = silent)
}

// Metrics summarizes a model on a dataset.
type Metrics struct {
	Loss     float64
	Accuracy float64 // fraction of samples whose score sign matches the label
}

// EpochStats reports one training epoch. Loss and Accuracy are measured on
// the forward passes that produced the epoch's updates.
type EpochStats struct {
	Epoch    int
	LR       float64
	GradNorm float64 // L2 norm of the last step's parameter gradients
	Metrics
}

// Trainer fits a single-output model with the SVM max-margin loss
//
//	mean(relu(1 - yᵢ·scoreᵢ)) + alpha·Σp²
//
// Every step allocates its forward pass above the graph's mark at
// construction time and releases it once the parameters are updated.
type Trainer struct {
	graph     *autodiff.Graph
	model     nn.Module
	optimizer optim.Optimizer
	schedule  optim.Schedule
	config    Config
	mark      autodiff.Mark
	logger    *log.Logger
}

// New creates a trainer. The model's parameters must already live in g.
// A nil schedule keeps the optimizer's learning rate.
func New(g *autodiff.Graph, model nn.Module, optimizer optim.Optimizer, schedule optim.Schedule, config Config) *Trainer {
	if config.Epochs <= 0 {
		config.Epochs = 100
	}
	if config.Alpha == 0 {
		config.Alpha = 1e-4
	}
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Trainer{
		graph:     g,
		model:     model,
		optimizer: optimizer,
		schedule:  schedule,
		config:    config,
		mark:      g.Mark(),
		logger:    logger,
	}
}

// Run trains for the configured number of epochs. It stops early with the
// context's error if ctx is cancelled between epochs.
func (t *Trainer) Run(ctx context.Context, data *dataset.Moons) ([]EpochStats, error) {
	history := make([]EpochStats, 0, t.config.Epochs)
	for epoch := range t.config.Epochs {
		if err := ctx.Err(); err != nil {
			return history, err
		}
		stats, err := t.Epoch(epoch, data)
		if err != nil {
			return history, err
		}
		history = append(history, stats)
		t.logger.Printf("epoch %d: loss %.6f, accuracy %.1f%%, lr %.4f",
			epoch, stats.Loss, stats.Accuracy*100, stats.LR)
	}
	return history, nil
}

// Epoch runs one pass over data, taking one optimizer step per batch.
func (t *Trainer) Epoch(epoch int, data *dataset.Moons) (EpochStats, error) {
	if data.NumSamples() == 0 {
		return EpochStats{}, fmt.Errorf("epoch %d: %w", epoch, dataset.ErrEmpty)
	}
	if t.schedule != nil {
		t.optimizer.SetLR(t.schedule.LR(epoch))
	}

	stats := EpochStats{Epoch: epoch, LR: t.optimizer.GetLR()}
	for _, batch := range data.Batches(t.config.BatchSize, t.config.Rand) {
		m, gradNorm, err := t.step(data, batch)
		if err != nil {
			return stats, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		weight := float64(len(batch)) / float64(data.NumSamples())
		stats.Loss += m.Loss * weight
		stats.Accuracy += m.Accuracy * weight
		stats.GradNorm = gradNorm
	}
	return stats, nil
}

// step runs forward, backward and one update on the given samples.
func (t *Trainer) step(data *dataset.Moons, batch []int) (Metrics, float64, error) {
	defer t.graph.Release(t.mark)

	loss, accuracy := t.loss(data, batch)
	if err := t.graph.Err(); err != nil {
		return Metrics{}, 0, fmt.Errorf("forward: %w", err)
	}

	t.optimizer.ZeroGrad()
	if err := t.graph.Backward(loss); err != nil {
		return Metrics{}, 0, fmt.Errorf("backward: %w", err)
	}
	gradNorm := optim.GradNorm(t.graph, t.model.Parameters())
	t.optimizer.Step()

	return Metrics{Loss: t.graph.Data(loss), Accuracy: accuracy}, gradNorm, nil
}

// Evaluate computes loss and accuracy on data without updating the model.
func (t *Trainer) Evaluate(data *dataset.Moons) (Metrics, error) {
	if data.NumSamples() == 0 {
		return Metrics{}, dataset.ErrEmpty
	}
	defer t.graph.Release(t.mark)

	loss, accuracy := t.loss(data, data.Batches(0, nil)[0])
	if err := t.graph.Err(); err != nil {
		return Metrics{}, fmt.Errorf("forward: %w", err)
	}
	return Metrics{Loss: t.graph.Data(loss), Accuracy: accuracy}, nil
}

// Predict returns the model's raw score for a single point.
func (t *Trainer) Predict(x [2]float64) float64 {
	defer t.graph.Release(t.mark)
	return t.graph.Data(t.model.Forward(t.graph, nn.Inputs(t.graph, x[:]))[0])
}

// loss builds the regularized max-margin loss over the batch and returns it
// together with the batch accuracy.
func (t *Trainer) loss(data *dataset.Moons, batch []int) (autodiff.Value, float64) {
	g := t.graph
	losses := make([]autodiff.Value, len(batch))
	correct := 0
	for k, i := range batch {
		score := t.model.Forward(g, nn.Inputs(g, data.X[i][:]))[0]
		y := data.Signed(i)
		losses[k] = HingeLoss(g, score, y)
		if (g.Data(score) > 0) == (y > 0) {
			correct++
		}
	}

	total := Mean(g, losses)
	if t.config.Alpha > 0 {
		total = g.Add(total, L2Penalty(g, t.model.Parameters(), t.config.Alpha))
	}
	return total, float64(correct) / float64(len(batch))
}
