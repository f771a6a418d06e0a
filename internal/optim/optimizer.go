// Package optim implements gradient-descent optimizers for scalar parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Schedule: learning-rate schedules, including micrograd's linear decay
//
// Optimizers read gradients straight from the Graph that owns the parameters
// and write the updated values back with Graph.SetData.
//
// Example usage:
//
//	optimizer := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for epoch := range epochs {
//	    mark := g.Mark()
//	    loss := computeLoss(g, model, data)
//	    optimizer.ZeroGrad()
//	    if err := g.Backward(loss); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	    g.Release(mark)
//	}
package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter from its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients. Call it before each backward
	// pass so gradients from the previous pass do not accumulate.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for scheduling.
	SetLR(lr float64)
}

// Gradients returns the current gradient of each parameter.
func Gradients(g *autodiff.Graph, params []autodiff.Value) []float64 {
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = g.Grad(p)
	}
	return grads
}

// GradNorm returns the L2 norm of the parameter gradients.
func GradNorm(g *autodiff.Graph, params []autodiff.Value) float64 {
	if len(params) == 0 {
		return 0
	}
	return floats.Norm(Gradients(g, params), 2)
}
