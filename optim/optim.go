// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Training Loop Pattern
//
//	optimizer := optim.NewSGD(g, model.Parameters(), optim.SGDConfig{LR: 1.0})
//	schedule := optim.LinearDecay{Start: 1.0, End: 0.1, Steps: 100}
//	mark := g.Mark()
//
//	for epoch := range 100 {
//	    optimizer.SetLR(schedule.LR(epoch))
//	    loss := buildLoss(g, model)
//	    optimizer.ZeroGrad()
//	    if err := g.Backward(loss); err != nil {
//	        return err
//	    }
//	    optimizer.Step()
//	    g.Release(mark)
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/optim"
)

// Optimizer is the base interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD implements Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// Schedule maps an epoch to a learning rate.
type Schedule = optim.Schedule

// Constant is a fixed learning rate.
type Constant = optim.Constant

// LinearDecay decays the learning rate linearly.
type LinearDecay = optim.LinearDecay

// NewSGD creates a new SGD optimizer.
func NewSGD(g *autodiff.Graph, params []autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(g, params, config)
}

// NewAdam creates a new Adam optimizer.
func NewAdam(g *autodiff.Graph, params []autodiff.Value, config AdamConfig) *Adam {
	return optim.NewAdam(g, params, config)
}

// GradNorm returns the L2 norm of the parameter gradients.
func GradNorm(g *autodiff.Graph, params []autodiff.Value) float64 {
	return optim.GradNorm(g, params)
}
