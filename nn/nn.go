// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multi-layer perceptrons built on
// the scalar autodiff engine.
package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Initializer draws initial weights.
type Initializer = nn.Initializer

// Neuron computes act(b + Σ wᵢxᵢ).
type Neuron = nn.Neuron

// NeuronConfig configures a Neuron.
type NeuronConfig = nn.NeuronConfig

// Layer is a row of neurons.
type Layer = nn.Layer

// MLP is a multi-layer perceptron with a linear output layer.
type MLP = nn.MLP

// MLPConfig configures an MLP.
type MLPConfig = nn.MLPConfig

// Weight initializers.
var (
	Uniform Initializer = nn.Uniform
	Xavier  Initializer = nn.Xavier
)

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(g *autodiff.Graph, nin int, config NeuronConfig, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nin, config, rng)
}

// NewLayer creates a layer of nout neurons.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, initializer Initializer, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, nin, nout, nonlin, initializer, rng)
}

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	g := autodiff.NewGraph(autodiff.Config{})
//	model := nn.NewMLP(g, 2, []int{16, 16, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(42)))
func NewMLP(g *autodiff.Graph, nin int, nouts []int, config MLPConfig, rng *rand.Rand) *MLP {
	return nn.NewMLP(g, nin, nouts, config, rng)
}

// Inputs creates one leaf per element of x.
func Inputs(g *autodiff.Graph, x []float64) []autodiff.Value {
	return nn.Inputs(g, x)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(g *autodiff.Graph, m Module) {
	nn.ZeroGrad(g, m)
}
