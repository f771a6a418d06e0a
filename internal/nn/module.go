// Package nn implements small fully connected networks on top of the scalar
// autodiff engine.
//
// This package provides:
//   - Module interface: Forward plus the trainable parameters of a component
//   - Neuron: weighted sum of its inputs plus a bias, optionally through ReLU
//   - Layer: a row of neurons sharing the same inputs
//   - MLP: a stack of layers, ReLU everywhere except the output layer
//
// Parameters are leaves created in the Graph passed to the constructor. They
// should be created before the Graph's Mark so that per-pass Release keeps
// them alive.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all network components.
type Module interface {
	// Forward evaluates the module on x, extending g with the new nodes.
	Forward(g *autodiff.Graph, x []autodiff.Value) []autodiff.Value

	// Parameters returns every trainable leaf of the module, weights first.
	Parameters() []autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(g *autodiff.Graph, m Module) {
	g.ZeroGrad(m.Parameters()...)
}

// NumParameters returns the number of trainable scalars in m.
func NumParameters(m Module) int {
	return len(m.Parameters())
}

// Inputs creates one leaf per element of x.
func Inputs(g *autodiff.Graph, x []float64) []autodiff.Value {
	out := make([]autodiff.Value, len(x))
	for i, xi := range x {
		out[i] = g.Leaf(xi)
	}
	return out
}
