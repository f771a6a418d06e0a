package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// expr builds a scalar expression over the given inputs.
type expr func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value

// evaluate runs the forward pass on a fresh graph.
func evaluate(f expr, x []float64) float64 {
	g := autodiff.NewGraph(autodiff.Config{})
	in := make([]autodiff.Value, len(x))
	for i, xi := range x {
		in[i] = g.Leaf(xi)
	}
	return g.Data(f(g, in))
}

// analytic runs forward and backward and returns the input gradients.
func analytic(t *testing.T, f expr, x []float64) []float64 {
	t.Helper()
	g := autodiff.NewGraph(autodiff.Config{})
	in := make([]autodiff.Value, len(x))
	for i, xi := range x {
		in[i] = g.Leaf(xi)
	}
	require.NoError(t, g.Backward(f(g, in)))
	grads := make([]float64, len(in))
	for i, v := range in {
		grads[i] = g.Grad(v)
	}
	return grads
}

func TestGradientCheck(t *testing.T) {
	tests := []struct {
		name string
		f    expr
		x    []float64
	}{
		{
			name: "Add",
			f:    func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value { return g.Add(in[0], in[1]) },
			x:    []float64{1.5, -2},
		},
		{
			name: "Mul",
			f:    func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value { return g.Mul(in[0], in[1]) },
			x:    []float64{1.5, -2},
		},
		{
			name: "Pow",
			f:    func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value { return g.Pow(in[0], 3.5) },
			x:    []float64{1.3},
		},
		{
			name: "Div",
			f:    func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value { return g.Div(in[0], in[1]) },
			x:    []float64{3, -1.7},
		},
		{
			name: "Sub",
			f:    func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value { return g.Sub(in[0], in[1]) },
			x:    []float64{0.2, 0.9},
		},
		{
			name: "ReLU",
			f: func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
				return g.Add(g.ReLU(in[0]), g.ReLU(in[1]))
			},
			x: []float64{0.8, -0.6},
		},
		{
			name: "ExpLogTanh",
			f: func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
				return g.Mul(g.Tanh(in[0]), g.Log(g.Add(g.Exp(in[1]), in[0])))
			},
			x: []float64{0.4, 1.1},
		},
		{
			name: "SharedSubexpression",
			f: func(g *autodiff.Graph, in []autodiff.Value) autodiff.Value {
				s := g.Mul(in[0], in[1])
				return g.Add(g.Pow(s, 2), g.Mul(s, g.Neg(in[0])))
			},
			x: []float64{-1.2, 0.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numeric := fd.Gradient(nil, func(x []float64) float64 {
				return evaluate(tt.f, x)
			}, tt.x, &fd.Settings{Formula: fd.Central, Step: 1e-6})

			got := analytic(t, tt.f, tt.x)
			require.Len(t, got, len(numeric))
			for i := range got {
				assert.InDelta(t, numeric[i], got[i], 1e-5, "input %d", i)
			}
		})
	}
}
