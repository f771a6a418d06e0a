package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	rng := rand.New(rand.NewSource(7))

	tests := []struct {
		name    string
		module  nn.Module
		nin     int
		nout    int
		nparams int
	}{
		{"Neuron", nn.NewNeuron(g, 3, nn.NeuronConfig{NonLinear: true}, rng), 3, 1, 4},
		{"Layer", nn.NewLayer(g, 3, 4, true, nil, rng), 3, 4, 16},
		{"MLP", nn.NewMLP(g, 2, []int{16, 16, 1}, nn.MLPConfig{}, rng), 2, 1, 337},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := nn.Inputs(g, make([]float64, tt.nin))
			out := tt.module.Forward(g, x)
			assert.Len(t, out, tt.nout)
			assert.Equal(t, tt.nparams, nn.NumParameters(tt.module))
		})
	}
	require.NoError(t, g.Err())
}

func TestNeuron_Forward(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	n := nn.NewNeuron(g, 2, nn.NeuronConfig{}, rand.New(rand.NewSource(1)))
	w := n.Weights()
	g.SetData(w[0], 2)
	g.SetData(w[1], -3)
	g.SetData(n.Bias(), 0.5)

	out := n.Activate(g, nn.Inputs(g, []float64{1, 1}))
	assert.Equal(t, -0.5, g.Data(out), "linear neuron passes negatives through")

	relu := nn.NewNeuron(g, 2, nn.NeuronConfig{NonLinear: true}, rand.New(rand.NewSource(1)))
	g.SetData(relu.Weights()[0], 2)
	g.SetData(relu.Weights()[1], -3)
	out = relu.Activate(g, nn.Inputs(g, []float64{1, 1}))
	assert.Equal(t, 0.0, g.Data(out))
	assert.True(t, relu.NonLinear())
	assert.Equal(t, "ReLUNeuron(2)", relu.String())
}

func TestNeuron_InputMismatchPanics(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	n := nn.NewNeuron(g, 3, nn.NeuronConfig{}, nil)
	assert.Panics(t, func() { n.Activate(g, nn.Inputs(g, []float64{1})) })
}

func TestMLP_ReproducibleWithSeed(t *testing.T) {
	build := func(seed int64) []float64 {
		g := autodiff.NewGraph(autodiff.Config{})
		m := nn.NewMLP(g, 2, []int{4, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(seed)))
		var values []float64
		for _, p := range m.Parameters() {
			values = append(values, g.Data(p))
		}
		return values
	}
	assert.Equal(t, build(42), build(42))
	assert.NotEqual(t, build(42), build(43))

	for _, v := range build(42) {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestMLP_LayerActivations(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	m := nn.NewMLP(g, 2, []int{3, 3, 1}, nn.MLPConfig{Init: nn.Xavier}, nil)
	layers := m.Layers()
	require.Len(t, layers, 3)
	for i, l := range layers {
		for _, n := range l.Neurons() {
			assert.Equal(t, i != 2, n.NonLinear(), "layer %d", i)
		}
	}
	assert.Equal(t, 2, layers[0].InFeatures())
	assert.Equal(t, 1, layers[2].OutFeatures())
	assert.Contains(t, m.String(), "LinearNeuron(3)")
}

func TestMLP_EmptyPanics(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	assert.Panics(t, func() { nn.NewMLP(g, 2, nil, nn.MLPConfig{}, nil) })
}

func TestZeroGrad(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	m := nn.NewMLP(g, 2, []int{4, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(3)))
	out := m.Forward(g, nn.Inputs(g, []float64{0.3, -0.7}))[0]
	require.NoError(t, g.Backward(out))

	nn.ZeroGrad(g, m)
	for _, p := range m.Parameters() {
		assert.Zero(t, g.Grad(p))
	}
}

// TestMLP_GradientCheck compares parameter gradients of a squared output
// against central finite differences.
func TestMLP_GradientCheck(t *testing.T) {
	g := autodiff.NewGraph(autodiff.Config{})
	m := nn.NewMLP(g, 2, []int{4, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(11)))
	params := m.Parameters()
	input := []float64{0.9, -0.4}
	mark := g.Mark()

	loss := func(theta []float64) float64 {
		for i, p := range params {
			g.SetData(p, theta[i])
		}
		defer g.Release(mark)
		out := m.Forward(g, nn.Inputs(g, input))[0]
		return g.Data(g.Pow(out, 2))
	}

	theta := make([]float64, len(params))
	for i, p := range params {
		theta[i] = g.Data(p)
	}
	numeric := fd.Gradient(nil, loss, theta, &fd.Settings{Formula: fd.Central, Step: 1e-6})

	for i, p := range params {
		g.SetData(p, theta[i])
	}
	out := m.Forward(g, nn.Inputs(g, input))[0]
	g.ZeroAllGrads()
	require.NoError(t, g.Backward(g.Pow(out, 2)))

	for i, p := range params {
		assert.InDelta(t, numeric[i], g.Grad(p), 1e-5, "parameter %d", i)
	}
}
