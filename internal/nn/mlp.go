package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron. Every layer applies ReLU except the last,
// which is linear.
//
// Example:
//
//	g := autodiff.NewGraph(autodiff.Config{})
//	model := nn.NewMLP(g, 2, []int{16, 16, 1}, nn.MLPConfig{}, rand.New(rand.NewSource(42)))
//	mark := g.Mark()
//	score := model.Forward(g, nn.Inputs(g, []float64{0.5, -1}))[0]
//	...
//	g.Release(mark)
type MLP struct {
	layers []*Layer
}

// MLPConfig configures an MLP.
type MLPConfig struct {
	Init Initializer // weight initializer (default: Uniform)
}

// NewMLP creates a network with nin inputs and one layer per entry of nouts.
// Weights are drawn from rng in layer order; a nil rng uses a fixed seed.
func NewMLP(g *autodiff.Graph, nin int, nouts []int, config MLPConfig, rng *rand.Rand) *MLP {
	if len(nouts) == 0 {
		panic("MLP: at least one layer is required")
	}
	rng = defaultRand(rng)

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		nonlin := i != len(nouts)-1
		layers[i] = NewLayer(g, sizes[i], sizes[i+1], nonlin, config.Init, rng)
	}
	return &MLP{layers: layers}
}

// Forward passes x through every layer and returns the output layer's values.
func (m *MLP) Forward(g *autodiff.Graph, x []autodiff.Value) []autodiff.Value {
	out := x
	for _, l := range m.layers {
		out = l.Forward(g, out)
	}
	return out
}

// Parameters returns the parameters of every layer in order.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(parts, ", "))
}
