package nn

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a row of neurons evaluated on the same inputs.
type Layer struct {
	neurons []*Neuron
	nin     int
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool, initializer Initializer, rng *rand.Rand) *Layer {
	rng = defaultRand(rng)
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, nin, NeuronConfig{NonLinear: nonlin, FanOut: nout, Init: initializer}, rng)
	}
	return &Layer{neurons: neurons, nin: nin}
}

// Forward returns one output per neuron.
func (l *Layer) Forward(g *autodiff.Graph, x []autodiff.Value) []autodiff.Value {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Activate(g, x)
	}
	return out
}

// Parameters returns the parameters of every neuron in order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// InFeatures returns the number of inputs.
func (l *Layer) InFeatures() int {
	return l.nin
}

// OutFeatures returns the number of outputs.
func (l *Layer) OutFeatures() int {
	return len(l.neurons)
}

func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(parts, ", "))
}
