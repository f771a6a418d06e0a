package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes act(b + Σ wᵢxᵢ), where act is ReLU or the identity.
type Neuron struct {
	w      []autodiff.Value
	b      autodiff.Value
	nonlin bool
}

// NeuronConfig configures a Neuron.
type NeuronConfig struct {
	NonLinear bool        // apply ReLU to the output
	FanOut    int         // passed to Init (default: 1)
	Init      Initializer // weight initializer (default: Uniform)
}

// NewNeuron creates a neuron with nin weights drawn from rng and a zero bias.
// A nil rng uses a fixed seed.
func NewNeuron(g *autodiff.Graph, nin int, config NeuronConfig, rng *rand.Rand) *Neuron {
	if config.Init == nil {
		config.Init = Uniform
	}
	if config.FanOut <= 0 {
		config.FanOut = 1
	}
	rng = defaultRand(rng)

	w := make([]autodiff.Value, nin)
	for i := range w {
		w[i] = g.Leaf(config.Init(rng, nin, config.FanOut))
	}
	return &Neuron{
		w:      w,
		b:      g.Leaf(0),
		nonlin: config.NonLinear,
	}
}

// Activate evaluates the neuron on x and returns its single output.
//
// The sum is accumulated bias first, then each wᵢxᵢ in order.
func (n *Neuron) Activate(g *autodiff.Graph, x []autodiff.Value) autodiff.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("Neuron: expected %d inputs, got %d", len(n.w), len(x)))
	}
	act := n.b
	for i, wi := range n.w {
		act = g.Add(act, g.Mul(wi, x[i]))
	}
	if n.nonlin {
		return g.ReLU(act)
	}
	return act
}

// Forward implements Module.
func (n *Neuron) Forward(g *autodiff.Graph, x []autodiff.Value) []autodiff.Value {
	return []autodiff.Value{n.Activate(g, x)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// Weights returns the weight handles.
func (n *Neuron) Weights() []autodiff.Value {
	return n.w
}

// Bias returns the bias handle.
func (n *Neuron) Bias() autodiff.Value {
	return n.b
}

// NonLinear reports whether the neuron applies ReLU.
func (n *Neuron) NonLinear() bool {
	return n.nonlin
}

func (n *Neuron) String() string {
	kind := "Linear"
	if n.nonlin {
		kind = "ReLU"
	}
	return fmt.Sprintf("%sNeuron(%d)", kind, len(n.w))
}
