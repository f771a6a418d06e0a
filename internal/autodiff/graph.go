// Package autodiff implements a scalar reverse-mode automatic differentiation engine.
//
// Every scalar lives in a Graph, an arena that owns all nodes created through it.
// Callers hold Value handles and read results back through the graph:
//
//	g := autodiff.NewGraph(autodiff.Config{})
//	x := g.Leaf(-4)
//	y := g.Mul(x, x)
//	if err := g.Backward(y); err != nil {
//	    return err
//	}
//	dx := g.Grad(x) // -8
//
// Nodes are appended in creation order and an operand always refers to an
// earlier slot, so the graph is acyclic by construction. Parameters created
// before Mark survive Release, which drops a whole forward pass at once.
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"fmt"
	"math"
)

// Value is a handle to a node owned by a Graph.
type Value int32

// Invalid is returned by constructors once the graph has recorded an error.
const Invalid Value = -1

// Config configures a Graph.
type Config struct {
	// MaxNodes bounds the arena size (0 = unbounded). Creating a node past the
	// bound fails with ErrCapacity.
	MaxNodes int

	// Strict makes the first NaN or ±Inf forward result fail with ErrNonFinite.
	// By default non-finite values propagate as ordinary data.
	Strict bool

	// Capacity pre-allocates room for this many nodes.
	Capacity int
}

// node is one arena slot.
type node struct {
	data     float64
	grad     float64
	op       Op
	nargs    uint8
	args     [2]Value
	exponent float64 // OpPow only
}

// Graph is an arena of scalar nodes.
type Graph struct {
	nodes  []node
	config Config
	err    error
}

// NewGraph creates an empty graph.
func NewGraph(config Config) *Graph {
	capacity := config.Capacity
	if capacity <= 0 {
		capacity = 64
	}
	if config.MaxNodes > 0 && capacity > config.MaxNodes {
		capacity = config.MaxNodes
	}
	return &Graph{
		nodes:  make([]node, 0, capacity),
		config: config,
	}
}

// Err returns the first error recorded by the graph, or nil.
func (g *Graph) Err() error {
	return g.err
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Valid reports whether v refers to a live node.
func (g *Graph) Valid(v Value) bool {
	return v >= 0 && int(v) < len(g.nodes)
}

// Mark is an arena watermark returned by Graph.Mark.
type Mark struct {
	n      int
	failed bool // an error was already recorded when the mark was taken
}

// Mark returns the current arena watermark.
func (g *Graph) Mark() Mark {
	return Mark{n: len(g.nodes), failed: g.err != nil}
}

// Release drops every node created after m. Handles to those nodes become
// invalid and must not be used again. An error recorded after m is cleared
// along with the nodes, so a failed forward pass can be discarded and retried.
// An error that predates m survives.
func (g *Graph) Release(m Mark) {
	if m.n < 0 || m.n > len(g.nodes) {
		return
	}
	clear(g.nodes[m.n:])
	g.nodes = g.nodes[:m.n]
	if !m.failed {
		g.err = nil
	}
}

// Reset drops every node and any recorded error.
func (g *Graph) Reset() {
	clear(g.nodes)
	g.nodes = g.nodes[:0]
	g.err = nil
}

// fail records err if no error has been recorded yet and returns Invalid.
func (g *Graph) fail(err error) Value {
	if g.err == nil {
		g.err = err
	}
	return Invalid
}

// check reports whether a node with the given operands may be created.
func (g *Graph) check(op Op, args ...Value) bool {
	if g.err != nil {
		return false
	}
	for _, a := range args {
		if !g.Valid(a) {
			g.fail(fmt.Errorf("%s: operand %d: %w", op.name(), a, ErrInvalidValue))
			return false
		}
	}
	return true
}

// push appends a node and returns its handle.
func (g *Graph) push(n node) Value {
	if g.config.MaxNodes > 0 && len(g.nodes) >= g.config.MaxNodes {
		return g.fail(fmt.Errorf("%s: limit %d: %w", n.op.name(), g.config.MaxNodes, ErrCapacity))
	}
	if g.config.Strict && (math.IsNaN(n.data) || math.IsInf(n.data, 0)) {
		return g.fail(fmt.Errorf("%s: forward value %v: %w", n.op.name(), n.data, ErrNonFinite))
	}
	g.nodes = append(g.nodes, n)
	return Value(len(g.nodes) - 1)
}

// Data returns the forward value of v, or NaN for an invalid handle.
func (g *Graph) Data(v Value) float64 {
	if !g.Valid(v) {
		return math.NaN()
	}
	return g.nodes[v].data
}

// Grad returns the accumulated gradient of v, or NaN for an invalid handle.
func (g *Graph) Grad(v Value) float64 {
	if !g.Valid(v) {
		return math.NaN()
	}
	return g.nodes[v].grad
}

// SetData overwrites the value of v. Optimizers use it to update parameters
// between passes; nodes already computed from v are not recomputed.
func (g *Graph) SetData(v Value, x float64) {
	if g.Valid(v) {
		g.nodes[v].data = x
	}
}

// Op returns the operation that produced v.
func (g *Graph) Op(v Value) Op {
	if !g.Valid(v) {
		return OpLeaf
	}
	return g.nodes[v].op
}

// Operands returns the nodes v was computed from, in order.
func (g *Graph) Operands(v Value) []Value {
	if !g.Valid(v) {
		return nil
	}
	n := &g.nodes[v]
	out := make([]Value, n.nargs)
	copy(out, n.args[:n.nargs])
	return out
}

// Label describes the operation that produced v, including the exponent of a power.
func (g *Graph) Label(v Value) string {
	if !g.Valid(v) {
		return ""
	}
	n := &g.nodes[v]
	if n.op == OpPow {
		return fmt.Sprintf("**%g", n.exponent)
	}
	return n.op.String()
}

// String formats v for debugging.
func (g *Graph) String(v Value) string {
	if !g.Valid(v) {
		return "Value(invalid)"
	}
	return fmt.Sprintf("Value(data=%f, grad=%f)", g.nodes[v].data, g.nodes[v].grad)
}

// ZeroGrad resets the gradient of each given node. Invalid handles are ignored.
func (g *Graph) ZeroGrad(vs ...Value) {
	for _, v := range vs {
		if g.Valid(v) {
			g.nodes[v].grad = 0
		}
	}
}

// ZeroAllGrads resets the gradient of every node in the graph.
func (g *Graph) ZeroAllGrads() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
