package autodiff

import "fmt"

// Backward computes the gradient of root with respect to every node it
// depends on.
//
// The gradient of root is set to 1 (a reset, not an accumulation) and every
// other node's gradient is added to. Callers reusing nodes across passes must
// zero their gradients first with ZeroGrad or ZeroAllGrads.
//
// Nodes are visited in reverse topological order, so each node's gradient is
// complete before its rule pushes it to the operands. Leaves accumulate but
// propagate nothing.
//
// Backward returns the graph's recorded error, if any, without touching
// gradients.
func (g *Graph) Backward(root Value) error {
	if g.err != nil {
		return g.err
	}
	if !g.Valid(root) {
		return fmt.Errorf("backward: root %d: %w", root, ErrInvalidValue)
	}

	order := g.TopoSort(root)
	g.nodes[root].grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		g.propagate(order[i])
	}
	return nil
}
