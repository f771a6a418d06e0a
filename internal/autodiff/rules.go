package autodiff

import "math"

// propagate adds the share of v's gradient owed to each of its operands.
// v's gradient must be final, which Backward guarantees by walking the
// topological order in reverse.
//
// Local derivatives, with g the gradient of v:
//   - a + b:   da += g, db += g
//   - a * b:   da += b*g, db += a*g
//   - a ** p:  da += p * a**(p-1) * g
//   - ReLU(a): da += g if a > 0, else 0
//   - e ** a:  da += e**a * g
//   - ln(a):   da += g / a
//   - tanh(a): da += (1 - tanh(a)**2) * g
func (g *Graph) propagate(v Value) {
	n := &g.nodes[v]
	up := n.grad
	switch n.op {
	case OpLeaf:
		return
	case OpAdd:
		g.nodes[n.args[0]].grad += up
		g.nodes[n.args[1]].grad += up
	case OpMul:
		a, b := &g.nodes[n.args[0]], &g.nodes[n.args[1]]
		a.grad += b.data * up
		b.grad += a.data * up
	case OpPow:
		a := &g.nodes[n.args[0]]
		a.grad += n.exponent * math.Pow(a.data, n.exponent-1) * up
	case OpReLU:
		a := &g.nodes[n.args[0]]
		if a.data > 0 {
			a.grad += up
		}
	case OpExp:
		g.nodes[n.args[0]].grad += n.data * up
	case OpLog:
		a := &g.nodes[n.args[0]]
		a.grad += up / a.data
	case OpTanh:
		g.nodes[n.args[0]].grad += (1 - n.data*n.data) * up
	}
}
