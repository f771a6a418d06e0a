package autodiff

import "math"

// Op identifies the operation that produced a node.
type Op uint8

// Supported operations. Neg, Sub and Div are compositions and have no kind of
// their own.
const (
	OpLeaf Op = iota // input, constant or parameter
	OpAdd            // a + b
	OpMul            // a * b
	OpPow            // a ** p, p captured at construction
	OpReLU           // max(a, 0)
	OpExp            // e ** a
	OpLog            // ln(a)
	OpTanh           // tanh(a)
)

var opNames = [...]string{
	OpLeaf: "",
	OpAdd:  "+",
	OpMul:  "*",
	OpPow:  "**",
	OpReLU: "ReLU",
	OpExp:  "exp",
	OpLog:  "log",
	OpTanh: "tanh",
}

// String returns the operator symbol. Leaves render as the empty string.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "op?"
}

// name is the operation's name in error messages.
func (op Op) name() string {
	if op == OpLeaf {
		return "leaf"
	}
	return op.String()
}

// Leaf creates a node with no operands: an input, constant or parameter.
func (g *Graph) Leaf(x float64) Value {
	if g.err != nil {
		return Invalid
	}
	return g.push(node{data: x, op: OpLeaf})
}

// Add returns a + b.
func (g *Graph) Add(a, b Value) Value {
	if !g.check(OpAdd, a, b) {
		return Invalid
	}
	return g.binary(OpAdd, g.nodes[a].data+g.nodes[b].data, a, b)
}

// Mul returns a * b.
func (g *Graph) Mul(a, b Value) Value {
	if !g.check(OpMul, a, b) {
		return Invalid
	}
	return g.binary(OpMul, g.nodes[a].data*g.nodes[b].data, a, b)
}

// Pow returns a ** p. Zero and negative exponents are allowed; a negative
// base with a fractional exponent yields NaN.
func (g *Graph) Pow(a Value, p float64) Value {
	if !g.check(OpPow, a) {
		return Invalid
	}
	return g.push(node{
		data:     math.Pow(g.nodes[a].data, p),
		op:       OpPow,
		nargs:    1,
		args:     [2]Value{a},
		exponent: p,
	})
}

// ReLU returns max(a, 0).
func (g *Graph) ReLU(a Value) Value {
	if !g.check(OpReLU, a) {
		return Invalid
	}
	x := g.nodes[a].data
	if !(x > 0) {
		x = 0
	}
	return g.unary(OpReLU, x, a)
}

// Exp returns e ** a.
func (g *Graph) Exp(a Value) Value {
	if !g.check(OpExp, a) {
		return Invalid
	}
	return g.unary(OpExp, math.Exp(g.nodes[a].data), a)
}

// Log returns the natural logarithm of a.
func (g *Graph) Log(a Value) Value {
	if !g.check(OpLog, a) {
		return Invalid
	}
	return g.unary(OpLog, math.Log(g.nodes[a].data), a)
}

// Tanh returns the hyperbolic tangent of a.
func (g *Graph) Tanh(a Value) Value {
	if !g.check(OpTanh, a) {
		return Invalid
	}
	return g.unary(OpTanh, math.Tanh(g.nodes[a].data), a)
}

// Neg returns a * -1, multiplying by a fresh constant leaf.
func (g *Graph) Neg(a Value) Value {
	return g.Mul(a, g.Leaf(-1))
}

// Sub returns a + (-b).
func (g *Graph) Sub(a, b Value) Value {
	return g.Add(a, g.Neg(b))
}

// Div returns a * b**-1. Division by zero is not checked and yields ±Inf or NaN.
func (g *Graph) Div(a, b Value) Value {
	return g.Mul(a, g.Pow(b, -1))
}

// Sum returns the left fold of Add over vs. An empty sum is a new zero leaf.
func (g *Graph) Sum(vs ...Value) Value {
	if len(vs) == 0 {
		return g.Leaf(0)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = g.Add(acc, v)
	}
	return acc
}

// Dot returns Σ a[i]*b[i]. It panics if the lengths differ.
func (g *Graph) Dot(a, b []Value) Value {
	if len(a) != len(b) {
		panic("autodiff: Dot length mismatch")
	}
	terms := make([]Value, len(a))
	for i := range a {
		terms[i] = g.Mul(a[i], b[i])
	}
	return g.Sum(terms...)
}

func (g *Graph) unary(op Op, data float64, a Value) Value {
	return g.push(node{data: data, op: op, nargs: 1, args: [2]Value{a}})
}

func (g *Graph) binary(op Op, data float64, a, b Value) Value {
	return g.push(node{data: data, op: op, nargs: 2, args: [2]Value{a, b}})
}
