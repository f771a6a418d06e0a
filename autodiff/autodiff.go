// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph(autodiff.Config{})
//	    a := g.Leaf(-4)
//	    b := g.Leaf(2)
//	    y := g.Add(g.Mul(a, b), g.Pow(b, 3))
//	    if err := g.Backward(y); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(g.Grad(a), g.Grad(b)) // 2 8
//	}
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
)

// Graph is an arena of scalar nodes.
type Graph = autodiff.Graph

// Value is a handle to a node owned by a Graph.
type Value = autodiff.Value

// Config configures a Graph.
type Config = autodiff.Config

// Mark is an arena watermark.
type Mark = autodiff.Mark

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operation kinds.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpReLU = autodiff.OpReLU
	OpExp  = autodiff.OpExp
	OpLog  = autodiff.OpLog
	OpTanh = autodiff.OpTanh
)

// Invalid is the handle returned by constructors after a recorded error.
const Invalid = autodiff.Invalid

// Errors recorded by a Graph.
var (
	ErrCapacity     = autodiff.ErrCapacity
	ErrInvalidValue = autodiff.ErrInvalidValue
	ErrNonFinite    = autodiff.ErrNonFinite
)

// NewGraph creates an empty graph.
func NewGraph(config Config) *Graph {
	return autodiff.NewGraph(config)
}
