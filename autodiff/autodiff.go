// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation of any
// order over an eagerly evaluated computation graph.
//
// Gradients are emitted as ordinary graph nodes, so differentiating a
// gradient again just works — the capability the wave-equation residual
// u_tt - c²·u_xx depends on.
//
// Example:
//
//	g := autodiff.NewGraph()
//	x := g.Constant(batch)               // [n, 1]
//	y := autodiff.Sin(x)
//	yx := autodiff.Gradient(autodiff.Sum(y), x)[0]   // cos(x)
//	yxx := autodiff.Gradient(autodiff.Sum(yx), x)[0] // -sin(x)
package autodiff

import "github.com/ripple-ml/ripple/internal/autodiff"

// Graph owns an append-only list of nodes in topological creation order.
type Graph = autodiff.Graph

// Node is a single value in a computation graph.
type Node = autodiff.Node

// Op is a differentiable operation recorded on the graph.
type Op = autodiff.Op

// Variable is a value holder that binds to a graph as a memoized leaf,
// typically a trainable parameter.
type Variable = autodiff.Variable

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Gradient computes the gradient of a scalar output with respect to each of
// the given nodes. The results are graph nodes and can be differentiated
// again.
func Gradient(output *Node, wrt ...*Node) []*Node {
	return autodiff.Gradient(output, wrt...)
}

// Element-wise and structural operations, re-exported for graph building.
var (
	Add        = autodiff.Add
	Sub        = autodiff.Sub
	Neg        = autodiff.Neg
	Mul        = autodiff.Mul
	Square     = autodiff.Square
	Scale      = autodiff.Scale
	AddScalar  = autodiff.AddScalar
	Sin        = autodiff.Sin
	Cos        = autodiff.Cos
	Tanh       = autodiff.Tanh
	MatMul     = autodiff.MatMul
	Transpose  = autodiff.Transpose
	Broadcast  = autodiff.Broadcast
	Sum        = autodiff.Sum
	SumRows    = autodiff.SumRows
	Mean       = autodiff.Mean
	MeanSquare = autodiff.MeanSquare
	ConcatCols = autodiff.ConcatCols
	SliceCols  = autodiff.SliceCols
	PadCols    = autodiff.PadCols
)
