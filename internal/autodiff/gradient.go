package autodiff

import (
	"fmt"

	"github.com/ripple-ml/ripple/internal/tensor"
)

// Gradient computes the gradient of a scalar output with respect to each of
// the given nodes, using reverse-mode accumulation.
//
// Algorithm:
//  1. Seed the output's adjoint with 1.
//  2. Walk nodes from the output down in creation order (creation order is
//     topological, so every consumer of a node is visited before the node
//     itself).
//  3. For each node carrying an adjoint, ask its op's VJP for the input
//     adjoints and accumulate them, summing where a node feeds several
//     consumers.
//
// The returned gradients are ordinary graph nodes: their values are
// available immediately, and they can be differentiated again by a further
// Gradient call. Nodes unreachable from the output get a zero gradient of
// their own shape.
//
// Panics if output is not scalar ([1, 1]) or if any node belongs to a
// different graph.
func Gradient(output *Node, wrt ...*Node) []*Node {
	g := output.graph
	if output.value.Len() != 1 {
		panic(fmt.Sprintf("Gradient: output must be scalar, got %dx%d", output.Rows(), output.Cols()))
	}
	for _, n := range wrt {
		if n.graph != g {
			panic("Gradient: wrt node belongs to a different graph")
		}
	}

	// Adjoints indexed by node id; nodes emitted while back-propagating get
	// ids beyond limit and never carry adjoints themselves in this walk.
	limit := output.id + 1
	adjoints := make([]*Node, limit)
	adjoints[output.id] = g.Constant(tensor.Ones(1, 1))

	for id := output.id; id >= 0; id-- {
		node := g.nodes[id]
		outGrad := adjoints[id]
		if outGrad == nil {
			continue
		}
		inGrads := node.op.VJP(node, outGrad)
		for i, in := range node.inputs {
			if i >= len(inGrads) || inGrads[i] == nil {
				continue
			}
			if existing := adjoints[in.id]; existing != nil {
				adjoints[in.id] = Add(existing, inGrads[i])
			} else {
				adjoints[in.id] = inGrads[i]
			}
		}
	}

	grads := make([]*Node, len(wrt))
	for i, n := range wrt {
		var adj *Node
		if n.id < limit {
			adj = adjoints[n.id]
		}
		if adj == nil {
			adj = g.Constant(tensor.Zeros(n.Rows(), n.Cols()))
		}
		grads[i] = adj
	}
	return grads
}
