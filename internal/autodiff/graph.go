// Package autodiff implements reverse-mode automatic differentiation over an
// eagerly evaluated computation graph.
//
// Every operation appends a Node to a Graph and computes its value
// immediately. Gradient walks the graph in reverse, and the adjoint of each
// node is emitted as new graph nodes rather than raw values. Because of
// that, a gradient is itself differentiable: calling Gradient on a node
// produced by a previous Gradient call yields second derivatives, which is
// what the PDE residual u_tt - c²·u_xx requires.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.Constant(batch)
//	u := model.Forward(x, t)
//	ux := autodiff.Gradient(autodiff.Sum(u), x)[0]   // first derivative
//	uxx := autodiff.Gradient(autodiff.Sum(ux), x)[0] // second derivative
package autodiff

import (
	"fmt"

	"github.com/ripple-ml/ripple/internal/tensor"
)

// Op is a differentiable operation recorded on the graph.
//
// VJP emits graph nodes computing the adjoints of the operation's inputs
// given the adjoint of its output (reverse-mode chain rule). Entries may be
// nil for inputs that receive no gradient. VJP implementations must build
// their results out of graph operations only, so that adjoints stay
// differentiable.
type Op interface {
	// Name returns the operation name, used in diagnostics.
	Name() string

	// VJP computes input adjoints for node given the output adjoint.
	VJP(node *Node, outGrad *Node) []*Node
}

// Node is a single value in the computation graph.
type Node struct {
	id     int
	graph  *Graph
	op     Op
	inputs []*Node
	value  *tensor.Dense
}

// ID returns the node's position in graph creation order.
func (n *Node) ID() int { return n.id }

// Graph returns the owning graph.
func (n *Node) Graph() *Graph { return n.graph }

// Op returns the operation that produced this node.
func (n *Node) Op() Op { return n.op }

// Inputs returns the operation's input nodes.
func (n *Node) Inputs() []*Node { return n.inputs }

// Value returns the eagerly computed value.
func (n *Node) Value() *tensor.Dense { return n.value }

// Rows returns the number of rows of the node's value.
func (n *Node) Rows() int { return n.value.Rows() }

// Cols returns the number of columns of the node's value.
func (n *Node) Cols() int { return n.value.Cols() }

func (n *Node) String() string {
	return fmt.Sprintf("%s#%d[%dx%d]", n.op.Name(), n.id, n.Rows(), n.Cols())
}

// Variable is anything holding a tensor value that can participate in a
// graph as a leaf, typically a trainable parameter. Binding the same
// Variable twice to one graph yields the same node, so gradients from every
// use site accumulate on it.
type Variable interface {
	Value() *tensor.Dense
}

// Graph owns an append-only list of nodes in topological creation order.
//
// A graph is built fresh for every training iteration and discarded after
// the parameter update; only the Variables it binds persist.
type Graph struct {
	nodes []*Node
	vars  map[Variable]*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]*Node, 0, 256),
		vars:  make(map[Variable]*Node),
	}
}

// NumNodes returns the number of recorded nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// append records a node with the given op, value and inputs.
func (g *Graph) append(op Op, value *tensor.Dense, inputs ...*Node) *Node {
	n := &Node{
		id:     len(g.nodes),
		graph:  g,
		op:     op,
		inputs: inputs,
		value:  value,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// leafOp marks nodes without inputs: constants and bound variables.
type leafOp struct{ name string }

func (op leafOp) Name() string               { return op.name }
func (op leafOp) VJP(_ *Node, _ *Node) []*Node { return nil }

// Constant adds a leaf node holding v.
func (g *Graph) Constant(v *tensor.Dense) *Node {
	return g.append(leafOp{name: "Constant"}, v)
}

// Var binds a Variable to the graph, memoized per graph so that every use
// of the same Variable shares one leaf node.
func (g *Graph) Var(v Variable) *Node {
	if n, ok := g.vars[v]; ok {
		return n
	}
	n := g.append(leafOp{name: "Var"}, v.Value())
	g.vars[v] = n
	return n
}

// sameGraph panics unless all nodes belong to one graph, and returns it.
func sameGraph(op string, nodes ...*Node) *Graph {
	g := nodes[0].graph
	for _, n := range nodes[1:] {
		if n.graph != g {
			panic(fmt.Sprintf("%s: nodes belong to different graphs", op))
		}
	}
	return g
}
