package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// mulOp is element-wise (Hadamard) multiplication: output = a * b.
//
// Backward: d(a*b)/da = b and d(a*b)/db = a, so each input's adjoint is the
// output adjoint times the other input. Both products are emitted as graph
// nodes, keeping the adjoints differentiable.
type mulOp struct{}

func (mulOp) Name() string { return "Mul" }

func (mulOp) VJP(node *Node, outGrad *Node) []*Node {
	a, b := node.inputs[0], node.inputs[1]
	return []*Node{Mul(outGrad, b), Mul(outGrad, a)}
}

// Mul returns the element-wise product a * b.
func Mul(a, b *Node) *Node {
	g := sameGraph("Mul", a, b)
	return g.append(mulOp{}, tensor.Mul(a.value, b.value), a, b)
}

// Square returns a * a element-wise.
func Square(a *Node) *Node {
	return Mul(a, a)
}

// scaleOp multiplies by a fixed scalar: output = a * s.
type scaleOp struct {
	s float64
}

func (scaleOp) Name() string { return "Scale" }

func (op scaleOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{Scale(outGrad, op.s)}
}

// Scale returns a * s element-wise, for a constant s.
func Scale(a *Node, s float64) *Node {
	return a.graph.append(scaleOp{s: s}, tensor.Scale(a.value, s), a)
}

// addScalarOp adds a fixed scalar: output = a + c.
type addScalarOp struct {
	c float64
}

func (addScalarOp) Name() string { return "AddScalar" }

func (addScalarOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{outGrad}
}

// AddScalar returns a + c element-wise, for a constant c.
func AddScalar(a *Node, c float64) *Node {
	return a.graph.append(addScalarOp{c: c}, tensor.AddConst(a.value, c), a)
}
