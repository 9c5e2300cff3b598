package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// sinOp is the element-wise sine: output = sin(a).
//
// Backward: d(sin(a))/da = cos(a), and cos is itself a graph op, so the
// adjoint remains differentiable (needed for second derivatives of the
// closed-form initial condition sin(πx)).
type sinOp struct{}

func (sinOp) Name() string { return "Sin" }

func (sinOp) VJP(node *Node, outGrad *Node) []*Node {
	return []*Node{Mul(outGrad, Cos(node.inputs[0]))}
}

// Sin returns sin(a) element-wise.
func Sin(a *Node) *Node {
	return a.graph.append(sinOp{}, tensor.Sin(a.value), a)
}
