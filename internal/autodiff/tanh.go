package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// tanhOp is the element-wise hyperbolic tangent: output = tanh(a).
//
// Backward: d(tanh(a))/da = 1 - tanh(a)², expressed in terms of the output
// node so the adjoint reuses the forward value and stays differentiable.
type tanhOp struct{}

func (tanhOp) Name() string { return "Tanh" }

func (tanhOp) VJP(node *Node, outGrad *Node) []*Node {
	// 1 - y² where y = tanh(a).
	deriv := AddScalar(Neg(Square(node)), 1)
	return []*Node{Mul(outGrad, deriv)}
}

// Tanh returns tanh(a) element-wise.
func Tanh(a *Node) *Node {
	return a.graph.append(tanhOp{}, tensor.Tanh(a.value), a)
}
