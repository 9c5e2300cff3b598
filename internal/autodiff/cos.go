package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// cosOp is the element-wise cosine: output = cos(a).
//
// Backward: d(cos(a))/da = -sin(a).
type cosOp struct{}

func (cosOp) Name() string { return "Cos" }

func (cosOp) VJP(node *Node, outGrad *Node) []*Node {
	return []*Node{Neg(Mul(outGrad, Sin(node.inputs[0])))}
}

// Cos returns cos(a) element-wise.
func Cos(a *Node) *Node {
	return a.graph.append(cosOp{}, tensor.Cos(a.value), a)
}
