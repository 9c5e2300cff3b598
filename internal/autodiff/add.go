package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// addOp is element-wise addition: output = a + b.
//
// Backward: d(a+b)/da = 1, d(a+b)/db = 1, so both inputs receive the output
// adjoint unchanged.
type addOp struct{}

func (addOp) Name() string { return "Add" }

func (addOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{outGrad, outGrad}
}

// Add returns the element-wise sum a + b.
func Add(a, b *Node) *Node {
	g := sameGraph("Add", a, b)
	return g.append(addOp{}, tensor.Add(a.value, b.value), a, b)
}

// subOp is element-wise subtraction: output = a - b.
type subOp struct{}

func (subOp) Name() string { return "Sub" }

func (subOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{outGrad, Neg(outGrad)}
}

// Sub returns the element-wise difference a - b.
func Sub(a, b *Node) *Node {
	g := sameGraph("Sub", a, b)
	return g.append(subOp{}, tensor.Sub(a.value, b.value), a, b)
}

// negOp is element-wise negation.
type negOp struct{}

func (negOp) Name() string { return "Neg" }

func (negOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{Neg(outGrad)}
}

// Neg returns -a element-wise.
func Neg(a *Node) *Node {
	return a.graph.append(negOp{}, tensor.Neg(a.value), a)
}
