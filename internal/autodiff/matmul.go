package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// matMulOp is matrix multiplication: output = a @ b.
//
// Backward: d(A@B)/dA = grad @ Bᵀ, d(A@B)/dB = Aᵀ @ grad.
type matMulOp struct{}

func (matMulOp) Name() string { return "MatMul" }

func (matMulOp) VJP(node *Node, outGrad *Node) []*Node {
	a, b := node.inputs[0], node.inputs[1]
	return []*Node{
		MatMul(outGrad, Transpose(b)),
		MatMul(Transpose(a), outGrad),
	}
}

// MatMul returns the matrix product a @ b ([m, k] @ [k, n] -> [m, n]).
func MatMul(a, b *Node) *Node {
	g := sameGraph("MatMul", a, b)
	return g.append(matMulOp{}, tensor.MatMul(a.value, b.value), a, b)
}

// transposeOp is matrix transposition. Its adjoint is transposition of the
// output adjoint.
type transposeOp struct{}

func (transposeOp) Name() string { return "Transpose" }

func (transposeOp) VJP(_ *Node, outGrad *Node) []*Node {
	return []*Node{Transpose(outGrad)}
}

// Transpose returns aᵀ.
func Transpose(a *Node) *Node {
	return a.graph.append(transposeOp{}, tensor.Transpose(a.value), a)
}
