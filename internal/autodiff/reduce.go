package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// sumOp reduces over all elements: [r, c] -> [1, 1].
//
// Backward: every element contributed with weight 1, so the scalar adjoint
// is broadcast back to the input's shape.
type sumOp struct{}

func (sumOp) Name() string { return "Sum" }

func (sumOp) VJP(node *Node, outGrad *Node) []*Node {
	in := node.inputs[0]
	return []*Node{Broadcast(outGrad, in.Rows(), in.Cols())}
}

// Sum returns the total sum of a as a [1, 1] node.
func Sum(a *Node) *Node {
	return a.graph.append(sumOp{}, tensor.Sum(a.value), a)
}

// sumRowsOp reduces over rows: [r, c] -> [1, c].
type sumRowsOp struct{}

func (sumRowsOp) Name() string { return "SumRows" }

func (sumRowsOp) VJP(node *Node, outGrad *Node) []*Node {
	in := node.inputs[0]
	return []*Node{Broadcast(outGrad, in.Rows(), in.Cols())}
}

// SumRows returns the per-column sum of a as a [1, c] node.
func SumRows(a *Node) *Node {
	return a.graph.append(sumRowsOp{}, tensor.SumRows(a.value), a)
}

// Mean returns the mean over all elements of a as a [1, 1] node.
func Mean(a *Node) *Node {
	return Scale(Sum(a), 1/float64(a.value.Len()))
}

// MeanSquare returns the mean of the element-wise squares of a, the
// reduction every residual term of the composite loss uses.
func MeanSquare(a *Node) *Node {
	return Mean(Square(a))
}
