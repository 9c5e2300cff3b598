package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// broadcastOp expands a [1, 1] or [1, cols] tensor to [rows, cols].
//
// Backward: the adjoint is reduced back to the input's shape; Broadcast and
// the sum reductions are adjoint pairs.
type broadcastOp struct {
	rows, cols int
}

func (broadcastOp) Name() string { return "Broadcast" }

func (broadcastOp) VJP(node *Node, outGrad *Node) []*Node {
	in := node.inputs[0]
	if in.Cols() == 1 {
		return []*Node{Sum(outGrad)}
	}
	return []*Node{SumRows(outGrad)}
}

// Broadcast expands a [1, 1] or [1, c] node to [rows, cols].
func Broadcast(a *Node, rows, cols int) *Node {
	return a.graph.append(broadcastOp{rows: rows, cols: cols}, tensor.Broadcast(a.value, rows, cols), a)
}
