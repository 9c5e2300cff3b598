package autodiff

import "github.com/ripple-ml/ripple/internal/tensor"

// concatColsOp concatenates two nodes column-wise: [r, ca] ++ [r, cb].
//
// Backward: the adjoint is sliced back into the two column ranges.
type concatColsOp struct{}

func (concatColsOp) Name() string { return "ConcatCols" }

func (concatColsOp) VJP(node *Node, outGrad *Node) []*Node {
	a, b := node.inputs[0], node.inputs[1]
	return []*Node{
		SliceCols(outGrad, 0, a.Cols()),
		SliceCols(outGrad, a.Cols(), a.Cols()+b.Cols()),
	}
}

// ConcatCols concatenates a and b column-wise.
func ConcatCols(a, b *Node) *Node {
	g := sameGraph("ConcatCols", a, b)
	return g.append(concatColsOp{}, tensor.ConcatCols(a.value, b.value), a, b)
}

// sliceColsOp selects columns [from, to).
//
// Backward: the adjoint is padded with zeros back to the input width.
type sliceColsOp struct {
	from, to int
}

func (sliceColsOp) Name() string { return "SliceCols" }

func (op sliceColsOp) VJP(node *Node, outGrad *Node) []*Node {
	in := node.inputs[0]
	return []*Node{PadCols(outGrad, op.from, in.Cols())}
}

// SliceCols returns columns [from, to) of a.
func SliceCols(a *Node, from, to int) *Node {
	return a.graph.append(sliceColsOp{from: from, to: to}, tensor.SliceCols(a.value, from, to), a)
}

// padColsOp embeds a node into a wider zero tensor starting at a column
// offset. Adjoint of sliceColsOp.
type padColsOp struct {
	from, width int
}

func (padColsOp) Name() string { return "PadCols" }

func (op padColsOp) VJP(node *Node, outGrad *Node) []*Node {
	in := node.inputs[0]
	return []*Node{SliceCols(outGrad, op.from, op.from+in.Cols())}
}

// PadCols embeds a into a zero [r, width] node starting at column from.
func PadCols(a *Node, from, width int) *Node {
	return a.graph.append(padColsOp{from: from, width: width}, tensor.PadCols(a.value, from, width), a)
}
