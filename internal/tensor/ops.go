package tensor

import (
	"fmt"
	"math"
)

// Kernels for the operations the differentiation engine records. Shape
// violations are programming errors and panic with the operation name,
// the same contract as the op constructors that call them.

func checkSameShape(op string, a, b *Dense) {
	if !a.SameShape(b) {
		panic(fmt.Sprintf("%s: shape mismatch %dx%d vs %dx%d", op, a.rows, a.cols, b.rows, b.cols))
	}
}

// Add returns a + b element-wise.
func Add(a, b *Dense) *Dense {
	checkSameShape("Add", a, b)
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] + b.data[i]
	}
	return out
}

// Sub returns a - b element-wise.
func Sub(a, b *Dense) *Dense {
	checkSameShape("Sub", a, b)
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] - b.data[i]
	}
	return out
}

// Mul returns the element-wise (Hadamard) product a * b.
func Mul(a, b *Dense) *Dense {
	checkSameShape("Mul", a, b)
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] * b.data[i]
	}
	return out
}

// Neg returns -a element-wise.
func Neg(a *Dense) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = -a.data[i]
	}
	return out
}

// Scale returns a * s element-wise.
func Scale(a *Dense, s float64) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] * s
	}
	return out
}

// AddConst returns a + c element-wise.
func AddConst(a *Dense, c float64) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = a.data[i] + c
	}
	return out
}

// Sin returns sin(a) element-wise.
func Sin(a *Dense) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = math.Sin(a.data[i])
	}
	return out
}

// Cos returns cos(a) element-wise.
func Cos(a *Dense) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = math.Cos(a.data[i])
	}
	return out
}

// Tanh returns tanh(a) element-wise.
func Tanh(a *Dense) *Dense {
	out := Zeros(a.rows, a.cols)
	for i := range out.data {
		out.data[i] = math.Tanh(a.data[i])
	}
	return out
}

// MatMul returns the matrix product a @ b.
//
// a is [m, k], b is [k, n], result is [m, n].
func MatMul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(fmt.Sprintf("MatMul: inner dimensions %dx%d @ %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := Zeros(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		arow := a.data[i*a.cols : (i+1)*a.cols]
		orow := out.data[i*out.cols : (i+1)*out.cols]
		for k, av := range arow {
			if av == 0 {
				continue
			}
			brow := b.data[k*b.cols : (k+1)*b.cols]
			for j, bv := range brow {
				orow[j] += av * bv
			}
		}
	}
	return out
}

// Transpose returns aᵀ.
func Transpose(a *Dense) *Dense {
	out := Zeros(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*out.cols+i] = a.data[i*a.cols+j]
		}
	}
	return out
}

// SumRows reduces over rows: [r, c] -> [1, c].
func SumRows(a *Dense) *Dense {
	out := Zeros(1, a.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j] += a.data[i*a.cols+j]
		}
	}
	return out
}

// Sum reduces over all elements: [r, c] -> [1, 1].
func Sum(a *Dense) *Dense {
	var sum float64
	for _, v := range a.data {
		sum += v
	}
	return Scalar(sum)
}

// Broadcast expands a [1, 1] or [1, cols] tensor to [rows, cols].
func Broadcast(a *Dense, rows, cols int) *Dense {
	if a.rows != 1 || (a.cols != 1 && a.cols != cols) {
		panic(fmt.Sprintf("Broadcast: cannot expand %dx%d to %dx%d", a.rows, a.cols, rows, cols))
	}
	out := Zeros(rows, cols)
	if a.cols == 1 {
		for i := range out.data {
			out.data[i] = a.data[0]
		}
		return out
	}
	for i := 0; i < rows; i++ {
		copy(out.data[i*cols:(i+1)*cols], a.data)
	}
	return out
}

// ConcatCols concatenates a and b column-wise: [r, ca] ++ [r, cb] -> [r, ca+cb].
func ConcatCols(a, b *Dense) *Dense {
	if a.rows != b.rows {
		panic(fmt.Sprintf("ConcatCols: row mismatch %d vs %d", a.rows, b.rows))
	}
	out := Zeros(a.rows, a.cols+b.cols)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*out.cols:], a.data[i*a.cols:(i+1)*a.cols])
		copy(out.data[i*out.cols+a.cols:], b.data[i*b.cols:(i+1)*b.cols])
	}
	return out
}

// SliceCols returns columns [from, to) of a.
func SliceCols(a *Dense, from, to int) *Dense {
	if from < 0 || to > a.cols || from >= to {
		panic(fmt.Sprintf("SliceCols: invalid range [%d, %d) for %d columns", from, to, a.cols))
	}
	out := Zeros(a.rows, to-from)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*out.cols:(i+1)*out.cols], a.data[i*a.cols+from:i*a.cols+to])
	}
	return out
}

// PadCols embeds a [r, c] tensor into a zero [r, width] tensor starting at
// column from. Adjoint of SliceCols.
func PadCols(a *Dense, from, width int) *Dense {
	if from < 0 || from+a.cols > width {
		panic(fmt.Sprintf("PadCols: %d columns at offset %d do not fit width %d", a.cols, from, width))
	}
	out := Zeros(a.rows, width)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*width+from:], a.data[i*a.cols:(i+1)*a.cols])
	}
	return out
}
