package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripple-ml/ripple/internal/autodiff"
	"github.com/ripple-ml/ripple/internal/tensor"
)

func column(t *testing.T, values ...float64) *tensor.Dense {
	t.Helper()
	d, err := tensor.FromSlice(values, len(values), 1)
	require.NoError(t, err)
	return d
}

// TestGradient_Sin checks d(Σ sin(x))/dx = cos(x).
func TestGradient_Sin(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 0, 0.5, 1, 2))

	y := autodiff.Sum(autodiff.Sin(x))
	grad := autodiff.Gradient(y, x)[0]

	for i, xv := range x.Value().Data() {
		assert.InDelta(t, math.Cos(xv), grad.Value().Data()[i], 1e-12)
	}
}

// TestGradient_SecondOrder checks that a gradient node can be
// differentiated again: d²(Σ sin(x))/dx² = -sin(x).
func TestGradient_SecondOrder(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 0.1, 0.7, 1.3, 2.9))

	y := autodiff.Sum(autodiff.Sin(x))
	first := autodiff.Gradient(y, x)[0]
	second := autodiff.Gradient(autodiff.Sum(first), x)[0]

	for i, xv := range x.Value().Data() {
		assert.InDelta(t, -math.Sin(xv), second.Value().Data()[i], 1e-12)
	}
}

// TestGradient_TanhSecondOrder checks tanh'' = -2·tanh·(1-tanh²).
func TestGradient_TanhSecondOrder(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, -1.5, -0.2, 0.4, 1.1))

	y := autodiff.Sum(autodiff.Tanh(x))
	first := autodiff.Gradient(y, x)[0]
	second := autodiff.Gradient(autodiff.Sum(first), x)[0]

	for i, xv := range x.Value().Data() {
		th := math.Tanh(xv)
		assert.InDelta(t, 1-th*th, first.Value().Data()[i], 1e-12)
		assert.InDelta(t, -2*th*(1-th*th), second.Value().Data()[i], 1e-12)
	}
}

// TestGradient_Product checks the product rule with a shared input:
// d(Σ x·sin(x))/dx = sin(x) + x·cos(x).
func TestGradient_Product(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 0.3, 1.2, 2.5))

	y := autodiff.Sum(autodiff.Mul(x, autodiff.Sin(x)))
	grad := autodiff.Gradient(y, x)[0]

	for i, xv := range x.Value().Data() {
		assert.InDelta(t, math.Sin(xv)+xv*math.Cos(xv), grad.Value().Data()[i], 1e-12)
	}
}

// TestGradient_MatMul checks d(Σ a@b)/da = ones @ bᵀ and the symmetric
// case for b.
func TestGradient_MatMul(t *testing.T) {
	g := autodiff.NewGraph()
	aVal, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	bVal, err := tensor.FromSlice([]float64{1, -1, 2, 0.5, -2, 3}, 3, 2)
	require.NoError(t, err)
	a := g.Constant(aVal)
	b := g.Constant(bVal)

	y := autodiff.Sum(autodiff.MatMul(a, b))
	grads := autodiff.Gradient(y, a, b)

	wantA := tensor.MatMul(tensor.Ones(2, 2), tensor.Transpose(bVal))
	wantB := tensor.MatMul(tensor.Transpose(aVal), tensor.Ones(2, 2))
	assert.InDeltaSlice(t, wantA.Data(), grads[0].Value().Data(), 1e-12)
	assert.InDeltaSlice(t, wantB.Data(), grads[1].Value().Data(), 1e-12)
}

// TestGradient_BroadcastReduce checks the Broadcast/SumRows adjoint pair
// through a bias-like term.
func TestGradient_BroadcastReduce(t *testing.T) {
	g := autodiff.NewGraph()
	bias, err := tensor.FromSlice([]float64{0.5, -1}, 1, 2)
	require.NoError(t, err)
	b := g.Constant(bias)

	// Σ broadcast(b, 3x2) = 3·(b0 + b1), so db = [3, 3].
	y := autodiff.Sum(autodiff.Broadcast(b, 3, 2))
	grad := autodiff.Gradient(y, b)[0]

	assert.InDeltaSlice(t, []float64{3, 3}, grad.Value().Data(), 1e-12)
}

// TestGradient_ConcatCols checks gradients flow through column
// concatenation back to both halves.
func TestGradient_ConcatCols(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 1, 2))
	tt := g.Constant(column(t, 3, 4))

	// Σ (x ++ t)² = Σx² + Σt², so dx = 2x and dt = 2t.
	y := autodiff.Sum(autodiff.Square(autodiff.ConcatCols(x, tt)))
	grads := autodiff.Gradient(y, x, tt)

	assert.InDeltaSlice(t, []float64{2, 4}, grads[0].Value().Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{6, 8}, grads[1].Value().Data(), 1e-12)
}

// TestGradient_Unreachable returns a zero gradient for nodes the output
// does not depend on.
func TestGradient_Unreachable(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 1, 2))
	other := g.Constant(column(t, 5, 6, 7))

	y := autodiff.Sum(autodiff.Square(x))
	grad := autodiff.Gradient(y, other)[0]

	assert.Equal(t, 3, grad.Rows())
	assert.Equal(t, 1, grad.Cols())
	assert.InDeltaSlice(t, []float64{0, 0, 0}, grad.Value().Data(), 0)
}

// TestGradient_NonScalarPanics rejects non-scalar outputs.
func TestGradient_NonScalarPanics(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Constant(column(t, 1, 2))

	assert.Panics(t, func() {
		autodiff.Gradient(autodiff.Sin(x), x)
	})
}

// TestGradient_NumericalCheck compares reverse-mode gradients of a small
// network-shaped composite against central finite differences.
func TestGradient_NumericalCheck(t *testing.T) {
	xVal := column(t, 0.2, -0.4, 0.9)
	wVal, err := tensor.FromSlice([]float64{0.3, -0.7}, 1, 2)
	require.NoError(t, err)

	f := func(w *tensor.Dense) float64 {
		g := autodiff.NewGraph()
		x := g.Constant(xVal)
		wn := g.Constant(w)
		y := autodiff.Mean(autodiff.Square(autodiff.Tanh(autodiff.MatMul(x, wn))))
		return y.Value().Scalar()
	}

	g := autodiff.NewGraph()
	x := g.Constant(xVal)
	w := g.Constant(wVal)
	loss := autodiff.Mean(autodiff.Square(autodiff.Tanh(autodiff.MatMul(x, w))))
	grad := autodiff.Gradient(loss, w)[0]

	const h = 1e-6
	for i := range wVal.Data() {
		plus := wVal.Clone()
		plus.Data()[i] += h
		minus := wVal.Clone()
		minus.Data()[i] -= h
		numeric := (f(plus) - f(minus)) / (2 * h)
		assert.InDelta(t, numeric, grad.Value().Data()[i], 1e-6)
	}
}
