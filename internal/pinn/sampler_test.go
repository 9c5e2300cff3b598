package pinn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripple-ml/ripple/internal/autodiff"
	"github.com/ripple-ml/ripple/internal/pinn"
)

// offsetModel shifts the closed-form solution by a constant.
type offsetModel struct {
	c      float64
	offset float64
}

func (m offsetModel) Forward(x, t *autodiff.Node) *autodiff.Node {
	return autodiff.AddScalar(pinn.ClosedForm{C: m.c}.Forward(x, t), m.offset)
}

func TestSampler_Ranges(t *testing.T) {
	x, tt := pinn.NewSampler(500, 2.5, 11).Batch()
	require.Equal(t, 500, x.Rows())
	require.Equal(t, 1, x.Cols())
	require.Equal(t, 500, tt.Rows())

	for i, v := range x.Data() {
		assert.GreaterOrEqual(t, v, 0.0, "x[%d]", i)
		assert.Less(t, v, 1.0, "x[%d]", i)
	}
	for i, v := range tt.Data() {
		assert.GreaterOrEqual(t, v, 0.0, "t[%d]", i)
		assert.Less(t, v, 2.5, "t[%d]", i)
	}
}

func TestSampler_DeterministicPerSeed(t *testing.T) {
	x1, t1 := pinn.NewSampler(100, 1, 42).Batch()
	x2, t2 := pinn.NewSampler(100, 1, 42).Batch()
	assert.Equal(t, x1.Data(), x2.Data())
	assert.Equal(t, t1.Data(), t2.Data())

	x3, _ := pinn.NewSampler(100, 1, 43).Batch()
	assert.NotEqual(t, x1.Data(), x3.Data())
}

func TestEvaluate_ClosedForm(t *testing.T) {
	// The exact solution evaluated as a model agrees with itself.
	acc := pinn.Evaluate(pinn.ClosedForm{C: 1}, 1, 1, 200, 3)
	assert.Equal(t, 200, acc.Points)
	assert.Less(t, acc.MSE, 1e-25)
	assert.Less(t, acc.MeanRelErrPct, 1e-10)
}

func TestEvaluate_OffsetModel(t *testing.T) {
	// A model that is exactly wrong by a constant: the MSE is that constant
	// squared.
	acc := pinn.Evaluate(offsetModel{c: 1, offset: 0.1}, 1, 1, 300, 9)
	assert.InDelta(t, 0.01, acc.MSE, 1e-10)
}
