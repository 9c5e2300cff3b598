package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ripple-ml/ripple/internal/nn"
	"github.com/ripple-ml/ripple/internal/optim"
	"github.com/ripple-ml/ripple/internal/tensor"
)

func TestAdam_FirstStep(t *testing.T) {
	// For the first step the bias-corrected moments collapse to m_hat = g and
	// v_hat = g², so param moves by lr * g/(|g|+eps) ≈ lr * sign(g).
	p := nn.NewParameter("w", tensor.Scalar(1.0))
	p.SetGrad(tensor.Scalar(0.5))

	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})
	opt.Step()

	assert.InDelta(t, 0.9, p.Value().Scalar(), 1e-6)
	assert.Equal(t, 1, opt.Timestep())
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(nil, optim.AdamConfig{})
	assert.InDelta(t, 0.001, opt.LR(), 1e-15)

	opt.SetLR(1e-4)
	assert.InDelta(t, 1e-4, opt.LR(), 1e-15)
}

func TestAdam_SkipsNilGradients(t *testing.T) {
	p := nn.NewParameter("w", tensor.Scalar(1.0))
	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})
	opt.Step()
	assert.InDelta(t, 1.0, p.Value().Scalar(), 1e-15)
}

func TestAdam_ConvergesOnQuadratic(t *testing.T) {
	// Minimize f(w) = (w-3)² from w=0. Gradient is 2(w-3).
	p := nn.NewParameter("w", tensor.Scalar(0.0))
	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 500; i++ {
		opt.ZeroGrad()
		w := p.Value().Scalar()
		p.SetGrad(tensor.Scalar(2 * (w - 3)))
		opt.Step()
	}
	assert.InDelta(t, 3.0, p.Value().Scalar(), 0.05)
}

func TestSGD_Step(t *testing.T) {
	p := nn.NewParameter("w", tensor.Scalar(1.0))
	p.SetGrad(tensor.Scalar(0.5))

	opt := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})
	opt.Step()
	assert.InDelta(t, 0.95, p.Value().Scalar(), 1e-15)
}

func TestSGD_Momentum(t *testing.T) {
	p := nn.NewParameter("w", tensor.Scalar(0.0))
	opt := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Constant gradient 1: velocities are 1, 1.9, 2.71, ...
	p.SetGrad(tensor.Scalar(1.0))
	opt.Step()
	assert.InDelta(t, -0.1, p.Value().Scalar(), 1e-12)

	p.SetGrad(tensor.Scalar(1.0))
	opt.Step()
	assert.InDelta(t, -0.29, p.Value().Scalar(), 1e-12)
}

func TestZeroGrad(t *testing.T) {
	p := nn.NewParameter("w", tensor.Scalar(1.0))
	p.SetGrad(tensor.Scalar(0.5))

	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{})
	opt.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestClipGradNorm_BelowThreshold(t *testing.T) {
	p := nn.NewParameter("w", tensor.Zeros(2, 1))
	grad, err := tensor.FromSlice([]float64{0.3, 0.4}, 2, 1)
	require.NoError(t, err)
	p.SetGrad(grad)

	norm := optim.ClipGradNorm([]*nn.Parameter{p}, 1.0)
	assert.InDelta(t, 0.5, norm, 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.4}, p.Grad().Data(), 1e-15)
}

func TestClipGradNorm_AboveThreshold(t *testing.T) {
	p := nn.NewParameter("w", tensor.Zeros(2, 1))
	grad, err := tensor.FromSlice([]float64{3, 4}, 2, 1)
	require.NoError(t, err)
	p.SetGrad(grad)

	norm := optim.ClipGradNorm([]*nn.Parameter{p}, 1.0)
	assert.InDelta(t, 5.0, norm, 1e-12)

	// Direction preserved, norm capped at exactly maxNorm.
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, p.Grad().Data(), 1e-12)
	assert.InDelta(t, 1.0, p.Grad().Norm(), 1e-12)
}

func TestClipGradNorm_GlobalAcrossParameters(t *testing.T) {
	p1 := nn.NewParameter("a", tensor.Zeros(1, 1))
	p1.SetGrad(tensor.Scalar(3))
	p2 := nn.NewParameter("b", tensor.Zeros(1, 1))
	p2.SetGrad(tensor.Scalar(4))

	params := []*nn.Parameter{p1, p2}
	norm := optim.ClipGradNorm(params, 1.0)
	assert.InDelta(t, 5.0, norm, 1e-12)
	assert.InDelta(t, 0.6, p1.Grad().Scalar(), 1e-12)
	assert.InDelta(t, 0.8, p2.Grad().Scalar(), 1e-12)
}

func TestClipGradNorm_Disabled(t *testing.T) {
	p := nn.NewParameter("w", tensor.Zeros(1, 1))
	p.SetGrad(tensor.Scalar(100))

	norm := optim.ClipGradNorm([]*nn.Parameter{p}, 0)
	assert.InDelta(t, 100, norm, 1e-12)
	assert.InDelta(t, 100, p.Grad().Scalar(), 1e-12)
}

func TestClipGradNorm_SkipsNilGradients(t *testing.T) {
	withGrad := nn.NewParameter("a", tensor.Zeros(1, 1))
	withGrad.SetGrad(tensor.Scalar(2))
	without := nn.NewParameter("b", tensor.Zeros(1, 1))

	norm := optim.ClipGradNorm([]*nn.Parameter{withGrad, without}, 1.0)
	assert.InDelta(t, 2.0, norm, 1e-12)
	assert.Nil(t, without.Grad())
	assert.False(t, math.IsNaN(withGrad.Grad().Scalar()))
}
