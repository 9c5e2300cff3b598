package pinn

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ripple-ml/ripple/internal/autodiff"
)

// Accuracy compares a trained model against the closed-form solution on a
// batch of uniformly sampled test points.
type Accuracy struct {
	MSE float64 // mean squared error over the test batch

	// MeanRelErrPct is the mean pointwise relative error in percent,
	// |u - û| / |u| · 100 averaged over the batch. The metric is not
	// guarded: it is infinite or undefined wherever the exact solution is
	// exactly zero (the domain boundaries, and any t with cos(cπt) = 0).
	// With interior points drawn from a continuous distribution that is an
	// accepted, documented artifact, not a training failure.
	MeanRelErrPct float64

	Points int // number of test points evaluated
}

// Evaluate measures model accuracy against the exact solution on n fresh
// uniformly sampled test points for wave speed c.
func Evaluate(model Model, c, duration float64, n int, seed uint64) Accuracy {
	xs, ts := NewSampler(n, duration, seed).Batch()

	g := autodiff.NewGraph()
	u := model.Forward(g.Constant(xs), g.Constant(ts)).Value()

	exact := make([]float64, n)
	for k := 0; k < n; k++ {
		exact[k] = Exact(xs.Data()[k], ts.Data()[k], c)
	}

	diff := make([]float64, n)
	copy(diff, u.Data())
	floats.Sub(diff, exact)
	mse := floats.Dot(diff, diff) / float64(n)

	var relSum float64
	for k := 0; k < n; k++ {
		relSum += math.Abs(diff[k]/exact[k]) * 100
	}

	return Accuracy{
		MSE:           mse,
		MeanRelErrPct: relSum / float64(n),
		Points:        n,
	}
}
