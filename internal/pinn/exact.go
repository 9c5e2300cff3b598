package pinn

import (
	"math"

	"github.com/ripple-ml/ripple/internal/autodiff"
)

// Exact returns the closed-form solution u(x,t) = sin(πx)·cos(cπt) of the
// wave equation for the initial and boundary conditions this package
// enforces.
func Exact(x, t, c float64) float64 {
	return math.Sin(math.Pi*x) * math.Cos(c*math.Pi*t)
}

// ClosedForm is the exact solution expressed as a Model: its Forward emits
// sin(πx)·cos(cπt) as graph nodes. Substituting it for the trained network
// must drive every residual of the composite loss to (numerically) zero,
// which is how the residual evaluator is regression-tested.
type ClosedForm struct {
	C float64 // wave speed
}

// Forward emits sin(πx)·cos(cπt) on the inputs' graph.
func (m ClosedForm) Forward(x, t *autodiff.Node) *autodiff.Node {
	return autodiff.Mul(
		autodiff.Sin(autodiff.Scale(x, math.Pi)),
		autodiff.Cos(autodiff.Scale(t, m.C*math.Pi)),
	)
}
