// Package pinn trains a physics-informed neural network to approximate the
// solution u(x,t) of the 1D wave equation
//
//	u_tt = c² · u_xx,  x ∈ [0,1], t ∈ [0,T]
//
// with u(x,0) = sin(πx), u_t(x,0) = 0 and u(0,t) = u(1,t) = 0. No labeled
// solution data is involved: the training objective is built entirely from
// the residuals of the equation and its initial/boundary conditions,
// obtained by differentiating the network with respect to its inputs.
package pinn

import (
	"math"

	"github.com/ripple-ml/ripple/internal/autodiff"
	"github.com/ripple-ml/ripple/internal/tensor"
)

// Model is the function approximator collaborator: a differentiable mapping
// from column batches (x, t) to a column batch u, emitted onto the inputs'
// graph so derivatives with respect to x, t and the model's parameters can
// all be taken. nn.WaveNet is the trainable implementation; ClosedForm is
// the analytic one.
type Model interface {
	Forward(x, t *autodiff.Node) *autodiff.Node
}

// Physics evaluates the composite physics-informed loss.
type Physics struct {
	c     float64 // wave propagation speed
	floor float64 // additive floor in the velocity term
}

// NewPhysics creates an evaluator for wave speed c. floor is the small
// positive constant added inside the velocity term before averaging; it
// keeps that term from reaching exactly zero and acts as a numerical floor,
// not a statistical estimator.
func NewPhysics(c, floor float64) *Physics {
	return &Physics{c: c, floor: floor}
}

// C returns the wave speed.
func (p *Physics) C() float64 { return p.c }

// Losses holds the four loss terms and their sum, as graph nodes. All five
// are scalars carrying the differentiation graph back to the model's
// parameters; only Total is usually back-propagated.
type Losses struct {
	Physics  *autodiff.Node // mean squared PDE residual u_tt - c²·u_xx
	Initial  *autodiff.Node // mean squared u(x,0) - sin(πx)
	Velocity *autodiff.Node // mean of u_t(x,0)² plus the floor
	Boundary *autodiff.Node // mean squared u(0,t) plus mean squared u(1,t)
	Total    *autodiff.Node // unweighted sum of the four terms
}

// Losses evaluates the composite loss for one collocation batch.
//
// x and t are [n, 1] nodes on a live graph. The derivatives use the
// sum-then-differentiate identity: u_i depends only on (x_i, t_i), so
// d(Σu)/dx recovers the per-point u_x. Each first derivative is an ordinary
// graph node and is differentiated again for u_xx and u_tt.
//
// The four terms are summed without weights; no balancing has been tuned.
func (p *Physics) Losses(model Model, x, t *autodiff.Node) Losses {
	g := x.Graph()
	n := x.Rows()

	// PDE residual over the interior batch.
	u := model.Forward(x, t)
	uT := autodiff.Gradient(autodiff.Sum(u), t)[0]
	uTT := autodiff.Gradient(autodiff.Sum(uT), t)[0]
	uX := autodiff.Gradient(autodiff.Sum(u), x)[0]
	uXX := autodiff.Gradient(autodiff.Sum(uX), x)[0]
	residual := autodiff.Sub(uTT, autodiff.Scale(uXX, p.c*p.c))
	physics := autodiff.MeanSquare(residual)

	// Initial conditions: the same x batch at a fresh zero-valued time
	// input, which must be its own leaf so u_t at t=0 can be taken.
	t0 := g.Constant(tensor.Zeros(n, 1))
	u0 := model.Forward(x, t0)
	initial := autodiff.MeanSquare(autodiff.Sub(u0, autodiff.Sin(autodiff.Scale(x, math.Pi))))

	v0 := autodiff.Gradient(autodiff.Sum(u0), t0)[0]
	velocity := autodiff.Mean(autodiff.AddScalar(autodiff.Square(v0), p.floor))

	// Dirichlet boundaries: the t batch at both endpoints.
	x0 := g.Constant(tensor.Zeros(t.Rows(), 1))
	x1 := g.Constant(tensor.Ones(t.Rows(), 1))
	boundary := autodiff.Add(
		autodiff.MeanSquare(model.Forward(x0, t)),
		autodiff.MeanSquare(model.Forward(x1, t)),
	)

	total := autodiff.Add(autodiff.Add(physics, initial), autodiff.Add(velocity, boundary))

	return Losses{
		Physics:  physics,
		Initial:  initial,
		Velocity: velocity,
		Boundary: boundary,
		Total:    total,
	}
}
