// Package nn implements the neural network building blocks used by the
// wave-equation solver: trainable parameters, a dense layer, the tanh
// activation, and the small multilayer perceptron that approximates u(x,t).
//
// Design follows the usual Module pattern: every component exposes Forward
// (emitting nodes onto a computation graph) and Parameters.
package nn

import "github.com/ripple-ml/ripple/internal/tensor"

// Parameter is a trainable tensor with an associated gradient.
//
// The value is mutated in place by the optimizer; the gradient slot is
// populated from the differentiation graph after each backward pass and
// cleared by ZeroGrad before the next one. Parameter implements
// autodiff.Variable, so binding it to a graph is just g.Var(p).
type Parameter struct {
	name  string
	value *tensor.Dense
	grad  *tensor.Dense
}

// NewParameter creates a trainable parameter around an initialized tensor.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name (e.g. "fc1.weight").
func (p *Parameter) Name() string { return p.name }

// Value returns the parameter tensor.
func (p *Parameter) Value() *tensor.Dense { return p.value }

// Grad returns the gradient tensor, or nil before the first backward pass.
func (p *Parameter) Grad() *tensor.Dense { return p.grad }

// SetGrad stores the gradient computed by the backward pass.
func (p *Parameter) SetGrad(grad *tensor.Dense) { p.grad = grad }

// ZeroGrad clears the gradient. Called once per iteration so gradients never
// accumulate across steps.
func (p *Parameter) ZeroGrad() { p.grad = nil }

// Module is the base interface for network components.
type Module interface {
	// Parameters returns all trainable parameters of the module, including
	// nested ones. Modules without trainable state return nil.
	Parameters() []*Parameter
}
