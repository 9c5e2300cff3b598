package nn

import "github.com/ripple-ml/ripple/internal/autodiff"

// Tanh is the hyperbolic tangent activation module.
//
// Tanh is the activation of choice for physics-informed networks: it is
// smooth everywhere, so the second derivatives the PDE residual takes
// through the network exist and are non-trivial (ReLU's second derivative
// is zero almost everywhere, which would make u_tt and u_xx vanish).
type Tanh struct{}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh { return &Tanh{} }

// Forward applies tanh element-wise.
func (*Tanh) Forward(x *autodiff.Node) *autodiff.Node {
	return autodiff.Tanh(x)
}

// Parameters returns nil (activations have no trainable state).
func (*Tanh) Parameters() []*Parameter { return nil }
