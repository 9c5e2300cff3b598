package nn

import (
	"fmt"
	"math/rand"

	"github.com/ripple-ml/ripple/internal/autodiff"
	"github.com/ripple-ml/ripple/internal/tensor"
)

// Linear is a fully connected layer: y = x @ W + b.
//
//   - x is [batch, in]
//   - W is [in, out], Xavier-initialized
//   - b is [1, out], zero-initialized and broadcast over the batch
type Linear struct {
	in, out int
	weight  *Parameter
	bias    *Parameter
}

// NewLinear creates a Linear layer with Xavier weights and zero bias.
// The name prefixes the parameter names ("fc1.weight", "fc1.bias").
func NewLinear(name string, in, out int, rng *rand.Rand) *Linear {
	return &Linear{
		in:     in,
		out:    out,
		weight: NewParameter(name+".weight", Xavier(in, out, rng)),
		bias:   NewParameter(name+".bias", tensor.Zeros(1, out)),
	}
}

// Forward emits the layer's computation onto x's graph.
//
// Input shape [batch, in], output shape [batch, out].
func (l *Linear) Forward(x *autodiff.Node) *autodiff.Node {
	if x.Cols() != l.in {
		panic(fmt.Sprintf("Linear.Forward: expected %d input features, got %d", l.in, x.Cols()))
	}
	g := x.Graph()
	w := g.Var(l.weight)
	b := g.Var(l.bias)
	out := autodiff.MatMul(x, w)
	return autodiff.Add(out, autodiff.Broadcast(b, x.Rows(), l.out))
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter { return l.weight }

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter { return l.bias }
