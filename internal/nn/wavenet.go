package nn

import (
	"math/rand"

	"github.com/ripple-ml/ripple/internal/autodiff"
)

// WaveNet is the function approximator for u(x,t): a small fully connected
// network mapping a batch of (x, t) pairs to a batch of displacements.
//
// Architecture:
//   - Input: 2 features (x concatenated with t)
//   - Two hidden layers of configurable width, tanh activations
//   - Output: 1 feature (u)
type WaveNet struct {
	fc1  *Linear // 2 -> hidden
	fc2  *Linear // hidden -> hidden
	fc3  *Linear // hidden -> 1
	tanh *Tanh
}

// NewWaveNet creates a WaveNet with the given hidden width.
func NewWaveNet(hidden int, rng *rand.Rand) *WaveNet {
	return &WaveNet{
		fc1:  NewLinear("fc1", 2, hidden, rng),
		fc2:  NewLinear("fc2", hidden, hidden, rng),
		fc3:  NewLinear("fc3", hidden, 1, rng),
		tanh: NewTanh(),
	}
}

// Forward evaluates the network on column batches x and t (both [n, 1]) and
// returns u as an [n, 1] node on the same graph.
//
// x and t enter as separate nodes so callers can differentiate u with
// respect to either coordinate independently.
func (m *WaveNet) Forward(x, t *autodiff.Node) *autodiff.Node {
	in := autodiff.ConcatCols(x, t)
	h := m.tanh.Forward(m.fc1.Forward(in))
	h = m.tanh.Forward(m.fc2.Forward(h))
	return m.fc3.Forward(h)
}

// Parameters returns all trainable parameters of the network.
func (m *WaveNet) Parameters() []*Parameter {
	params := make([]*Parameter, 0, 6)
	params = append(params, m.fc1.Parameters()...)
	params = append(params, m.fc2.Parameters()...)
	params = append(params, m.fc3.Parameters()...)
	return params
}
