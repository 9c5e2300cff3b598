package nn

import (
	"math"
	"math/rand"

	"github.com/ripple-ml/ripple/internal/tensor"
)

// Xavier returns a [fanIn, fanOut] weight tensor initialized from the
// Glorot uniform distribution U(-b, b), b = sqrt(6/(fanIn+fanOut)).
//
// Keeps activation variance roughly constant across layers, which matters
// here because the whole network is squashed through tanh.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	return tensor.Rand(fanIn, fanOut, -bound, bound, rng)
}
