package pinn

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ripple-ml/ripple/internal/tensor"
)

// Sampler draws collocation batches: n x-coordinates uniform on [0, 1] and
// n t-coordinates uniform on [0, duration], sampled independently. The
// training loop calls it once at setup and reuses the batch for every
// iteration.
type Sampler struct {
	n int
	x distuv.Uniform
	t distuv.Uniform
}

// NewSampler creates a seeded sampler for n collocation points over
// x ∈ [0,1], t ∈ [0,duration].
func NewSampler(n int, duration float64, seed uint64) *Sampler {
	src := rand.NewPCG(seed, seed)
	return &Sampler{
		n: n,
		x: distuv.Uniform{Min: 0, Max: 1, Src: src},
		t: distuv.Uniform{Min: 0, Max: duration, Src: src},
	}
}

// Batch draws one collocation batch as two [n, 1] columns. Paired indices
// form a single (x, t) sample; points are not guaranteed distinct.
func (s *Sampler) Batch() (x, t *tensor.Dense) {
	x = tensor.Zeros(s.n, 1)
	t = tensor.Zeros(s.n, 1)
	for i := 0; i < s.n; i++ {
		x.Data()[i] = s.x.Rand()
		t.Data()[i] = s.t.Rand()
	}
	return x, t
}
