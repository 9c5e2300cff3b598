package optim

import (
	"math"

	"github.com/ripple-ml/ripple/internal/nn"
)

// ClipGradNorm rescales the concatenated gradient of all parameters so its
// global L2 norm does not exceed maxNorm.
//
// If the norm is at or below the threshold the gradients are left untouched;
// otherwise every gradient is scaled by maxNorm/norm, which caps the norm at
// exactly maxNorm without changing the gradient's direction. Guards against
// the exploding gradients the second-order differentiation chain can
// produce.
//
// Returns the pre-clip global norm. Parameters without a gradient contribute
// nothing. A non-positive maxNorm disables clipping.
func ClipGradNorm(params []*nn.Parameter, maxNorm float64) float64 {
	var sum float64
	for _, p := range params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		for _, g := range grad.Data() {
			sum += g * g
		}
	}
	norm := math.Sqrt(sum)

	if maxNorm <= 0 || norm <= maxNorm {
		return norm
	}

	scale := maxNorm / norm
	for _, p := range params {
		grad := p.Grad()
		if grad == nil {
			continue
		}
		data := grad.Data()
		for i := range data {
			data[i] *= scale
		}
	}
	return norm
}
