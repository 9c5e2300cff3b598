// Package optim implements the optimization algorithms used by the training
// loop: Adam (the default), SGD with momentum, and global-norm gradient
// clipping.
//
// Optimizers read gradients directly from the parameters (populated by the
// backward pass, possibly rescaled by ClipGradNorm) and mutate parameter
// values in place. Their moment state persists across steps and is the only
// state they own.
package optim

import "github.com/ripple-ml/ripple/internal/nn"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter carrying a gradient.
	// Parameters whose gradient is nil are skipped.
	Step()

	// ZeroGrad clears all parameter gradients. Called before each backward
	// pass so gradients never accumulate across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// zeroGrad clears gradients on a parameter list; shared by all optimizers.
func zeroGrad(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
