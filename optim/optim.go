// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizers used to train the network: Adam,
// SGD with momentum, and global-norm gradient clipping.
package optim

import (
	"github.com/ripple-ml/ripple/internal/nn"
	"github.com/ripple-ml/ripple/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// Adam implements adaptive moment estimation.
type Adam = optim.Adam

// AdamConfig holds Adam hyperparameters; zero values select defaults.
type AdamConfig = optim.AdamConfig

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds SGD hyperparameters; zero values select defaults.
type SGDConfig = optim.SGDConfig

// NewAdam creates an Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// ClipGradNorm caps the global L2 norm of all parameter gradients at
// maxNorm, preserving direction, and returns the pre-clip norm.
func ClipGradNorm(params []*nn.Parameter, maxNorm float64) float64 {
	return optim.ClipGradNorm(params, maxNorm)
}
