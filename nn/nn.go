// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the neural network building blocks: trainable
// parameters, a dense layer, the tanh activation, and the WaveNet
// approximator for u(x,t).
package nn

import (
	"math/rand"

	"github.com/ripple-ml/ripple/internal/nn"
	"github.com/ripple-ml/ripple/internal/tensor"
)

// Parameter is a trainable tensor with an associated gradient.
type Parameter = nn.Parameter

// Module is the base interface for network components.
type Module = nn.Module

// Linear is a fully connected layer y = x @ W + b.
type Linear = nn.Linear

// Tanh is the hyperbolic tangent activation module.
type Tanh = nn.Tanh

// WaveNet is the multilayer perceptron approximating u(x,t).
type WaveNet = nn.WaveNet

// NewParameter creates a trainable parameter around an initialized tensor.
func NewParameter(name string, value *tensor.Dense) *Parameter {
	return nn.NewParameter(name, value)
}

// NewLinear creates a Linear layer with Xavier weights and zero bias.
func NewLinear(name string, in, out int, rng *rand.Rand) *Linear {
	return nn.NewLinear(name, in, out, rng)
}

// NewTanh creates a Tanh activation module.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// NewWaveNet creates a WaveNet with the given hidden width.
func NewWaveNet(hidden int, rng *rand.Rand) *WaveNet {
	return nn.NewWaveNet(hidden, rng)
}

// Xavier returns a [fanIn, fanOut] Glorot-uniform weight tensor.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *tensor.Dense {
	return nn.Xavier(fanIn, fanOut, rng)
}
