// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pinn trains a physics-informed neural network against the 1D wave
// equation u_tt = c²·u_xx with fixed initial and boundary conditions.
//
// Example:
//
//	tr, err := pinn.NewTrainer(pinn.Config{})
//	if err != nil {
//	    return err
//	}
//	if err := tr.Run(); err != nil {
//	    return err // e.g. errors.Is(err, pinn.ErrNonFiniteLoss)
//	}
//	acc := tr.Report(1000)
package pinn

import "github.com/ripple-ml/ripple/internal/pinn"

// Model is the function approximator collaborator.
type Model = pinn.Model

// Physics evaluates the composite physics-informed loss.
type Physics = pinn.Physics

// Losses holds the four loss terms and their sum as graph nodes.
type Losses = pinn.Losses

// Config holds the fixed hyperparameters of a training run.
type Config = pinn.Config

// Trainer owns the training state across iterations.
type Trainer = pinn.Trainer

// StepStats reports one completed training step.
type StepStats = pinn.StepStats

// Sampler draws uniform collocation batches.
type Sampler = pinn.Sampler

// Accuracy compares a model against the closed-form solution.
type Accuracy = pinn.Accuracy

// ClosedForm is the exact solution sin(πx)·cos(cπt) expressed as a Model.
type ClosedForm = pinn.ClosedForm

// ErrNonFiniteLoss reports numerical divergence; match with errors.Is.
var ErrNonFiniteLoss = pinn.ErrNonFiniteLoss

// NewPhysics creates a loss evaluator for wave speed c and velocity floor.
func NewPhysics(c, floor float64) *Physics {
	return pinn.NewPhysics(c, floor)
}

// NewTrainer builds a trainer, initializing the network and sampling the
// collocation batch once.
func NewTrainer(cfg Config) (*Trainer, error) {
	return pinn.NewTrainer(cfg)
}

// NewSampler creates a seeded sampler over x ∈ [0,1], t ∈ [0,duration].
func NewSampler(n int, duration float64, seed uint64) *Sampler {
	return pinn.NewSampler(n, duration, seed)
}

// Exact returns the closed-form solution sin(πx)·cos(cπt).
func Exact(x, t, c float64) float64 {
	return pinn.Exact(x, t, c)
}

// Evaluate measures model accuracy on n fresh uniform test points.
func Evaluate(model Model, c, duration float64, n int, seed uint64) Accuracy {
	return pinn.Evaluate(model, c, duration, n, seed)
}
