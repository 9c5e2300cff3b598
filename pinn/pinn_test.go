// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pinn_test

import (
	"math"
	"testing"

	"github.com/ripple-ml/ripple/pinn"
)

// TestPublicAPI exercises the whole public surface end to end: configure,
// train a few iterations, inspect stats, and evaluate against the exact
// solution.
func TestPublicAPI(t *testing.T) {
	tr, err := pinn.NewTrainer(pinn.Config{
		Points:   32,
		Hidden:   8,
		MaxIters: 3,
		LogEvery: 100,
		Seed:     2,
	})
	if err != nil {
		t.Fatalf("NewTrainer failed: %v", err)
	}

	var last pinn.StepStats
	if err := tr.Run(func(s pinn.StepStats) { last = s }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if last.Iteration != 2 {
		t.Errorf("last iteration = %d, want 2", last.Iteration)
	}
	if math.IsNaN(last.Loss) || last.Loss <= 0 {
		t.Errorf("final loss = %f, want finite positive", last.Loss)
	}

	acc := tr.Report(50)
	if acc.Points != 50 {
		t.Errorf("Report points = %d, want 50", acc.Points)
	}
	if math.IsNaN(acc.MSE) {
		t.Error("Report MSE is NaN")
	}
}

// TestClosedFormIsModel verifies the analytic solution satisfies the Model
// interface and matches Exact pointwise.
func TestClosedFormIsModel(t *testing.T) {
	var model pinn.Model = pinn.ClosedForm{C: 2}

	acc := pinn.Evaluate(model, 2, 1, 100, 4)
	if acc.MSE > 1e-25 {
		t.Errorf("closed form MSE = %g, want ~0", acc.MSE)
	}
}
