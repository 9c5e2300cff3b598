// Copyright 2026 Ripple ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense float64 matrix type the framework
// computes with.
//
// Example:
//
//	batch := tensor.Zeros(1000, 1)
//	grid, err := tensor.FromSlice(values, rows, cols)
package tensor

import "github.com/ripple-ml/ripple/internal/tensor"

// Dense is a dense, row-major float64 matrix.
type Dense = tensor.Dense

// New creates a zero-filled Dense with the given dimensions.
func New(rows, cols int) (*Dense, error) {
	return tensor.New(rows, cols)
}

// FromSlice creates a Dense backed by a copy of data.
func FromSlice(data []float64, rows, cols int) (*Dense, error) {
	return tensor.FromSlice(data, rows, cols)
}

// Zeros creates a zero-filled Dense. Panics on invalid dimensions.
func Zeros(rows, cols int) *Dense {
	return tensor.Zeros(rows, cols)
}

// Ones creates a Dense filled with ones.
func Ones(rows, cols int) *Dense {
	return tensor.Ones(rows, cols)
}

// Full creates a Dense filled with value v.
func Full(rows, cols int, v float64) *Dense {
	return tensor.Full(rows, cols, v)
}

// Scalar creates a [1, 1] Dense holding v.
func Scalar(v float64) *Dense {
	return tensor.Scalar(v)
}
